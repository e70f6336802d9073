package participantapimodels

import (
	apimodels "interview-scheduler/models/api"
	dbmodels "interview-scheduler/models/db"
	"net/mail"
	"strings"

	"github.com/pkg/errors"
)

type ParticipantData struct {
	Name  string `json:"name"`  // ФИО участника
	Email string `json:"email"` // Почта для приглашений на собеседования
}

func (p ParticipantData) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("не указано имя участника")
	}
	if p.Email != "" {
		if _, err := mail.ParseAddress(p.Email); err != nil {
			return errors.New("некорректный адрес почты")
		}
	}
	return nil
}

type ParticipantFilter struct {
	apimodels.Pagination
	Name string `json:"name"` // Поиск по имени
}

type ParticipantView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ParticipantConvert(rec dbmodels.Participant) ParticipantView {
	return ParticipantView{
		ID:    rec.ID,
		Name:  rec.Name,
		Email: rec.Email,
	}
}
