package candidateapimodels

import (
	apimodels "interview-scheduler/models/api"
	dbmodels "interview-scheduler/models/db"
	"net/mail"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type CandidateData struct {
	Name  string `json:"name"`  // ФИО кандидата
	Email string `json:"email"` // Почта
	Phone string `json:"phone"` // Телефон
}

func (c CandidateData) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("не указано имя кандидата")
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return errors.New("некорректный адрес почты")
		}
	}
	return nil
}

type CandidateFilter struct {
	apimodels.Pagination
	Name string `json:"name"` // Поиск по имени
}

type CandidateView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	return CandidateView{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Phone:     rec.Phone,
		CreatedAt: rec.CreatedAt,
	}
}

// InterviewerOption элемент выпадающего списка интервьюеров кандидата
type InterviewerOption struct {
	Label string `json:"label"` // "<имя интервьюера> in <название этапа>"
	ID    string `json:"id"`    // ид интервьюера
}

// ScheduleItem строка расписания собеседований кандидата
type ScheduleItem struct {
	StepName     string
	Status       string
	StartTime    time.Time
	EndTime      time.Time
	Location     string
	Interviewers []string
}

func (s ScheduleItem) HasEvent() bool {
	return !s.StartTime.IsZero()
}
