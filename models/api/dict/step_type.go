package dictapimodels

import (
	dbmodels "interview-scheduler/models/db"
	"strings"

	"github.com/pkg/errors"
)

type StepTypeData struct {
	Name string `json:"name"` // Название типа этапа
}

func (s StepTypeData) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("не указано название типа этапа")
	}
	return nil
}

type StepTypeFilter struct {
	Name string `json:"name"` // Поиск по названию
}

type StepTypeView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func StepTypeConvert(rec dbmodels.RecruitmentStepType) StepTypeView {
	return StepTypeView{
		ID:   rec.ID,
		Name: rec.Name,
	}
}
