package stepapimodels

import (
	"interview-scheduler/models"
	eventapimodels "interview-scheduler/models/api/event"
	dbmodels "interview-scheduler/models/db"

	"github.com/pkg/errors"
)

type StepData struct {
	CandidateID string `json:"candidate_id"` // Ид кандидата
	StepTypeID  string `json:"step_type_id"` // Ид типа этапа
}

func (s StepData) Validate() error {
	if s.CandidateID == "" {
		return errors.New("не указан кандидат")
	}
	if s.StepTypeID == "" {
		return errors.New("не указан тип этапа")
	}
	return nil
}

type StatusView struct {
	Pending   bool                `json:"pending"`
	Scheduled bool                `json:"scheduled"`
	Upcoming  bool                `json:"upcoming"`
	Completed bool                `json:"completed"`
	Labels    []models.StepStatus `json:"labels"` // все выполняющиеся признаки
	Titles    []string            `json:"titles"` // названия признаков на языке пользователя
}

type StepView struct {
	ID          string                    `json:"id"`
	CandidateID string                    `json:"candidate_id"`
	StepTypeID  string                    `json:"step_type_id"`
	Name        string                    `json:"name"`
	Status      StatusView                `json:"status"`
	Event       *eventapimodels.EventView `json:"event,omitempty"`
}

func StepConvert(rec dbmodels.RecruitmentStep, status StatusView) StepView {
	return StepView{
		ID:          rec.ID,
		CandidateID: rec.CandidateID,
		StepTypeID:  rec.RecruitmentStepTypeID,
		Name:        rec.Name(),
		Status:      status,
	}
}
