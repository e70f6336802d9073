package stepstatus

import (
	"interview-scheduler/models"
	dbmodels "interview-scheduler/models/db"
	"time"
)

// Status состояние этапа подбора, из которого выводятся все признаки статуса.
// Признаки не взаимоисключающие: этап с событием всегда "scheduled"
// и дополнительно "upcoming" либо "completed".
type Status struct {
	HasEvent bool
	IsFuture bool
}

// Classify состояние этапа на момент now по наличию и времени начала события
func Classify(step dbmodels.RecruitmentStep, now time.Time) Status {
	if step.Event == nil {
		return Status{}
	}
	return Status{
		HasEvent: true,
		IsFuture: step.Event.InFuture(now),
	}
}

func (s Status) Pending() bool {
	return !s.HasEvent
}

func (s Status) Scheduled() bool {
	return s.HasEvent
}

func (s Status) Upcoming() bool {
	return s.HasEvent && s.IsFuture
}

func (s Status) Completed() bool {
	return s.HasEvent && !s.IsFuture
}

// Is выполняется ли признак status, неизвестный признак не выполняется
func (s Status) Is(status models.StepStatus) bool {
	switch status {
	case models.StepStatusPending:
		return s.Pending()
	case models.StepStatusScheduled:
		return s.Scheduled()
	case models.StepStatusUpcoming:
		return s.Upcoming()
	case models.StepStatusCompleted:
		return s.Completed()
	}
	return false
}

// Labels все выполняющиеся признаки в порядке models.StepStatusOrder
func (s Status) Labels() []models.StepStatus {
	result := make([]models.StepStatus, 0, 2)
	for _, status := range models.StepStatusOrder {
		if s.Is(status) {
			result = append(result, status)
		}
	}
	return result
}
