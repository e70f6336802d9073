package eventapimodels

import (
	dbmodels "interview-scheduler/models/db"
	"time"

	"github.com/pkg/errors"
)

type EventData struct {
	StartTime             time.Time `json:"start_time"`             // Начало собеседования
	EndTime               time.Time `json:"end_time"`               // Окончание собеседования
	Location              string    `json:"location"`               // Место проведения / ссылка на звонок
	InterviewerSelections []string  `json:"interviewer_selections"` // Ид участников, добавляемых интервьюерами
}

func (e EventData) Validate() error {
	if e.StartTime.IsZero() {
		return errors.New("не указано время начала события")
	}
	if e.EndTime.IsZero() {
		return errors.New("не указано время окончания события")
	}
	if e.EndTime.Before(e.StartTime) {
		return errors.New("время окончания события раньше времени начала")
	}
	return nil
}

type EventUpdate struct {
	EventData
	InterviewerDeselections []string `json:"interviewer_deselections"` // Ид интервьюеров, удаляемых из события
}

type InterviewerView struct {
	ID            string `json:"id"`
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name"`
}

type EventView struct {
	ID                string            `json:"id"`
	RecruitmentStepID string            `json:"recruitment_step_id"`
	StartTime         time.Time         `json:"start_time"`
	EndTime           time.Time         `json:"end_time"`
	Location          string            `json:"location"`
	InFuture          bool              `json:"in_future"`
	Interviewers      []InterviewerView `json:"interviewers"`
}

func InterviewerConvert(rec dbmodels.Interviewer) InterviewerView {
	return InterviewerView{
		ID:            rec.ID,
		ParticipantID: rec.ParticipantID,
		Name:          rec.Name(),
	}
}

func EventConvert(rec dbmodels.Event, now time.Time) EventView {
	result := EventView{
		ID:                rec.ID,
		RecruitmentStepID: rec.RecruitmentStepID,
		StartTime:         rec.StartTime,
		EndTime:           rec.EndTime,
		Location:          rec.Location,
		InFuture:          rec.InFuture(now),
		Interviewers:      make([]InterviewerView, 0, len(rec.Interviewers)),
	}
	for _, interviewer := range rec.Interviewers {
		result.Interviewers = append(result.Interviewers, InterviewerConvert(interviewer))
	}
	return result
}
