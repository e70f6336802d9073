package interviewerstore

import (
	dbmodels "interview-scheduler/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Interviewer) (id string, err error)
	FindAllByID(ids []string) ([]dbmodels.Interviewer, error)
	ListByCandidate(candidateID string) ([]dbmodels.Interviewer, error)
	Delete(ids []string) error
	DeleteByEvents(eventIDs []string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interviewer) (id string, err error) {
	err = i.db.
		Omit("Event", "Participant").
		Create(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка добавления интервьюера")
	}
	return rec.ID, nil
}

func (i impl) FindAllByID(ids []string) ([]dbmodels.Interviewer, error) {
	list := []dbmodels.Interviewer{}
	if len(ids) == 0 {
		return list, nil
	}
	err := i.db.
		Preload("Participant").
		Where("id in (?)", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка поиска интервьюеров")
	}
	return list, nil
}

// ListByCandidate интервьюеры всех событий кандидата вместе с цепочкой событие - этап - тип этапа
func (i impl) ListByCandidate(candidateID string) ([]dbmodels.Interviewer, error) {
	list := []dbmodels.Interviewer{}
	err := i.db.
		Model(&dbmodels.Interviewer{}).
		Joins("join events as e on e.id = interviewers.event_id").
		Joins("join recruitment_steps as rs on rs.id = e.recruitment_step_id").
		Where("rs.candidate_id = ?", candidateID).
		Preload("Participant").
		Preload("Event").
		Preload("Event.RecruitmentStep").
		Preload("Event.RecruitmentStep.RecruitmentStepType").
		Order("e.start_time").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения интервьюеров кандидата")
	}
	return list, nil
}

func (i impl) Delete(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	err := i.db.
		Where("id in (?)", ids).
		Delete(&dbmodels.Interviewer{}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления интервьюеров")
	}
	return nil
}

func (i impl) DeleteByEvents(eventIDs []string) error {
	if len(eventIDs) == 0 {
		return nil
	}
	err := i.db.
		Where("event_id in (?)", eventIDs).
		Delete(&dbmodels.Interviewer{}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления интервьюеров события")
	}
	return nil
}
