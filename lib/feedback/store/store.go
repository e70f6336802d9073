package feedbackstore

import (
	dbmodels "interview-scheduler/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Feedback) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.Feedback, error)
	ListByCandidate(candidateID string) ([]dbmodels.Feedback, error)
	DeleteByCandidate(candidateID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Feedback) (id string, err error) {
	err = i.db.
		Omit("Interviewer").
		Create(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка добавления отзыва")
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Feedback{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка обновления отзыва")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Feedback, error) {
	rec := dbmodels.Feedback{}
	err := i.preloaded().
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByCandidate(candidateID string) ([]dbmodels.Feedback, error) {
	list := []dbmodels.Feedback{}
	err := i.preloaded().
		Where("candidate_id = ?", candidateID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения отзывов по кандидату")
	}
	return list, nil
}

func (i impl) DeleteByCandidate(candidateID string) error {
	err := i.db.
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.Feedback{}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления отзывов кандидата")
	}
	return nil
}

func (i impl) preloaded() *gorm.DB {
	return i.db.
		Model(&dbmodels.Feedback{}).
		Preload("Interviewer").
		Preload("Interviewer.Participant").
		Preload("Interviewer.Event").
		Preload("Interviewer.Event.RecruitmentStep").
		Preload("Interviewer.Event.RecruitmentStep.RecruitmentStepType")
}
