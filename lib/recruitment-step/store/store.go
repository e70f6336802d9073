package stepstore

import (
	dbmodels "interview-scheduler/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.RecruitmentStep) (id string, err error)
	GetByID(id string) (*dbmodels.RecruitmentStep, error)
	ListByCandidate(candidateID string) ([]dbmodels.RecruitmentStep, error)
	Delete(id string) error
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

func (i impl) Create(rec dbmodels.RecruitmentStep) (id string, err error) {
	err = i.db.
		Omit("Candidate", "RecruitmentStepType", "Event").
		Save(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка добавления этапа подбора")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.RecruitmentStep, error) {
	rec := dbmodels.RecruitmentStep{}
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

func (i impl) ListByCandidate(candidateID string) ([]dbmodels.RecruitmentStep, error) {
	list := []dbmodels.RecruitmentStep{}
	err := i.preloaded().
		Where("candidate_id = ?", candidateID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка этапов кандидата")
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Delete(&dbmodels.RecruitmentStep{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления этапа подбора")
	}
	return nil
}

func (i impl) DeleteByCandidate(candidateID string) error {
	err := i.db.
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.RecruitmentStep{}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления этапов кандидата")
	}
	return nil
}

func (i impl) preloaded() *gorm.DB {
	return i.db.
		Model(&dbmodels.RecruitmentStep{}).
		Preload("RecruitmentStepType").
		Preload("Candidate").
		Preload("Event").
		Preload("Event.Interviewers").
		Preload("Event.Interviewers.Participant")
}
