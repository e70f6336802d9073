package eventstore

import (
	dbmodels "interview-scheduler/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Event) (id string, err error)
	Update(rec dbmodels.Event) error
	GetByID(id string) (*dbmodels.Event, error)
	GetByStepID(stepID string) (*dbmodels.Event, error)
	ListByStepIDs(stepIDs []string) ([]dbmodels.Event, error)
	ListForReminder(from, to time.Time) ([]dbmodels.Event, error)
	SetReminderSent(id string, sentAt time.Time) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create сохраняет событие без интервьюеров, они пишутся отдельно через interviewerstore
func (i impl) Create(rec dbmodels.Event) (id string, err error) {
	err = i.db.
		Omit("RecruitmentStep", "Interviewers").
		Create(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка добавления события")
	}
	return rec.ID, nil
}

func (i impl) Update(rec dbmodels.Event) error {
	err := i.db.
		Model(&rec).
		Omit("RecruitmentStep", "Interviewers").
		Select("start_time", "end_time", "location", "reminder_sent_at").
		Updates(&rec).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка обновления события")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Event, error) {
	rec := dbmodels.Event{}
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

func (i impl) GetByStepID(stepID string) (*dbmodels.Event, error) {
	rec := dbmodels.Event{}
	err := i.preloaded().
		Where("recruitment_step_id = ?", stepID).
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

func (i impl) ListByStepIDs(stepIDs []string) ([]dbmodels.Event, error) {
	list := []dbmodels.Event{}
	if len(stepIDs) == 0 {
		return list, nil
	}
	err := i.db.
		Where("recruitment_step_id in (?)", stepIDs).
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения событий этапов")
	}
	return list, nil
}

// ListForReminder события, начинающиеся в [from, to], по которым еще не отправлено напоминание
func (i impl) ListForReminder(from, to time.Time) ([]dbmodels.Event, error) {
	list := []dbmodels.Event{}
	err := i.preloaded().
		Where("start_time >= ?", from).
		Where("start_time <= ?", to).
		Where("reminder_sent_at is null").
		Order("start_time").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения событий для напоминания")
	}
	return list, nil
}

func (i impl) SetReminderSent(id string, sentAt time.Time) error {
	err := i.db.
		Model(&dbmodels.Event{}).
		Where("id = ?", id).
		UpdateColumn("reminder_sent_at", sentAt).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения признака отправки напоминания")
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Delete(&dbmodels.Event{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления события")
	}
	return nil
}

func (i impl) preloaded() *gorm.DB {
	return i.db.
		Model(&dbmodels.Event{}).
		Preload("RecruitmentStep").
		Preload("RecruitmentStep.RecruitmentStepType").
		Preload("RecruitmentStep.Candidate").
		Preload("Interviewers").
		Preload("Interviewers.Participant")
}
