package dbmodels

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrEventTimeRequired = errors.New("не указано время начала или окончания события")

type Event struct {
	BaseModel
	RecruitmentStepID string           `gorm:"type:varchar(36);uniqueIndex"`
	RecruitmentStep   *RecruitmentStep `gorm:"foreignKey:RecruitmentStepID"`
	StartTime         time.Time        `gorm:"index"`
	EndTime           time.Time
	Location          string        `gorm:"type:varchar(255)"`
	ReminderSentAt    *time.Time    // время отправки напоминания интервьюерам
	Interviewers      []Interviewer `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

func (e *Event) BeforeSave(tx *gorm.DB) error {
	return e.Validate()
}

func (e Event) Validate() error {
	if e.StartTime.IsZero() || e.EndTime.IsZero() {
		return ErrEventTimeRequired
	}
	return nil
}

// InFuture событие начинается сейчас или позже
func (e Event) InFuture(now time.Time) bool {
	return !e.StartTime.Before(now)
}
