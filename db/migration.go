package db

import (
	dbmodels "interview-scheduler/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.RecruitmentStepType{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RecruitmentStepType")
	}
	if err := DB.AutoMigrate(&dbmodels.Participant{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Participant")
	}
	if err := DB.AutoMigrate(&dbmodels.RecruitmentStep{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RecruitmentStep")
	}
	if err := DB.AutoMigrate(&dbmodels.Event{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Event")
	}
	if err := DB.AutoMigrate(&dbmodels.Interviewer{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Interviewer")
	}
	if err := DB.AutoMigrate(&dbmodels.Feedback{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Feedback")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
