package db

import (
	steptypestore "interview-scheduler/lib/dicts/step-type/store"
	dbmodels "interview-scheduler/models/db"

	log "github.com/sirupsen/logrus"
)

var defaultStepTypes = []string{"hr", "pairing", "system design", "final"}

func InitPreload() {
	fillStepTypes()
}

func fillStepTypes() {
	store := steptypestore.NewInstance(DB)
	list, err := store.List("")
	if err != nil {
		log.WithError(err).Error("ошибка предзаполнения типов этапов")
		return
	}
	if len(list) > 0 {
		return
	}
	for _, name := range defaultStepTypes {
		_, err = store.Create(dbmodels.RecruitmentStepType{Name: name})
		if err != nil {
			log.WithError(err).WithField("name", name).Error("ошибка добавления типа этапа")
			return
		}
	}
	log.Info("типы этапов добавлены")
}
