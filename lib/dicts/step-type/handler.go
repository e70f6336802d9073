package steptypeprovider

import (
	"interview-scheduler/db"
	steptypestore "interview-scheduler/lib/dicts/step-type/store"
	initchecker "interview-scheduler/lib/utils/init-checker"
	dictapimodels "interview-scheduler/models/api/dict"
	dbmodels "interview-scheduler/models/db"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data dictapimodels.StepTypeData) (id string, err error)
	Update(id string, data dictapimodels.StepTypeData) error
	Get(id string) (item dictapimodels.StepTypeView, err error)
	FindByName(filter dictapimodels.StepTypeFilter) (list []dictapimodels.StepTypeView, err error)
	Delete(id string) error
}

var Instance Provider

var (
	ErrNotFound  = errors.New("тип этапа не найден")
	ErrDuplicate = errors.New("тип этапа с таким названием уже существует")
	ErrInUse     = errors.New("тип этапа используется в этапах подбора")
)

func NewHandler() {
	instance := impl{
		store: steptypestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store steptypestore.Provider
}

func (i impl) Create(data dictapimodels.StepTypeData) (id string, err error) {
	name := strings.TrimSpace(data.Name)
	unique, err := i.store.IsUnique("", name)
	if err != nil {
		return "", err
	}
	if !unique {
		return "", ErrDuplicate
	}
	id, err = i.store.Create(dbmodels.RecruitmentStepType{Name: name})
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("Добавлен тип этапа подбора")
	return id, nil
}

func (i impl) Update(id string, data dictapimodels.StepTypeData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	name := strings.TrimSpace(data.Name)
	unique, err := i.store.IsUnique(id, name)
	if err != nil {
		return err
	}
	if !unique {
		return ErrDuplicate
	}
	return i.store.Update(id, map[string]interface{}{"name": name})
}

func (i impl) Get(id string) (item dictapimodels.StepTypeView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.StepTypeView{}, err
	}
	if rec == nil {
		return dictapimodels.StepTypeView{}, ErrNotFound
	}
	return dictapimodels.StepTypeConvert(*rec), nil
}

func (i impl) FindByName(filter dictapimodels.StepTypeFilter) (list []dictapimodels.StepTypeView, err error) {
	recList, err := i.store.List(filter.Name)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.StepTypeView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.StepTypeConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	inUse, err := i.store.InUse(id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrInUse
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("Удален тип этапа подбора")
	return nil
}
