package participanthandler

import (
	"interview-scheduler/db"
	participantstore "interview-scheduler/lib/participant/store"
	initchecker "interview-scheduler/lib/utils/init-checker"
	participantapimodels "interview-scheduler/models/api/participant"
	dbmodels "interview-scheduler/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data participantapimodels.ParticipantData) (id string, err error)
	Update(id string, data participantapimodels.ParticipantData) error
	Get(id string) (item participantapimodels.ParticipantView, err error)
	List(filter participantapimodels.ParticipantFilter) (list []participantapimodels.ParticipantView, rowCount int64, err error)
	Delete(id string) error
}

var Instance Provider

var ErrNotFound = errors.New("участник не найден")

func NewHandler() {
	instance := impl{
		store: participantstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store participantstore.Provider
}

func (i impl) Create(data participantapimodels.ParticipantData) (id string, err error) {
	id, err = i.store.Create(dbmodels.Participant{
		Name:  data.Name,
		Email: data.Email,
	})
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("Добавлен участник")
	return id, nil
}

func (i impl) Update(id string, data participantapimodels.ParticipantData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	return i.store.Update(id, map[string]interface{}{
		"name":  data.Name,
		"email": data.Email,
	})
}

func (i impl) Get(id string) (item participantapimodels.ParticipantView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return participantapimodels.ParticipantView{}, err
	}
	if rec == nil {
		return participantapimodels.ParticipantView{}, ErrNotFound
	}
	return participantapimodels.ParticipantConvert(*rec), nil
}

func (i impl) List(filter participantapimodels.ParticipantFilter) (list []participantapimodels.ParticipantView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	recList, rowCount, err := i.store.List(filter.Name, page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]participantapimodels.ParticipantView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, participantapimodels.ParticipantConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("Удален участник")
	return nil
}
