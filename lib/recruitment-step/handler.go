package stephandler

import (
	"interview-scheduler/db"
	candidatestore "interview-scheduler/lib/candidate/store"
	steptypestore "interview-scheduler/lib/dicts/step-type/store"
	"interview-scheduler/lib/i18n"
	stepstatus "interview-scheduler/lib/recruitment-step/status"
	stepstore "interview-scheduler/lib/recruitment-step/store"
	initchecker "interview-scheduler/lib/utils/init-checker"
	eventapimodels "interview-scheduler/models/api/event"
	stepapimodels "interview-scheduler/models/api/step"
	dbmodels "interview-scheduler/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data stepapimodels.StepData) (id string, err error)
	Get(id, locale string) (item stepapimodels.StepView, err error)
	ListByCandidate(candidateID, locale string) (list []stepapimodels.StepView, err error)
	Delete(id string) error
}

var Instance Provider

var (
	ErrNotFound          = errors.New("этап подбора не найден")
	ErrCandidateNotFound = errors.New("кандидат не найден")
	ErrStepTypeNotFound  = errors.New("тип этапа не найден")
	ErrHasEvent          = errors.New("у этапа назначено событие, сначала удалите событие")
)

func NewHandler() {
	instance := impl{
		store:          stepstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		stepTypeStore:  steptypestore.NewInstance(db.DB),
		translator:     i18n.Instance,
		now:            time.Now,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"candidateStore", instance.candidateStore,
		"stepTypeStore", instance.stepTypeStore,
		"translator", instance.translator,
	)
	Instance = instance
}

type impl struct {
	store          stepstore.Provider
	candidateStore candidatestore.Provider
	stepTypeStore  steptypestore.Provider
	translator     i18n.Translator
	now            func() time.Time
}

func (i impl) getLogger(candidateID, stepID string) *log.Entry {
	logger := log.WithField("candidate_id", candidateID)
	if stepID != "" {
		logger = logger.WithField("step_id", stepID)
	}
	return logger
}

func (i impl) Create(data stepapimodels.StepData) (id string, err error) {
	logger := i.getLogger(data.CandidateID, "")
	candidate, err := i.candidateStore.GetByID(data.CandidateID)
	if err != nil {
		return "", err
	}
	if candidate == nil {
		return "", ErrCandidateNotFound
	}
	stepType, err := i.stepTypeStore.GetByID(data.StepTypeID)
	if err != nil {
		return "", err
	}
	if stepType == nil {
		return "", ErrStepTypeNotFound
	}
	id, err = i.store.Create(dbmodels.RecruitmentStep{
		CandidateID:           data.CandidateID,
		RecruitmentStepTypeID: data.StepTypeID,
	})
	if err != nil {
		return "", err
	}
	logger.
		WithField("step_id", id).
		Info("Добавлен этап подбора")
	return id, nil
}

func (i impl) Get(id, locale string) (item stepapimodels.StepView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return stepapimodels.StepView{}, err
	}
	if rec == nil {
		return stepapimodels.StepView{}, ErrNotFound
	}
	return i.convert(*rec, i.now(), locale), nil
}

func (i impl) ListByCandidate(candidateID, locale string) (list []stepapimodels.StepView, err error) {
	candidate, err := i.candidateStore.GetByID(candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, ErrCandidateNotFound
	}
	recList, err := i.store.ListByCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	now := i.now()
	list = make([]stepapimodels.StepView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, i.convert(rec, now, locale))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if rec.Event != nil {
		return ErrHasEvent
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	i.getLogger(rec.CandidateID, id).Info("Удален этап подбора")
	return nil
}

func (i impl) convert(rec dbmodels.RecruitmentStep, now time.Time, locale string) stepapimodels.StepView {
	view := stepapimodels.StepConvert(rec, StatusConvert(stepstatus.Classify(rec, now), i.translator, locale))
	if rec.Event != nil {
		eventView := eventapimodels.EventConvert(*rec.Event, now)
		view.Event = &eventView
	}
	return view
}

func StatusConvert(status stepstatus.Status, translator i18n.Translator, locale string) stepapimodels.StatusView {
	labels := status.Labels()
	titles := make([]string, 0, len(labels))
	for _, label := range labels {
		titles = append(titles, translator.T(locale, i18n.StatusKey(string(label)), nil))
	}
	return stepapimodels.StatusView{
		Pending:   status.Pending(),
		Scheduled: status.Scheduled(),
		Upcoming:  status.Upcoming(),
		Completed: status.Completed(),
		Labels:    labels,
		Titles:    titles,
	}
}
