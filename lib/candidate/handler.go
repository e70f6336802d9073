package candidatehandler

import (
	"bytes"
	"fmt"
	"interview-scheduler/config"
	"interview-scheduler/db"
	candidatestore "interview-scheduler/lib/candidate/store"
	interviewerstore "interview-scheduler/lib/event/interviewer-store"
	eventstore "interview-scheduler/lib/event/store"
	pdfexport "interview-scheduler/lib/export/pdf"
	xlsexport "interview-scheduler/lib/export/xls"
	feedbackstore "interview-scheduler/lib/feedback/store"
	"interview-scheduler/lib/i18n"
	stepstatus "interview-scheduler/lib/recruitment-step/status"
	stepstore "interview-scheduler/lib/recruitment-step/store"
	initchecker "interview-scheduler/lib/utils/init-checker"
	candidateapimodels "interview-scheduler/models/api/candidate"
	dbmodels "interview-scheduler/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(data candidateapimodels.CandidateData) (id string, err error)
	Update(id string, data candidateapimodels.CandidateData) error
	Get(id string) (item candidateapimodels.CandidateView, err error)
	List(filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error)
	Delete(id string) error
	InterviewerOptions(id string) (list []candidateapimodels.InterviewerOption, err error)
	Schedule(id, locale string) (candidateName string, list []candidateapimodels.ScheduleItem, err error)
	ScheduleXlsx(id, locale string) (*bytes.Buffer, error)
	SchedulePdf(id, locale string) ([]byte, error)
}

var Instance Provider

var ErrNotFound = errors.New("кандидат не найден")

type txStores struct {
	candidates   candidatestore.Provider
	steps        stepstore.Provider
	events       eventstore.Provider
	interviewers interviewerstore.Provider
	feedback     feedbackstore.Provider
}

func newTxStores(tx *gorm.DB) txStores {
	return txStores{
		candidates:   candidatestore.NewInstance(tx),
		steps:        stepstore.NewInstance(tx),
		events:       eventstore.NewInstance(tx),
		interviewers: interviewerstore.NewInstance(tx),
		feedback:     feedbackstore.NewInstance(tx),
	}
}

func NewHandler() {
	instance := impl{
		store:            candidatestore.NewInstance(db.DB),
		stepStore:        stepstore.NewInstance(db.DB),
		interviewerStore: interviewerstore.NewInstance(db.DB),
		inTx: func(fn func(stores txStores) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(newTxStores(tx))
			})
		},
		xls:        xlsexport.Instance,
		fontDir:    config.Conf.App.FontDir,
		translator: i18n.Instance,
		now:        time.Now,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"stepStore", instance.stepStore,
		"interviewerStore", instance.interviewerStore,
		"xls", instance.xls,
		"translator", instance.translator,
	)
	Instance = instance
}

type impl struct {
	store            candidatestore.Provider
	stepStore        stepstore.Provider
	interviewerStore interviewerstore.Provider
	inTx             func(fn func(stores txStores) error) error
	xls              xlsexport.Provider
	fontDir          string
	translator       i18n.Translator
	now              func() time.Time
}

func (i impl) Create(data candidateapimodels.CandidateData) (id string, err error) {
	id, err = i.store.Create(dbmodels.Candidate{
		Name:  data.Name,
		Email: data.Email,
		Phone: data.Phone,
	})
	if err != nil {
		return "", err
	}
	log.WithField("candidate_id", id).Info("Добавлен кандидат")
	return id, nil
}

func (i impl) Update(id string, data candidateapimodels.CandidateData) error {
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
		"phone": data.Phone,
	})
}

func (i impl) Get(id string) (item candidateapimodels.CandidateView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, ErrNotFound
	}
	return candidateapimodels.CandidateConvert(*rec), nil
}

func (i impl) List(filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	recList, rowCount, err := i.store.List(filter.Name, page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]candidateapimodels.CandidateView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, candidateapimodels.CandidateConvert(rec))
	}
	return list, rowCount, nil
}

// Delete удаляет кандидата вместе с этапами, их событиями, интервьюерами и отзывами
func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	err = i.inTx(func(stores txStores) error {
		steps, err := stores.steps.ListByCandidate(id)
		if err != nil {
			return err
		}
		stepIDs := make([]string, 0, len(steps))
		for _, step := range steps {
			stepIDs = append(stepIDs, step.ID)
		}
		events, err := stores.events.ListByStepIDs(stepIDs)
		if err != nil {
			return err
		}
		eventIDs := make([]string, 0, len(events))
		for _, event := range events {
			eventIDs = append(eventIDs, event.ID)
		}
		if err = stores.feedback.DeleteByCandidate(id); err != nil {
			return err
		}
		if err = stores.interviewers.DeleteByEvents(eventIDs); err != nil {
			return err
		}
		for _, eventID := range eventIDs {
			if err = stores.events.Delete(eventID); err != nil {
				return err
			}
		}
		if err = stores.steps.DeleteByCandidate(id); err != nil {
			return err
		}
		return stores.candidates.Delete(id)
	})
	if err != nil {
		return err
	}
	log.WithField("candidate_id", id).Info("Удален кандидат")
	return nil
}

func (i impl) InterviewerOptions(id string) (list []candidateapimodels.InterviewerOption, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	interviewers, err := i.interviewerStore.ListByCandidate(id)
	if err != nil {
		return nil, err
	}
	return InterviewerOptions(interviewers), nil
}

// InterviewerOptions подписи вида "<имя интервьюера> in <название этапа>" для выбора интервьюера.
// Формат подписи не зависит от локали.
// Путь: интервьюер - событие - этап подбора - тип этапа.
func InterviewerOptions(list []dbmodels.Interviewer) []candidateapimodels.InterviewerOption {
	result := make([]candidateapimodels.InterviewerOption, 0, len(list))
	for _, interviewer := range list {
		stepName := ""
		if interviewer.Event != nil && interviewer.Event.RecruitmentStep != nil {
			stepName = interviewer.Event.RecruitmentStep.Name()
		}
		result = append(result, candidateapimodels.InterviewerOption{
			Label: fmt.Sprintf("%s in %s", interviewer.Name(), stepName),
			ID:    interviewer.ID,
		})
	}
	return result
}

func (i impl) Schedule(id, locale string) (candidateName string, list []candidateapimodels.ScheduleItem, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, ErrNotFound
	}
	steps, err := i.stepStore.ListByCandidate(id)
	if err != nil {
		return "", nil, err
	}
	return rec.Name, ScheduleItems(steps, i.now(), i.translator, locale), nil
}

func ScheduleItems(steps []dbmodels.RecruitmentStep, now time.Time, translator i18n.Translator, locale string) []candidateapimodels.ScheduleItem {
	result := make([]candidateapimodels.ScheduleItem, 0, len(steps))
	for _, step := range steps {
		status := stepstatus.Classify(step, now)
		titles := make([]string, 0, 2)
		for _, label := range status.Labels() {
			titles = append(titles, translator.T(locale, i18n.StatusKey(string(label)), nil))
		}
		item := candidateapimodels.ScheduleItem{
			StepName: step.Name(),
			Status:   strings.Join(titles, ", "),
		}
		if step.Event != nil {
			item.StartTime = step.Event.StartTime
			item.EndTime = step.Event.EndTime
			item.Location = step.Event.Location
			for _, interviewer := range step.Event.Interviewers {
				item.Interviewers = append(item.Interviewers, interviewer.Name())
			}
		}
		result = append(result, item)
	}
	return result
}

func (i impl) ScheduleXlsx(id, locale string) (*bytes.Buffer, error) {
	candidateName, list, err := i.Schedule(id, locale)
	if err != nil {
		return nil, err
	}
	return i.xls.ExportSchedule(candidateName, list)
}

func (i impl) SchedulePdf(id, locale string) ([]byte, error) {
	candidateName, list, err := i.Schedule(id, locale)
	if err != nil {
		return nil, err
	}
	return pdfexport.GenerateSchedule(i.fontDir, candidateName, list)
}
