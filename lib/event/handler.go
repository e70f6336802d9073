package eventhandler

import (
	"context"
	"interview-scheduler/db"
	interviewerstore "interview-scheduler/lib/event/interviewer-store"
	"interview-scheduler/lib/event/roster"
	eventstore "interview-scheduler/lib/event/store"
	"interview-scheduler/lib/i18n"
	participantstore "interview-scheduler/lib/participant/store"
	stepstore "interview-scheduler/lib/recruitment-step/store"
	"interview-scheduler/lib/smtp"
	initchecker "interview-scheduler/lib/utils/init-checker"
	"interview-scheduler/lib/utils/lock"
	eventapimodels "interview-scheduler/models/api/event"
	dbmodels "interview-scheduler/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(stepID string, data eventapimodels.EventData) (id string, err error)
	Get(id string) (item eventapimodels.EventView, err error)
	Update(id string, data eventapimodels.EventUpdate) error
	Delete(id string) error
}

var Instance Provider

var (
	ErrNotFound     = errors.New("событие не найдено")
	ErrStepNotFound = errors.New("этап подбора не найден")
	ErrStepHasEvent = errors.New("у этапа подбора уже есть событие")
)

const (
	mailDateTimeLayout = "02.01.2006 15:04 MST"
	lockWait           = 5 * time.Second
)

// txStores хранилища, работающие в рамках одной транзакции
type txStores struct {
	events       eventstore.Provider
	interviewers interviewerstore.Provider
	participants participantstore.Provider
}

func newTxStores(tx *gorm.DB) txStores {
	return txStores{
		events:       eventstore.NewInstance(tx),
		interviewers: interviewerstore.NewInstance(tx),
		participants: participantstore.NewInstance(tx),
	}
}

func NewHandler() {
	instance := impl{
		stepStore:  stepstore.NewInstance(db.DB),
		eventStore: eventstore.NewInstance(db.DB),
		inTx: func(fn func(stores txStores) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(newTxStores(tx))
			})
		},
		mailer:     smtp.Instance,
		translator: i18n.Instance,
		now:        time.Now,
	}
	initchecker.CheckInit(
		"stepStore", instance.stepStore,
		"eventStore", instance.eventStore,
		"mailer", instance.mailer,
		"translator", instance.translator,
	)
	Instance = instance
}

type impl struct {
	stepStore  stepstore.Provider
	eventStore eventstore.Provider
	inTx       func(fn func(stores txStores) error) error
	mailer     smtp.Provider
	translator i18n.Translator
	now        func() time.Time
}

func (i impl) getLogger(stepID, eventID string) *log.Entry {
	logger := log.WithField("step_id", stepID)
	if eventID != "" {
		logger = logger.WithField("event_id", eventID)
	}
	return logger
}

func (i impl) Create(stepID string, data eventapimodels.EventData) (id string, err error) {
	err = lock.WithDelay(context.Background(), "step:"+stepID, lockWait, func() error {
		id, err = i.create(stepID, data)
		return err
	})
	return id, err
}

func (i impl) create(stepID string, data eventapimodels.EventData) (id string, err error) {
	logger := i.getLogger(stepID, "")
	step, err := i.stepStore.GetByID(stepID)
	if err != nil {
		return "", err
	}
	if step == nil {
		return "", ErrStepNotFound
	}
	if step.Event != nil {
		return "", ErrStepHasEvent
	}
	rec := dbmodels.Event{
		RecruitmentStepID: stepID,
		StartTime:         data.StartTime,
		EndTime:           data.EndTime,
		Location:          data.Location,
	}
	var added []dbmodels.Interviewer
	err = i.inTx(func(stores txStores) error {
		rec.ID, err = stores.events.Create(rec)
		if err != nil {
			return err
		}
		added, err = i.applyRoster(stores, &rec, data.InterviewerSelections, nil)
		return err
	})
	if err != nil {
		return "", err
	}
	logger.
		WithField("event_id", rec.ID).
		WithField("interviewers", len(added)).
		Info("Назначено событие этапа подбора")
	rec.RecruitmentStep = step
	i.sendInvitations(rec, added)
	return rec.ID, nil
}

func (i impl) Get(id string) (item eventapimodels.EventView, err error) {
	rec, err := i.eventStore.GetByID(id)
	if err != nil {
		return eventapimodels.EventView{}, err
	}
	if rec == nil {
		return eventapimodels.EventView{}, ErrNotFound
	}
	return eventapimodels.EventConvert(*rec, i.now()), nil
}

func (i impl) Update(id string, data eventapimodels.EventUpdate) error {
	return lock.WithDelay(context.Background(), "event:"+id, lockWait, func() error {
		return i.update(id, data)
	})
}

func (i impl) update(id string, data eventapimodels.EventUpdate) error {
	rec, err := i.eventStore.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	logger := i.getLogger(rec.RecruitmentStepID, id)
	if !rec.StartTime.Equal(data.StartTime) {
		// напоминание отправляется заново для нового времени
		rec.ReminderSentAt = nil
	}
	rec.StartTime = data.StartTime
	rec.EndTime = data.EndTime
	rec.Location = data.Location
	var added []dbmodels.Interviewer
	err = i.inTx(func(stores txStores) error {
		err := stores.events.Update(*rec)
		if err != nil {
			return err
		}
		added, err = i.applyRoster(stores, rec, data.InterviewerSelections, data.InterviewerDeselections)
		return err
	})
	if err != nil {
		return err
	}
	logger.
		WithField("added", len(added)).
		WithField("removed", len(data.InterviewerDeselections)).
		Info("Событие обновлено")
	i.sendInvitations(*rec, added)
	return nil
}

func (i impl) Delete(id string) error {
	return lock.WithDelay(context.Background(), "event:"+id, lockWait, func() error {
		return i.delete(id)
	})
}

func (i impl) delete(id string) error {
	rec, err := i.eventStore.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	err = i.inTx(func(stores txStores) error {
		err := stores.interviewers.DeleteByEvents([]string{id})
		if err != nil {
			return err
		}
		return stores.events.Delete(id)
	})
	if err != nil {
		return err
	}
	i.getLogger(rec.RecruitmentStepID, id).Info("Событие удалено")
	return nil
}

// applyRoster удаляет снятых интервьюеров и сохраняет добавленных, возвращает сохраненных новых интервьюеров
func (i impl) applyRoster(stores txStores, rec *dbmodels.Event, selections, deselections []string) ([]dbmodels.Interviewer, error) {
	r := roster.New(stores.participants, stores.interviewers)
	removed, err := r.RemoveByIDs(rec, deselections)
	if err != nil {
		return nil, err
	}
	if len(removed) != 0 {
		ids := make([]string, 0, len(removed))
		for _, interviewer := range removed {
			ids = append(ids, interviewer.ID)
		}
		if err = stores.interviewers.Delete(ids); err != nil {
			return nil, err
		}
	}
	added, err := r.AddByParticipantIDs(rec, selections)
	if err != nil {
		return nil, err
	}
	for idx := range added {
		added[idx].ID, err = stores.interviewers.Create(added[idx])
		if err != nil {
			return nil, err
		}
	}
	return added, nil
}

func (i impl) sendInvitations(rec dbmodels.Event, added []dbmodels.Interviewer) {
	if len(added) == 0 {
		return
	}
	locale := i.translator.DefaultLocale()
	subject := i.translator.T(locale, i18n.MsgInvitationSubject, nil)
	for _, interviewer := range added {
		if interviewer.Participant == nil || interviewer.Participant.Email == "" {
			continue
		}
		body := i.translator.T(locale, i18n.MsgInvitationBody, MailData(rec, interviewer))
		if err := i.mailer.SendEMail(interviewer.Participant.Email, subject, body); err != nil {
			i.getLogger(rec.RecruitmentStepID, rec.ID).
				WithError(err).
				WithField("participant_id", interviewer.ParticipantID).
				Error("ошибка отправки приглашения интервьюеру")
		}
	}
}

// MailData данные шаблонов приглашения и напоминания
func MailData(rec dbmodels.Event, interviewer dbmodels.Interviewer) map[string]any {
	candidateName, stepName := "", ""
	if rec.RecruitmentStep != nil {
		stepName = rec.RecruitmentStep.Name()
		if rec.RecruitmentStep.Candidate != nil {
			candidateName = rec.RecruitmentStep.Candidate.Name
		}
	}
	return map[string]any{
		"Name":      interviewer.Name(),
		"Candidate": candidateName,
		"Step":      stepName,
		"Start":     rec.StartTime.Format(mailDateTimeLayout),
		"End":       rec.EndTime.Format(mailDateTimeLayout),
		"Location":  rec.Location,
	}
}
