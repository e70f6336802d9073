package reminderworker

import (
	"context"
	"interview-scheduler/db"
	eventhandler "interview-scheduler/lib/event"
	eventstore "interview-scheduler/lib/event/store"
	"interview-scheduler/lib/i18n"
	"interview-scheduler/lib/smtp"
	baseworker "interview-scheduler/lib/utils/base-worker"
	"interview-scheduler/lib/utils/helpers"
	initchecker "interview-scheduler/lib/utils/init-checker"
	dbmodels "interview-scheduler/models/db"
	"time"
)

func StartWorker(ctx context.Context, period, lead time.Duration) {
	i := &impl{
		BaseImpl:   *baseworker.NewInstance("ReminderWorker", 30*time.Second, period),
		eventStore: eventstore.NewInstance(db.DB),
		mailer:     smtp.Instance,
		translator: i18n.Instance,
		lead:       lead,
		now:        time.Now,
	}
	initchecker.CheckInit(
		"eventStore", i.eventStore,
		"mailer", i.mailer,
		"translator", i.translator,
	)
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	eventStore eventstore.Provider
	mailer     smtp.Provider
	translator i18n.Translator
	lead       time.Duration
	now        func() time.Time
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	now := i.now()
	list, err := i.eventStore.ListForReminder(now, now.Add(i.lead))
	if err != nil {
		logger.WithError(err).Error("Ошибка получения списка событий для напоминания")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		if !i.remind(rec) {
			continue
		}
		err = i.eventStore.SetReminderSent(rec.ID, now)
		if err != nil {
			logger.
				WithError(err).
				WithField("event_id", rec.ID).
				Error("Ошибка сохранения признака отправки напоминания")
		}
	}
}

// remind рассылает напоминание интервьюерам события, false если ни одно письмо не ушло
func (i impl) remind(rec dbmodels.Event) bool {
	logger := i.GetLogger().WithField("event_id", rec.ID)
	locale := i.translator.DefaultLocale()
	subject := i.translator.T(locale, i18n.MsgReminderSubject, nil)
	recipients, sent := 0, 0
	for _, interviewer := range rec.Interviewers {
		if interviewer.Participant == nil || interviewer.Participant.Email == "" {
			continue
		}
		recipients++
		body := i.translator.T(locale, i18n.MsgReminderBody, eventhandler.MailData(rec, interviewer))
		if err := i.mailer.SendEMail(interviewer.Participant.Email, subject, body); err != nil {
			logger.
				WithError(err).
				WithField("participant_id", interviewer.ParticipantID).
				Error("Ошибка отправки напоминания интервьюеру")
			continue
		}
		sent++
	}
	return recipients == 0 || sent > 0
}
