package reminderworker

import (
	"context"
	"interview-scheduler/lib/i18n"
	baseworker "interview-scheduler/lib/utils/base-worker"
	dbmodels "interview-scheduler/models/db"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type eventStoreFake struct {
	events   []dbmodels.Event
	from, to time.Time
	sent     map[string]time.Time
}

func (f *eventStoreFake) Create(rec dbmodels.Event) (string, error) {
	return "", nil
}

func (f *eventStoreFake) Update(rec dbmodels.Event) error {
	return nil
}

func (f *eventStoreFake) GetByID(id string) (*dbmodels.Event, error) {
	return nil, nil
}

func (f *eventStoreFake) GetByStepID(stepID string) (*dbmodels.Event, error) {
	return nil, nil
}

func (f *eventStoreFake) ListByStepIDs(stepIDs []string) ([]dbmodels.Event, error) {
	return nil, nil
}

func (f *eventStoreFake) ListForReminder(from, to time.Time) ([]dbmodels.Event, error) {
	f.from, f.to = from, to
	return f.events, nil
}

func (f *eventStoreFake) SetReminderSent(id string, sentAt time.Time) error {
	f.sent[id] = sentAt
	return nil
}

func (f *eventStoreFake) Delete(id string) error {
	return nil
}

type mail struct {
	to, subject, body string
}

type mailerFake struct {
	failFor string
	sent    []mail
}

func (f *mailerFake) SendEMail(to, subject, message string) error {
	if to == f.failFor {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, mail{to: to, subject: subject, body: message})
	return nil
}

func eventWith(id string, start time.Time, emails ...string) dbmodels.Event {
	rec := dbmodels.Event{
		BaseModel: dbmodels.BaseModel{ID: id},
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Location:  "room 1",
		RecruitmentStep: &dbmodels.RecruitmentStep{
			Candidate:           &dbmodels.Candidate{Name: "John"},
			RecruitmentStepType: &dbmodels.RecruitmentStepType{Name: "pairing"},
		},
	}
	for _, email := range emails {
		rec.Interviewers = append(rec.Interviewers, dbmodels.Interviewer{
			Participant: &dbmodels.Participant{Name: "Alice", Email: email},
		})
	}
	return rec
}

func TestHandle(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	newWorker := func(store *eventStoreFake, mailer *mailerFake) impl {
		return impl{
			BaseImpl:   *baseworker.NewInstance("test", 0, time.Minute),
			eventStore: store,
			mailer:     mailer,
			translator: i18n.NewTranslator("en"),
			lead:       time.Hour,
			now:        func() time.Time { return now },
		}
	}

	t.Run(`reminds interviewers and marks event`, func(t *testing.T) {
		store := &eventStoreFake{
			events: []dbmodels.Event{eventWith("e1", now.Add(30*time.Minute), "alice@example.com")},
			sent:   map[string]time.Time{},
		}
		mailer := &mailerFake{}
		newWorker(store, mailer).handle(context.Background())

		require.Equal(t, now, store.from)
		require.Equal(t, now.Add(time.Hour), store.to)
		require.Len(t, mailer.sent, 1)
		require.Equal(t, "alice@example.com", mailer.sent[0].to)
		require.Contains(t, mailer.sent[0].body, "John")
		require.Contains(t, mailer.sent[0].body, "pairing")
		require.Equal(t, now, store.sent["e1"])
	})
	t.Run(`event without interviewers is marked`, func(t *testing.T) {
		store := &eventStoreFake{
			events: []dbmodels.Event{eventWith("e1", now.Add(time.Minute))},
			sent:   map[string]time.Time{},
		}
		mailer := &mailerFake{}
		newWorker(store, mailer).handle(context.Background())

		require.Empty(t, mailer.sent)
		require.Contains(t, store.sent, "e1")
	})
	t.Run(`all deliveries failed, retried next run`, func(t *testing.T) {
		store := &eventStoreFake{
			events: []dbmodels.Event{eventWith("e1", now.Add(time.Minute), "down@example.com")},
			sent:   map[string]time.Time{},
		}
		mailer := &mailerFake{failFor: "down@example.com"}
		newWorker(store, mailer).handle(context.Background())

		require.NotContains(t, store.sent, "e1")
	})
	t.Run(`cancelled context stops the run`, func(t *testing.T) {
		store := &eventStoreFake{
			events: []dbmodels.Event{eventWith("e1", now.Add(time.Minute), "alice@example.com")},
			sent:   map[string]time.Time{},
		}
		mailer := &mailerFake{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		newWorker(store, mailer).handle(ctx)

		require.Empty(t, mailer.sent)
		require.Empty(t, store.sent)
	})
}
