package eventhandler

import (
	"fmt"
	"interview-scheduler/lib/i18n"
	eventapimodels "interview-scheduler/models/api/event"
	dbmodels "interview-scheduler/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// memDB общее in-memory состояние фейковых хранилищ
type memDB struct {
	seq          int
	steps        map[string]*dbmodels.RecruitmentStep
	events       map[string]*dbmodels.Event
	interviewers map[string]*dbmodels.Interviewer
	participants map[string]*dbmodels.Participant
}

func newMemDB() *memDB {
	return &memDB{
		steps:        map[string]*dbmodels.RecruitmentStep{},
		events:       map[string]*dbmodels.Event{},
		interviewers: map[string]*dbmodels.Interviewer{},
		participants: map[string]*dbmodels.Participant{},
	}
}

func (m *memDB) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s%d", prefix, m.seq)
}

func (m *memDB) loadEvent(id string) *dbmodels.Event {
	rec, ok := m.events[id]
	if !ok {
		return nil
	}
	result := *rec
	result.Interviewers = nil
	for _, interviewer := range m.interviewers {
		if interviewer.EventID == id {
			item := *interviewer
			item.Participant = m.participants[item.ParticipantID]
			result.Interviewers = append(result.Interviewers, item)
		}
	}
	result.RecruitmentStep = m.steps[rec.RecruitmentStepID]
	return &result
}

type stepStoreFake struct{ m *memDB }

func (f stepStoreFake) Create(rec dbmodels.RecruitmentStep) (string, error) {
	rec.ID = f.m.nextID("s")
	f.m.steps[rec.ID] = &rec
	return rec.ID, nil
}

func (f stepStoreFake) GetByID(id string) (*dbmodels.RecruitmentStep, error) {
	rec, ok := f.m.steps[id]
	if !ok {
		return nil, nil
	}
	result := *rec
	for eventID, event := range f.m.events {
		if event.RecruitmentStepID == id {
			result.Event = f.m.loadEvent(eventID)
		}
	}
	return &result, nil
}

func (f stepStoreFake) ListByCandidate(candidateID string) ([]dbmodels.RecruitmentStep, error) {
	return nil, nil
}

func (f stepStoreFake) Delete(id string) error {
	delete(f.m.steps, id)
	return nil
}

func (f stepStoreFake) DeleteByCandidate(candidateID string) error {
	return nil
}

type eventStoreFake struct{ m *memDB }

func (f eventStoreFake) Create(rec dbmodels.Event) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}
	rec.ID = f.m.nextID("e")
	rec.Interviewers = nil
	f.m.events[rec.ID] = &rec
	return rec.ID, nil
}

func (f eventStoreFake) Update(rec dbmodels.Event) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	stored := f.m.events[rec.ID]
	stored.StartTime = rec.StartTime
	stored.EndTime = rec.EndTime
	stored.Location = rec.Location
	stored.ReminderSentAt = rec.ReminderSentAt
	return nil
}

func (f eventStoreFake) GetByID(id string) (*dbmodels.Event, error) {
	return f.m.loadEvent(id), nil
}

func (f eventStoreFake) GetByStepID(stepID string) (*dbmodels.Event, error) {
	for id, rec := range f.m.events {
		if rec.RecruitmentStepID == stepID {
			return f.m.loadEvent(id), nil
		}
	}
	return nil, nil
}

func (f eventStoreFake) ListByStepIDs(stepIDs []string) ([]dbmodels.Event, error) {
	return nil, nil
}

func (f eventStoreFake) ListForReminder(from, to time.Time) ([]dbmodels.Event, error) {
	return nil, nil
}

func (f eventStoreFake) SetReminderSent(id string, sentAt time.Time) error {
	f.m.events[id].ReminderSentAt = &sentAt
	return nil
}

func (f eventStoreFake) Delete(id string) error {
	delete(f.m.events, id)
	return nil
}

type interviewerStoreFake struct{ m *memDB }

func (f interviewerStoreFake) Create(rec dbmodels.Interviewer) (string, error) {
	rec.ID = f.m.nextID("i")
	rec.Participant = nil
	f.m.interviewers[rec.ID] = &rec
	return rec.ID, nil
}

func (f interviewerStoreFake) FindAllByID(ids []string) ([]dbmodels.Interviewer, error) {
	var result []dbmodels.Interviewer
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		rec, ok := f.m.interviewers[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, *rec)
	}
	return result, nil
}

func (f interviewerStoreFake) ListByCandidate(candidateID string) ([]dbmodels.Interviewer, error) {
	return nil, nil
}

func (f interviewerStoreFake) Delete(ids []string) error {
	for _, id := range ids {
		delete(f.m.interviewers, id)
	}
	return nil
}

func (f interviewerStoreFake) DeleteByEvents(eventIDs []string) error {
	for _, eventID := range eventIDs {
		for id, rec := range f.m.interviewers {
			if rec.EventID == eventID {
				delete(f.m.interviewers, id)
			}
		}
	}
	return nil
}

type participantStoreFake struct{ m *memDB }

func (f participantStoreFake) Create(rec dbmodels.Participant) (string, error) {
	rec.ID = f.m.nextID("p")
	f.m.participants[rec.ID] = &rec
	return rec.ID, nil
}

func (f participantStoreFake) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f participantStoreFake) GetByID(id string) (*dbmodels.Participant, error) {
	return f.m.participants[id], nil
}

func (f participantStoreFake) List(name string, page, limit int) ([]dbmodels.Participant, int64, error) {
	return nil, 0, nil
}

func (f participantStoreFake) Delete(id string) error {
	return nil
}

func (f participantStoreFake) FindAllByID(ids []string) ([]dbmodels.Participant, error) {
	var result []dbmodels.Participant
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		rec, ok := f.m.participants[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, *rec)
	}
	return result, nil
}

type sentMail struct {
	to, subject, message string
}

type mailerFake struct {
	sent []sentMail
}

func (f *mailerFake) SendEMail(to, subject, message string) error {
	f.sent = append(f.sent, sentMail{to: to, subject: subject, message: message})
	return nil
}

func newTestHandler(m *memDB, mailer *mailerFake, now time.Time) impl {
	stores := txStores{
		events:       eventStoreFake{m: m},
		interviewers: interviewerStoreFake{m: m},
		participants: participantStoreFake{m: m},
	}
	return impl{
		stepStore:  stepStoreFake{m: m},
		eventStore: eventStoreFake{m: m},
		inTx: func(fn func(stores txStores) error) error {
			return fn(stores)
		},
		mailer:     mailer,
		translator: i18n.NewTranslator("en"),
		now:        func() time.Time { return now },
	}
}

func TestEventHandler(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	setup := func() (*memDB, *mailerFake, impl, string, string, string) {
		m := newMemDB()
		mailer := &mailerFake{}
		h := newTestHandler(m, mailer, now)
		candidate := &dbmodels.Candidate{BaseModel: dbmodels.BaseModel{ID: "c1"}, Name: "John"}
		stepID, _ := stepStoreFake{m: m}.Create(dbmodels.RecruitmentStep{
			CandidateID:         candidate.ID,
			Candidate:           candidate,
			RecruitmentStepType: &dbmodels.RecruitmentStepType{Name: "pairing"},
		})
		p1, _ := participantStoreFake{m: m}.Create(dbmodels.Participant{Name: "Alice", Email: "alice@example.com"})
		p2, _ := participantStoreFake{m: m}.Create(dbmodels.Participant{Name: "Bob"})
		return m, mailer, h, stepID, p1, p2
	}

	eventData := func(selections ...string) eventapimodels.EventData {
		return eventapimodels.EventData{
			StartTime:             now.Add(time.Hour),
			EndTime:               now.Add(2 * time.Hour),
			Location:              "room 1",
			InterviewerSelections: selections,
		}
	}

	t.Run(`create event with interviewers`, func(t *testing.T) {
		m, mailer, h, stepID, p1, p2 := setup()
		id, err := h.Create(stepID, eventData(p1, p2, "unknown"))
		require.NoError(t, err)

		view, err := h.Get(id)
		require.NoError(t, err)
		require.True(t, view.InFuture)
		require.Len(t, view.Interviewers, 2)
		require.Len(t, m.interviewers, 2)

		require.Len(t, mailer.sent, 1)
		require.Equal(t, "alice@example.com", mailer.sent[0].to)
		require.Equal(t, "Interview invitation", mailer.sent[0].subject)
		require.Contains(t, mailer.sent[0].message, "John (pairing)")
	})

	t.Run(`second event for step is rejected`, func(t *testing.T) {
		_, _, h, stepID, p1, _ := setup()
		_, err := h.Create(stepID, eventData(p1))
		require.NoError(t, err)
		_, err = h.Create(stepID, eventData())
		require.ErrorIs(t, err, ErrStepHasEvent)
	})

	t.Run(`unknown step`, func(t *testing.T) {
		_, _, h, _, _, _ := setup()
		_, err := h.Create("missing", eventData())
		require.ErrorIs(t, err, ErrStepNotFound)
	})

	t.Run(`event without time is not saved`, func(t *testing.T) {
		m, _, h, stepID, _, _ := setup()
		_, err := h.Create(stepID, eventapimodels.EventData{})
		require.ErrorIs(t, err, dbmodels.ErrEventTimeRequired)
		require.Empty(t, m.events)
	})

	t.Run(`update adds and removes interviewers`, func(t *testing.T) {
		m, mailer, h, stepID, p1, p2 := setup()
		id, err := h.Create(stepID, eventData(p1))
		require.NoError(t, err)
		view, err := h.Get(id)
		require.NoError(t, err)
		require.Len(t, view.Interviewers, 1)
		removedID := view.Interviewers[0].ID

		update := eventapimodels.EventUpdate{
			EventData:               eventData(p2, p2),
			InterviewerDeselections: []string{removedID},
		}
		require.NoError(t, h.Update(id, update))

		view, err = h.Get(id)
		require.NoError(t, err)
		require.Len(t, view.Interviewers, 1)
		require.Equal(t, p2, view.Interviewers[0].ParticipantID)
		_, exists := m.interviewers[removedID]
		require.False(t, exists)
		// Bob без почты, приглашение только Alice при создании
		require.Len(t, mailer.sent, 1)
	})

	t.Run(`repeated selection adds another interviewer`, func(t *testing.T) {
		_, _, h, stepID, _, p2 := setup()
		id, err := h.Create(stepID, eventData(p2))
		require.NoError(t, err)
		require.NoError(t, h.Update(id, eventapimodels.EventUpdate{EventData: eventData(p2)}))

		view, err := h.Get(id)
		require.NoError(t, err)
		require.Len(t, view.Interviewers, 2)
		for _, interviewer := range view.Interviewers {
			require.Equal(t, p2, interviewer.ParticipantID)
		}
		require.NotEqual(t, view.Interviewers[0].ID, view.Interviewers[1].ID)
	})

	t.Run(`changed start time resets reminder`, func(t *testing.T) {
		m, _, h, stepID, _, _ := setup()
		id, err := h.Create(stepID, eventData())
		require.NoError(t, err)
		sentAt := now
		m.events[id].ReminderSentAt = &sentAt

		data := eventData()
		data.StartTime = now.Add(3 * time.Hour)
		data.EndTime = now.Add(4 * time.Hour)
		require.NoError(t, h.Update(id, eventapimodels.EventUpdate{EventData: data}))
		require.Nil(t, m.events[id].ReminderSentAt)
	})

	t.Run(`delete cascades interviewers`, func(t *testing.T) {
		m, _, h, stepID, p1, p2 := setup()
		id, err := h.Create(stepID, eventData(p1, p2))
		require.NoError(t, err)
		require.NoError(t, h.Delete(id))
		require.Empty(t, m.events)
		require.Empty(t, m.interviewers)

		require.ErrorIs(t, h.Delete(id), ErrNotFound)
		_, err = h.Get(id)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMailData(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := dbmodels.Event{
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Location:  "room 1",
	}
	data := MailData(rec, dbmodels.Interviewer{Participant: &dbmodels.Participant{Name: "Alice"}})
	require.Equal(t, "Alice", data["Name"])
	require.Equal(t, "", data["Candidate"])
	require.Equal(t, "01.03.2024 12:00 UTC", data["Start"])
}
