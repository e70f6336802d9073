package stepstatus

import (
	"interview-scheduler/models"
	dbmodels "interview-scheduler/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func stepWithEvent(start time.Time) dbmodels.RecruitmentStep {
	return dbmodels.RecruitmentStep{
		RecruitmentStepType: &dbmodels.RecruitmentStepType{Name: "pairing"},
		Event: &dbmodels.Event{
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		},
	}
}

func TestClassify(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run(`step without event is pending only`, func(t *testing.T) {
		status := Classify(dbmodels.RecruitmentStep{}, now)
		require.True(t, status.Pending())
		require.False(t, status.Scheduled())
		require.False(t, status.Upcoming())
		require.False(t, status.Completed())
		require.Equal(t, []models.StepStatus{models.StepStatusPending}, status.Labels())
	})

	t.Run(`step with past event is completed and scheduled`, func(t *testing.T) {
		status := Classify(stepWithEvent(now.Add(-time.Hour)), now)
		require.True(t, status.Completed())
		require.True(t, status.Scheduled())
		require.False(t, status.Upcoming())
		require.False(t, status.Pending())
		require.Equal(t, []models.StepStatus{models.StepStatusScheduled, models.StepStatusCompleted}, status.Labels())
	})

	t.Run(`step with future event is upcoming and scheduled`, func(t *testing.T) {
		status := Classify(stepWithEvent(now.Add(time.Hour)), now)
		require.True(t, status.Upcoming())
		require.True(t, status.Scheduled())
		require.False(t, status.Completed())
		require.Equal(t, []models.StepStatus{models.StepStatusScheduled, models.StepStatusUpcoming}, status.Labels())
	})

	t.Run(`event starting exactly now is upcoming`, func(t *testing.T) {
		status := Classify(stepWithEvent(now), now)
		require.True(t, status.Upcoming())
		require.False(t, status.Completed())
	})

	// Отдельная фиксация спорного случая: этап с будущим событием не считается pending,
	// pending означает только отсутствие события.
	t.Run(`step with future event is not pending`, func(t *testing.T) {
		status := Classify(stepWithEvent(now.Add(time.Minute)), now)
		require.False(t, status.Pending())
		require.False(t, status.Is(models.StepStatusPending))
	})

	t.Run(`unknown status is false`, func(t *testing.T) {
		require.False(t, Status{HasEvent: true}.Is(models.StepStatus("archived")))
	})
}

func TestScenario(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	candidate := dbmodels.Candidate{Name: "John"}
	stepType := dbmodels.RecruitmentStepType{Name: "pairing"}
	step := dbmodels.RecruitmentStep{
		Candidate:           &candidate,
		RecruitmentStepType: &stepType,
	}
	require.True(t, Classify(step, now).Pending())
	require.Equal(t, "pairing", step.Name())

	step.Event = &dbmodels.Event{
		StartTime: now.Add(time.Hour),
		EndTime:   now.Add(2 * time.Hour),
	}
	status := Classify(step, now)
	require.True(t, status.Upcoming())
	require.True(t, status.Scheduled())
	require.False(t, status.Completed())
}

func TestIs(t *testing.T) {
	status := Status{HasEvent: true, IsFuture: true}
	require.True(t, status.Is(models.StepStatusScheduled))
	require.True(t, status.Is(models.StepStatusUpcoming))
	require.False(t, status.Is(models.StepStatusPending))
	require.False(t, status.Is(models.StepStatus("archived")))
}
