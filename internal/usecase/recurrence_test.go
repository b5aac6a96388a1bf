package usecase

import (
	"testing"
	"time"

	"corfumania-backoffice/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandRecurrenceDaily(t *testing.T) {
	start := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	instances := expandRecurrence(start, end, nil, request.RecurrenceRule{
		Frequency: "DAILY",
		EndDate:   "2026-06-07",
	}, false)

	// June 1 through June 7 inclusive, base day included.
	require.Len(t, instances, 7)
	assert.Equal(t, start, instances[0].Start)
	assert.Equal(t, start.AddDate(0, 0, 6), instances[6].Start)

	for _, instance := range instances {
		assert.Equal(t, 3*time.Hour, instance.End.Sub(instance.Start))
	}
}

func TestExpandRecurrenceWeeklyDays(t *testing.T) {
	// Monday June 1 2026.
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	instances := expandRecurrence(start, end, nil, request.RecurrenceRule{
		Frequency: "WEEKLY",
		Days:      []int{1, 3}, // Mondays and Wednesdays
		EndDate:   "2026-06-14",
	}, false)

	// Two weeks: Jun 1, 3, 8, 10 (Jun 14 is a Sunday).
	require.Len(t, instances, 4)
	for _, instance := range instances {
		day := instance.Start.Weekday()
		assert.True(t, day == time.Monday || day == time.Wednesday, "unexpected weekday %s", day)
	}
	assert.Equal(t, start, instances[0].Start)
	assert.Equal(t, start.AddDate(0, 0, 2), instances[1].Start)
	assert.Equal(t, start.AddDate(0, 0, 7), instances[2].Start)
	assert.Equal(t, start.AddDate(0, 0, 9), instances[3].Start)
}

func TestExpandRecurrenceSkipsFirstDayOnEdit(t *testing.T) {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	instances := expandRecurrence(start, end, nil, request.RecurrenceRule{
		Frequency: "DAILY",
		EndDate:   "2026-06-04",
	}, true)

	// The edited instance keeps June 1; copies start June 2.
	require.Len(t, instances, 3)
	assert.Equal(t, start.AddDate(0, 0, 1), instances[0].Start)
}

func TestExpandRecurrenceKeepsDeadlineLead(t *testing.T) {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	deadline := start.Add(-48 * time.Hour)

	instances := expandRecurrence(start, end, &deadline, request.RecurrenceRule{
		Frequency: "DAILY",
		EndDate:   "2026-06-03",
	}, false)

	require.Len(t, instances, 3)
	for _, instance := range instances {
		require.NotNil(t, instance.Deadline)
		assert.Equal(t, 48*time.Hour, instance.Start.Sub(*instance.Deadline))
	}
}

func TestExpandRecurrenceCapsInstances(t *testing.T) {
	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	instances := expandRecurrence(start, end, nil, request.RecurrenceRule{
		Frequency: "DAILY",
		EndDate:   "2030-01-01",
	}, false)

	assert.Len(t, instances, 365)
}

func TestExpandRecurrenceBadEndDate(t *testing.T) {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	instances := expandRecurrence(start, start.Add(time.Hour), nil, request.RecurrenceRule{
		Frequency: "DAILY",
		EndDate:   "not-a-date",
	}, false)

	assert.Nil(t, instances)
}

func TestExpandRecurrenceEndBeforeStart(t *testing.T) {
	start := time.Date(2026, 6, 10, 10, 0, 0, 0, time.UTC)

	instances := expandRecurrence(start, start.Add(time.Hour), nil, request.RecurrenceRule{
		Frequency: "DAILY",
		EndDate:   "2026-06-01",
	}, false)

	assert.Empty(t, instances)
}
