package usecase

import (
	"time"

	"corfumania-backoffice/internal/dto/request"
)

// maxRecurrenceInstances caps expansion regardless of the rule's window.
const maxRecurrenceInstances = 365

type recurrenceInstance struct {
	Start    time.Time
	End      time.Time
	Deadline *time.Time
}

// expandRecurrence generates one instance per matching day from the base
// start date through the rule's end date inclusive. Each instance keeps the
// base duration and deadline lead time. On creation the base day itself is
// included; on edit-time regeneration (skipFirstDay) generation starts the
// day after, so the edited instance is not duplicated.
func expandRecurrence(start, end time.Time, deadline *time.Time, rule request.RecurrenceRule, skipFirstDay bool) []recurrenceInstance {
	until, err := time.Parse("2006-01-02", rule.EndDate)
	if err != nil {
		return nil
	}
	// End of the last day, so a date-only bound includes instances on it.
	until = time.Date(until.Year(), until.Month(), until.Day(), 23, 59, 59, 0, start.Location())

	duration := end.Sub(start)
	var deadlineLead time.Duration
	if deadline != nil {
		deadlineLead = start.Sub(*deadline)
	}

	weekdays := make(map[time.Weekday]bool)
	if rule.Frequency == "WEEKLY" {
		for _, day := range rule.Days {
			weekdays[time.Weekday(day)] = true
		}
	}

	day := start
	if skipFirstDay {
		day = day.AddDate(0, 0, 1)
	}

	var instances []recurrenceInstance
	for !day.After(until) && len(instances) < maxRecurrenceInstances {
		if len(weekdays) > 0 && !weekdays[day.Weekday()] {
			day = day.AddDate(0, 0, 1)
			continue
		}

		instance := recurrenceInstance{
			Start: day,
			End:   day.Add(duration),
		}
		if deadline != nil {
			instanceDeadline := day.Add(-deadlineLead)
			instance.Deadline = &instanceDeadline
		}
		instances = append(instances, instance)

		day = day.AddDate(0, 0, 1)
	}

	return instances
}
