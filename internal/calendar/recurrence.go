package calendar

import (
	"time"

	"github.com/google/uuid"
)

// maxGeneratedInstances bounds expansion of a single template. It is a
// backstop against misconfigured cadences, not the normal terminator; the
// window end date stops well-formed templates first.
const maxGeneratedInstances = 100

// defaultExpansionDays is the window used when a template has no end date.
const defaultExpansionDays = 365

// expandTemplate generates the concrete instances for a recurring template.
// The cursor starts at the template's own date and steps by the recurrence
// interval, so the template is never duplicated onto its own start date.
// Dates listed in the template's exceptions are skipped but stepping
// continues past them.
//
// Monthly stepping uses time.AddDate, which normalizes out-of-range days:
// a template on the 31st stepping into a 30-day month lands in the next
// month. That rollover is kept as-is rather than clamped to month end.
func expandTemplate(tmpl TimeBlock, now func() time.Time) []TimeBlock {
	start := ParseDate(tmpl.Date)
	if start.IsZero() {
		return nil
	}

	end := start.AddDate(0, 0, defaultExpansionDays)
	if tmpl.RecurrenceEndDate != "" {
		if e := ParseDate(tmpl.RecurrenceEndDate); !e.IsZero() {
			end = e
		}
	}

	interval := tmpl.RecurrenceInterval
	if interval < 1 {
		interval = 1
	}

	skip := make(map[string]bool, len(tmpl.RecurrenceExceptions))
	for _, d := range tmpl.RecurrenceExceptions {
		skip[d] = true
	}

	var instances []TimeBlock
	cursor := start
	for len(instances) < maxGeneratedInstances {
		switch tmpl.RecurrenceType {
		case RecurMonthly:
			cursor = cursor.AddDate(0, interval, 0)
		default:
			cursor = cursor.AddDate(0, 0, 7*interval)
		}
		if cursor.After(end) {
			break
		}

		date := FormatDate(cursor)
		if skip[date] {
			continue
		}

		inst := tmpl
		inst.ID = uuid.NewString()
		inst.Date = date
		inst.IsRecurring = false
		inst.RecurrenceType = ""
		inst.RecurrenceInterval = 0
		inst.RecurrenceEndDate = ""
		inst.RecurrenceExceptions = nil
		inst.OriginalEventID = tmpl.ID
		ts := now()
		inst.CreatedAt = ts
		inst.UpdatedAt = ts
		instances = append(instances, inst)
	}
	return instances
}
