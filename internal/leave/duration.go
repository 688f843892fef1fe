package leave

import (
	"fmt"
	"strconv"
	"time"
)

// Describe derives the human-facing duration label of a record.
//
// In advance mode (upcoming leave notifications) a label is always produced: a multi-day span
// takes precedence over the duration classification, explicit half-day and time-window variants
// are labelled as such and everything else is a full day.
//
// In same-day mode (reminders) only half-day and time-window variants produce a label; an
// ordinary full-day leave yields the empty string and the caller omits the duration entirely.
func (record *Record) Describe(advance bool) string {
	if advance {
		if record.IsMultiDay() {
			from := formatShortDate(record.FromDate)
			to := formatShortDate(record.ToDate)
			return strconv.FormatFloat(record.Days, 'f', -1, 64) + " day(s): " + from + " - " + to
		}
		switch record.Duration {
		case DurationHalfMorning:
			return "Half Day (Morning)"
		case DurationHalfAfternoon:
			return "Half Day (Afternoon)"
		case DurationSpecifyTime:
			return fmt.Sprintf("%s - %s", record.StartTime, record.EndTime)
		default:
			return "Full Day"
		}
	}

	switch record.Duration {
	case DurationHalfMorning:
		return "Half Day (Morning)"
	case DurationHalfAfternoon:
		return "Half Day (Afternoon)"
	case DurationSpecifyTime:
		return fmt.Sprintf("%s - %s", record.StartTime, record.EndTime)
	default:
		return ""
	}
}

// formatShortDate re-formats a 'yyyy-MM-dd' date as 'MMM dd'.
// Unparseable input is returned unchanged rather than dropped; the label stays usable either way.
func formatShortDate(date string) string {
	parsed, err := time.Parse(DateFormat, date)
	if err != nil {
		return date
	}
	return parsed.Format("Jan 02")
}
