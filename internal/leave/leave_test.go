package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Covers(t *testing.T) {
	record := &Record{EmployeeID: "0001", FromDate: "2025-07-20", ToDate: "2025-07-25"}

	assert.True(t, record.Covers("2025-07-20"), "first day is included")
	assert.True(t, record.Covers("2025-07-23"), "inner day is included")
	assert.True(t, record.Covers("2025-07-25"), "last day is included")
	assert.False(t, record.Covers("2025-07-19"))
	assert.False(t, record.Covers("2025-07-26"))
}

func TestRecord_Covers_MissingToDate(t *testing.T) {
	record := &Record{EmployeeID: "0001", FromDate: "2025-07-20"}

	assert.True(t, record.Covers("2025-07-20"))
	assert.False(t, record.Covers("2025-07-21"))
}

func TestRecord_Describe_Advance(t *testing.T) {
	tests := []struct {
		name     string
		record   *Record
		expected string
	}{
		{
			name:     "full day",
			record:   &Record{FromDate: "2025-07-26", ToDate: "2025-07-26", Duration: DurationFullDay, Days: 1},
			expected: "Full Day",
		},
		{
			name:     "multi day",
			record:   &Record{FromDate: "2025-07-26", ToDate: "2025-07-29", Duration: DurationFullDay, Days: 4},
			expected: "4 day(s): Jul 26 - Jul 29",
		},
		{
			// The span check has to win over the duration classification
			name:     "multi day with half day classification",
			record:   &Record{FromDate: "2025-07-26", ToDate: "2025-07-28", Duration: DurationHalfMorning, Days: 2.5},
			expected: "2.5 day(s): Jul 26 - Jul 28",
		},
		{
			name:     "half day morning",
			record:   &Record{FromDate: "2025-07-26", ToDate: "2025-07-26", Duration: DurationHalfMorning, Days: 0.5},
			expected: "Half Day (Morning)",
		},
		{
			name:     "half day afternoon",
			record:   &Record{FromDate: "2025-07-26", ToDate: "2025-07-26", Duration: DurationHalfAfternoon, Days: 0.5},
			expected: "Half Day (Afternoon)",
		},
		{
			name:     "time window",
			record:   &Record{FromDate: "2025-07-26", ToDate: "2025-07-26", Duration: DurationSpecifyTime, StartTime: "13:00", EndTime: "17:00"},
			expected: "13:00 - 17:00",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.record.Describe(true))
		})
	}
}

func TestRecord_Describe_SameDay(t *testing.T) {
	fullDay := &Record{FromDate: "2025-07-26", ToDate: "2025-07-26", Duration: DurationFullDay}
	assert.Empty(t, fullDay.Describe(false), "ordinary full-day leave carries no label in same-day mode")

	morning := &Record{FromDate: "2025-07-26", ToDate: "2025-07-26", Duration: DurationHalfMorning}
	assert.Equal(t, "Half Day (Morning)", morning.Describe(false))

	window := &Record{FromDate: "2025-07-26", ToDate: "2025-07-26", Duration: DurationSpecifyTime, StartTime: "09:00", EndTime: "11:30"}
	assert.Equal(t, "09:00 - 11:30", window.Describe(false))
}

func TestNormalizeDurationType(t *testing.T) {
	assert.Equal(t, DurationHalfMorning, NormalizeDurationType("half_day_morning"))
	assert.Equal(t, DurationHalfAfternoon, NormalizeDurationType("half_day_afternoon"))
	assert.Equal(t, DurationSpecifyTime, NormalizeDurationType("specify_time"))
	assert.Equal(t, DurationFullDay, NormalizeDurationType("full_day"))
	assert.Equal(t, DurationFullDay, NormalizeDurationType(""))
	assert.Equal(t, DurationFullDay, NormalizeDurationType("something_else"))
}
