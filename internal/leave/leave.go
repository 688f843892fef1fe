package leave

// DateFormat is the wire format used for all leave dates ('yyyy-MM-dd').
// Dates in this format compare correctly as plain strings, so range checks
// are performed lexicographically.
const DateFormat = "2006-01-02"

// Leave request status codes as defined by the HR portal
const (
	StatusScheduled = 2
	StatusTaken     = 3
)

// DurationType represents the closed set of duration classifications a leave record may carry
type DurationType string

const (
	DurationFullDay       DurationType = "full_day"
	DurationHalfMorning   DurationType = "half_day_morning"
	DurationHalfAfternoon DurationType = "half_day_afternoon"
	DurationSpecifyTime   DurationType = "specify_time"
)

// Record represents one interval during which an employee is marked absent
type Record struct {
	EmployeeID   string       `json:"employee_id"`
	EmployeeName string       `json:"employee_name"`
	TypeName     string       `json:"type_name"`
	FromDate     string       `json:"from_date"`
	ToDate       string       `json:"to_date"`
	Duration     DurationType `json:"duration"`
	StartTime    string       `json:"start_time,omitempty"`
	EndTime      string       `json:"end_time,omitempty"`
	Days         float64      `json:"days"`
}

// Covers returns whether the given date lies inside the record's date range (inclusive on both ends)
func (record *Record) Covers(date string) bool {
	to := record.ToDate
	if to == "" {
		to = record.FromDate
	}
	return date >= record.FromDate && date <= to
}

// StartsOn returns whether the record's leave interval begins on the given date
func (record *Record) StartsOn(date string) bool {
	return record.FromDate == date
}

// IsMultiDay returns whether the record spans more than a single day
func (record *Record) IsMultiDay() bool {
	return record.ToDate != "" && record.ToDate != record.FromDate
}

// NormalizeDurationType maps a raw duration type string received from the portal API onto the
// closed DurationType set. Unknown or empty values map to DurationFullDay.
func NormalizeDurationType(raw string) DurationType {
	switch DurationType(raw) {
	case DurationHalfMorning, DurationHalfAfternoon, DurationSpecifyTime:
		return DurationType(raw)
	default:
		return DurationFullDay
	}
}
