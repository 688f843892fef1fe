package dispatch

// Mode represents the exclusion policy applied while resolving the audience of a set of
// leave records
type Mode string

const (
	// ModeReminder is the same-day alert: nobody who is themselves on leave on the reference
	// date receives anything, regardless of whose leave it is.
	ModeReminder Mode = "reminder"

	// ModeNotification is the advance alert: only the leave-taker is excluded, co-leavers in
	// the same team still notify each other.
	ModeNotification Mode = "notification"
)
