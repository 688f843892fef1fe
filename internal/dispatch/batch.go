package dispatch

import "github.com/longwapps/leave-alert/internal/leave"

// Batch represents the per-recipient, deduplicated collection of leave entries to render into
// one message. It is produced once per dispatch run and consumed immediately by the notifier.
type Batch struct {
	Recipient     string
	Entries       []*leave.Record
	ReferenceDate string
	Mode          Mode
}

// contains returns whether the batch already carries an entry for the given leave-taker
func (batch *Batch) contains(employeeID string) bool {
	for _, entry := range batch.Entries {
		if entry.EmployeeID == employeeID {
			return true
		}
	}
	return false
}
