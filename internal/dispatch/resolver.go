package dispatch

import (
	"github.com/longwapps/leave-alert/internal/directory"
	"github.com/longwapps/leave-alert/internal/leave"
)

// Resolve maps a set of leave records and the team membership graph onto the minimal,
// duplicate-free set of per-recipient notification batches under the given exclusion policy.
//
// A recipient's batch carries at most one entry per distinct leave-taker, no matter through how
// many shared teams that leave-taker is reachable. Team members that do not resolve in the
// directory, or resolve without an email address, are silently skipped — there is simply no
// delivery address for them. Batches are returned in the order their recipients were first
// encountered and entries preserve the order of their originating records, so identical inputs
// always yield identical output.
//
// An empty result (no records, or no resolvable recipients) is a normal outcome, not a failure.
func Resolve(records []*leave.Record, index *directory.Index, referenceDate string, mode Mode) []*Batch {
	// The on-leave set only matters for the reminder policy
	onLeave := make(map[string]struct{}, len(records))
	for _, record := range records {
		onLeave[record.EmployeeID] = struct{}{}
	}

	batches := make(map[string]*Batch)
	var recipients []string

	for _, record := range records {
		for _, team := range index.TeamsOf(record.EmployeeID) {
			for _, member := range team.Members {
				if excluded(member, record.EmployeeID, onLeave, mode) {
					continue
				}
				employee, ok := index.Lookup(member)
				if !ok || employee.Email == "" {
					continue
				}

				batch, ok := batches[employee.Email]
				if !ok {
					batch = &Batch{
						Recipient:     employee.Email,
						ReferenceDate: referenceDate,
						Mode:          mode,
					}
					batches[employee.Email] = batch
					recipients = append(recipients, employee.Email)
				}
				if !batch.contains(record.EmployeeID) {
					batch.Entries = append(batch.Entries, record)
				}
			}
		}
	}

	result := make([]*Batch, 0, len(recipients))
	for _, recipient := range recipients {
		result = append(result, batches[recipient])
	}
	return result
}

// excluded applies the mode's exclusion policy to a candidate recipient
func excluded(member, leaveTaker string, onLeave map[string]struct{}, mode Mode) bool {
	if mode == ModeReminder {
		_, ok := onLeave[member]
		return ok
	}
	return member == leaveTaker
}
