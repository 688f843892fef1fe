package dispatch

import (
	"context"

	"github.com/google/uuid"
)

// Entry represents one delivered notification in the dispatch ledger: recipient X was told
// about leave-taker Y for reference date Z under a specific mode
type Entry struct {
	ID         uuid.UUID `json:"id"`
	Key        string    `json:"key"`
	Recipient  string    `json:"recipient"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"`
	Mode       string    `json:"mode"`
	SentAt     int64     `json:"sent_at"`
}

// EntryKey builds the unique ledger key of a (mode, date, recipient, leave-taker) tuple
func EntryKey(mode Mode, date, recipient, employeeID string) string {
	return string(mode) + "|" + date + "|" + recipient + "|" + employeeID
}

// NewEntry creates a ledger entry for a delivered notification
func NewEntry(mode Mode, date, recipient, employeeID string, sentAt int64) *Entry {
	return &Entry{
		ID:         uuid.New(),
		Key:        EntryKey(mode, date, recipient, employeeID),
		Recipient:  recipient,
		EmployeeID: employeeID,
		Date:       date,
		Mode:       string(mode),
		SentAt:     sentAt,
	}
}

// Repository defines the dispatch ledger repository API
type Repository interface {
	// GetByKey retrieves a ledger entry by its key.
	// Returns nil if no entry with that key exists.
	GetByKey(ctx context.Context, key string) (*Entry, error)

	// Create creates a new ledger entry
	Create(ctx context.Context, entry *Entry) error

	// DeleteOlderThan deletes all ledger entries sent before the given UNIX timestamp and
	// returns the amount of deleted entries
	DeleteOlderThan(ctx context.Context, threshold int64) (int, error)
}
