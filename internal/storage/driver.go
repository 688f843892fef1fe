package storage

import (
	"context"

	"github.com/longwapps/leave-alert/internal/dispatch"
)

// Driver represents a storage driver for the dispatch ledger
type Driver interface {
	// Initialize initializes the storage driver (i.e. opens a database connection)
	Initialize(ctx context.Context) error

	// Dispatches provides a dispatch ledger repository implementation
	Dispatches() dispatch.Repository

	// Close closes the storage driver (i.e. closes a database connection)
	Close()
}
