package memory

import (
	"context"

	"github.com/hashicorp/go-memdb"

	"github.com/longwapps/leave-alert/internal/dispatch"
	"github.com/longwapps/leave-alert/internal/storage"
)

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		"dispatches": {
			Name: "dispatches",
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:         "id",
					Unique:       true,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "Key"},
				},
				"recipient": {
					Name:         "recipient",
					Unique:       false,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "Recipient"},
				},
				"sentAt": {
					Name:         "sentAt",
					Unique:       false,
					AllowMissing: false,
					Indexer:      &memdb.IntFieldIndex{Field: "SentAt"},
				},
			},
		},
	},
}

// Driver represents the in-memory storage driver implementation built using hashicorp/go-memdb.
// It backs the dispatch ledger when no database is configured; its entries only survive the
// process, which makes one-shot runs behave as if no ledger existed at all.
type Driver struct {
	db         *memdb.MemDB
	dispatches *DispatchRepository
}

var _ storage.Driver = (*Driver)(nil)

// New creates a new empty in-memory storage driver
func New() *Driver {
	return &Driver{}
}

// Initialize creates the in-memory database and initializes the repository implementations
func (driver *Driver) Initialize(_ context.Context) error {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return err
	}
	driver.db = db
	driver.dispatches = &DispatchRepository{db: db}
	return nil
}

// Dispatches provides the in-memory dispatch ledger repository implementation
func (driver *Driver) Dispatches() dispatch.Repository {
	return driver.dispatches
}

// Close discards the repository implementations and the in-memory database
func (driver *Driver) Close() {
	driver.dispatches = nil
	driver.db = nil
}

// DispatchRepository implements the dispatch.Repository interface using go-memdb
type DispatchRepository struct {
	db *memdb.MemDB
}

var _ dispatch.Repository = (*DispatchRepository)(nil)

// GetByKey retrieves a ledger entry by its key
func (repo *DispatchRepository) GetByKey(_ context.Context, key string) (*dispatch.Entry, error) {
	txn := repo.db.Txn(false)
	obj, err := txn.First("dispatches", "id", key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return obj.(*dispatch.Entry), nil
}

// Create creates a new ledger entry
func (repo *DispatchRepository) Create(_ context.Context, entry *dispatch.Entry) error {
	txn := repo.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert("dispatches", entry); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// DeleteOlderThan deletes all ledger entries sent before the given UNIX timestamp
func (repo *DispatchRepository) DeleteOlderThan(_ context.Context, threshold int64) (int, error) {
	txn := repo.db.Txn(true)
	defer txn.Abort()

	it, err := txn.LowerBound("dispatches", "sentAt", int64(0))
	if err != nil {
		return 0, err
	}

	deleted := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		entry := obj.(*dispatch.Entry)
		if entry.SentAt >= threshold {
			break
		}
		if err := txn.Delete("dispatches", entry); err != nil {
			return 0, err
		}
		deleted++
	}

	txn.Commit()
	return deleted, nil
}
