package alert

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/longwapps/leave-alert/internal/config"
	"github.com/longwapps/leave-alert/internal/directory"
	"github.com/longwapps/leave-alert/internal/dispatch"
	"github.com/longwapps/leave-alert/internal/leave"
	"github.com/longwapps/leave-alert/internal/notify"
	"github.com/longwapps/leave-alert/internal/portal"
	"github.com/longwapps/leave-alert/internal/storage"
)

// ErrMissingCredentials is returned when a run is started without configured portal credentials
var ErrMissingCredentials = errors.New("no portal credentials are configured")

// Service represents the leave alert pipeline: authenticate, query, resolve, deliver.
// Every run establishes its own throwaway session and recomputes everything from the portal
// and the roster; no state is shared between runs except the optional dispatch ledger.
type Service struct {
	Config   *config.Config
	Index    *directory.Index
	Portal   *portal.Client
	Storage  storage.Driver
	Notifier notify.Notifier
}

// SendReminder sends the same-day reminder for all leaves covering the given date
func (service *Service) SendReminder(ctx context.Context, date string) error {
	log.Info().Str("date", date).Msg("starting leave reminder run...")
	return service.run(ctx, date, dispatch.ModeReminder, []int{leave.StatusScheduled, leave.StatusTaken}, func(record *leave.Record) bool {
		return record.Covers(date)
	})
}

// SendNotification sends the advance notification for all leaves starting on the given date.
// Only leaves that actually start on the date are included to avoid notifying about the same
// leave on every day it spans.
func (service *Service) SendNotification(ctx context.Context, date string, statuses []int) error {
	if len(statuses) == 0 {
		statuses = []int{leave.StatusScheduled}
	}
	log.Info().Str("date", date).Msg("starting leave notification run...")
	return service.run(ctx, date, dispatch.ModeNotification, statuses, func(record *leave.Record) bool {
		return record.StartsOn(date)
	})
}

// run executes the shared pipeline for one dispatch run.
// Configuration, authentication and query failures abort the run; delivery failures are
// isolated per recipient and never prevent the remaining deliveries.
func (service *Service) run(ctx context.Context, date string, mode dispatch.Mode, statuses []int, keep func(*leave.Record) bool) error {
	if !service.Config.HasCredentials() {
		return ErrMissingCredentials
	}
	if errs := service.Index.Validate(); len(errs) > 0 {
		for _, err := range errs {
			log.Error().Err(err).Msg("roster validation failed")
		}
		return fmt.Errorf("the roster references %d unresolved team member(s)", len(errs))
	}

	// Establish a throwaway session and fetch the leave data
	session, err := service.Portal.Authenticate(ctx, service.Config.HRMUsername, service.Config.HRMPassword)
	if err != nil {
		return err
	}
	fetched, err := service.Portal.FetchLeaves(ctx, session, portal.LeaveQuery{
		FromDate: date,
		ToDate:   date,
		Statuses: statuses,
	})
	if err != nil {
		return err
	}

	// The endpoint's range filter is not exact at the boundaries, so the target-day filter is
	// applied here. Manual roster leaves pass through the same filter.
	records := make([]*leave.Record, 0, len(fetched))
	for _, record := range fetched {
		if keep(record) {
			records = append(records, record)
		}
	}
	for _, record := range service.Index.ManualRecords() {
		if keep(record) {
			records = append(records, record)
		}
	}
	if len(records) == 0 {
		log.Info().Str("date", date).Str("mode", string(mode)).Msg("no matching leave records; nothing to send")
		return nil
	}

	// Roster names take precedence over the portal's name fields
	for _, record := range records {
		if employee, ok := service.Index.Lookup(record.EmployeeID); ok {
			record.EmployeeName = employee.Name
		}
	}

	batches := dispatch.Resolve(records, service.Index, date, mode)
	if service.Config.SuppressResend {
		batches, err = service.suppressDelivered(ctx, batches)
		if err != nil {
			return err
		}
	}
	if len(batches) == 0 {
		log.Info().Str("date", date).Str("mode", string(mode)).Msg("no resolvable recipients; nothing to send")
		return nil
	}

	// Deliver. A failed recipient never aborts the remaining ones.
	sent, failed := 0, 0
	for _, batch := range batches {
		message, err := notify.Render(batch)
		if err != nil {
			log.Error().Err(err).Str("recipient", batch.Recipient).Msg("could not render the notification")
			failed++
			continue
		}
		if err := service.Notifier.Send(message); err != nil {
			log.Error().Err(err).Str("recipient", batch.Recipient).Msg("could not deliver the notification")
			failed++
			continue
		}
		sent++
		log.Info().Str("recipient", batch.Recipient).Int("leaves", len(batch.Entries)).Msg("notification delivered")
		service.recordDelivery(ctx, batch)
	}

	log.Info().
		Str("date", date).
		Str("mode", string(mode)).
		Int("records", len(records)).
		Int("sent", sent).
		Int("failed", failed).
		Msg("dispatch run finished")
	return nil
}

// suppressDelivered drops every batch entry whose (mode, date, recipient, leave-taker) tuple is
// already present in the dispatch ledger and skips batches that empty out entirely
func (service *Service) suppressDelivered(ctx context.Context, batches []*dispatch.Batch) ([]*dispatch.Batch, error) {
	repo := service.Storage.Dispatches()
	result := make([]*dispatch.Batch, 0, len(batches))
	for _, batch := range batches {
		remaining := make([]*leave.Record, 0, len(batch.Entries))
		for _, record := range batch.Entries {
			entry, err := repo.GetByKey(ctx, dispatch.EntryKey(batch.Mode, batch.ReferenceDate, batch.Recipient, record.EmployeeID))
			if err != nil {
				return nil, err
			}
			if entry == nil {
				remaining = append(remaining, record)
			}
		}
		if len(remaining) == 0 {
			log.Debug().Str("recipient", batch.Recipient).Msg("all entries already delivered; batch skipped")
			continue
		}
		batch.Entries = remaining
		result = append(result, batch)
	}
	return result, nil
}

// recordDelivery writes one ledger entry per delivered leave line.
// Ledger faults are reported but never fail a run whose mail already went out.
func (service *Service) recordDelivery(ctx context.Context, batch *dispatch.Batch) {
	repo := service.Storage.Dispatches()
	now := time.Now().Unix()
	for _, record := range batch.Entries {
		entry := dispatch.NewEntry(batch.Mode, batch.ReferenceDate, batch.Recipient, record.EmployeeID, now)
		if err := repo.Create(ctx, entry); err != nil {
			log.Error().Err(err).Str("key", entry.Key).Msg("could not record the delivery in the dispatch ledger")
		}
	}
}

// CleanupLedger deletes ledger entries older than the configured retention window
func (service *Service) CleanupLedger(ctx context.Context) (int, error) {
	threshold := time.Now().Add(-service.Config.LedgerRetention).Unix()
	return service.Storage.Dispatches().DeleteOlderThan(ctx, threshold)
}
