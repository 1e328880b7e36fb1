package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/budgetd-dev/budgetd/internal/accounts"
	"github.com/budgetd-dev/budgetd/internal/config"
	"github.com/budgetd-dev/budgetd/internal/importer"
	"github.com/budgetd-dev/budgetd/internal/logger"
	"github.com/budgetd-dev/budgetd/internal/model"
	"github.com/budgetd-dev/budgetd/internal/store"
)

// ErrNoFile marks a run invoked without an uploaded file.
var ErrNoFile = errors.New("no file provided")

// detectHeadSize bounds how much of the file the format sniffer reads.
const detectHeadSize = 512

// Service runs bank statement ingestions. Runs are serialized behind a
// single lock: row N may depend on an account provisioned by row N-1,
// and two concurrent runs could otherwise double-provision the same new
// payee.
type Service struct {
	mu       sync.Mutex
	store    *store.Store
	registry *importer.Registry
	ingest   config.IngestConfig
	cfg      *config.Config
}

// New creates an ingestion Service.
func New(st *store.Store, registry *importer.Registry, cfg *config.Config) *Service {
	return &Service{
		store:    st,
		registry: registry,
		ingest:   cfg.Ingest,
		cfg:      cfg,
	}
}

// Summary reports one completed ingestion run.
type Summary struct {
	RunID           string
	File            string
	Institution     string
	RowsWritten     int
	RowsSkipped     int
	AccountsCreated int
}

// Run ingests one uploaded statement file. path is the saved upload on
// disk; originalName is the client-supplied filename, used as a format
// hint. Rows are processed strictly in file order. The whole batch runs
// in one database transaction, so a failure leaves no partial import.
func (s *Service) Run(ctx context.Context, path, originalName string) (*Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ingest.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.ingest.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	runID := uuid.NewString()
	log := logger.FromContext(ctx).With().
		Str("run_id", runID).
		Str("file", originalName).
		Logger()

	if path == "" {
		return nil, ErrNoFile
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening upload: %w", err)
	}
	defer f.Close()

	head := make([]byte, detectHeadSize)
	n, err := f.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	format, err := importer.Detect(originalName, head[:n])
	if err != nil {
		return nil, err
	}
	parser := s.registry.Get(format)
	if parser == nil {
		return nil, fmt.Errorf("%w: no parser for %q", importer.ErrUnknownFormat, format)
	}
	inst, ok := s.cfg.InstitutionForFormat(string(format))
	if !ok {
		return nil, fmt.Errorf("no institution configured for format %q", format)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding upload: %w", err)
	}
	res, err := parser.Parse(f)
	if err != nil {
		s.record(ctx, runID, originalName, inst.Name, nil, err)
		return nil, err
	}

	if len(res.RowErrors) > 0 {
		if s.ingest.OnRowError == config.RowErrorAbort {
			err := res.RowErrors[0]
			s.record(ctx, runID, originalName, inst.Name, nil, err)
			return nil, err
		}
		for _, re := range res.RowErrors {
			log.Warn().Int("line", re.Line).Strs("fields", re.Fields).
				Err(re.Err).Msg("skipping row")
		}
	}

	summary := &Summary{
		RunID:       runID,
		File:        path,
		Institution: inst.Name,
		RowsSkipped: res.Skipped + len(res.RowErrors),
	}

	err = s.store.Transaction(ctx, func(tx *store.Store) error {
		accts, err := tx.ListAccounts(ctx)
		if err != nil {
			return err
		}
		dir := accounts.NewDirectory(tx, accts)

		for _, t := range res.Transactions {
			acct, created, err := dir.Resolve(ctx, t.Description, t.Classification)
			if err != nil {
				return err
			}
			if created {
				summary.AccountsCreated++
				log.Info().Str("account", acct.Name).Msg("provisioned account")
			}

			entry := entryFor(inst, acct, t)
			if err := tx.UpsertLedgerEntry(ctx, &entry); err != nil {
				return err
			}
			if err := tx.TouchAccount(ctx, entry.FromAccountID, t.Date); err != nil {
				return err
			}
			if err := tx.TouchAccount(ctx, entry.ToAccountID, t.Date); err != nil {
				return err
			}
			summary.RowsWritten++
		}
		return nil
	})
	s.record(ctx, runID, originalName, inst.Name, summary, err)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("rows_written", summary.RowsWritten).
		Int("rows_skipped", summary.RowsSkipped).
		Int("accounts_created", summary.AccountsCreated).
		Msg("ingestion complete")
	return summary, nil
}

// entryFor maps a normalized transaction onto double-entry linkage:
// negative amounts flow own-account -> counterparty, positive amounts
// the reverse. Ledger amounts are always positive.
func entryFor(inst config.Institution, acct model.Account, t model.BankTransaction) model.LedgerEntry {
	e := model.LedgerEntry{
		Date:           t.Date,
		Amount:         t.Amount.Abs(),
		Classification: t.Classification,
		Memo:           t.Description,
		Hash:           t.Hash,
	}
	if t.Amount.IsNegative() {
		e.FromAccountID, e.FromAccountName = inst.AccountID, inst.Name
		e.ToAccountID, e.ToAccountName = acct.ID, acct.Name
	} else {
		e.FromAccountID, e.FromAccountName = acct.ID, acct.Name
		e.ToAccountID, e.ToAccountName = inst.AccountID, inst.Name
	}
	return e
}

// record writes the upload audit row. Best effort: a failed audit write
// must not turn a finished run into an error.
func (s *Service) record(ctx context.Context, runID, filename, institution string, summary *Summary, runErr error) {
	u := model.Upload{
		RunID:       runID,
		Filename:    filename,
		Institution: institution,
		Status:      model.UploadStatusSucceeded,
	}
	if summary != nil {
		u.RowsWritten = summary.RowsWritten
		u.RowsSkipped = summary.RowsSkipped
	}
	if runErr != nil {
		u.Status = model.UploadStatusFailed
		u.Error = runErr.Error()
	}
	// The audit row must land even when the run died to a timeout.
	ctx = context.WithoutCancel(ctx)
	if err := s.store.RecordUpload(ctx, &u); err != nil {
		log := logger.FromContext(ctx)
		log.Warn().Err(err).Str("run_id", runID).Msg("recording upload failed")
	}
}
