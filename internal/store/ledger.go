package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm/clause"

	"github.com/budgetd-dev/budgetd/internal/model"
)

// UpsertLedgerEntry inserts an entry keyed by hash. A hash collision
// means the same source row was imported before; the existing row is
// updated in place so re-imports of corrected exports converge instead
// of duplicating.
func (s *Store) UpsertLedgerEntry(ctx context.Context, e *model.LedgerEntry) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "hash"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"date",
			"from_account_id", "from_account_name",
			"to_account_id", "to_account_name",
			"amount", "classification", "memo",
		}),
	}).Create(e).Error
	if err != nil {
		return fmt.Errorf("upserting ledger entry: %w", err)
	}
	return nil
}

// LedgerFilter narrows a ledger listing.
type LedgerFilter struct {
	From      *time.Time
	To        *time.Time
	AccountID int // matches either leg; 0 = all
}

// ListLedgerEntries returns entries ordered by date then ID.
func (s *Store) ListLedgerEntries(ctx context.Context, f LedgerFilter) ([]model.LedgerEntry, error) {
	q := s.db.WithContext(ctx).Model(&model.LedgerEntry{})
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date <= ?", *f.To)
	}
	if f.AccountID != 0 {
		q = q.Where("from_account_id = ? OR to_account_id = ?", f.AccountID, f.AccountID)
	}

	var entries []model.LedgerEntry
	if err := q.Order("date, id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("listing ledger entries: %w", err)
	}
	return entries, nil
}

// CountLedgerEntries returns the total number of ledger rows.
func (s *Store) CountLedgerEntries(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.LedgerEntry{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting ledger entries: %w", err)
	}
	return n, nil
}
