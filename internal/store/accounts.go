package store

import (
	"context"
	"fmt"
	"time"

	"github.com/budgetd-dev/budgetd/internal/model"
)

// ListAccounts returns all accounts in creation order. Scan order
// matters: the matcher resolves descriptions first-match-wins over this
// ordering.
func (s *Store) ListAccounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := s.db.WithContext(ctx).Order("id").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	return accounts, nil
}

// GetAccount returns one account by ID.
func (s *Store) GetAccount(ctx context.Context, id int) (model.Account, error) {
	var a model.Account
	if err := s.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return model.Account{}, fmt.Errorf("getting account %d: %w", id, err)
	}
	return a, nil
}

// CreateAccount inserts an account, filling its assigned ID.
func (s *Store) CreateAccount(ctx context.Context, a *model.Account) error {
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("creating account: %w", err)
	}
	return nil
}

// SaveAccount persists edits to an existing account.
func (s *Store) SaveAccount(ctx context.Context, a *model.Account) error {
	if err := s.db.WithContext(ctx).Save(a).Error; err != nil {
		return fmt.Errorf("saving account %d: %w", a.ID, err)
	}
	return nil
}

// TouchAccount marks an account active and advances its activity stamp.
// The stamp only moves forward, so a batch with out-of-order dates still
// ends with the true latest transaction date.
func (s *Store) TouchAccount(ctx context.Context, id int, at time.Time) error {
	err := s.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", id).
		Where("last_transaction_at IS NULL OR last_transaction_at < ?", at).
		Updates(map[string]any{"active": true, "last_transaction_at": at}).Error
	if err != nil {
		return fmt.Errorf("touching account %d: %w", id, err)
	}
	return nil
}

// SeedAccounts inserts accounts that do not exist yet, keyed by ID.
func (s *Store) SeedAccounts(ctx context.Context, accounts []model.Account) error {
	for i := range accounts {
		err := s.db.WithContext(ctx).FirstOrCreate(&accounts[i], model.Account{ID: accounts[i].ID}).Error
		if err != nil {
			return fmt.Errorf("seeding account %d: %w", accounts[i].ID, err)
		}
	}
	return nil
}
