package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/budgetd-dev/budgetd/internal/model"
)

var (
	// ErrInvalidAccount marks an account whose match string would be
	// empty. Such an account would match every description.
	ErrInvalidAccount = errors.New("invalid account: empty match string")
	// ErrCreateFailed marks a provisioning write that did not persist.
	ErrCreateFailed = errors.New("account create failed")
)

// Creator persists newly provisioned accounts.
type Creator interface {
	CreateAccount(ctx context.Context, a *model.Account) error
}

// Directory is the in-memory view of known accounts for one ingestion
// run. Accounts provisioned mid-run are appended, so later rows in the
// same file resolve to them.
type Directory struct {
	store    Creator
	accounts []model.Account
}

// NewDirectory creates a Directory over a snapshot of accounts in scan
// order.
func NewDirectory(store Creator, accounts []model.Account) *Directory {
	return &Directory{store: store, accounts: accounts}
}

// Len returns the number of accounts currently in the directory.
func (d *Directory) Len() int { return len(d.accounts) }

// Match returns the first account whose match string occurs in the
// description, case-insensitively, scanning in directory order. First
// match wins; there is no ranking by length or specificity.
func (d *Directory) Match(description string) (model.Account, bool) {
	desc := strings.ToLower(description)
	for _, a := range d.accounts {
		if a.MatchString == "" {
			continue
		}
		if strings.Contains(desc, strings.ToLower(a.MatchString)) {
			return a, true
		}
	}
	return model.Account{}, false
}

// Resolve matches a transaction description to an account, provisioning
// a fresh Unknown account when nothing matches. The second return
// reports whether an account was created.
func (d *Directory) Resolve(ctx context.Context, description, classification string) (model.Account, bool, error) {
	if a, ok := d.Match(description); ok {
		return a, false, nil
	}
	a, err := d.Provision(ctx, description, classification)
	if err != nil {
		return model.Account{}, false, err
	}
	return a, true, nil
}

// Provision creates and persists a new account named after the full
// description, with the description itself as the match string.
func (d *Directory) Provision(ctx context.Context, description, classification string) (model.Account, error) {
	if strings.TrimSpace(description) == "" {
		return model.Account{}, ErrInvalidAccount
	}

	a := model.Account{
		Name:           description,
		Type:           model.AccountTypeUnknown,
		Classification: classification,
		MatchString:    description,
		Active:         true,
	}
	if err := d.store.CreateAccount(ctx, &a); err != nil {
		return model.Account{}, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}
	d.accounts = append(d.accounts, a)
	return a, nil
}
