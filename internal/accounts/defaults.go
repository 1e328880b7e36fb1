package accounts

import "github.com/budgetd-dev/budgetd/internal/model"

// DefaultAccounts returns the user's own bank accounts, seeded on init.
// The ingestion pipeline expects these to exist: every ledger entry has
// one leg on the institution's own account.
func DefaultAccounts() []model.Account {
	return []model.Account{
		{ID: 1, Name: "Umpqua", Type: model.AccountTypeOther, MatchString: "Umpqua", Active: true},
		{ID: 2, Name: "FNBO", Type: model.AccountTypeCreditCard, MatchString: "FNBO", Active: true},
	}
}
