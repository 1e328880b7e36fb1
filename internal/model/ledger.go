package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one posted transaction. The ledger is double-entry:
// Amount is always positive and flows from the From account to the To
// account. Hash is the content identity of the source CSV row; its
// uniqueness constraint is what makes re-imports idempotent.
type LedgerEntry struct {
	ID              int             `gorm:"primaryKey" json:"id"`
	Date            time.Time       `gorm:"not null;index" json:"date"`
	FromAccountID   int             `gorm:"not null;index" json:"fromAccountId"`
	FromAccountName string          `gorm:"size:255" json:"fromAccountName"`
	ToAccountID     int             `gorm:"not null;index" json:"toAccountId"`
	ToAccountName   string          `gorm:"size:255" json:"toAccountName"`
	Amount          decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Classification  string          `gorm:"size:64" json:"classification,omitempty"`
	Memo            string          `gorm:"size:512" json:"memo"`
	Hash            string          `gorm:"size:32;uniqueIndex;not null" json:"hash"`
	CreatedAt       time.Time       `json:"createdAt"`
}
