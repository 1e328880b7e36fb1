package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies accounts for the budget views.
type AccountType string

const (
	AccountTypeIncome     AccountType = "income"
	AccountTypeBill       AccountType = "bill"
	AccountTypeHousehold  AccountType = "household"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeOther      AccountType = "other"
	AccountTypeUnknown    AccountType = "unknown"
)

// Account represents a payee, a spending category, or one of the user's
// own bank accounts. MatchString is the substring used to classify
// transaction descriptions to this account; it is not guaranteed unique,
// and matching is first-match-wins over scan order.
type Account struct {
	ID                int             `gorm:"primaryKey" json:"id"`
	Name              string          `gorm:"size:255;not null" json:"name"`
	Type              AccountType     `gorm:"size:32;not null;default:unknown" json:"type"`
	Classification    string          `gorm:"size:64" json:"classification,omitempty"`
	MatchString       string          `gorm:"size:255;not null" json:"matchString"`
	Balance           decimal.Decimal `gorm:"type:numeric" json:"balance"`
	Active            bool            `json:"active"`
	LastTransactionAt *time.Time      `json:"lastTransactionAt,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}
