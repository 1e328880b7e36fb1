package model

import "github.com/shopspring/decimal"

// Budget is one planned line in the monthly budget view: an expected
// amount due against an account on a given day of the month.
type Budget struct {
	ID          int             `gorm:"primaryKey" json:"id"`
	AccountID   int             `gorm:"not null;index" json:"accountId"`
	AccountName string          `gorm:"size:255" json:"accountName"`
	Type        AccountType     `gorm:"size:32" json:"type"`
	DueDay      int             `json:"dueDay"`
	DueAmount   decimal.Decimal `gorm:"type:numeric" json:"dueAmount"`
}
