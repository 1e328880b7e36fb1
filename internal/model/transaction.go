package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is one normalized bank CSV row, awaiting account
// resolution. Amount carries a uniform sign regardless of how the source
// export encodes it: negative means money leaving the institution's own
// account, positive means money arriving.
type BankTransaction struct {
	Date           time.Time
	Description    string
	Amount         decimal.Decimal
	Classification string
	Hash           string
}
