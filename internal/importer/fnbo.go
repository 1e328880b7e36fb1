package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budgetd-dev/budgetd/internal/model"
)

// FNBOParser parses FNBO card exports: no header, a fixed three columns
// of Post Date, Amount, Description. The source already signs amounts
// (negative = charge), which matches the normalized convention. Rows
// whose description starts with "PAYMENT" are card payments already
// present in the checking export and are dropped to avoid double
// counting.
type FNBOParser struct{}

const (
	fnboNumFields = 3
	fnboColDate   = 0
	fnboColAmount = 1
	fnboColDesc   = 2

	fnboPaymentPrefix = "PAYMENT"
)

// Format returns the parser name.
func (p *FNBOParser) Format() Format { return FormatFNBO }

// Parse reads an FNBO CSV and returns normalized transactions.
func (p *FNBOParser) Parse(r io.Reader) (*Result, error) {
	cr := csv.NewReader(stripBOM(r))
	cr.FieldsPerRecord = fnboNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading fnbo CSV: %v", ErrMalformedInput, err)
	}

	res := &Result{}
	for i, rec := range records {
		line := i + 1

		desc := rec[fnboColDesc]
		if strings.HasPrefix(desc, fnboPaymentPrefix) {
			res.Skipped++
			continue
		}

		date, err := parseDate(rec[fnboColDate])
		if err != nil {
			res.RowErrors = append(res.RowErrors, RowError{Line: line, Fields: rec, Err: err})
			continue
		}

		cleaned := cleanAmount(rec[fnboColAmount])
		amount, err := decimal.NewFromString(cleaned)
		if err != nil {
			res.RowErrors = append(res.RowErrors, RowError{
				Line:   line,
				Fields: rec,
				Err:    fmt.Errorf("%w: %q", ErrUnparsableAmount, rec[fnboColAmount]),
			})
			continue
		}

		res.Transactions = append(res.Transactions, model.BankTransaction{
			Date:        date,
			Description: desc,
			Amount:      amount,
			Hash:        RowHash(rec),
		})
	}
	return res, nil
}

// cleanAmount strips currency symbols and thousands separators, keeping
// digits, the decimal point, and the sign.
func cleanAmount(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
}
