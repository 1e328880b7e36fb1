package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/budgetd-dev/budgetd/internal/model"
)

// UmpquaParser parses Umpqua Bank checking account exports. The export
// is headered and carries separate Debit and Credit columns; exactly one
// of the two is populated per row. Debit rows are money leaving the
// checking account and normalize to a negative amount.
type UmpquaParser struct{}

const (
	umpquaColStatus = "Status"
	umpquaColDesc   = "Description"
	umpquaColDebit  = "Debit"
	umpquaColCredit = "Credit"
	umpquaColDate   = "Post Date"
	umpquaColClass  = "Classification"

	umpquaStatusPending = "Pending"
)

// umpquaRequiredCols must all be present in the header row.
var umpquaRequiredCols = []string{umpquaColStatus, umpquaColDesc, umpquaColDebit, umpquaColCredit, umpquaColDate}

// Format returns the parser name.
func (p *UmpquaParser) Format() Format { return FormatUmpqua }

// Parse reads an Umpqua CSV and returns normalized transactions. Rows
// still marked Pending are dropped; rows with unparsable fields are
// reported in Result.RowErrors for the caller's skip-vs-abort policy.
func (p *UmpquaParser) Parse(r io.Reader) (*Result, error) {
	cr := csv.NewReader(stripBOM(r))

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading umpqua CSV: %v", ErrMalformedInput, err)
	}
	if len(records) == 0 {
		return &Result{}, nil
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[name] = i
	}
	for _, name := range umpquaRequiredCols {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedInput, name)
		}
	}

	res := &Result{}
	for i, rec := range records[1:] {
		line := i + 2
		get := func(name string) string {
			if idx, ok := cols[name]; ok {
				return rec[idx]
			}
			return ""
		}

		if get(umpquaColStatus) == umpquaStatusPending {
			res.Skipped++
			continue
		}

		date, err := parseDate(get(umpquaColDate))
		if err != nil {
			res.RowErrors = append(res.RowErrors, RowError{Line: line, Fields: rec, Err: err})
			continue
		}

		debit, credit := get(umpquaColDebit), get(umpquaColCredit)
		raw := credit
		if debit != "" {
			raw = debit
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			res.RowErrors = append(res.RowErrors, RowError{
				Line:   line,
				Fields: rec,
				Err:    fmt.Errorf("%w: %q", ErrUnparsableAmount, raw),
			})
			continue
		}
		if debit != "" {
			amount = amount.Neg()
		}

		res.Transactions = append(res.Transactions, model.BankTransaction{
			Date:           date,
			Description:    get(umpquaColDesc),
			Amount:         amount,
			Classification: get(umpquaColClass),
			Hash:           RowHash(rec),
		})
	}
	return res, nil
}
