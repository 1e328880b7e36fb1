package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetd-dev/budgetd/internal/config"
	"github.com/budgetd-dev/budgetd/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.sqlite3")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAccounts_CreateAndListOrder(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	a := model.Account{Name: "Umpqua", Type: model.AccountTypeOther, MatchString: "Umpqua"}
	b := model.Account{Name: "Hilltop", Type: model.AccountTypeHousehold, MatchString: "HILLTOP"}
	require.NoError(t, st.CreateAccount(ctx, &a))
	require.NoError(t, st.CreateAccount(ctx, &b))
	assert.Greater(t, b.ID, a.ID)

	accts, err := st.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accts, 2)
	assert.Equal(t, "Umpqua", accts[0].Name)
	assert.Equal(t, "Hilltop", accts[1].Name)
}

func TestSeedAccounts_Idempotent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seed := []model.Account{{ID: 1, Name: "Umpqua", Type: model.AccountTypeOther, MatchString: "Umpqua"}}
	require.NoError(t, st.SeedAccounts(ctx, seed))
	require.NoError(t, st.SeedAccounts(ctx, seed))

	accts, err := st.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accts, 1)
}

func TestTouchAccount_AdvancesOnly(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	a := model.Account{Name: "Hilltop", MatchString: "HILLTOP"}
	require.NoError(t, st.CreateAccount(ctx, &a))

	require.NoError(t, st.TouchAccount(ctx, a.ID, date(2025, 4, 11)))
	// Older date in a later row must not move the stamp back.
	require.NoError(t, st.TouchAccount(ctx, a.ID, date(2025, 4, 9)))

	got, err := st.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastTransactionAt)
	assert.Equal(t, "2025-04-11", got.LastTransactionAt.Format("2006-01-02"))
	assert.True(t, got.Active)
}

func TestUpsertLedgerEntry_Idempotent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	entry := model.LedgerEntry{
		Date:          date(2025, 4, 9),
		FromAccountID: 1, FromAccountName: "Umpqua",
		ToAccountID: 3, ToAccountName: "Hilltop",
		Amount: decimal.RequireFromString("18.60"),
		Memo:   "HILLTOP MARKET",
		Hash:   "aaaa1111",
	}
	require.NoError(t, st.UpsertLedgerEntry(ctx, &entry))

	// Same hash, corrected amount: updates in place.
	corrected := entry
	corrected.ID = 0
	corrected.Amount = decimal.RequireFromString("19.60")
	require.NoError(t, st.UpsertLedgerEntry(ctx, &corrected))

	n, err := st.CountLedgerEntries(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	entries, err := st.ListLedgerEntries(ctx, LedgerFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "19.60", entries[0].Amount.StringFixed(2))
}

func TestListLedgerEntries_Filter(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for i, h := range []string{"h1", "h2", "h3"} {
		entry := model.LedgerEntry{
			Date:          date(2025, 4, 9+i),
			FromAccountID: 1,
			ToAccountID:   2 + i,
			Amount:        decimal.RequireFromString("10.00"),
			Hash:          h,
		}
		require.NoError(t, st.UpsertLedgerEntry(ctx, &entry))
	}

	from := date(2025, 4, 10)
	entries, err := st.ListLedgerEntries(ctx, LedgerFilter{From: &from})
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = st.ListLedgerEntries(ctx, LedgerFilter{AccountID: 3})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "h2", entries[0].Hash)
}

func TestTransaction_RollsBack(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	err := st.Transaction(ctx, func(tx *Store) error {
		a := model.Account{Name: "Doomed", MatchString: "DOOMED"}
		if err := tx.CreateAccount(ctx, &a); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	accts, err := st.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accts)
}

func TestUploads_RecordAndList(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first := model.Upload{RunID: "run-1", Filename: "a.csv", Status: model.UploadStatusSucceeded, RowsWritten: 2}
	second := model.Upload{RunID: "run-2", Filename: "b.csv", Status: model.UploadStatusFailed, Error: "boom"}
	require.NoError(t, st.RecordUpload(ctx, &first))
	require.NoError(t, st.RecordUpload(ctx, &second))

	uploads, err := st.ListUploads(ctx)
	require.NoError(t, err)
	require.Len(t, uploads, 2)
	assert.Equal(t, "run-2", uploads[0].RunID) // newest first
}

func TestBudgets_CreateAndList(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	b := model.Budget{AccountID: 3, AccountName: "Power Co", Type: model.AccountTypeBill, DueDay: 15, DueAmount: decimal.RequireFromString("120.00")}
	require.NoError(t, st.CreateBudget(ctx, &b))

	budgets, err := st.ListBudgets(ctx)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, 15, budgets[0].DueDay)
}
