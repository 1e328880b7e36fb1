package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fnboSample = `4/9/2025,-45.99,HILLTOP MARKET
4/10/2025,"-$1,234.56",CAR REPAIR
4/12/2025,-12.00,PAYMENT THANK YOU
4/15/2025,30.00,REFUND SHOE STORE
`

func TestFNBOParser_Parse(t *testing.T) {
	p := &FNBOParser{}
	res, err := p.Parse(strings.NewReader(fnboSample))
	require.NoError(t, err)

	require.Len(t, res.Transactions, 3)
	assert.Equal(t, 1, res.Skipped)

	assert.Equal(t, "HILLTOP MARKET", res.Transactions[0].Description)
	assert.Equal(t, "-45.99", res.Transactions[0].Amount.StringFixed(2))
	assert.Equal(t, "2025-04-09", res.Transactions[0].Date.Format("2006-01-02"))

	refund := res.Transactions[2]
	assert.True(t, refund.Amount.IsPositive())
	assert.Equal(t, "30.00", refund.Amount.StringFixed(2))
}

func TestFNBOParser_PaymentSkipped(t *testing.T) {
	p := &FNBOParser{}
	res, err := p.Parse(strings.NewReader(fnboSample))
	require.NoError(t, err)

	for _, txn := range res.Transactions {
		assert.False(t, strings.HasPrefix(txn.Description, "PAYMENT"))
	}
}

func TestFNBOParser_AmountCleaning(t *testing.T) {
	p := &FNBOParser{}
	res, err := p.Parse(strings.NewReader(fnboSample))
	require.NoError(t, err)

	repair := res.Transactions[1]
	assert.Equal(t, "-1234.56", repair.Amount.StringFixed(2))
}

func TestFNBOParser_BadAmount(t *testing.T) {
	p := &FNBOParser{}
	res, err := p.Parse(strings.NewReader("4/9/2025,N/A,STORE\n"))
	require.NoError(t, err)

	require.Len(t, res.RowErrors, 1)
	assert.Equal(t, 1, res.RowErrors[0].Line)
	assert.ErrorIs(t, res.RowErrors[0], ErrUnparsableAmount)
	assert.Empty(t, res.Transactions)
}

func TestFNBOParser_RaggedRows(t *testing.T) {
	p := &FNBOParser{}
	_, err := p.Parse(strings.NewReader("4/9/2025,-45.99,STORE\n4/10/2025,-1.00\n"))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestFNBOParser_Empty(t *testing.T) {
	p := &FNBOParser{}
	res, err := p.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, res.Transactions)
}

func TestCleanAmount(t *testing.T) {
	assert.Equal(t, "-45.99", cleanAmount("-45.99"))
	assert.Equal(t, "1234.56", cleanAmount("$1,234.56"))
	assert.Equal(t, "-1234.56", cleanAmount("-$1,234.56"))
	assert.Equal(t, "", cleanAmount("N/"))
}
