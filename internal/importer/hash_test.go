package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowHash_Deterministic(t *testing.T) {
	fields := []string{"", "HILLTOP MARKET", "18.60", "", "4/9/2025"}
	first := RowHash(fields)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, RowHash(fields))
	}
	assert.Len(t, first, 32)
}

func TestRowHash_OrderSensitive(t *testing.T) {
	a := RowHash([]string{"x", "y"})
	b := RowHash([]string{"y", "x"})
	assert.NotEqual(t, a, b)
}

func TestRowHash_ValueSensitive(t *testing.T) {
	a := RowHash([]string{"", "HILLTOP MARKET", "18.60", "", "4/9/2025"})
	b := RowHash([]string{"", "HILLTOP MARKET", "18.61", "", "4/9/2025"})
	assert.NotEqual(t, a, b)
}
