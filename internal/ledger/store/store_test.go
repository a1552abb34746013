package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/shopledger/internal/ledger"
)

func TestSelectQuery(t *testing.T) {
	q, err := selectQuery(ledger.RangeHeader)
	require.NoError(t, err)
	assert.Contains(t, q, "WHERE is_header")
	assert.Contains(t, q, "LIMIT 1")

	q, err = selectQuery(ledger.RangeAll)
	require.NoError(t, err)
	assert.Contains(t, q, "ORDER BY is_header DESC, seq ASC")

	_, err = selectQuery(ledger.Range(42))
	assert.Error(t, err)
}

func TestCells_RoundTrip(t *testing.T) {
	row := []string{"Pen", "Rs. 45.50", "Ravi \"&\" Sons", "Stationery", "05-01-2024", "05:01:24:10:00:00"}

	encoded, err := encodeCells(row)
	require.NoError(t, err)

	decoded, err := decodeCells([]byte(encoded))
	require.NoError(t, err)
	assert.Equal(t, row, decoded)
}

func TestCells_Edges(t *testing.T) {
	encoded, err := encodeCells(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)

	decoded, err := decodeCells([]byte("null"))
	require.NoError(t, err)
	assert.Equal(t, []string{}, decoded)

	_, err = decodeCells([]byte(`{"not":"a list"}`))
	assert.Error(t, err)
}

func TestWriteRange_RejectsDataRange(t *testing.T) {
	s := New(nil)

	err := s.WriteRange(context.Background(), ledger.RangeAll, [][]string{{"x"}})
	assert.Error(t, err)

	err = s.WriteRange(context.Background(), ledger.RangeHeader, nil)
	assert.Error(t, err)
}
