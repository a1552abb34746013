package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/shopledger/internal/ledger"
)

const headerCells = `["Name","Price","Shop Name","Type","Txn_Date","Timestamp"]`

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(db), mock
}

func TestStore_ReadRange_SQL(t *testing.T) {
	type testCase struct {
		name      string
		rng       ledger.Range
		setupMock func(m sqlmock.Sqlmock)
		want      [][]string
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "AllHeaderFirst",
			rng:  ledger.RangeAll,
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(`SELECT cells FROM ledger_rows ORDER BY is_header DESC, seq ASC`)).
					WillReturnRows(sqlmock.NewRows([]string{"cells"}).
						AddRow([]byte(headerCells)).
						AddRow([]byte(`["Pen","Rs. 45.50","ABC Store","Stationery","05-01-2024","05:01:24:10:00:00"]`)).
						AddRow([]byte(`["Ink","Rs. 10","ABC Store","Stationery","06-01-2024","06:01:24:10:00:00"]`)))
			},
			want: [][]string{
				ledger.Header,
				{"Pen", "Rs. 45.50", "ABC Store", "Stationery", "05-01-2024", "05:01:24:10:00:00"},
				{"Ink", "Rs. 10", "ABC Store", "Stationery", "06-01-2024", "06:01:24:10:00:00"},
			},
		},
		{
			name: "HeaderOnly",
			rng:  ledger.RangeHeader,
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(`SELECT cells FROM ledger_rows WHERE is_header ORDER BY seq LIMIT 1`)).
					WillReturnRows(sqlmock.NewRows([]string{"cells"}).AddRow([]byte(headerCells)))
			},
			want: [][]string{ledger.Header},
		},
		{
			name: "NoHeader",
			rng:  ledger.RangeHeader,
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(`WHERE is_header`)).
					WillReturnRows(sqlmock.NewRows([]string{"cells"}))
			},
			want: nil,
		},
		{
			name: "BadCells",
			rng:  ledger.RangeAll,
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(`ORDER BY is_header DESC`)).
					WillReturnRows(sqlmock.NewRows([]string{"cells"}).AddRow([]byte(`{}`)))
			},
			wantErr: true,
		},
		{
			name: "QueryError",
			rng:  ledger.RangeAll,
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(`ORDER BY is_header DESC`)).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newMockStore(t)
			tt.setupMock(mock)

			got, err := s.ReadRange(context.Background(), tt.rng)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_WriteRange_ReplacesHeaderInTransaction(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM ledger_rows WHERE is_header`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ledger_rows (id, is_header, cells) VALUES ($1, TRUE, $2::jsonb)`)).
		WithArgs(sqlmock.AnyArg(), headerCells).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.WriteRange(context.Background(), ledger.RangeHeader, [][]string{ledger.Header}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_WriteRange_RollsBackOnFailure(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM ledger_rows WHERE is_header`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ledger_rows`)).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := s.WriteRange(context.Background(), ledger.RangeHeader, [][]string{ledger.Header})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_AppendRow_SQL(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ledger_rows (id, is_header, cells) VALUES ($1, FALSE, $2::jsonb)`)).
		WithArgs(sqlmock.AnyArg(), `["Pen","Rs. 45.50"]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.AppendRow(context.Background(), []string{"Pen", "Rs. 45.50"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_AppendRow_Error(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ledger_rows`)).
		WillReturnError(errors.New("connection reset"))

	assert.Error(t, s.AppendRow(context.Background(), []string{"Pen"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
