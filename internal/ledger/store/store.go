package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/shopledger/internal/ledger"
)

const schema = `
	CREATE TABLE IF NOT EXISTS ledger_rows (
		seq        BIGSERIAL,
		id         UUID PRIMARY KEY,
		is_header  BOOLEAN NOT NULL DEFAULT FALSE,
		cells      JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// Store keeps sheet rows in PostgreSQL, one JSONB cell list per row.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init creates the rows table if it does not exist yet.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating ledger_rows: %w", err)
	}

	return nil
}

func (s *Store) ReadRange(ctx context.Context, rng ledger.Range) ([][]string, error) {
	query, err := selectQuery(rng)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reading %s range: %w", rng, err)
	}
	defer rows.Close()

	var out [][]string

	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		cells, err := decodeCells(raw)
		if err != nil {
			return nil, err
		}

		out = append(out, cells)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return out, nil
}

// WriteRange replaces the header row. Only the header range is writable.
func (s *Store) WriteRange(ctx context.Context, rng ledger.Range, rows [][]string) error {
	if rng != ledger.RangeHeader {
		return fmt.Errorf("writing %s range is not supported", rng)
	}

	if len(rows) != 1 {
		return fmt.Errorf("header range holds one row, got %d", len(rows))
	}

	cells, err := encodeCells(rows[0])
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM ledger_rows WHERE is_header`); err != nil {
		return fmt.Errorf("clearing header: %w", err)
	}

	query := `INSERT INTO ledger_rows (id, is_header, cells) VALUES ($1, TRUE, $2::jsonb)`
	if _, err := tx.ExecContext(ctx, query, uuid.New(), cells); err != nil {
		return fmt.Errorf("inserting header: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing header: %w", err)
	}

	return nil
}

func (s *Store) AppendRow(ctx context.Context, row []string) error {
	cells, err := encodeCells(row)
	if err != nil {
		return err
	}

	query := `INSERT INTO ledger_rows (id, is_header, cells) VALUES ($1, FALSE, $2::jsonb)`
	if _, err := s.db.ExecContext(ctx, query, uuid.New(), cells); err != nil {
		return fmt.Errorf("appending row: %w", err)
	}

	return nil
}

func selectQuery(rng ledger.Range) (string, error) {
	switch rng {
	case ledger.RangeHeader:
		return `SELECT cells FROM ledger_rows WHERE is_header ORDER BY seq LIMIT 1`, nil
	case ledger.RangeAll:
		return `SELECT cells FROM ledger_rows ORDER BY is_header DESC, seq ASC`, nil
	}

	return "", fmt.Errorf("unsupported range %s", rng)
}

func encodeCells(row []string) (string, error) {
	if row == nil {
		row = []string{}
	}

	b, err := json.Marshal(row)
	if err != nil {
		return "", fmt.Errorf("encoding cells: %w", err)
	}

	return string(b), nil
}

func decodeCells(raw []byte) ([]string, error) {
	var cells []string
	if err := json.Unmarshal(raw, &cells); err != nil {
		return nil, fmt.Errorf("decoding cells: %w", err)
	}

	if cells == nil {
		cells = []string{}
	}

	return cells, nil
}
