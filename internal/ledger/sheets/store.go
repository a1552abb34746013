// Package sheets stores ledger rows in a Google Sheets spreadsheet.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/MrJamesThe3rd/shopledger/internal/ledger"
)

type Config struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsFile string
}

type Store struct {
	values        *gsheets.SpreadsheetsValuesService
	spreadsheetID string
	sheetName     string
}

// New authenticates with the service account credentials file and returns a
// store bound to one sheet of the spreadsheet.
func New(ctx context.Context, cfg Config) (*Store, error) {
	srv, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}

	return NewWithService(srv, cfg), nil
}

func NewWithService(srv *gsheets.Service, cfg Config) *Store {
	name := cfg.SheetName
	if name == "" {
		name = "Sheet1"
	}

	return &Store{
		values:        srv.Spreadsheets.Values,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     name,
	}
}

func (s *Store) ReadRange(ctx context.Context, rng ledger.Range) ([][]string, error) {
	a1, err := A1(s.sheetName, rng)
	if err != nil {
		return nil, err
	}

	resp, err := s.values.Get(s.spreadsheetID, a1).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", a1, err)
	}

	return fromValues(resp.Values), nil
}

func (s *Store) WriteRange(ctx context.Context, rng ledger.Range, rows [][]string) error {
	a1, err := A1(s.sheetName, rng)
	if err != nil {
		return err
	}

	_, err = s.values.Update(s.spreadsheetID, a1, &gsheets.ValueRange{Values: toValues(rows)}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("updating %s: %w", a1, err)
	}

	return nil
}

// AppendRow stores the cells as literal text; Sheets does not parse them as
// formulas or numbers.
func (s *Store) AppendRow(ctx context.Context, row []string) error {
	a1 := quoteSheet(s.sheetName) + "!A:Z"

	_, err := s.values.Append(s.spreadsheetID, a1, &gsheets.ValueRange{Values: toValues([][]string{row})}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("appending to %s: %w", a1, err)
	}

	return nil
}

// A1 renders rng in A1 notation for the named sheet.
func A1(sheetName string, rng ledger.Range) (string, error) {
	switch rng {
	case ledger.RangeHeader:
		return quoteSheet(sheetName) + "!A1:F1", nil
	case ledger.RangeAll:
		return quoteSheet(sheetName) + "!A:F", nil
	}

	return "", fmt.Errorf("unsupported range %s", rng)
}

// quoteSheet wraps names that are not plain identifiers in single quotes.
func quoteSheet(name string) string {
	plain := true

	for _, r := range name {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			plain = false
			break
		}
	}

	if plain && name != "" {
		return name
	}

	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func toValues(rows [][]string) [][]any {
	values := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, c := range row {
			cells[j] = c
		}

		values[i] = cells
	}

	return values
}

func fromValues(values [][]any) [][]string {
	rows := make([][]string, len(values))
	for i, v := range values {
		row := make([]string, len(v))
		for j, c := range v {
			if c != nil {
				row[j] = fmt.Sprint(c)
			}
		}

		rows[i] = row
	}

	return rows
}
