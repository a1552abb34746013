package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"
)

//go:generate mockgen -source=service.go -destination=rowstore_mock.go -package=ledger
type RowStore interface {
	ReadRange(ctx context.Context, rng Range) ([][]string, error)
	WriteRange(ctx context.Context, rng Range, rows [][]string) error
	AppendRow(ctx context.Context, row []string) error
}

type Service struct {
	store    RowStore
	password string
	now      func() time.Time
}

type Option func(*Service)

// WithClock replaces the wall clock used for the future-date check and the
// timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(store RowStore, password string, opts ...Option) *Service {
	s := &Service{
		store:    store,
		password: password,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Submit validates the record and appends it as one row, creating the header
// row first if the sheet has none.
func (s *Service) Submit(ctx context.Context, rec Record) error {
	var (
		name     = strings.TrimSpace(rec.Name)
		shopName = strings.TrimSpace(rec.ShopName)
		price    = strings.TrimSpace(rec.Price)
		typ      = strings.TrimSpace(rec.Type)
		date     = strings.TrimSpace(rec.Date)
	)

	if name == "" || shopName == "" || price == "" || typ == "" || date == "" {
		return ErrMissingFields
	}

	if rec.Password != s.password {
		return ErrInvalidPassword
	}

	if !validPrice(price) {
		return ErrInvalidPrice
	}

	iso, err := NormalizeDate(date)
	if err != nil {
		return err
	}

	now := s.now()
	if IsFuture(iso, now) {
		return ErrFutureDate
	}

	display, err := DisplayDate(iso)
	if err != nil {
		return err
	}

	if err := s.ensureHeader(ctx); err != nil {
		return err
	}

	row := []string{name, PricePrefix + price, shopName, typ, display, FormatTimestamp(now)}
	if err := s.store.AppendRow(ctx, row); err != nil {
		return fmt.Errorf("%w: appending row: %w", ErrStore, err)
	}

	return nil
}

func (s *Service) ensureHeader(ctx context.Context) error {
	rows, err := s.store.ReadRange(ctx, RangeHeader)
	if err != nil {
		return fmt.Errorf("%w: reading header: %w", ErrStore, err)
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		return nil
	}

	if err := s.store.WriteRange(ctx, RangeHeader, [][]string{Header}); err != nil {
		return fmt.Errorf("%w: writing header: %w", ErrStore, err)
	}

	return nil
}

// Rows returns every recorded row, header first, with stored ISO dates
// rewritten to display form.
func (s *Service) Rows(ctx context.Context, password string) ([][]string, error) {
	if password != s.password {
		return nil, ErrInvalidPassword
	}

	rows, err := s.store.ReadRange(ctx, RangeAll)
	if err != nil {
		return nil, fmt.Errorf("%w: reading rows: %w", ErrStore, err)
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) <= ColTxnDate {
			out[i] = row
			continue
		}

		cp := make([]string, len(row))
		copy(cp, row)
		cp[ColTxnDate] = DisplayStoredDate(cp[ColTxnDate])
		out[i] = cp
	}

	return out, nil
}

// validPrice accepts digits with at most one decimal point.
func validPrice(s string) bool {
	digits, dots := 0, 0

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}

	return digits > 0 && dots <= 1
}
