package ledger

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// PricePrefix is prepended to the submitted price before it is stored.
const PricePrefix = "Rs. "

// Column positions within a stored row.
const (
	ColName = iota
	ColPrice
	ColShopName
	ColType
	ColTxnDate
	ColTimestamp
)

// Header is the fixed first row of the backing sheet.
var Header = []string{"Name", "Price", "Shop Name", "Type", "Txn_Date", "Timestamp"}

// Range selects a region of the backing sheet.
type Range int

const (
	// RangeHeader is the single header row (A1:F1).
	RangeHeader Range = iota
	// RangeAll is every recorded row, header included (A:F).
	RangeAll
)

func (r Range) String() string {
	switch r {
	case RangeHeader:
		return "header"
	case RangeAll:
		return "all"
	}

	return "unknown"
}

// Record is a transaction as submitted by a client. It only lives for the
// duration of a single submission.
type Record struct {
	Name     string
	ShopName string
	Price    string
	Type     string
	Date     string
	Password string
}

// Validation outcomes are reported to clients as a normal response carrying
// the error text as the reason.
var (
	ErrMissingFields   = errors.New("missing_fields")
	ErrInvalidPassword = errors.New("invalid_password")
	ErrFutureDate      = errors.New("future_date")
	ErrInvalidPrice    = errors.New("invalid_price")
	ErrInvalidDate     = errors.New("invalid_date")
)

// ErrStore wraps every failure of the backing Row Store.
var ErrStore = errors.New("google_api_error")

var clientErrors = []error{
	ErrMissingFields,
	ErrInvalidPassword,
	ErrFutureDate,
	ErrInvalidPrice,
	ErrInvalidDate,
}

// IsClientError reports whether err is a validation outcome rather than an
// infrastructure failure.
func IsClientError(err error) bool {
	for _, e := range clientErrors {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// Code returns the wire code for err. Unknown errors are reported as store
// failures.
func Code(err error) string {
	for _, e := range clientErrors {
		if errors.Is(err, e) {
			return e.Error()
		}
	}

	return ErrStore.Error()
}

// Total sums the Price column of every data row. Cells that do not parse
// as a number after dropping the prefix are skipped.
func Total(rows [][]string) decimal.Decimal {
	total := decimal.Zero

	for i, row := range rows {
		if i == 0 || len(row) <= ColPrice {
			continue
		}

		raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(row[ColPrice]), strings.TrimSpace(PricePrefix)))

		d, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}

		total = total.Add(d)
	}

	return total
}
