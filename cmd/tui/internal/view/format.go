package view

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MrJamesThe3rd/shopledger/internal/ledger"
)

const storeTimeout = 15 * time.Second

var printer = message.NewPrinter(language.English)

// FormatTotal renders an amount rounded to paise with thousands separators
// and the price prefix. The digits come from the decimal itself, never a float.
func FormatTotal(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")

	// Wider than int64: keep the exact digits, ungrouped.
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		whole = printer.Sprintf("%d", n)
	}

	return ledger.PricePrefix + sign + whole + "." + frac
}

// StoreCtx returns a context with a standard timeout for Row Store calls.
func StoreCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storeTimeout)
}
