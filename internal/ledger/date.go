package ledger

import (
	"strings"
	"time"
)

const (
	// DisplayLayout is the human-facing date format written to the sheet.
	DisplayLayout = "02-01-2006"
	// TimestampLayout renders as DD:MM:YY:HH:MM:SS.
	TimestampLayout = "02:01:06:15:04:05"

	slashLayout = "2/1/2006"
)

// IST is Indian Standard Time, UTC+05:30.
var IST = time.FixedZone("IST", 5*60*60+30*60)

// NormalizeDate returns s in ISO (YYYY-MM-DD) form. Dates given as
// DD/MM/YYYY are converted; anything else that is not a valid ISO date
// yields ErrInvalidDate.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)

	if strings.Contains(s, "/") {
		t, err := time.Parse(slashLayout, s)
		if err != nil {
			return "", ErrInvalidDate
		}

		return t.Format(time.DateOnly), nil
	}

	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return "", ErrInvalidDate
	}

	return s, nil
}

// DisplayDate converts an ISO date to DD-MM-YYYY.
func DisplayDate(iso string) (string, error) {
	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return "", ErrInvalidDate
	}

	return t.Format(DisplayLayout), nil
}

// DisplayStoredDate rewrites a stored ISO date to display form. Any other
// value is returned unchanged.
func DisplayStoredDate(cell string) string {
	d, err := DisplayDate(strings.TrimSpace(cell))
	if err != nil {
		return cell
	}

	return d
}

// FormatTimestamp renders t in IST regardless of its own location.
func FormatTimestamp(t time.Time) string {
	return t.In(IST).Format(TimestampLayout)
}

// IsFuture reports whether the ISO date lies after the calendar day of now,
// taken in now's own location. ISO dates sort lexicographically in
// chronological order.
func IsFuture(iso string, now time.Time) bool {
	return iso > now.Format(time.DateOnly)
}
