package dashboard

import (
	"fmt"
	"time"

	"mhtrends-backend/domain/config"
	pkgerrors "mhtrends-backend/pkg/errors"
)

// DateLayout is the calendar date format accepted and emitted by the API
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// DateRange is an inclusive span of calendar dates.
// Both bounds are midnight UTC and From is never after To.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange creates a range from two calendar dates
func NewDateRange(from, to time.Time) (DateRange, error) {
	from, to = CalendarDate(from), CalendarDate(to)
	if to.Before(from) {
		return DateRange{}, pkgerrors.NewValidationError(
			fmt.Sprintf("to (%s) must not be before from (%s)", to.Format(DateLayout), from.Format(DateLayout)),
		).WithCode(pkgerrors.CodeInvalidRange).
			WithDetail("from", from.Format(DateLayout)).
			WithDetail("to", to.Format(DateLayout))
	}
	return DateRange{From: from, To: to}, nil
}

// ResolveDateRange parses the optional from/to parameters, substituting a
// trailing window that ends on today's date for missing values.
func ResolveDateRange(fromRaw, toRaw string, today time.Time, cfg *config.DomainConfig) (DateRange, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	today = CalendarDate(today)

	to := today
	if toRaw != "" {
		parsed, err := ParseDate("to", toRaw)
		if err != nil {
			return DateRange{}, err
		}
		to = parsed
	}

	from := today.AddDate(0, 0, -cfg.DefaultWindowDays)
	if fromRaw != "" {
		parsed, err := ParseDate("from", fromRaw)
		if err != nil {
			return DateRange{}, err
		}
		from = parsed
	}

	r, err := NewDateRange(from, to)
	if err != nil {
		return DateRange{}, err
	}

	if r.Days() > cfg.MaxRangeDays {
		return DateRange{}, pkgerrors.NewValidationError(
			fmt.Sprintf("date range spans %d days, maximum is %d", r.Days(), cfg.MaxRangeDays),
		).WithCode(pkgerrors.CodeRangeTooLarge).
			WithDetail("days", r.Days()).
			WithDetail("max_days", cfg.MaxRangeDays)
	}
	return r, nil
}

// ParseDate parses a YYYY-MM-DD query parameter value
func ParseDate(param, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, pkgerrors.NewValidationError(
			fmt.Sprintf("%s must be a date in YYYY-MM-DD format", param),
		).WithCode(pkgerrors.CodeInvalidDate).
			WithDetail("parameter", param).
			WithDetail("value", value).
			WithCause(err)
	}
	return t, nil
}

// CalendarDate truncates t to midnight UTC of its own calendar day
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of calendar dates in the range, bounds included
func (r DateRange) Days() int {
	return int(r.To.Sub(r.From)/day) + 1
}

// DateAt returns the date offset days after From
func (r DateRange) DateAt(offset int) time.Time {
	return r.From.AddDate(0, 0, offset)
}

// FromString formats the lower bound
func (r DateRange) FromString() string {
	return r.From.Format(DateLayout)
}

// ToString formats the upper bound
func (r DateRange) ToString() string {
	return r.To.Format(DateLayout)
}
