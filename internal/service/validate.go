package service

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Dan9191/finance-tracker/internal/models"
	"github.com/shopspring/decimal"
)

var (
	maxAmount        = decimal.NewFromInt(1_000_000)
	maxIncome        = decimal.NewFromInt(10_000_000)
	minExpenseAmount = decimal.New(1, -2)
	maxInterestRate  = decimal.NewFromInt(100)
)

const (
	maxTextLength     = 200
	minPasswordLength = 6
)

// validator collects problems and reports them as a single ErrValidation
type validator struct {
	problems []string
}

func (v *validator) check(ok bool, format string, args ...any) {
	if !ok {
		v.problems = append(v.problems, fmt.Sprintf(format, args...))
	}
}

func (v *validator) text(field, value string) {
	v.check(strings.TrimSpace(value) != "", "%s is required", field)
	v.check(len([]rune(value)) <= maxTextLength, "%s cannot exceed %d characters", field, maxTextLength)
}

func (v *validator) between(field string, value, lo, hi decimal.Decimal) {
	v.check(value.GreaterThanOrEqual(lo) && value.LessThanOrEqual(hi), "%s must be between %s and %s",
		field, lo.String(), hi.String())
}

func (v *validator) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(v.problems, "; "))
}

// Date is a calendar date in request bodies, given as YYYY-MM-DD or an RFC 3339 timestamp.
// An empty string decodes to the zero Date, which clears an optional date on update.
type Date struct {
	time.Time
}

// optionalDate applies d to an optional date field: nil leaves it unchanged,
// a zero Date clears it.
func optionalDate(d *Date, field **time.Time) {
	if d == nil {
		return
	}
	if d.IsZero() {
		*field = nil
		return
	}
	t := d.Time
	*field = &t
}

// checkClear rejects clear entries that do not name one of the allowed fields
func checkClear(clear []string, allowed ...string) error {
	var v validator
	for _, name := range clear {
		v.check(slices.Contains(allowed, name), "%q cannot be cleared", name)
	}
	return v.err()
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: date must be a string", ErrValidation)
	}
	if strings.TrimSpace(s) == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ParseDate parses YYYY-MM-DD or RFC 3339 into a UTC calendar date
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return models.DateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrValidation, s)
}
