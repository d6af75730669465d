package validation

import (
	"strings"
	"time"
)

// dateLayouts are the accepted invoice date formats. ISO calendar dates are
// the primary form; RFC3339 timestamps and slash-separated dates are also
// accepted.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
}

// DateCheckResult is the outcome of the invoice date business rule.
type DateCheckResult struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message"`
}

// DateValidator applies calendar and temporal business rules to invoice
// dates. The reference clock is injected so tests can pin "today".
type DateValidator struct {
	now func() time.Time
}

// NewDateValidator creates a date validator using the system clock.
func NewDateValidator() *DateValidator {
	return &DateValidator{now: time.Now}
}

// NewDateValidatorWithClock creates a date validator with a fixed reference
// clock.
func NewDateValidatorWithClock(now func() time.Time) *DateValidator {
	return &DateValidator{now: now}
}

// ParseDate parses a date string against the accepted layouts. The second
// return value is false for blank input or anything that is not a real
// calendar date.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsValidDate reports whether the string denotes a real calendar date.
func (dv *DateValidator) IsValidDate(s string) bool {
	_, ok := ParseDate(s)
	return ok
}

// IsInPast reports whether the date is strictly before the start of the
// current day. Invalid dates are never in the past.
func (dv *DateValidator) IsInPast(s string) bool {
	date, ok := ParseDate(s)
	if !ok {
		return false
	}
	return date.Before(dv.startOfToday())
}

// IsInFuture reports whether the date is strictly after the start of the
// current day. Invalid dates are never in the future.
func (dv *DateValidator) IsInFuture(s string) bool {
	date, ok := ParseDate(s)
	if !ok {
		return false
	}
	return date.After(dv.startOfToday())
}

// ValidateInvoiceDate applies the invoice date business rule: the date must
// be a real calendar date and must not be in the future. Today's date is
// valid.
func (dv *DateValidator) ValidateInvoiceDate(s string) DateCheckResult {
	if !dv.IsValidDate(s) {
		return DateCheckResult{
			IsValid: false,
			Message: "Invoice date is not a valid date",
		}
	}

	if dv.IsInFuture(s) {
		return DateCheckResult{
			IsValid: false,
			Message: "Invoice date cannot be in the future",
		}
	}

	return DateCheckResult{
		IsValid: true,
		Message: "Invoice date is valid",
	}
}

// startOfToday returns midnight of the clock's current day, in UTC to match
// the parsed date values.
func (dv *DateValidator) startOfToday() time.Time {
	now := dv.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
