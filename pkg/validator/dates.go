package validator

import (
	"errors"
	"time"
)

var (
	// ErrEmptyDate indicates a required date string is empty
	ErrEmptyDate = errors.New("date cannot be empty")

	// ErrInvalidDateFormat indicates the date is not in YYYY-MM-DD format
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

	// ErrCheckOutNotAfterCheckIn indicates check-out is not strictly after check-in
	ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")
)

// DateLayout is the wire format for stay dates
const DateLayout = "2006-01-02"

// DateRangeValidator handles stay date validation
type DateRangeValidator struct{}

// NewDateRangeValidator creates a new date range validator instance
func NewDateRangeValidator() *DateRangeValidator {
	return &DateRangeValidator{}
}

// ParseDate parses a single YYYY-MM-DD date string
func (v *DateRangeValidator) ParseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, ErrEmptyDate
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseRange parses a check-in/check-out pair and enforces that check-out is
// strictly after check-in.
func (v *DateRangeValidator) ParseRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := v.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := v.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, ErrCheckOutNotAfterCheckIn
	}
	return in, out, nil
}
