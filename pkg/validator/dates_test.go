package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	v := NewDateRangeValidator()

	t.Run("Valid", func(t *testing.T) {
		parsed, err := v.ParseDate("2026-09-10")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := v.ParseDate("")
		assert.ErrorIs(t, err, ErrEmptyDate)
	})

	t.Run("WrongFormat", func(t *testing.T) {
		for _, raw := range []string{"10-09-2026", "2026/09/10", "2026-9-1", "not a date"} {
			_, err := v.ParseDate(raw)
			assert.ErrorIs(t, err, ErrInvalidDateFormat, raw)
		}
	})
}

func TestParseRange(t *testing.T) {
	v := NewDateRangeValidator()

	t.Run("Valid", func(t *testing.T) {
		in, out, err := v.ParseRange("2026-09-10", "2026-09-12")
		require.NoError(t, err)
		assert.True(t, out.After(in))
	})

	t.Run("SameDay", func(t *testing.T) {
		_, _, err := v.ParseRange("2026-09-10", "2026-09-10")
		assert.ErrorIs(t, err, ErrCheckOutNotAfterCheckIn)
	})

	t.Run("CheckOutBeforeCheckIn", func(t *testing.T) {
		_, _, err := v.ParseRange("2026-09-12", "2026-09-10")
		assert.ErrorIs(t, err, ErrCheckOutNotAfterCheckIn)
	})

	t.Run("BadCheckIn", func(t *testing.T) {
		_, _, err := v.ParseRange("", "2026-09-12")
		assert.ErrorIs(t, err, ErrEmptyDate)
	})
}
