package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"150", 15000},
			{"150.5", 15050},
			{"150.50", 15050},
			{"0.01", 1},
			{"0", 0},
			{"0.00", 0},
			{"10.15", 1015},
			{" 25.00 ", 2500},
		}

		for _, tc := range testCases {
			cents, err := ParseAmount(tc.input)
			require.NoError(t, err, "input %q", tc.input)
			assert.Equal(t, tc.expected, cents, "input %q", tc.input)
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		invalid := []string{
			"",
			"-1",
			"-0.50",
			"1.234",
			"1.2.3",
			"abc",
		}

		for _, input := range invalid {
			_, err := ParseAmount(input)
			assert.Error(t, err, "input %q", input)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount, "input %q", input)
		}
	})

	t.Run("Trailing dot is two implicit zeros", func(t *testing.T) {
		cents, err := ParseAmount("10.")
		require.NoError(t, err)
		assert.Equal(t, int64(1000), cents)
	})
}

func TestParsePositiveAmount(t *testing.T) {
	t.Run("Rejects zero", func(t *testing.T) {
		_, err := ParsePositiveAmount("0.00")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Accepts positive", func(t *testing.T) {
		cents, err := ParsePositiveAmount("0.01")
		require.NoError(t, err)
		assert.Equal(t, int64(1), cents)
	})
}

func TestFormatCents(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{1015, "10.15"},
		{15050, "150.50"},
		{1, "0.01"},
		{0, "0.00"},
		{-50, "-0.50"},
		{100, "1.00"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FormatCents(tc.cents), "cents %d", tc.cents)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	cents, err := ParseAmount("1234.56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", FormatCents(cents))
}
