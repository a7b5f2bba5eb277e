package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/danielmaina/pension-ledger/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of fractional digits allowed
// for money amounts in the operating currency
const MaxDecimalPlaces = 2

// ParseAmount validates a decimal string and converts it to cents.
// The conversion is purely string based so no floating point ever touches a
// monetary value:
// - "150"    -> 15000
// - "150.5"  -> 15050
// - "150.50" -> 15050
// Negative values and more than 2 fractional digits are rejected.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, fmt.Errorf("%w: negative value", errs.ErrInvalidAmount)
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: malformed number", errs.ErrInvalidAmount)
	}

	var digits string
	if len(parts) == 1 {
		digits = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			digits = parts[0] + "00"
		case 1:
			digits = parts[0] + parts[1] + "0"
		case 2:
			digits = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// ParsePositiveAmount is ParseAmount restricted to strictly positive values.
// Monetary intents must always carry a positive amount.
func ParsePositiveAmount(amount string) (int64, error) {
	cents, err := ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents == 0 {
		return 0, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	return cents, nil
}

// FormatCents converts a cent amount to its canonical 2dp decimal string.
// For example 1015 becomes "10.15" and -50 becomes "-0.50".
func FormatCents(cents int64) string {
	isNegative := cents < 0
	if isNegative {
		cents = -cents
	}

	digits := strconv.FormatInt(cents, 10)
	for len(digits) < 3 {
		digits = "0" + digits
	}

	split := len(digits) - MaxDecimalPlaces
	formatted := digits[:split] + "." + digits[split:]
	if isNegative {
		return "-" + formatted
	}
	return formatted
}
