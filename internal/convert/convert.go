// Package convert turns an amount and a rate into display text.
package convert

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Digits is the number of fractional digits in converted text.
const Digits = 4

// ErrInvalidAmount means the amount text is not a finite number.
var ErrInvalidAmount = errors.New("amount is not a number")

// ParseAmount parses user input. Empty, NaN and infinite values are rejected.
func ParseAmount(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// Convert multiplies amountText by rate and renders exactly four fractional
// digits, e.g. Convert("100", 0.9123) == "91.2300".
func Convert(amountText string, rate float64) (string, error) {
	amount, err := ParseAmount(amountText)
	if err != nil {
		return "", err
	}
	product := amount * rate
	if math.IsNaN(product) || math.IsInf(product, 0) {
		return "", ErrInvalidAmount
	}
	return Fixed(product, Digits), nil
}

// Fixed renders v rounded half away from zero to places fractional digits.
func Fixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}
