package domain

import (
	"errors"
	"regexp"
	"strings"
)

// ErrCardNotFound is returned by card store mutations that matched no row.
var ErrCardNotFound = errors.New("credit card not found")

// ErrCardCipher marks card store failures caused by encrypting or
// decrypting a card number.
var ErrCardCipher = errors.New("card number cipher failure")

// CardNumber is the sanitized card number used as the store lookup key.
type CardNumber = string

var cardNumberNoise = regexp.MustCompile(`[\s\-_]`)

// SanitizeCardNumber strips whitespace, hyphens and underscores.
func SanitizeCardNumber(number string) CardNumber {
	return cardNumberNoise.ReplaceAllString(strings.TrimSpace(number), "")
}

// CreditCard is a registered card. Limit is the per-transaction maximum in
// cents; 0 means unlimited.
type CreditCard struct {
	Number CardNumber `json:"number"`
	Name   string     `json:"name"`
	Expiry string     `json:"expiry"` // MM/YY
	Limit  int        `json:"limit"`
}

// HasLimit reports whether the card restricts transaction amounts.
func (c CreditCard) HasLimit() bool {
	return c.Limit > 0
}

// ExceedsLimit reports whether amount is above a non-zero card limit.
func (c CreditCard) ExceedsLimit(amount int64) bool {
	return c.HasLimit() && amount > int64(c.Limit)
}

// MaskedNumber returns the number with all but the last four digits hidden.
func (c CreditCard) MaskedNumber() string {
	return MaskCardNumber(c.Number)
}

// MaskCardNumber hides all but the last four digits of a card number.
func MaskCardNumber(number string) string {
	if len(number) <= 4 {
		return strings.Repeat("*", len(number))
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}
