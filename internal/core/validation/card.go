// Package validation holds the field rules applied to inbound card and
// transaction requests before they reach the service layer.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	MsgEmptyName         = "Name cannot be empty"
	MsgInvalidCardNumber = "Invalid card number. Must be 15 or 16 digits long"
	MsgUnsupportedVendor = "Unsupported card vendor, supported vendors: VISA, MASTERCARD"
	MsgCardExpired       = "Card expired"
	msgInvalidLimit      = "Invalid limit "
)

// Vendor is a card network identified by the first digit of the number.
type Vendor struct {
	Name    string
	IDDigit byte
}

// SupportedVendors lists accepted vendors in message order.
var SupportedVendors = []Vendor{
	{Name: "VISA", IDDigit: '4'},
	{Name: "MASTERCARD", IDDigit: '5'},
}

var (
	cardNumberRe = regexp.MustCompile(`^[0-9]{15,16}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
)

// CardCreation is an unvalidated card creation request. Limit is nil when
// the client sent no limit at all.
type CardCreation struct {
	Number string
	Name   string
	Expiry string
	Limit  *string
}

// ValidateCardCreation runs every card rule and returns all failure
// messages in rule order. An empty result means the request is valid.
func ValidateCardCreation(req CardCreation, now time.Time) []string {
	var msgs []string
	if !IsValidName(req.Name) {
		msgs = append(msgs, MsgEmptyName)
	}
	if !IsValidCardNumber(req.Number) {
		msgs = append(msgs, MsgInvalidCardNumber)
	}
	if !IsSupportedVendor(req.Number) {
		msgs = append(msgs, MsgUnsupportedVendor)
	}
	if !IsNotExpired(req.Expiry, now) {
		msgs = append(msgs, MsgCardExpired)
	}
	if _, ok := ParseLimit(req.Limit); !ok {
		msgs = append(msgs, InvalidLimitMessage(req.Limit))
	}
	return msgs
}

func IsValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func IsValidCardNumber(number string) bool {
	return cardNumberRe.MatchString(number)
}

func IsSupportedVendor(number string) bool {
	if number == "" {
		return false
	}
	for _, v := range SupportedVendors {
		if number[0] == v.IDDigit {
			return true
		}
	}
	return false
}

// IsNotExpired accepts MM/YY with MM in 01-12 and YY in 23-99, as long as
// that month is not before the month of now.
func IsNotExpired(expiry string, now time.Time) bool {
	m := expiryRe.FindStringSubmatch(expiry)
	if m == nil {
		return false
	}
	month, _ := strconv.Atoi(m[1])
	yy, _ := strconv.Atoi(m[2])
	if yy < 23 {
		return false
	}
	expiresAt := (2000+yy)*12 + month
	current := now.Year()*12 + int(now.Month())
	return expiresAt >= current
}

// ParseLimit accepts exactly the non-negative integers that fit the 32-bit
// card_limit column.
func ParseLimit(raw *string) (int, bool) {
	if raw == nil {
		return 0, false
	}
	limit, err := strconv.ParseInt(*raw, 10, 32)
	if err != nil || limit < 0 {
		return 0, false
	}
	return int(limit), true
}

func IsValidLimit(raw *string) bool {
	_, ok := ParseLimit(raw)
	return ok
}

// InvalidLimitMessage renders a missing limit as "null".
func InvalidLimitMessage(raw *string) string {
	if raw == nil {
		return msgInvalidLimit + "null"
	}
	return msgInvalidLimit + *raw
}
