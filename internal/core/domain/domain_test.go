package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCardNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already clean", "5234567891112134", "5234567891112134"},
		{"spaces", " 5234 5678 9111 2134 ", "5234567891112134"},
		{"hyphens", "5234-5678-9111-2134", "5234567891112134"},
		{"underscores", "5234_5678_9111_2134", "5234567891112134"},
		{"tabs and mixed", "5234\t5678-9111_2134", "5234567891112134"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeCardNumber(tt.input))
		})
	}
}

func TestCreditCard_ExceedsLimit(t *testing.T) {
	tests := []struct {
		name   string
		limit  int
		amount int64
		want   bool
	}{
		{"unlimited small", 0, 1, false},
		{"unlimited huge", 0, 1 << 40, false},
		{"below limit", 500, 499, false},
		{"at limit", 500, 500, false},
		{"above limit", 500, 501, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := CreditCard{Limit: tt.limit}
			assert.Equal(t, tt.want, card.ExceedsLimit(tt.amount))
		})
	}
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "************2134", MaskCardNumber("5234567891112134"))
	assert.Equal(t, "***", MaskCardNumber("123"))
	assert.Equal(t, "", MaskCardNumber(""))
}

func TestPaymentDetails_Equality(t *testing.T) {
	card := CreditCard{Number: "5234567891112134", Name: "foo", Expiry: "11/30", Limit: 0}

	assert.True(t, CardPayment(card) == CardPayment(card))
	assert.True(t, BankPayment("IE04BOFI900017934739") == BankPayment("IE04BOFI900017934739"))
	assert.False(t, CardPayment(card) == BankPayment("IE04BOFI900017934739"))

	other := card
	other.Limit = 100
	assert.False(t, CardPayment(card) == CardPayment(other))
}

func TestPaymentDetails_StringMasksCard(t *testing.T) {
	card := CreditCard{Number: "5234567891112134"}
	assert.Equal(t, "card ************2134", CardPayment(card).String())
	assert.NotContains(t, CardPayment(card).String(), "52345678")
	assert.Equal(t, "bank IE04", BankPayment("IE04").String())
}

func TestPaymentKind_Constants(t *testing.T) {
	assert.Equal(t, PaymentKind("CARD"), PaymentKindCard)
	assert.Equal(t, PaymentKind("BANK"), PaymentKindBank)
}
