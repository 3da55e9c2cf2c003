package domain

// PaymentKind discriminates the PaymentDetails variants.
type PaymentKind string

const (
	PaymentKindCard PaymentKind = "CARD"
	PaymentKindBank PaymentKind = "BANK"
)

// PaymentDetails is one side of a transaction: either a card or a bank
// account. Only the field matching Kind is set, so two values compare equal
// with == exactly when they describe the same party.
type PaymentDetails struct {
	Kind PaymentKind
	Card CreditCard
	IBAN string
}

// CardPayment builds card-backed payment details.
func CardPayment(card CreditCard) PaymentDetails {
	return PaymentDetails{Kind: PaymentKindCard, Card: card}
}

// BankPayment builds bank-account payment details.
func BankPayment(iban string) PaymentDetails {
	return PaymentDetails{Kind: PaymentKindBank, IBAN: iban}
}

// String never exposes a full card number.
func (p PaymentDetails) String() string {
	switch p.Kind {
	case PaymentKindCard:
		return "card " + p.Card.MaskedNumber()
	case PaymentKindBank:
		return "bank " + p.IBAN
	default:
		return "unknown"
	}
}

// PaymentProcessorRequest is a fully resolved transaction. Amount is in cents.
type PaymentProcessorRequest struct {
	Creditor PaymentDetails
	Debtor   PaymentDetails
	Amount   int64
	ShopID   string
}

// CardTransactionRequest is the inbound charge/credit request.
type CardTransactionRequest struct {
	Amount int64  `json:"amount"`
	ShopID string `json:"shopId"`
}
