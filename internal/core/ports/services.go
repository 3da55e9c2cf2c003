package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"credit-card-service/internal/core/domain"

	"github.com/google/uuid"
)

// CardCipher encrypts card numbers. Encrypt must be deterministic for a
// given key so ciphertexts can be used as lookup keys.
type CardCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// GatewayTokenIssuer mints bearer tokens for payment gateway calls.
type GatewayTokenIssuer interface {
	Issue(shopID string) (string, time.Time, error)
}

// GatewayRequest is the body sent to the payment gateway.
type GatewayRequest struct {
	Amount int64  `json:"amount"`
	ShopID string `json:"shopId"`
}

// PaymentGateway submits a single transaction to the external gateway.
// Any non-success answer is returned as an error carrying the gateway's text.
type PaymentGateway interface {
	Submit(ctx context.Context, req GatewayRequest) (uuid.UUID, error)
}

// ShopDirectory resolves the banking details of a shop.
type ShopDirectory interface {
	BankDetails(ctx context.Context, shopID string) (domain.PaymentDetails, error)
}

// --- Service Ports (Business Logic) ---

// PaymentProcessor applies transaction rules and forwards to the gateway.
type PaymentProcessor interface {
	Charge(ctx context.Context, req domain.PaymentProcessorRequest) (uuid.UUID, error)
}

// CreditCardService orchestrates card management and card transactions.
type CreditCardService interface {
	AddCard(ctx context.Context, card domain.CreditCard) (uuid.UUID, error)
	// GetCard returns (nil, nil) when the card does not exist.
	GetCard(ctx context.Context, number domain.CardNumber) (*domain.CreditCard, error)
	ListCards(ctx context.Context) ([]domain.CreditCard, error)
	// UpdateLimit returns (nil, nil) when the card does not exist.
	UpdateLimit(ctx context.Context, number domain.CardNumber, limit int) (*domain.CreditCard, error)
	DeleteCard(ctx context.Context, number domain.CardNumber) error
	// ChargeCard debits the card and credits the shop.
	ChargeCard(ctx context.Context, number domain.CardNumber, req domain.CardTransactionRequest) (uuid.UUID, error)
	// CreditCard debits the shop and credits the card.
	CreditCard(ctx context.Context, number domain.CardNumber, req domain.CardTransactionRequest) (uuid.UUID, error)
}
