package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"

	"credit-card-service/internal/core/domain"

	"github.com/google/uuid"
)

// CardStore persists credit cards. Card numbers are encrypted inside the
// store; callers always see plaintext values.
type CardStore interface {
	// Create inserts the card and returns its generated id.
	Create(ctx context.Context, card domain.CreditCard) (uuid.UUID, error)
	// Get returns (nil, nil) when no card matches the number.
	Get(ctx context.Context, number domain.CardNumber) (*domain.CreditCard, error)
	List(ctx context.Context) ([]domain.CreditCard, error)
	// UpdateLimit returns domain.ErrCardNotFound when no row was updated.
	UpdateLimit(ctx context.Context, number domain.CardNumber, limit int) (bool, error)
	// Delete returns domain.ErrCardNotFound when no row was deleted.
	Delete(ctx context.Context, number domain.CardNumber) error
}
