package service

import (
	"context"
	"fmt"

	"credit-card-service/internal/core/domain"
	"credit-card-service/internal/core/ports"
	"credit-card-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PaymentProcessorImpl implements ports.PaymentProcessor.
type PaymentProcessorImpl struct {
	gateway ports.PaymentGateway
	log     zerolog.Logger
}

// NewPaymentProcessor creates a new PaymentProcessorImpl.
func NewPaymentProcessor(gateway ports.PaymentGateway, log zerolog.Logger) *PaymentProcessorImpl {
	return &PaymentProcessorImpl{
		gateway: gateway,
		log:     log,
	}
}

// Charge checks the transaction rules in order, first failure wins, then
// submits a single gateway request. There are no retries.
func (p *PaymentProcessorImpl) Charge(ctx context.Context, req domain.PaymentProcessorRequest) (uuid.UUID, error) {
	if req.Debtor == req.Creditor {
		return uuid.Nil, apperror.ErrSameParty()
	}
	if req.Amount <= 0 {
		return uuid.Nil, apperror.ErrInvalidAmount()
	}
	if err := checkDebtorLimit(req.Debtor, req.Amount); err != nil {
		return uuid.Nil, err
	}

	log := p.log.With().
		Str("debtor", req.Debtor.String()).
		Str("creditor", req.Creditor.String()).
		Int64("amount", req.Amount).
		Str("shop_id", req.ShopID).
		Logger()

	txID, err := p.gateway.Submit(ctx, ports.GatewayRequest{
		Amount: req.Amount,
		ShopID: req.ShopID,
	})
	if err != nil {
		log.Warn().Err(err).Msg("gateway rejected transaction")
		return uuid.Nil, apperror.ErrGatewayRejected(err)
	}

	log.Info().Str("transaction_id", txID.String()).Msg("transaction processed")
	return txID, nil
}

// checkDebtorLimit applies the card limit to the paying side only. Bank
// accounts have no limit.
func checkDebtorLimit(debtor domain.PaymentDetails, amount int64) error {
	switch debtor.Kind {
	case domain.PaymentKindCard:
		if debtor.Card.ExceedsLimit(amount) {
			return apperror.ErrTransactionLimitExceeded()
		}
		return nil
	case domain.PaymentKindBank:
		return nil
	default:
		return apperror.InternalError(fmt.Errorf("unknown payment kind %q", debtor.Kind))
	}
}
