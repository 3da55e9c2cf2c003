package service

import (
	"context"
	"errors"
	"fmt"

	"credit-card-service/internal/core/domain"
	"credit-card-service/internal/core/ports"
	"credit-card-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CreditCardServiceImpl implements ports.CreditCardService.
type CreditCardServiceImpl struct {
	store     ports.CardStore
	processor ports.PaymentProcessor
	shops     ports.ShopDirectory
	log       zerolog.Logger
}

// NewCreditCardService creates a new CreditCardServiceImpl.
func NewCreditCardService(
	store ports.CardStore,
	processor ports.PaymentProcessor,
	shops ports.ShopDirectory,
	log zerolog.Logger,
) *CreditCardServiceImpl {
	return &CreditCardServiceImpl{
		store:     store,
		processor: processor,
		shops:     shops,
		log:       log,
	}
}

func (s *CreditCardServiceImpl) AddCard(ctx context.Context, card domain.CreditCard) (uuid.UUID, error) {
	card.Number = domain.SanitizeCardNumber(card.Number)

	id, err := s.store.Create(ctx, card)
	if err != nil {
		return uuid.Nil, storeError(fmt.Errorf("create card: %w", err))
	}

	s.log.Info().Str("card", card.MaskedNumber()).Str("card_id", id.String()).Msg("card added")
	return id, nil
}

func (s *CreditCardServiceImpl) GetCard(ctx context.Context, number domain.CardNumber) (*domain.CreditCard, error) {
	card, err := s.store.Get(ctx, number)
	if err != nil {
		return nil, storeError(fmt.Errorf("get card: %w", err))
	}
	return card, nil
}

func (s *CreditCardServiceImpl) ListCards(ctx context.Context) ([]domain.CreditCard, error) {
	cards, err := s.store.List(ctx)
	if err != nil {
		return nil, storeError(fmt.Errorf("list cards: %w", err))
	}
	return cards, nil
}

// UpdateLimit treats a missing card as an empty result, not an error.
func (s *CreditCardServiceImpl) UpdateLimit(ctx context.Context, number domain.CardNumber, limit int) (*domain.CreditCard, error) {
	updated, err := s.store.UpdateLimit(ctx, number, limit)
	if errors.Is(err, domain.ErrCardNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError(fmt.Errorf("update limit: %w", err))
	}
	if !updated {
		return nil, nil
	}

	s.log.Info().Str("card", domain.MaskCardNumber(number)).Int("limit", limit).Msg("card limit updated")
	return s.GetCard(ctx, number)
}

func (s *CreditCardServiceImpl) DeleteCard(ctx context.Context, number domain.CardNumber) error {
	err := s.store.Delete(ctx, number)
	if errors.Is(err, domain.ErrCardNotFound) {
		return apperror.ErrNotFound("credit card")
	}
	if err != nil {
		return storeError(fmt.Errorf("delete card: %w", err))
	}

	s.log.Info().Str("card", domain.MaskCardNumber(number)).Msg("card deleted")
	return nil
}

// ChargeCard moves money from the card to the shop.
func (s *CreditCardServiceImpl) ChargeCard(ctx context.Context, number domain.CardNumber, req domain.CardTransactionRequest) (uuid.UUID, error) {
	return s.transact(ctx, number, req, func(card, shop domain.PaymentDetails) (debtor, creditor domain.PaymentDetails) {
		return card, shop
	})
}

// CreditCard moves money from the shop to the card.
func (s *CreditCardServiceImpl) CreditCard(ctx context.Context, number domain.CardNumber, req domain.CardTransactionRequest) (uuid.UUID, error) {
	return s.transact(ctx, number, req, func(card, shop domain.PaymentDetails) (debtor, creditor domain.PaymentDetails) {
		return shop, card
	})
}

type directionFunc func(card, shop domain.PaymentDetails) (debtor, creditor domain.PaymentDetails)

func (s *CreditCardServiceImpl) transact(
	ctx context.Context,
	number domain.CardNumber,
	req domain.CardTransactionRequest,
	direction directionFunc,
) (uuid.UUID, error) {
	shop, err := s.shops.BankDetails(ctx, req.ShopID)
	if err != nil {
		return uuid.Nil, apperror.InternalError(fmt.Errorf("resolve shop %s: %w", req.ShopID, err))
	}

	card, err := s.GetCard(ctx, number)
	if err != nil {
		return uuid.Nil, err
	}
	if card == nil {
		return uuid.Nil, apperror.ErrNotFound("credit card")
	}

	debtor, creditor := direction(domain.CardPayment(*card), shop)
	return s.processor.Charge(ctx, domain.PaymentProcessorRequest{
		Debtor:   debtor,
		Creditor: creditor,
		Amount:   req.Amount,
		ShopID:   req.ShopID,
	})
}

// storeError maps a card store failure to its application error.
func storeError(err error) *apperror.AppError {
	if errors.Is(err, domain.ErrCardCipher) {
		return apperror.ErrEncryptionFailure(err)
	}
	return apperror.ErrDatabaseError(err)
}
