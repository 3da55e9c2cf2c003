package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"credit-card-service/internal/core/domain"
	"credit-card-service/internal/core/ports/mocks"
	"credit-card-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type cardServiceTestDeps struct {
	svc       *CreditCardServiceImpl
	store     *mocks.MockCardStore
	processor *mocks.MockPaymentProcessor
	shops     *mocks.MockShopDirectory
}

func setupCardService(t *testing.T) *cardServiceTestDeps {
	ctrl := gomock.NewController(t)
	d := &cardServiceTestDeps{
		store:     mocks.NewMockCardStore(ctrl),
		processor: mocks.NewMockPaymentProcessor(ctrl),
		shops:     mocks.NewMockShopDirectory(ctrl),
	}
	d.svc = NewCreditCardService(d.store, d.processor, d.shops, zerolog.Nop())
	return d
}

// ==================== Card management ====================

func TestCreditCardService_AddCard_SanitizesNumber(t *testing.T) {
	d := setupCardService(t)
	ctx := context.Background()
	id := uuid.New()

	d.store.EXPECT().Create(ctx, domain.CreditCard{
		Number: "5234567891112134", Name: "foo", Expiry: "11/29", Limit: 0,
	}).Return(id, nil)

	got, err := d.svc.AddCard(ctx, domain.CreditCard{
		Number: " 5234-5678 9111_2134 ", Name: "foo", Expiry: "11/29", Limit: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestCreditCardService_AddCard_StoreFailure(t *testing.T) {
	d := setupCardService(t)

	d.store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("duplicate key"))

	_, err := d.svc.AddCard(context.Background(), testCard(0))
	assertAppError(t, err, "SYS_001")
}

func TestCreditCardService_GetCard(t *testing.T) {
	d := setupCardService(t)
	ctx := context.Background()
	card := testCard(100)

	d.store.EXPECT().Get(ctx, card.Number).Return(&card, nil)

	got, err := d.svc.GetCard(ctx, card.Number)
	require.NoError(t, err)
	assert.Equal(t, &card, got)
}

func TestCreditCardService_GetCard_AbsentIsNotAnError(t *testing.T) {
	d := setupCardService(t)

	d.store.EXPECT().Get(gomock.Any(), "4123456789123456").Return(nil, nil)

	got, err := d.svc.GetCard(context.Background(), "4123456789123456")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreditCardService_GetCard_StoreFailure(t *testing.T) {
	d := setupCardService(t)

	d.store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := d.svc.GetCard(context.Background(), "4123456789123456")
	assertAppError(t, err, "SYS_001")
}

func TestCreditCardService_CipherFailureIsEncryptionError(t *testing.T) {
	d := setupCardService(t)
	cipherErr := fmt.Errorf("decrypt card number: %w: %w", domain.ErrCardCipher, errors.New("message authentication failed"))

	d.store.EXPECT().Get(gomock.Any(), "4123456789123456").Return(nil, cipherErr)
	d.store.EXPECT().List(gomock.Any()).Return(nil, cipherErr)

	_, err := d.svc.GetCard(context.Background(), "4123456789123456")
	assertAppError(t, err, "SYS_003")

	_, err = d.svc.ListCards(context.Background())
	assertAppError(t, err, "SYS_003")
}

func TestCreditCardService_ListCards(t *testing.T) {
	d := setupCardService(t)
	cards := []domain.CreditCard{testCard(0), {Number: "4123456789123456", Name: "bar", Expiry: "01/30"}}

	d.store.EXPECT().List(gomock.Any()).Return(cards, nil)

	got, err := d.svc.ListCards(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cards, got)
}

func TestCreditCardService_ListCards_StoreFailure(t *testing.T) {
	d := setupCardService(t)

	d.store.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := d.svc.ListCards(context.Background())
	assertAppError(t, err, "SYS_001")
}

func TestCreditCardService_UpdateLimit_RereadsCard(t *testing.T) {
	d := setupCardService(t)
	ctx := context.Background()
	updated := testCard(750)

	gomock.InOrder(
		d.store.EXPECT().UpdateLimit(ctx, updated.Number, 750).Return(true, nil),
		d.store.EXPECT().Get(ctx, updated.Number).Return(&updated, nil),
	)

	got, err := d.svc.UpdateLimit(ctx, updated.Number, 750)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 750, got.Limit)
}

func TestCreditCardService_UpdateLimit_NotFoundIsAbsent(t *testing.T) {
	d := setupCardService(t)

	d.store.EXPECT().UpdateLimit(gomock.Any(), "4123456789123456", 10).Return(false, domain.ErrCardNotFound)

	got, err := d.svc.UpdateLimit(context.Background(), "4123456789123456", 10)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreditCardService_UpdateLimit_FalseIsAbsent(t *testing.T) {
	d := setupCardService(t)

	d.store.EXPECT().UpdateLimit(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	got, err := d.svc.UpdateLimit(context.Background(), "4123456789123456", 10)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreditCardService_UpdateLimit_StoreFailure(t *testing.T) {
	d := setupCardService(t)

	d.store.EXPECT().UpdateLimit(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("timeout"))

	_, err := d.svc.UpdateLimit(context.Background(), "4123456789123456", 10)
	assertAppError(t, err, "SYS_001")
}

func TestCreditCardService_DeleteCard(t *testing.T) {
	d := setupCardService(t)

	d.store.EXPECT().Delete(gomock.Any(), "4123456789123456").Return(nil)

	assert.NoError(t, d.svc.DeleteCard(context.Background(), "4123456789123456"))
}

func TestCreditCardService_DeleteCard_NotFound(t *testing.T) {
	d := setupCardService(t)

	d.store.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(domain.ErrCardNotFound)

	err := d.svc.DeleteCard(context.Background(), "4123456789123456")
	assertAppError(t, err, "PAY_004")
}

func TestCreditCardService_DeleteCard_StoreFailure(t *testing.T) {
	d := setupCardService(t)

	d.store.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	err := d.svc.DeleteCard(context.Background(), "4123456789123456")
	assertAppError(t, err, "SYS_001")
}

// ==================== Transactions ====================

func TestCreditCardService_ChargeCard_CardIsDebtor(t *testing.T) {
	d := setupCardService(t)
	ctx := context.Background()
	card := testCard(0)
	shopID := uuid.NewString()
	txID := uuid.New()
	shop := domain.BankPayment(testShopIBAN)

	d.shops.EXPECT().BankDetails(ctx, shopID).Return(shop, nil)
	d.store.EXPECT().Get(ctx, card.Number).Return(&card, nil)
	d.processor.EXPECT().Charge(ctx, domain.PaymentProcessorRequest{
		Debtor:   domain.CardPayment(card),
		Creditor: shop,
		Amount:   512,
		ShopID:   shopID,
	}).Return(txID, nil)

	got, err := d.svc.ChargeCard(ctx, card.Number, domain.CardTransactionRequest{Amount: 512, ShopID: shopID})
	require.NoError(t, err)
	assert.Equal(t, txID, got)
}

func TestCreditCardService_CreditCard_CardIsCreditor(t *testing.T) {
	d := setupCardService(t)
	ctx := context.Background()
	card := testCard(10)
	shopID := uuid.NewString()
	txID := uuid.New()
	shop := domain.BankPayment(testShopIBAN)

	d.shops.EXPECT().BankDetails(ctx, shopID).Return(shop, nil)
	d.store.EXPECT().Get(ctx, card.Number).Return(&card, nil)
	d.processor.EXPECT().Charge(ctx, domain.PaymentProcessorRequest{
		Debtor:   shop,
		Creditor: domain.CardPayment(card),
		Amount:   9000,
		ShopID:   shopID,
	}).Return(txID, nil)

	got, err := d.svc.CreditCard(ctx, card.Number, domain.CardTransactionRequest{Amount: 9000, ShopID: shopID})
	require.NoError(t, err)
	assert.Equal(t, txID, got)
}

func TestCreditCardService_Transactions_CardNotFound(t *testing.T) {
	ops := map[string]func(d *cardServiceTestDeps) (uuid.UUID, error){
		"charge": func(d *cardServiceTestDeps) (uuid.UUID, error) {
			return d.svc.ChargeCard(context.Background(), "4123456789123456", domain.CardTransactionRequest{Amount: 1, ShopID: "s"})
		},
		"credit": func(d *cardServiceTestDeps) (uuid.UUID, error) {
			return d.svc.CreditCard(context.Background(), "4123456789123456", domain.CardTransactionRequest{Amount: 1, ShopID: "s"})
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			d := setupCardService(t)
			d.shops.EXPECT().BankDetails(gomock.Any(), "s").Return(domain.BankPayment(testShopIBAN), nil)
			d.store.EXPECT().Get(gomock.Any(), "4123456789123456").Return(nil, nil)

			_, err := op(d)
			assertAppError(t, err, "PAY_004")
		})
	}
}

func TestCreditCardService_ChargeCard_ProcessorRejectionPropagates(t *testing.T) {
	d := setupCardService(t)
	card := testCard(100)

	d.shops.EXPECT().BankDetails(gomock.Any(), gomock.Any()).Return(domain.BankPayment(testShopIBAN), nil)
	d.store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&card, nil)
	d.processor.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(uuid.Nil, apperror.ErrTransactionLimitExceeded())

	_, err := d.svc.ChargeCard(context.Background(), card.Number, domain.CardTransactionRequest{Amount: 101, ShopID: "s"})
	assertAppError(t, err, "PAY_005")
}

func TestCreditCardService_ChargeCard_ShopLookupFailure(t *testing.T) {
	d := setupCardService(t)

	d.shops.EXPECT().BankDetails(gomock.Any(), gomock.Any()).Return(domain.PaymentDetails{}, errors.New("directory down"))

	_, err := d.svc.ChargeCard(context.Background(), "4123456789123456", domain.CardTransactionRequest{Amount: 1, ShopID: "s"})
	assertAppError(t, err, "SYS_001")
}

func TestStaticShopDirectory(t *testing.T) {
	dir := NewStaticShopDirectory(testShopIBAN)

	details, err := dir.BankDetails(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, domain.BankPayment(testShopIBAN), details)
}
