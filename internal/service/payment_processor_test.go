package service

import (
	"context"
	"errors"
	"testing"

	"credit-card-service/internal/core/domain"
	"credit-card-service/internal/core/ports"
	"credit-card-service/internal/core/ports/mocks"
	"credit-card-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testShopIBAN = "IE04BOFI900017934739"

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func setupProcessor(t *testing.T) (*PaymentProcessorImpl, *mocks.MockPaymentGateway) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockPaymentGateway(ctrl)
	return NewPaymentProcessor(gw, zerolog.Nop()), gw
}

func testCard(limit int) domain.CreditCard {
	return domain.CreditCard{Number: "5234567891112134", Name: "foo", Expiry: "11/29", Limit: limit}
}

func TestPaymentProcessor_Charge_Success(t *testing.T) {
	p, gw := setupProcessor(t)
	ctx := context.Background()
	shopID := uuid.NewString()
	txID := uuid.New()

	gw.EXPECT().Submit(ctx, ports.GatewayRequest{Amount: 512, ShopID: shopID}).Return(txID, nil)

	got, err := p.Charge(ctx, domain.PaymentProcessorRequest{
		Debtor:   domain.CardPayment(testCard(0)),
		Creditor: domain.BankPayment(testShopIBAN),
		Amount:   512,
		ShopID:   shopID,
	})
	require.NoError(t, err)
	assert.Equal(t, txID, got)
}

func TestPaymentProcessor_Charge_SameParty(t *testing.T) {
	p, _ := setupProcessor(t)

	for _, amount := range []int64{-1, 0, 1, 1_000_000} {
		_, err := p.Charge(context.Background(), domain.PaymentProcessorRequest{
			Debtor:   domain.BankPayment(testShopIBAN),
			Creditor: domain.BankPayment(testShopIBAN),
			Amount:   amount,
		})
		assertAppError(t, err, "PAY_010")
	}

	_, err := p.Charge(context.Background(), domain.PaymentProcessorRequest{
		Debtor:   domain.CardPayment(testCard(10)),
		Creditor: domain.CardPayment(testCard(10)),
		Amount:   5,
	})
	assertAppError(t, err, "PAY_010")
}

func TestPaymentProcessor_Charge_NonPositiveAmount(t *testing.T) {
	p, _ := setupProcessor(t)

	for _, amount := range []int64{0, -512} {
		_, err := p.Charge(context.Background(), domain.PaymentProcessorRequest{
			Debtor:   domain.CardPayment(testCard(0)),
			Creditor: domain.BankPayment(testShopIBAN),
			Amount:   amount,
		})
		assertAppError(t, err, "PAY_002")
	}
}

func TestPaymentProcessor_Charge_LimitRules(t *testing.T) {
	tests := []struct {
		name     string
		debtor   domain.PaymentDetails
		creditor domain.PaymentDetails
		amount   int64
		wantErr  string
	}{
		{"unlimited card any amount", domain.CardPayment(testCard(0)), domain.BankPayment(testShopIBAN), 999_999_999, ""},
		{"amount equal to limit", domain.CardPayment(testCard(500)), domain.BankPayment(testShopIBAN), 500, ""},
		{"amount below limit", domain.CardPayment(testCard(500)), domain.BankPayment(testShopIBAN), 1, ""},
		{"amount above limit", domain.CardPayment(testCard(500)), domain.BankPayment(testShopIBAN), 501, "PAY_005"},
		{"bank debtor never limited", domain.BankPayment(testShopIBAN), domain.CardPayment(testCard(1)), 10_000, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, gw := setupProcessor(t)
			if tt.wantErr == "" {
				gw.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
			}

			_, err := p.Charge(context.Background(), domain.PaymentProcessorRequest{
				Debtor:   tt.debtor,
				Creditor: tt.creditor,
				Amount:   tt.amount,
				ShopID:   uuid.NewString(),
			})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assertAppError(t, err, tt.wantErr)
		})
	}
}

func TestPaymentProcessor_Charge_GatewayFailure(t *testing.T) {
	p, gw := setupProcessor(t)

	gw.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("Something went wrong"))

	_, err := p.Charge(context.Background(), domain.PaymentProcessorRequest{
		Debtor:   domain.CardPayment(testCard(0)),
		Creditor: domain.BankPayment(testShopIBAN),
		Amount:   100,
		ShopID:   uuid.NewString(),
	})
	assertAppError(t, err, "PAY_011")

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Something went wrong", appErr.Message)
}

func TestPaymentProcessor_Charge_UnknownKind(t *testing.T) {
	p, _ := setupProcessor(t)

	_, err := p.Charge(context.Background(), domain.PaymentProcessorRequest{
		Debtor:   domain.PaymentDetails{Kind: "CRYPTO"},
		Creditor: domain.BankPayment(testShopIBAN),
		Amount:   100,
	})
	assertAppError(t, err, "SYS_001")
}
