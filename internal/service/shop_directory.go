package service

import (
	"context"

	"credit-card-service/internal/core/domain"
)

// StaticShopDirectory implements ports.ShopDirectory with one configured
// bank account shared by every shop.
type StaticShopDirectory struct {
	iban string
}

func NewStaticShopDirectory(iban string) *StaticShopDirectory {
	return &StaticShopDirectory{iban: iban}
}

func (d *StaticShopDirectory) BankDetails(_ context.Context, _ string) (domain.PaymentDetails, error) {
	return domain.BankPayment(d.iban), nil
}
