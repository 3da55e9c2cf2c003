package service

import (
	"context"
	"testing"

	"credit-card-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticShopDirectory_SameAccountForEveryShop(t *testing.T) {
	dir := NewStaticShopDirectory(testShopIBAN)

	a, err := dir.BankDetails(context.Background(), uuid.New().String())
	require.NoError(t, err)
	b, err := dir.BankDetails(context.Background(), uuid.New().String())
	require.NoError(t, err)

	assert.Equal(t, domain.BankPayment(testShopIBAN), a)
	assert.Equal(t, a, b)
}
