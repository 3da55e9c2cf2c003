package validation

import (
	"errors"

	"credit-card-service/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	MsgNonPositiveAmount = "Transaction amount must be greater 0"
	MsgInvalidShopID     = "Invalid shop ID"
)

type transactionInput struct {
	Amount int64  `validate:"gt=0"`
	ShopID string `validate:"shop_id"`
}

var (
	validate = newValidator()

	transactionMessages = map[string]string{
		"Amount": MsgNonPositiveAmount,
		"ShopID": MsgInvalidShopID,
	}
)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("shop_id", validateShopID)
	return v
}

// validateShopID accepts anything google/uuid can parse.
func validateShopID(fl validator.FieldLevel) bool {
	_, err := uuid.Parse(fl.Field().String())
	return err == nil
}

// ValidateCardTransaction checks the amount and the shop id independently
// and returns every failure message in field order.
func ValidateCardTransaction(req domain.CardTransactionRequest) []string {
	err := validate.Struct(transactionInput{Amount: req.Amount, ShopID: req.ShopID})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := transactionMessages[fe.StructField()]; ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
