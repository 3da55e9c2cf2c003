package dto

import (
	"bytes"
	"encoding/json"

	"credit-card-service/internal/core/domain"
	"credit-card-service/internal/core/validation"
)

// CreateCardRequest is the request body for card registration.
// Limit is kept raw so that both 500 and "500" are accepted and so that
// a rejected value can be echoed back verbatim.
type CreateCardRequest struct {
	Number string          `json:"number"`
	Name   string          `json:"name"`
	Expiry string          `json:"expiry"`
	Limit  json.RawMessage `json:"limit"`
}

// ToCardCreation converts the body into the validator's input, sanitizing
// the card number on the way.
func (r CreateCardRequest) ToCardCreation() validation.CardCreation {
	return validation.CardCreation{
		Number: domain.SanitizeCardNumber(r.Number),
		Name:   r.Name,
		Expiry: r.Expiry,
		Limit:  LimitText(r.Limit),
	}
}

// UpdateLimitRequest is the request body for PUT /credit-cards/{number}.
type UpdateLimitRequest struct {
	Limit json.RawMessage `json:"limit"`
}

// TransactionRequest is the request body for charge and credit.
type TransactionRequest struct {
	Amount int64  `json:"amount"`
	ShopID string `json:"shopId"`
}

func (r TransactionRequest) ToDomain() domain.CardTransactionRequest {
	return domain.CardTransactionRequest{Amount: r.Amount, ShopID: r.ShopID}
}

// TransactionResponse is returned by charge and credit.
type TransactionResponse struct {
	TransactionID string `json:"transaction_id"`
}

// DependencyStatus reports one dependency in the health response.
type DependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// LimitText returns the textual form of a JSON limit value: strings are
// unquoted, any other literal is returned as written. Absent and null map
// to nil.
func LimitText(raw json.RawMessage) *string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return &s
		}
	}
	s := string(trimmed)
	return &s
}
