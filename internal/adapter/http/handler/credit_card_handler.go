package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"credit-card-service/internal/adapter/http/dto"
	"credit-card-service/internal/core/domain"
	"credit-card-service/internal/core/ports"
	"credit-card-service/internal/core/validation"
	"credit-card-service/pkg/apperror"
	"credit-card-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreditCardHandler serves the /credit-cards routes.
type CreditCardHandler struct {
	svc ports.CreditCardService
	now func() time.Time
}

func NewCreditCardHandler(svc ports.CreditCardService) *CreditCardHandler {
	return &CreditCardHandler{svc: svc, now: time.Now}
}

// Create handles POST /credit-cards.
// Every failed rule is reported, in rule order, as a 400 message list.
func (h *CreditCardHandler) Create(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bodyError(err))
		return
	}
	dto.TrimStrings(&req)

	creation := req.ToCardCreation()
	if msgs := validation.ValidateCardCreation(creation, h.now()); len(msgs) > 0 {
		response.Error(c, apperror.ValidationFailure(msgs))
		return
	}

	limit, _ := validation.ParseLimit(creation.Limit)
	card := domain.CreditCard{
		Number: creation.Number,
		Name:   creation.Name,
		Expiry: creation.Expiry,
		Limit:  limit,
	}
	if _, err := h.svc.AddCard(c.Request.Context(), card); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, card)
}

// List handles GET /credit-cards.
func (h *CreditCardHandler) List(c *gin.Context) {
	cards, err := h.svc.ListCards(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if cards == nil {
		cards = []domain.CreditCard{}
	}
	response.OK(c, cards)
}

// Get handles GET /credit-cards/:number.
func (h *CreditCardHandler) Get(c *gin.Context) {
	card, err := h.svc.GetCard(c.Request.Context(), cardNumberParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	if card == nil {
		response.Error(c, apperror.ErrNotFound("credit card"))
		return
	}
	response.OK(c, card)
}

// UpdateLimit handles PUT /credit-cards/:number.
// The body is read as text so that a rejected request can be echoed back.
func (h *CreditCardHandler) UpdateLimit(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, bodyError(err))
		return
	}
	body = bytes.TrimSpace(body)

	var raw *string
	var req dto.UpdateLimitRequest
	if err := json.Unmarshal(body, &req); err == nil {
		raw = dto.LimitText(req.Limit)
	}
	limit, ok := validation.ParseLimit(raw)
	if !ok {
		response.Error(c, apperror.InvalidLimit(string(body)))
		return
	}

	card, err := h.svc.UpdateLimit(c.Request.Context(), cardNumberParam(c), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	if card == nil {
		response.Error(c, apperror.ErrNotFound("credit card"))
		return
	}
	response.OK(c, card)
}

// Delete handles DELETE /credit-cards/:number.
func (h *CreditCardHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteCard(c.Request.Context(), cardNumberParam(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Empty(c)
}

// Charge handles POST /credit-cards/:number/charge.
func (h *CreditCardHandler) Charge(c *gin.Context) {
	h.transact(c, h.svc.ChargeCard)
}

// Credit handles POST /credit-cards/:number/credit.
func (h *CreditCardHandler) Credit(c *gin.Context) {
	h.transact(c, h.svc.CreditCard)
}

type transactFunc func(ctx context.Context, number domain.CardNumber, req domain.CardTransactionRequest) (uuid.UUID, error)

func (h *CreditCardHandler) transact(c *gin.Context, fn transactFunc) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bodyError(err))
		return
	}
	dto.TrimStrings(&req)

	txReq := req.ToDomain()
	if msgs := validation.ValidateCardTransaction(txReq); len(msgs) > 0 {
		response.Error(c, apperror.ValidationFailure(msgs))
		return
	}

	id, err := fn(c.Request.Context(), cardNumberParam(c), txReq)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.TransactionResponse{TransactionID: id.String()})
}

func cardNumberParam(c *gin.Context) domain.CardNumber {
	return domain.SanitizeCardNumber(c.Param("number"))
}

// bodyError maps a body read or decode failure to a client error.
func bodyError(err error) *apperror.AppError {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperror.ErrPayloadTooLarge()
	}
	return apperror.ErrInvalidRequest()
}
