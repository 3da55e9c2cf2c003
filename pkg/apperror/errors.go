package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string   `json:"error_code"`
	Message    string   `json:"message"`
	Details    []string `json:"details,omitempty"` // Ordered validation messages
	HTTPStatus int      `json:"-"`
	Err        error    `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// ValidationFailure carries every violated rule, in rule order.
func ValidationFailure(messages []string) *AppError {
	return &AppError{
		Code:       "VAL_001",
		Message:    strings.Join(messages, "; "),
		Details:    messages,
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidLimit is returned when an update-limit body has no usable limit.
func InvalidLimit(raw string) *AppError {
	return New("VAL_002", "Invalid limit "+raw, http.StatusBadRequest)
}

// ErrInvalidRequest is returned when a body cannot be decoded at all.
func ErrInvalidRequest() *AppError {
	return New("VAL_003", "Invalid request", http.StatusBadRequest)
}

func ErrPayloadTooLarge() *AppError {
	return New("VAL_004", "Request body too large", http.StatusRequestEntityTooLarge)
}

// ---- Payment Business Logic (PAY) ----
// Processor rejections surface as internal errors to callers.

func ErrInvalidAmount() *AppError {
	return New("PAY_002", "Amount must be greater 0", http.StatusInternalServerError)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrTransactionLimitExceeded() *AppError {
	return New("PAY_005", "Transaction amount exceeds card limit", http.StatusInternalServerError)
}

func ErrSameParty() *AppError {
	return New("PAY_010", "Debtor and creditor cannot be the same", http.StatusInternalServerError)
}

// ErrGatewayRejected carries the gateway's own error text as the message.
func ErrGatewayRejected(err error) *AppError {
	return Wrap("PAY_011", err.Error(), http.StatusInternalServerError, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
