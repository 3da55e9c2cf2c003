package response

import (
	"errors"
	"net/http"
	"time"

	"credit-card-service/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is echoed on every response.
const HeaderRequestID = "X-Request-ID"

// CtxRequestID is the gin context key holding the request id.
const CtxRequestID = "request_id"

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// OK sends a 200 response with the raw data as body.
func OK(c *gin.Context, data interface{}) {
	c.Header(HeaderRequestID, getRequestID(c))
	c.JSON(http.StatusOK, data)
}

// Empty sends a 200 response without a body.
func Empty(c *gin.Context) {
	c.Header(HeaderRequestID, getRequestID(c))
	c.Status(http.StatusOK)
}

// Error sends an error response. Validation failures are rendered as the
// plain list of messages; other *apperror.AppError values use the error
// envelope; anything else becomes a 500.
func Error(c *gin.Context, err error) {
	requestID := getRequestID(c)
	c.Header(HeaderRequestID, requestID)

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if len(appErr.Details) > 0 {
			c.JSON(appErr.HTTPStatus, appErr.Details)
			return
		}
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			ErrorCode: appErr.Code,
			Message:   appErr.Message,
			RequestID: requestID,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
		RequestID: requestID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get(CtxRequestID); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
