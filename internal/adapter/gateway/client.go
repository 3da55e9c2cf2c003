// Package gateway talks to the external payment gateway.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"credit-card-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

const maxResponseBytes = 64 << 10

var gatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ccs_gateway_requests_total",
	Help: "Payment gateway calls, labeled by outcome",
}, []string{"outcome"})

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RejectedError is a non-success gateway answer. Its text is the gateway's
// own error content.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	return e.Message
}

type submitResponse struct {
	TransactionID uuid.UUID `json:"transactionId"`
}

// Client implements ports.PaymentGateway over HTTP.
type Client struct {
	endpoint   string
	httpClient HTTPClient
	tokens     ports.GatewayTokenIssuer
	log        zerolog.Logger
}

// NewClient creates a gateway client posting to endpoint.
func NewClient(endpoint string, httpClient HTTPClient, tokens ports.GatewayTokenIssuer, log zerolog.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		tokens:     tokens,
		log:        log,
	}
}

// Submit sends one transaction. It never retries.
func (c *Client) Submit(ctx context.Context, req ports.GatewayRequest) (uuid.UUID, error) {
	id, outcome, err := c.submit(ctx, req)
	gatewayRequestsTotal.WithLabelValues(outcome).Inc()
	if err != nil {
		c.log.Warn().Err(err).Str("outcome", outcome).Str("shop_id", req.ShopID).Msg("gateway call failed")
		return uuid.Nil, err
	}
	return id, nil
}

func (c *Client) submit(ctx context.Context, req ports.GatewayRequest) (uuid.UUID, string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return uuid.Nil, "encode_error", fmt.Errorf("marshal gateway request: %w", err)
	}

	token, _, err := c.tokens.Issue(req.ShopID)
	if err != nil {
		return uuid.Nil, "auth_error", fmt.Errorf("issue gateway token: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return uuid.Nil, "encode_error", fmt.Errorf("create gateway request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return uuid.Nil, "transport_error", err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return uuid.Nil, "transport_error", fmt.Errorf("read gateway response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(payload))
		if msg == "" {
			msg = resp.Status
		}
		return uuid.Nil, "rejected", &RejectedError{StatusCode: resp.StatusCode, Message: msg}
	}

	var out submitResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return uuid.Nil, "invalid_response", fmt.Errorf("decode gateway response: %w", err)
	}
	if out.TransactionID == uuid.Nil {
		return uuid.Nil, "invalid_response", errors.New("gateway response without transaction id")
	}

	return out.TransactionID, "success", nil
}
