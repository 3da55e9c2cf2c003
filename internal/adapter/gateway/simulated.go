package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"

	"credit-card-service/internal/core/ports"

	"github.com/google/uuid"
)

const simulatedFailure = "Something went wrong"

// TokenVerifier checks a gateway bearer token and returns its shop id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// SimulatedTransport is an http.RoundTripper that stands in for the real
// payment gateway. It fails with probability failRate and otherwise
// answers with a fresh transaction id.
type SimulatedTransport struct {
	failRate float64
	verifier TokenVerifier
}

// NewSimulatedTransport creates the in-process gateway. A nil verifier
// accepts any bearer token.
func NewSimulatedTransport(failRate float64, verifier TokenVerifier) *SimulatedTransport {
	return &SimulatedTransport{failRate: failRate, verifier: verifier}
}

func (t *SimulatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		defer req.Body.Close()
	}

	if req.Method != http.MethodPost {
		return textResponse(req, http.StatusMethodNotAllowed, "Method not allowed"), nil
	}

	var body ports.GatewayRequest
	if req.Body == nil || json.NewDecoder(req.Body).Decode(&body) != nil {
		return textResponse(req, http.StatusBadRequest, "Malformed request"), nil
	}

	if t.verifier != nil {
		token, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
		if !ok {
			return textResponse(req, http.StatusUnauthorized, "Unauthorized"), nil
		}
		shopID, err := t.verifier.Verify(token)
		if err != nil || shopID != body.ShopID {
			return textResponse(req, http.StatusUnauthorized, "Unauthorized"), nil
		}
	}

	if rand.Float64() < t.failRate {
		return textResponse(req, http.StatusInternalServerError, simulatedFailure), nil
	}

	payload, err := json.Marshal(submitResponse{TransactionID: uuid.New()})
	if err != nil {
		return nil, fmt.Errorf("encode simulated response: %w", err)
	}
	resp := textResponse(req, http.StatusOK, string(payload))
	resp.Header.Set("Content-Type", "application/json")
	return resp, nil
}

func textResponse(req *http.Request, status int, body string) *http.Response {
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{"Content-Type": []string{"text/plain; charset=utf-8"}},
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
