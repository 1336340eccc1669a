package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"userpay-app/internal/domain/billing"
	"userpay-app/internal/metrics"
)

const maxResponseBytes = 1 << 20

type processPayload struct {
	CardNumber string      `json:"cardNumber"`
	CVV        string      `json:"cvv"`
	Amount     json.Number `json:"amount"`
	ExpMonth   int64       `json:"expMonth,omitempty"`
	ExpYear    int64       `json:"expYear,omitempty"`
}

// HTTPClient posts the request as JSON to <baseURL>/process.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient builds a client for a fixed gateway address. A zero timeout
// means the call is bounded only by the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Process(ctx context.Context, req billing.PaymentRequest) (Response, error) {
	resp, err := c.process(ctx, req)
	if err != nil {
		metrics.GatewayCalls.WithLabelValues("http", "error").Inc()
		return Response{}, err
	}
	metrics.GatewayCalls.WithLabelValues("http", "ok").Inc()
	return resp, nil
}

func (c *HTTPClient) process(ctx context.Context, req billing.PaymentRequest) (Response, error) {
	payload, err := json.Marshal(processPayload{
		CardNumber: req.CardNumber,
		CVV:        req.CVV,
		Amount:     json.Number(req.Amount.String()),
		ExpMonth:   req.ExpMonth,
		ExpYear:    req.ExpYear,
	})
	if err != nil {
		return Response{}, fmt.Errorf("encode payment: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/process", bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("build gateway request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("call gateway: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return Response{}, fmt.Errorf("read gateway response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return Response{}, fmt.Errorf("%w: status %d", ErrRejected, res.StatusCode)
	}

	return Response{
		StatusCode:  res.StatusCode,
		ContentType: res.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
