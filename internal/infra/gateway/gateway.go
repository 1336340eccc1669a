// Package gateway forwards payment requests to the external processor.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"userpay-app/internal/domain/billing"
)

var ErrRejected = errors.New("gateway: payment rejected")

// Response is the processor's answer, passed back to the caller unchanged.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type Client interface {
	Process(ctx context.Context, req billing.PaymentRequest) (Response, error)
}

// New picks a driver by name: "http" or "stripe".
func New(driver, baseURL string, timeout time.Duration, stripeKey, currency string) (Client, error) {
	switch driver {
	case "http", "":
		return NewHTTPClient(baseURL, timeout), nil
	case "stripe":
		return NewStripeClient(stripeKey, currency), nil
	default:
		return nil, fmt.Errorf("gateway: unknown driver %q", driver)
	}
}
