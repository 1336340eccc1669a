package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"userpay-app/internal/domain/billing"
	"userpay-app/internal/metrics"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/paymentintent"
	"github.com/stripe/stripe-go/v75/paymentmethod"
)

// StripeClient settles the payment through a confirmed Stripe PaymentIntent.
// The JSON encoding of the resulting intent is the response body.
type StripeClient struct {
	apiKey   string
	currency string
}

func NewStripeClient(apiKey, currency string) *StripeClient {
	return &StripeClient{apiKey: apiKey, currency: currency}
}

func (c *StripeClient) Process(ctx context.Context, req billing.PaymentRequest) (Response, error) {
	resp, err := c.process(ctx, req)
	if err != nil {
		metrics.GatewayCalls.WithLabelValues("stripe", "error").Inc()
		return Response{}, err
	}
	metrics.GatewayCalls.WithLabelValues("stripe", "ok").Inc()
	return resp, nil
}

func (c *StripeClient) process(ctx context.Context, req billing.PaymentRequest) (Response, error) {
	stripe.Key = c.apiKey

	pmParams := &stripe.PaymentMethodParams{
		Type: stripe.String(string(stripe.PaymentMethodTypeCard)),
		Card: &stripe.PaymentMethodCardParams{
			Number:   stripe.String(req.CardNumber),
			CVC:      stripe.String(req.CVV),
			ExpMonth: stripe.Int64(req.ExpMonth),
			ExpYear:  stripe.Int64(req.ExpYear),
		},
	}
	pmParams.Context = ctx
	pm, err := paymentmethod.New(pmParams)
	if err != nil {
		return Response{}, fmt.Errorf("create payment method: %w", err)
	}

	piParams := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountMinorUnits()),
		Currency:      stripe.String(c.currency),
		PaymentMethod: stripe.String(pm.ID),
		Confirm:       stripe.Bool(true),
	}
	piParams.Context = ctx
	pi, err := paymentintent.New(piParams)
	if err != nil {
		return Response{}, fmt.Errorf("create payment intent: %w", err)
	}

	if NormalizeIntentStatus(pi.Status) == "failed" {
		return Response{}, fmt.Errorf("%w: intent %s is %s", ErrRejected, pi.ID, pi.Status)
	}

	body, err := json.Marshal(pi)
	if err != nil {
		return Response{}, fmt.Errorf("encode payment intent: %w", err)
	}

	return Response{
		StatusCode:  http.StatusOK,
		ContentType: "application/json",
		Body:        body,
	}, nil
}
