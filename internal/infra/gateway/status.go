package gateway

import (
	"strings"

	"github.com/stripe/stripe-go/v75"
)

// NormalizeIntentStatus folds Stripe payment intent states into
// succeeded|pending|failed.
func NormalizeIntentStatus(s stripe.PaymentIntentStatus) string {
	switch strings.TrimSpace(string(s)) {
	case string(stripe.PaymentIntentStatusSucceeded):
		return "succeeded"
	case string(stripe.PaymentIntentStatusProcessing),
		string(stripe.PaymentIntentStatusRequiresAction),
		string(stripe.PaymentIntentStatusRequiresCapture),
		string(stripe.PaymentIntentStatusRequiresConfirmation):
		return "pending"
	default:
		return "failed"
	}
}
