package billing

import "github.com/shopspring/decimal"

// PaymentRequest is built per request and never persisted.
// It is deliberately not linked to a user.
type PaymentRequest struct {
	CardNumber string          `json:"cardNumber" form:"cardNumber"`
	CVV        string          `json:"cvv" form:"cvv"`
	Amount     decimal.Decimal `json:"amount" form:"amount"`

	// Only the stripe driver reads these.
	ExpMonth int64 `json:"expMonth,omitempty" form:"expMonth"`
	ExpYear  int64 `json:"expYear,omitempty" form:"expYear"`
}

func (r PaymentRequest) AmountValid() bool {
	return !r.Amount.IsNegative()
}

// AmountMinorUnits converts the amount to cents, rounding half away from zero.
func (r PaymentRequest) AmountMinorUnits() int64 {
	return r.Amount.Shift(2).Round(0).IntPart()
}
