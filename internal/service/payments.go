package service

import (
	"context"

	"userpay-app/internal/domain/access"
	"userpay-app/internal/domain/billing"
	"userpay-app/internal/infra/gateway"

	"go.uber.org/zap"
)

const (
	msgInvalidAmount = "Invalid amount."

	// PaymentHistoryListing stands in for the unimplemented history listing.
	PaymentHistoryListing = "Payment history..."
)

type PaymentStore interface {
	PaymentsByUser(ctx context.Context, userID uint) ([]billing.PaymentRecord, error)
}

type PaymentService struct {
	store   PaymentStore
	gateway gateway.Client
	gate    access.Gate
	log     *zap.Logger
}

func NewPaymentService(st PaymentStore, gw gateway.Client, gate access.Gate, log *zap.Logger) *PaymentService {
	return &PaymentService{store: st, gateway: gw, gate: gate, log: log}
}

// ProcessPayment forwards the request to the gateway once. The gateway's body
// is returned untouched.
func (s *PaymentService) ProcessPayment(ctx context.Context, capability access.Capability, req billing.PaymentRequest) (gateway.Response, error) {
	if err := s.gate.Authorize(ctx, capability, access.ActionProcessPayment, 0); err != nil {
		return gateway.Response{}, err
	}

	if !req.AmountValid() {
		return gateway.Response{}, invalid(msgInvalidAmount)
	}

	resp, err := s.gateway.Process(ctx, req)
	if err != nil {
		return gateway.Response{}, internal("process payment", err)
	}
	return resp, nil
}

func (s *PaymentService) GetPaymentHistory(ctx context.Context, capability access.Capability, userID uint) (string, error) {
	if err := s.gate.Authorize(ctx, capability, access.ActionReadPaymentHistory, userID); err != nil {
		return "", err
	}

	records, err := s.store.PaymentsByUser(ctx, userID)
	if err != nil {
		return "", internal("payment history", err)
	}

	s.log.Debug("payment history looked up", zap.Uint("user_id", userID), zap.Int("records", len(records)))
	return PaymentHistoryListing, nil
}
