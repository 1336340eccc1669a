package billing

import (
	"net/http"
	"strconv"

	"userpay-app/internal/api/respond"
	"userpay-app/internal/app/http/middleware"
	"userpay-app/internal/domain/billing"
	"userpay-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgPaymentFailed = "Error processing payment"

type Handler struct {
	svc *service.PaymentService
	log *zap.Logger
}

func NewHandler(svc *service.PaymentService, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// POST /api/payment/process
func (h *Handler) ProcessPayment(c *gin.Context) {
	var req billing.PaymentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid payment request.")
		return
	}

	resp, err := h.svc.ProcessPayment(c.Request.Context(), middleware.CapabilityFrom(c), req)
	if err != nil {
		respond.Error(c, h.log, err, msgPaymentFailed)
		return
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "text/plain; charset=utf-8"
	}
	c.Data(http.StatusOK, contentType, resp.Body)
}

// GET /api/payment/history?userId=
func (h *Handler) GetPaymentHistory(c *gin.Context) {
	userID, err := strconv.ParseUint(c.DefaultQuery("userId", "0"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid user id.")
		return
	}

	listing, err := h.svc.GetPaymentHistory(c.Request.Context(), middleware.CapabilityFrom(c), uint(userID))
	if err != nil {
		respond.Error(c, h.log, err, respond.InternalMessage)
		return
	}

	c.String(http.StatusOK, listing)
}
