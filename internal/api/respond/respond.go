// Package respond maps service errors onto HTTP responses. Internal failures
// are logged in full and answered with a fixed message.
package respond

import (
	"errors"
	"net/http"

	"userpay-app/internal/domain/access"
	"userpay-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const InternalMessage = "An internal error occurred."

// Error writes the response for err. internalMsg is the body used for any
// failure that is not a validation, not-found or access error.
func Error(c *gin.Context, log *zap.Logger, err error, internalMsg string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.String(http.StatusBadRequest, verr.Message)
	case errors.Is(err, service.ErrNotFound):
		c.String(http.StatusNotFound, "Not found.")
	case errors.Is(err, access.ErrUnauthenticated):
		c.String(http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, access.ErrForbidden):
		c.String(http.StatusForbidden, "Access denied")
	default:
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		c.String(http.StatusInternalServerError, internalMsg)
	}
}
