package main

import (
	"log"
	"net/http"

	"userpay-app/config"
	"userpay-app/database"
	billingapi "userpay-app/internal/api/billing"
	usersapi "userpay-app/internal/api/users"
	routes "userpay-app/internal/app/http"
	"userpay-app/internal/client"
	"userpay-app/internal/domain/access"
	"userpay-app/internal/infra/files"
	"userpay-app/internal/infra/gateway"
	"userpay-app/internal/logging"
	"userpay-app/internal/service"
	"userpay-app/internal/store"
	"userpay-app/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()
	gin.SetMode(config.GIN_MODE)

	logger, err := logging.New(config.LOG_LEVEL, config.LOG_FORMAT)
	if err != nil {
		log.Fatalf("❌ Failed to build logger: %v", err)
	}
	defer logger.Sync()

	database.InitDB(logger, config.DB_DRIVER, config.DB_URL)

	gate, err := access.NewGate(config.AUTH_GATE)
	if err != nil {
		logger.Fatal("❌ Invalid AUTH_GATE", zap.Error(err))
	}
	creds, err := service.NewCredentialEncoder(config.CREDENTIAL_ENCODER)
	if err != nil {
		logger.Fatal("❌ Invalid CREDENTIAL_ENCODER", zap.Error(err))
	}
	gw, err := gateway.New(config.GATEWAY_DRIVER, config.GATEWAY_URL, config.GATEWAY_TIMEOUT, config.STRIPE_SECRET_KEY, config.GATEWAY_CURRENCY)
	if err != nil {
		logger.Fatal("❌ Invalid GATEWAY_DRIVER", zap.Error(err))
	}

	st := store.New(database.DB)
	userSvc := service.NewUserService(st, files.NewIntake(config.UPLOAD_DIR), gate, creds, logger)
	paymentSvc := service.NewPaymentService(st, gw, gate, logger)

	r := routes.NewRouter(logger, routes.Options{
		CORSOrigin: config.CORS_ORIGIN,
		JWTSecret:  config.JWT_SECRET,
	}, routes.Handlers{
		Users:   usersapi.NewHandler(userSvc, logger),
		Billing: billingapi.NewHandler(paymentSvc, logger),
		Web:     web.NewHandler(client.New(config.API_BASE_URL, http.DefaultClient), logger),
	})

	logger.Info("🚀 Listening", zap.String("port", config.PORT), zap.String("gate", config.AUTH_GATE), zap.String("gateway", config.GATEWAY_DRIVER))
	if err := r.Run(":" + config.PORT); err != nil {
		logger.Fatal("❌ Server stopped", zap.Error(err))
	}
}
