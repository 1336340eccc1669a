package routes

import (
	"time"

	billingapi "userpay-app/internal/api/billing"
	usersapi "userpay-app/internal/api/users"
	"userpay-app/internal/app/http/middleware"
	"userpay-app/internal/web"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handlers struct {
	Users   *usersapi.Handler
	Billing *billingapi.Handler
	Web     *web.Handler
}

type Options struct {
	CORSOrigin string
	JWTSecret  string
}

// NewRouter builds the engine with the shared middleware stack and all routes.
func NewRouter(log *zap.Logger, opts Options, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))
	r.Use(middleware.MetricsMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{opts.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRoutes(r, opts, h)
	return r
}

func RegisterRoutes(r *gin.Engine, opts Options, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Client
	if h.Web != nil {
		r.GET("/", h.Web.Index)
		r.POST("/ui/user", h.Web.LookupUser)
		r.POST("/ui/payment", h.Web.SubmitPayment)
	}

	// No authentication in front of the API; the capability is only
	// attached here and judged by the service gate.
	api := r.Group("/api")
	api.Use(middleware.CapabilityMiddleware(opts.JWTSecret))

	user := api.Group("/user")
	user.GET("/:id", h.Users.GetUser)
	user.POST("/create", h.Users.CreateUser)
	user.POST("/upload", h.Users.UploadFile)
	user.POST("/delete/:id", h.Users.DeleteUser)

	payment := api.Group("/payment")
	payment.POST("/process", h.Billing.ProcessPayment)
	payment.GET("/history", h.Billing.GetPaymentHistory)
}
