// Package web serves the form-driven client. Each form submission makes
// exactly one API call through client.Client and renders the result with
// html/template, so server-provided text is always escaped.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"userpay-app/internal/client"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	noticePaymentOK     = "Payment Successful!"
	noticePaymentFailed = "Payment failed"
)

// API is the subset of client.Client the view calls.
type API interface {
	GetUser(ctx context.Context, id string) (client.User, error)
	ProcessPayment(ctx context.Context, in client.PaymentInput) ([]byte, error)
}

type Handler struct {
	api  API
	tmpl *template.Template
	log  *zap.Logger
}

func NewHandler(api API, log *zap.Logger) *Handler {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	return &Handler{api: api, tmpl: tmpl, log: log}
}

type page struct {
	UserID   string
	User     *client.User
	UserForm FormState

	CardNumber  string
	CVV         string
	Amount      string
	PaymentForm FormState

	// Alert is shown as a blocking notification.
	Alert string
}

func newPage() page {
	return page{
		UserForm:    FormState{Status: StatusIdle},
		PaymentForm: FormState{Status: StatusIdle},
	}
}

// GET /
func (h *Handler) Index(c *gin.Context) {
	h.render(c, newPage())
}

// POST /ui/user
func (h *Handler) LookupUser(c *gin.Context) {
	p := newPage()
	p.UserID = c.PostForm("userId")

	p.UserForm.Submit()
	user, err := h.api.GetUser(c.Request.Context(), p.UserID)
	if err != nil {
		p.UserForm.Fail(err.Error())
		p.Alert = p.UserForm.Notice
	} else {
		p.User = &user
		p.UserForm.Succeed("")
	}

	h.render(c, p)
}

// POST /ui/payment
func (h *Handler) SubmitPayment(c *gin.Context) {
	p := newPage()
	p.CardNumber = c.PostForm("cardNumber")
	p.CVV = c.PostForm("cvv")
	p.Amount = c.PostForm("amount")

	p.PaymentForm.Submit()
	_, err := h.api.ProcessPayment(c.Request.Context(), client.PaymentInput{
		CardNumber: p.CardNumber,
		CVV:        p.CVV,
		Amount:     p.Amount,
	})
	if err != nil {
		h.log.Debug("payment submission failed", zap.Error(err))
		p.PaymentForm.Fail(noticePaymentFailed)
	} else {
		p.PaymentForm.Succeed(noticePaymentOK)
	}
	p.Alert = p.PaymentForm.Notice

	h.render(c, p)
}

func (h *Handler) render(c *gin.Context, p page) {
	c.Render(http.StatusOK, render.HTML{Template: h.tmpl, Name: "index.html", Data: p})
}
