package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"userpay-app/internal/domain/access"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func capabilityFor(t *testing.T, secret, header string) access.Capability {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CapabilityMiddleware(secret))

	var got access.Capability
	r.GET("/", func(c *gin.Context) {
		got = CapabilityFrom(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	return got
}

func TestCapabilityFromValidToken(t *testing.T) {
	token := signed(t, testSecret, jwt.MapClaims{
		"user_id": 42,
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	got := capabilityFor(t, testSecret, "Bearer "+token)
	assert.Equal(t, uint(42), got.Subject)
	assert.Equal(t, "admin", got.Role)
	assert.Equal(t, token, got.Token)
}

func TestCapabilityFallsBackToAnonymous(t *testing.T) {
	expired := signed(t, testSecret, jwt.MapClaims{"user_id": 1, "exp": time.Now().Add(-time.Hour).Unix()})
	forged := signed(t, "other-secret", jwt.MapClaims{"user_id": 1})

	cases := map[string]struct {
		secret string
		header string
	}{
		"no header":     {testSecret, ""},
		"not bearer":    {testSecret, "Basic abc"},
		"garbage":       {testSecret, "Bearer not-a-jwt"},
		"expired":       {testSecret, "Bearer " + expired},
		"wrong secret":  {testSecret, "Bearer " + forged},
		"gate disabled": {"", "Bearer " + forged},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.False(t, capabilityFor(t, tc.secret, tc.header).Authenticated())
		})
	}
}

func TestRequestIDIsEchoedOrAssigned(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}
