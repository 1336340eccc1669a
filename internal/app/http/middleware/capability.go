package middleware

import (
	"fmt"
	"strings"

	"userpay-app/internal/domain/access"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const capabilityKey = "capability"

// CapabilityMiddleware attaches a capability to every request. A verified
// bearer token yields its subject and role; anything else is anonymous and
// the gate decides. Requests are never rejected here.
func CapabilityMiddleware(secret string) gin.HandlerFunc {
	jwtKey := []byte(secret)
	return func(c *gin.Context) {
		capability := access.Anonymous()

		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if len(jwtKey) > 0 && authHeader != "" && tokenString != authHeader {
			if parsed, err := parseCapability(jwtKey, tokenString); err == nil {
				capability = parsed
			}
		}

		c.Set(capabilityKey, capability)
		c.Next()
	}
}

func CapabilityFrom(c *gin.Context) access.Capability {
	if v, ok := c.Get(capabilityKey); ok {
		if capability, ok := v.(access.Capability); ok {
			return capability
		}
	}
	return access.Anonymous()
}

func parseCapability(jwtKey []byte, tokenString string) (access.Capability, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		return access.Capability{}, fmt.Errorf("invalid or expired token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return access.Capability{}, fmt.Errorf("invalid token claims")
	}

	capability := access.Capability{Token: tokenString}
	if role, ok := claims["role"].(string); ok {
		capability.Role = role
	}
	if userIDFloat, ok := claims["user_id"].(float64); ok && userIDFloat > 0 {
		capability.Subject = uint(userIDFloat)
	}
	return capability, nil
}
