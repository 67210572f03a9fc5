package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"airport-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	passengerIDKey = "passenger_id"
	userRoleKey    = "userRole"
)

// Auth validates the bearer token and puts the passenger identity on the
// context. Authentication itself lives in the account service; this layer
// only consumes the identity it issued.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		pid, ok := claims["passenger_id"].(float64)
		if !ok || pid <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		c.Set(passengerIDKey, int64(pid))
		if role, ok := claims["role"].(string); ok {
			c.Set(userRoleKey, role)
		}
		c.Next()
	}
}

// GetPassengerID extracts the authenticated passenger id from the context.
func GetPassengerID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(passengerIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}

// GetRequestContext bundles the identity claims set by Auth.
func GetRequestContext(c *gin.Context) (domain.RequestContext, bool) {
	id, ok := GetPassengerID(c)
	if !ok {
		return domain.RequestContext{}, false
	}
	ctx := domain.RequestContext{PassengerID: domain.ID(id)}
	if v, ok := c.Get(userRoleKey); ok {
		if role, ok := v.(string); ok {
			ctx.Role = role
		}
	}
	return ctx, true
}
