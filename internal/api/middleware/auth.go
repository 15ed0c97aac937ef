package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/marcosboni7/backsleeping/internal/api/shared/errors"
	"github.com/marcosboni7/backsleeping/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	ACCOUNT_ID_KEY contextKey = "account_id"
	JWT_CLAIMS_KEY contextKey = "jwt_claims"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	// JWTSecret is the HMAC key session tokens are signed with
	JWTSecret string
}

// Authenticate validates the Authorization header and returns the account ID
// carried in the token subject
func Authenticate(authHeader string, cfg AuthConfig) (int64, *jwt.RegisteredClaims, error) {
	if authHeader == "" {
		return 0, nil, errors.New("missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return 0, nil, errors.New("invalid Authorization header format")
	}

	claims, err := validateJWT(parts[1], cfg.JWTSecret)
	if err != nil {
		return 0, nil, err
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, nil, errors.New("invalid token subject")
	}

	return accountID, claims, nil
}

// Auth returns a gin middleware that requires a valid Bearer session token
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, claims, err := Authenticate(c.GetHeader("Authorization"), cfg)
		if err != nil {
			logger.Warn("Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiErr)
			return
		}

		c.Set(ACCOUNT_ID_KEY, accountID)
		c.Set(JWT_CLAIMS_KEY, claims)

		c.Next()
	}
}

// OptionalAuth returns a gin middleware that attaches the account ID when a
// valid Bearer token is present and passes anonymous requests through
func OptionalAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			if accountID, claims, err := Authenticate(header, cfg); err == nil {
				c.Set(ACCOUNT_ID_KEY, accountID)
				c.Set(JWT_CLAIMS_KEY, claims)
			}
		}

		c.Next()
	}
}

// AccountID returns the authenticated account ID. Only valid on routes behind
// the Auth middleware.
func AccountID(c *gin.Context) int64 {
	id, _ := c.Value(ACCOUNT_ID_KEY).(int64)
	return id
}

// OptionalAccountID returns the authenticated account ID when one is attached
func OptionalAccountID(c *gin.Context) (int64, bool) {
	id, ok := c.Value(ACCOUNT_ID_KEY).(int64)
	return id, ok
}

// validateJWT validates an HS256 session token and returns its claims
func validateJWT(tokenString string, secret string) (*jwt.RegisteredClaims, error) {
	if secret == "" {
		return nil, errors.New("JWT secret not configured")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
