// Package middleware provides session handling for cart ownership.
package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// SessionHeader is the HTTP header carrying the cart session token.
	SessionHeader = "X-Cart-Session"
	// SessionCookie is the cookie name carrying the cart session token,
	// for browser clients that do not manage the header.
	SessionCookie = "cart_session"
	// SessionIDKey is the context key for the resolved session ID.
	SessionIDKey = "session_id"
)

// sessionClaims are the JWT claims of a cart session token. The session ID
// travels as the subject.
type sessionClaims struct {
	jwt.RegisteredClaims
}

// SessionConfig configures the cart session middleware.
type SessionConfig struct {
	// Secret signs session tokens (HMAC-SHA256).
	Secret []byte
	// TokenTTL bounds session token validity. Tokens are reissued on every
	// request, so the effective session lifetime is sliding.
	TokenTTL time.Duration
	// SecureCookie marks the session cookie Secure.
	SecureCookie bool
}

// DefaultSessionConfig returns the default session middleware configuration.
func DefaultSessionConfig(secret []byte) SessionConfig {
	return SessionConfig{
		Secret:   secret,
		TokenTTL: 24 * time.Hour,
	}
}

// CartSession returns a middleware that resolves the caller's cart session.
// A valid token in the session header or cookie keeps the existing session;
// anything else starts a fresh one. The (re)issued token is returned in both
// the response header and the cookie.
func CartSession(cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := resolveSessionID(c, cfg.Secret)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		token, err := issueSessionToken(sessionID, cfg.Secret, cfg.TokenTTL)
		if err != nil {
			log.Error().Err(err).Msg("Failed to issue session token")
		} else {
			c.Header(SessionHeader, token)
			c.SetCookie(SessionCookie, token, int(cfg.TokenTTL.Seconds()), "/", "", cfg.SecureCookie, true)
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// GetSessionID retrieves the cart session ID from the gin context.
func GetSessionID(c *gin.Context) string {
	if id, exists := c.Get(SessionIDKey); exists {
		if sessionID, ok := id.(string); ok {
			return sessionID
		}
	}
	return ""
}

// resolveSessionID extracts and verifies the session token from the request,
// preferring the header over the cookie. Returns "" when absent or invalid.
func resolveSessionID(c *gin.Context, secret []byte) string {
	tokenString := c.GetHeader(SessionHeader)
	if tokenString == "" {
		if cookie, err := c.Cookie(SessionCookie); err == nil {
			tokenString = cookie
		}
	}
	if tokenString == "" {
		return ""
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	return claims.Subject
}

// issueSessionToken signs a fresh token for the session ID.
func issueSessionToken(sessionID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
