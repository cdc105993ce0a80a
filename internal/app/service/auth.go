package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// AuthIface is the session-token surface consumed by middleware.
type AuthIface interface {
	BuildJWTString() (string, string, error)
	ParseClaims(c *http.Cookie) (*Claims, error)
	ParseRawJWT(tokenString string) (*Claims, error)
}

// Claims are the session-token claims: the registered set plus a session id.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"session_id"`
}

// TokenExp is the session token lifetime.
const TokenExp = time.Hour * 24

// defaultSecret is used when no signing secret is configured. Deployments
// share a real secret with the login system via SESSION_SECRET.
const defaultSecret = "supersecretkey"

// Auth builds and parses HS256 session tokens. Issuing tokens after a
// successful login belongs to the external authentication system; it shares
// the signing secret with this service.
type Auth struct {
	secret []byte
}

// NewAuth creates an Auth with the given signing secret, falling back to the
// built-in development secret when empty.
func NewAuth(secret string) *Auth {
	if secret == "" {
		secret = defaultSecret
	}
	return &Auth{secret: []byte(secret)}
}

// BuildJWTString mints a session token with a fresh session id and returns
// both.
func (a *Auth) BuildJWTString() (string, string, error) {
	sessionID := uuid.New().String()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExp)),
		},
		SessionID: sessionID,
	})

	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", "", err
	}

	return tokenString, sessionID, nil
}

// ParseClaims parses and verifies the session token carried by the cookie.
func (a *Auth) ParseClaims(c *http.Cookie) (*Claims, error) {
	return a.ParseRawJWT(c.Value)
}

// ParseRawJWT parses and verifies a raw token string.
func (a *Auth) ParseRawJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	return claims, nil
}
