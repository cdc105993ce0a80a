package middleware

import (
	"context"
	"net/http"

	"github.com/advrk/shortener/internal/app/service"
)

// ContextKey is a custom type used for keys in the context.
type ContextKey string

// SessionIDKey is the key under which the session id is stored in the
// request context.
const SessionIDKey ContextKey = "sessionID"

// InjectSessionID attaches a session id to the request context. Used by
// tests to bypass the cookie round-trip.
func InjectSessionID(req *http.Request, sessionID string) *http.Request {
	ctx := context.WithValue(req.Context(), SessionIDKey, sessionID)
	return req.WithContext(ctx)
}

// WithSession gates management routes behind a valid session cookie. The
// cookie is minted by the external login system with the shared secret;
// requests without a valid token get 401.
func WithSession(auth service.AuthIface) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("token")
			if err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			claims, err := auth.ParseClaims(cookie)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), SessionIDKey, claims.SessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
