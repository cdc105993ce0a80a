package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/advrk/shortener/internal/app/service"
	"github.com/advrk/shortener/internal/mocks"
)

func TestInjectSessionID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sessionID := "abc123"
	newReq := InjectSessionID(req, sessionID)

	val := newReq.Context().Value(SessionIDKey)
	require.Equal(t, sessionID, val)
}

func TestWithSession(t *testing.T) {
	t.Run("no token cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuth := mocks.NewMockAuthIface(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/api/urls", nil)
		rec := httptest.NewRecorder()

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called without a session")
		})

		WithSession(mockAuth)(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Result().StatusCode)
	})

	t.Run("valid token cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuth := mocks.NewMockAuthIface(ctrl)
		sessionID := "existing-session-id"
		cookie := &http.Cookie{Name: "token", Value: "valid-token"}

		mockAuth.EXPECT().
			ParseClaims(cookie).
			Return(&service.Claims{SessionID: sessionID}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/urls", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()

		var gotSessionID string
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotSessionID = r.Context().Value(SessionIDKey).(string)
			w.WriteHeader(http.StatusOK)
		})

		WithSession(mockAuth)(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Result().StatusCode)
		assert.Equal(t, sessionID, gotSessionID)
	})

	t.Run("token parse error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAuth := mocks.NewMockAuthIface(ctrl)
		cookie := &http.Cookie{Name: "token", Value: "bad-token"}

		mockAuth.EXPECT().
			ParseClaims(cookie).
			Return(nil, errors.New("invalid token"))

		req := httptest.NewRequest(http.MethodGet, "/api/urls", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called without a session")
		})

		WithSession(mockAuth)(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Result().StatusCode)
	})
}
