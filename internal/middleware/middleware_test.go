package middleware

import (
	"arcade_backend/internal/model"
	"arcade_backend/pkg/token"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func protected() http.Handler {
	return Auth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		w.Header().Set("X-User", "ok")
		if id == 42 {
			w.WriteHeader(http.StatusOK)
		}
	}))
}

func TestAuthBearer(t *testing.T) {
	tok, err := token.GenerateAccessToken(&model.User{ID: 42}, secret, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	protected().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Header().Get("X-User"))
}

func TestAuthQueryToken(t *testing.T) {
	tok, err := token.GenerateAccessToken(&model.User{ID: 42}, secret, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/feed/ws?access_token="+tok, nil)
	rec := httptest.NewRecorder()
	protected().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRejects(t *testing.T) {
	expired, err := token.GenerateAccessToken(&model.User{ID: 42}, secret, -time.Minute)
	require.NoError(t, err)
	foreign, err := token.GenerateAccessToken(&model.User{ID: 42}, []byte("other"), time.Minute)
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing": "",
		"garbage": "Bearer nope",
		"expired": "Bearer " + expired,
		"foreign": "Bearer " + foreign,
	} {
		req := httptest.NewRequest(http.MethodGet, "/balance", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		protected().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
	}
}

func TestLoggingPassesStatus(t *testing.T) {
	h := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/feed", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
