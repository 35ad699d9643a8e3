package middleware

import (
	"arcade_backend/internal/model"
	"arcade_backend/pkg/resp"
	"arcade_backend/pkg/token"
	"context"
	"net/http"
	"strings"
)

type ctxKey struct{}

// WithUserID кладёт id пользователя в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext id пользователя, которого пропустил Auth
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKey{}).(int64)
	return id, ok
}

// Auth проверяет access токен из заголовка Authorization: Bearer.
// Браузер не умеет ставить заголовки на websocket, поэтому там токен приходит в query access_token
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearer(r)
			if raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, model.ErrUnauthorized.Error())
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, model.ErrUnauthorized.Error())
				return
			}
			userID, err := token.UserID(claims)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, model.ErrUnauthorized.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func bearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return r.URL.Query().Get("access_token")
}
