package auth

import (
	dto "arcade_backend/internal/api/dto/auth"
	"arcade_backend/internal/api/httperr"
	"arcade_backend/internal/converter"
	"arcade_backend/internal/model"
	"arcade_backend/internal/service"
	"arcade_backend/pkg/req"
	"arcade_backend/pkg/resp"
	"net/http"
	"time"
)

const (
	sessionCookie = "session_id"
	refreshCookie = "refresh_token"
	// Оба cookie нужны только ручкам /auth
	cookiePath = "/auth"
)

type HandlerDeps struct {
	Serv       service.AuthService
	RefreshTTL time.Duration
	Secure     bool
}

type Handler struct {
	serv       service.AuthService
	refreshTTL time.Duration
	secure     bool
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, refreshTTL: deps.RefreshTTL, secure: deps.Secure}
}

// Register создаёт пользователя со стартовым балансом, открывает сессию.
// access_token в теле, session_id и refresh_token в cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	data, err := h.serv.Register(r.Context(), converter.RegisterRequestToUserModel(&requestBody))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	h.setSession(w, data)
	resp.WriteJSONResponse(w, http.StatusCreated, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Login открывает новую сессию
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Login, requestBody.Password)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	h.setSession(w, data)
	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Refresh новый access_token по session_id и refresh_token
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	sid, err := r.Cookie(sessionCookie)
	if err != nil {
		httperr.Unauthorized(w)
		return
	}
	rt, err := r.Cookie(refreshCookie)
	if err != nil {
		httperr.Unauthorized(w)
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), sid.Value, rt.Value)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}

// Logout закрывает сессию. Без cookie считаем, что выходить не из чего
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if err = h.serv.Logout(r.Context(), c.Value); err != nil {
			httperr.Write(w, r, err)
			return
		}
	}

	h.clearCookie(w, sessionCookie)
	h.clearCookie(w, refreshCookie)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setSession(w http.ResponseWriter, data *model.AuthData) {
	maxAge := int(h.refreshTTL.Seconds())
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    data.SessionID,
		Path:     cookiePath,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookie,
		Value:    data.RefreshToken,
		Path:     cookiePath,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	})
}

func (h *Handler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     cookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
