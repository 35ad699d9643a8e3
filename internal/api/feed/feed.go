package feed

import (
	dto "arcade_backend/internal/api/dto/feed"
	"arcade_backend/internal/api/httperr"
	"arcade_backend/internal/converter"
	"arcade_backend/internal/middleware"
	"arcade_backend/internal/service"
	"arcade_backend/pkg/req"
	"arcade_backend/pkg/resp"
	"net/http"
	"strconv"
)

// Subscriber держит websocket соединение подписчика ленты
type Subscriber interface {
	Serve(w http.ResponseWriter, r *http.Request, userID int64)
}

type HandlerDeps struct {
	Serv service.FeedService
	Hub  Subscriber
}

type Handler struct {
	serv service.FeedService
	hub  Subscriber
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, hub: deps.Hub}
}

// List последние записи, ?limit= необязателен
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(w, err)
			return
		}
		limit = n
	}

	items, err := h.serv.List(r.Context(), limit)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToFeedListResponse(items))
}

func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httperr.Unauthorized(w)
		return
	}

	payload, err := req.Decode[dto.PostRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	item, err := h.serv.Post(r.Context(), userID, payload.Title, payload.Content, payload.Tags)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToFeedItemResponse(item))
}

// Subscribe websocket с новыми записями ленты
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httperr.Unauthorized(w)
		return
	}

	h.hub.Serve(w, r, userID)
}
