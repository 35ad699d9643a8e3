package baccarat

import (
	"arcade_backend/internal/api/httperr"
	"arcade_backend/internal/api/table"
	"arcade_backend/internal/converter"
	"arcade_backend/internal/middleware"
	"arcade_backend/internal/service"
	"arcade_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.BaccaratService
}

type Handler struct {
	serv service.BaccaratService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Bet(w http.ResponseWriter, r *http.Request) {
	table.Bet(w, r, h.serv.PlaceBet)
}

func (h *Handler) Deal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httperr.Unauthorized(w)
		return
	}

	result, err := h.serv.Deal(r.Context(), userID)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBaccaratDealResponse(result))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	table.History(w, r, h.serv.History)
}
