package roulette

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
	Serv service.RouletteService
}

type Handler struct {
	serv service.RouletteService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Bet(w http.ResponseWriter, r *http.Request) {
	table.Bet(w, r, h.serv.PlaceBet)
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httperr.Unauthorized(w)
		return
	}

	result, err := h.serv.Spin(r.Context(), userID)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRouletteSpinResponse(result))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	table.History(w, r, h.serv.History)
}
