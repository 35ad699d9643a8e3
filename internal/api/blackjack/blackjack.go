package blackjack

import (
	dto "arcade_backend/internal/api/dto/blackjack"
	"arcade_backend/internal/api/httperr"
	"arcade_backend/internal/converter"
	"arcade_backend/internal/middleware"
	"arcade_backend/internal/model"
	"arcade_backend/internal/service"
	"arcade_backend/pkg/req"
	"arcade_backend/pkg/resp"
	"context"
	"net/http"
)

type HandlerDeps struct {
	Serv service.BlackjackService
}

type Handler struct {
	serv service.BlackjackService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

type action func(ctx context.Context, userID int64) (*model.BlackjackHand, error)

func (h *Handler) Deal(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DealRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	h.do(w, r, func(ctx context.Context, userID int64) (*model.BlackjackHand, error) {
		return h.serv.Deal(ctx, userID, payload.Bet)
	})
}

func (h *Handler) Hit(w http.ResponseWriter, r *http.Request) {
	h.do(w, r, h.serv.Hit)
}

func (h *Handler) Stand(w http.ResponseWriter, r *http.Request) {
	h.do(w, r, h.serv.Stand)
}

func (h *Handler) Double(w http.ResponseWriter, r *http.Request) {
	h.do(w, r, h.serv.Double)
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	h.do(w, r, h.serv.State)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httperr.Unauthorized(w)
		return
	}

	records, err := h.serv.History(r.Context(), userID)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(records))
}

func (h *Handler) do(w http.ResponseWriter, r *http.Request, act action) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httperr.Unauthorized(w)
		return
	}

	hand, err := act(r.Context(), userID)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHandResponse(hand))
}
