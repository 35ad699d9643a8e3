package reels

import (
	dto "arcade_backend/internal/api/dto/reels"
	"arcade_backend/internal/api/httperr"
	"arcade_backend/internal/api/table"
	"arcade_backend/internal/converter"
	"arcade_backend/internal/middleware"
	"arcade_backend/internal/service"
	"arcade_backend/pkg/req"
	"arcade_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.ReelsService
}

type Handler struct {
	serv service.ReelsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httperr.Unauthorized(w)
		return
	}

	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	result, err := h.serv.Spin(r.Context(), userID, payload.BetPerLine)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToReelsSpinResponse(result))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	table.History(w, r, h.serv.History)
}
