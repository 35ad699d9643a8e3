package fortune

import (
	dto "arcade_backend/internal/api/dto/fortune"
	"arcade_backend/internal/api/httperr"
	"arcade_backend/internal/converter"
	"arcade_backend/internal/middleware"
	"arcade_backend/internal/service"
	"arcade_backend/pkg/req"
	"arcade_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.FortuneService
}

type Handler struct {
	serv service.FortuneService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Draw(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httperr.Unauthorized(w)
		return
	}

	payload, err := req.Decode[dto.DrawRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	reading, err := h.serv.Draw(r.Context(), userID, payload.Question)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToFortuneResponse(reading))
}
