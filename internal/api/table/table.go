// Package table общие ручки игр со ставками на несколько целей
package table

import (
	dto "arcade_backend/internal/api/dto/table"
	"arcade_backend/internal/api/httperr"
	"arcade_backend/internal/converter"
	gameTable "arcade_backend/internal/game/table"
	"arcade_backend/internal/middleware"
	"arcade_backend/internal/model"
	"arcade_backend/pkg/req"
	"arcade_backend/pkg/resp"
	"context"
	"net/http"
)

type PlaceFunc func(ctx context.Context, userID int64, target string, amount int64) (*gameTable.Snapshot, error)

type HistoryFunc func(ctx context.Context, userID int64) ([]model.RoundRecord, error)

// Bet ставка в открытый раунд, в ответе текущее состояние раунда
func Bet(w http.ResponseWriter, r *http.Request, place PlaceFunc) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httperr.Unauthorized(w)
		return
	}

	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	snap, err := place(r.Context(), userID, payload.Target, payload.Amount)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSnapshotResponse(snap))
}

// History последние раунды пользователя
func History(w http.ResponseWriter, r *http.Request, list HistoryFunc) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httperr.Unauthorized(w)
		return
	}

	records, err := list(r.Context(), userID)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(records))
}
