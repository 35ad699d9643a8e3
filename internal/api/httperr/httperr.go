// Package httperr перевод доменных ошибок в HTTP статусы
package httperr

import (
	"arcade_backend/internal/logger"
	"arcade_backend/internal/model"
	"arcade_backend/pkg/resp"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Status статус и текст ответа для ошибки сервиса
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInvalidBet):
		return http.StatusBadRequest, model.ErrInvalidBet.Error()
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest, model.ErrInvalidInput.Error()
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized, model.ErrUnauthorized.Error()
	case errors.Is(err, model.ErrInsufficientBalance):
		return http.StatusPaymentRequired, model.ErrInsufficientBalance.Error()
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, model.ErrNotFound.Error()
	case errors.Is(err, model.ErrInvalidRoundState):
		return http.StatusConflict, model.ErrInvalidRoundState.Error()
	case errors.Is(err, model.ErrEmptyRound):
		return http.StatusConflict, model.ErrEmptyRound.Error()
	case errors.Is(err, model.ErrAlreadyExists):
		return http.StatusConflict, model.ErrAlreadyExists.Error()
	case errors.Is(err, model.ErrRemoteUnavailable), errors.Is(err, model.ErrMalformedPayload):
		return http.StatusServiceUnavailable, model.ErrRemoteUnavailable.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// Write пишет ошибку в ответ. Неизвестные и удалённые ошибки логируются
func Write(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := Status(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	resp.WriteError(w, status, msg)
}

// BadRequest тело запроса не разобралось
func BadRequest(w http.ResponseWriter, err error) {
	resp.WriteError(w, http.StatusBadRequest, "invalid request: "+err.Error())
}

// Unauthorized в контексте нет пользователя
func Unauthorized(w http.ResponseWriter) {
	resp.WriteError(w, http.StatusUnauthorized, model.ErrUnauthorized.Error())
}
