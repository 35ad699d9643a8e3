package httperr

import (
	"arcade_backend/internal/model"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{model.ErrInvalidBet, http.StatusBadRequest},
		{errors.Wrap(model.ErrInsufficientBalance, "debit"), http.StatusPaymentRequired},
		{model.ErrInvalidRoundState, http.StatusConflict},
		{model.ErrEmptyRound, http.StatusConflict},
		{model.ErrAlreadyExists, http.StatusConflict},
		{model.ErrUnauthorized, http.StatusUnauthorized},
		{model.ErrNotFound, http.StatusNotFound},
		{model.ErrMalformedPayload, http.StatusServiceUnavailable},
		{errors.Wrap(model.ErrRemoteUnavailable, "ledger"), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		got, _ := Status(c.err)
		assert.Equal(t, c.want, got, c.err.Error())
	}
}

func TestWriteHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)

	Write(rec, req, errors.New("pq: password leaked"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "leaked")
}
