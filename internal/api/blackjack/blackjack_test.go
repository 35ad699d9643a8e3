package blackjack

import (
	"arcade_backend/internal/middleware"
	"arcade_backend/internal/repository/history_repo"
	"arcade_backend/internal/repository/ledger_repo"
	"arcade_backend/internal/rng"
	blackjackService "arcade_backend/internal/service/blackjack"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authed(method, path, body string) *http.Request {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	return r.WithContext(middleware.WithUserID(r.Context(), 3))
}

func TestDealAndState(t *testing.T) {
	ledger := ledger_repo.NewMemoryLedger()
	ledger.SetBalance(3, 500)
	h := NewHandler(HandlerDeps{
		Serv: blackjackService.NewBlackjackService(ledger, history_repo.NewMemoryHistoryRepository(20), rng.New(9)),
	})

	rec := httptest.NewRecorder()
	h.State(rec, authed(http.MethodGet, "/blackjack/state", ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.Deal(rec, authed(http.MethodPost, "/blackjack/deal", `{"bet":0}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Deal(rec, authed(http.MethodPost, "/blackjack/deal", `{"bet":100}`))
	require.Equal(t, http.StatusOK, rec.Code)
	var hand map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hand))
	assert.Len(t, hand["player"], 2)

	rec = httptest.NewRecorder()
	h.State(rec, authed(http.MethodGet, "/blackjack/state", ""))
	assert.Equal(t, http.StatusOK, rec.Code)
}
