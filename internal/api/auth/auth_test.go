package auth

import (
	"arcade_backend/internal/model"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	loggedOut string
}

func (f *fakeAuth) Register(_ context.Context, u *model.User) (*model.AuthData, error) {
	if u.Login == "taken" {
		return nil, model.ErrAlreadyExists
	}
	return &model.AuthData{AccessToken: "acc", RefreshToken: "ref", SessionID: "sid"}, nil
}

func (f *fakeAuth) Login(_ context.Context, login, password string) (*model.AuthData, error) {
	if password != "secret1" {
		return nil, model.ErrUnauthorized
	}
	return &model.AuthData{AccessToken: "acc", RefreshToken: "ref", SessionID: "sid"}, nil
}

func (f *fakeAuth) Refresh(_ context.Context, sessionID, refreshToken string) (string, error) {
	if sessionID != "sid" || refreshToken != "ref" {
		return "", model.ErrUnauthorized
	}
	return "acc2", nil
}

func (f *fakeAuth) Logout(_ context.Context, sessionID string) error {
	f.loggedOut = sessionID
	return nil
}

func newHandler() (*Handler, *fakeAuth) {
	f := &fakeAuth{}
	return NewHandler(HandlerDeps{Serv: f, RefreshTTL: time.Hour}), f
}

func TestRegisterSetsCookies(t *testing.T) {
	h, _ := newHandler()
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"name":"A","login":"a","password":"secret1"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"access_token":"acc"}`, rec.Body.String())
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, "/auth", cookies[0].Path)
}

func TestRegisterConflict(t *testing.T) {
	h, _ := newHandler()
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"name":"A","login":"taken","password":"secret1"}`)))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterUnknownField(t *testing.T) {
	h, _ := newHandler()
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"login":"a","balance":1000000}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	h, _ := newHandler()
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"login":"a","password":"nope"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshUsesCookies(t *testing.T) {
	h, _ := newHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "sid"})
	req.AddCookie(&http.Cookie{Name: refreshCookie, Value: "ref"})
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"acc2"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Refresh(rec, httptest.NewRequest(http.MethodPost, "/auth/refresh", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout(t *testing.T) {
	h, f := newHandler()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "sid"})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "sid", f.loggedOut)
}
