package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/handler"
	"github.com/osse101/BroadcasterPro_Go/internal/session"
	"github.com/osse101/BroadcasterPro_Go/mocks"
)

type pingPool struct{ err error }

func (p pingPool) Ping(context.Context) error { return p.err }
func (p pingPool) Close()                     {}

type routerFixture struct {
	router     http.Handler
	sessions   *session.Store
	admins     *mocks.MockAdminService
	broadcasts *mocks.MockBroadcastService
	payments   *mocks.MockPaymentService
}

func newRouterFixture(t *testing.T) routerFixture {
	f := routerFixture{
		sessions:   session.NewStore(10, time.Hour),
		admins:     mocks.NewMockAdminService(t),
		broadcasts: mocks.NewMockBroadcastService(t),
		payments:   mocks.NewMockPaymentService(t),
	}
	creditsSvc := mocks.NewMockCreditsService(t)
	users := mocks.NewMockUserService(t)
	f.router = NewRouter(Config{Version: "1.2.3"}, pingPool{}, f.sessions, handler.Handlers{
		Auth:      handler.NewAuthHandler(nil, f.sessions, users, f.admins, time.Hour, false),
		Wallet:    handler.NewWalletHandler(creditsSvc),
		Guild:     handler.NewGuildHandler(mocks.NewMockDiscordClient(t), nil),
		Broadcast: handler.NewBroadcastHandler(f.broadcasts, f.admins, 2),
		Payment:   handler.NewPaymentHandler(f.payments, f.admins),
		Admin:     handler.NewAdminHandler(creditsSvc, users, f.admins),
		Admins:    f.admins,
	})
	return f
}

func (f routerFixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicEndpoints(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/readyz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/version", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":"1.2.3"`)

	rec = f.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/auth/login", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "login is disabled without OAuth credentials")
}

func TestRouter_APIRequiresSession(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/broadcasts/5", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RouteParamsReachHandlers(t *testing.T) {
	f := newRouterFixture(t)
	sess := f.sessions.Create("123456789012345678", "alice", "")
	f.admins.On("IsAdmin", mock.Anything, sess.DiscordID).Return(false, nil)
	f.broadcasts.On("GetStatus", mock.Anything, sess.DiscordID, int64(5), false).
		Return(&domain.QueueEntry{ID: 5, Status: domain.QueueStatusPending}, nil)

	rec := f.do(http.MethodGet, "/api/v1/broadcasts/5", "", sess.Token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":5`)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestRouter_AdminRoutesRequireAdmin(t *testing.T) {
	f := newRouterFixture(t)
	user := f.sessions.Create("123456789012345678", "alice", "")
	admin := f.sessions.Create("223456789012345678", "root", "")
	f.admins.On("IsAdmin", mock.Anything, user.DiscordID).Return(false, nil)
	f.admins.On("IsAdmin", mock.Anything, admin.DiscordID).Return(true, nil)
	f.broadcasts.On("GetActive", mock.Anything).Return([]domain.QueueEntry{}, nil)

	rec := f.do(http.MethodGet, "/api/v1/admin/broadcasts/active", "", user.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/admin/broadcasts/active", "", admin.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ActionEndpoint(t *testing.T) {
	f := newRouterFixture(t)
	sess := f.sessions.Create("123456789012345678", "alice", "")
	f.payments.On("CreateRequest", mock.Anything, sess.DiscordID, 2).Return(nil, domain.ErrPaymentMonitorNotConfigured)

	rec := f.do(http.MethodPost, "/api/v1/action", `{"action":"create_payment_request","params":{"credits":2}}`, sess.Token)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_Logout(t *testing.T) {
	f := newRouterFixture(t)
	sess := f.sessions.Create("123456789012345678", "alice", "")

	rec := f.do(http.MethodPost, "/auth/logout", "", sess.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/wallet", "", sess.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
