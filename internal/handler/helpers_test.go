package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BroadcasterPro_Go/internal/session"
)

const (
	testUserID  = "123456789012345678"
	testAdminID = "223456789012345678"
	testGuildID = "323456789012345678"
)

// newRequest builds a request carrying a session for discordID. An empty id means anonymous.
func newRequest(t *testing.T, method, target string, body any, discordID string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if discordID != "" {
		sess := session.Session{Token: "token-" + discordID, DiscordID: discordID, Username: "tester", CreatedAt: time.Now()}
		req = req.WithContext(session.WithSession(req.Context(), sess))
	}
	return req
}

// withURLParams attaches chi route parameters to req
func withURLParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	return out
}
