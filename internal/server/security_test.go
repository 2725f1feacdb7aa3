package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BroadcasterPro_Go/internal/session"
)

func echoSession(w http.ResponseWriter, r *http.Request) {
	if sess, ok := session.FromContext(r.Context()); ok {
		_, _ = w.Write([]byte(sess.DiscordID))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func TestSessionMiddleware(t *testing.T) {
	store := session.NewStore(10, time.Hour)
	sess := store.Create("123456789012345678", "alice", "")

	tests := []struct {
		name           string
		path           string
		cookie         string
		bearer         string
		expectedStatus int
		expectedBody   string
	}{
		{"cookie session", "/api/v1/wallet", sess.Token, "", http.StatusOK, sess.DiscordID},
		{"bearer session", "/api/v1/wallet", "", sess.Token, http.StatusOK, sess.DiscordID},
		{"no session", "/api/v1/wallet", "", "", http.StatusUnauthorized, ErrMsgUnauthorized},
		{"unknown token", "/api/v1/wallet", "forged", "", http.StatusUnauthorized, ErrMsgUnauthorized},
		{"public login", "/auth/login", "", "", http.StatusNoContent, ""},
		{"public health", "/healthz", "", "", http.StatusNoContent, ""},
		{"public docs", "/swagger/index.html", "", "", http.StatusNoContent, ""},
		{"index", "/", "", "", http.StatusNoContent, ""},
		{"session on public path", "/auth/logout", sess.Token, "", http.StatusOK, sess.DiscordID},
	}

	mw := SessionMiddleware(store, nil, NewSuspiciousActivityDetector())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: tt.cookie})
			}
			if tt.bearer != "" {
				req.Header.Set(HeaderAuthorization, BearerPrefix+tt.bearer)
			}
			rec := httptest.NewRecorder()

			mw(http.HandlerFunc(echoSession)).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestSessionMiddleware_CountsForgedTokens(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	mw := SessionMiddleware(session.NewStore(10, time.Hour), nil, detector)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet", nil)
		req.RemoteAddr = "10.0.0.9:4000"
		req.Header.Set(HeaderAuthorization, BearerPrefix+"forged")
		mw(http.HandlerFunc(echoSession)).ServeHTTP(httptest.NewRecorder(), req)
	}
	// anonymous requests are not failed logins
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet", nil)
	req.RemoteAddr = "10.0.0.9:4000"
	mw(http.HandlerFunc(echoSession)).ServeHTTP(httptest.NewRecorder(), req)

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.0.0.9"])
}

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	detector := newDetector(time.Hour, 5)
	handler := SecurityLoggingMiddleware(nil, detector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusOK, send("192.168.1.100:1234"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, send("192.168.1.100:1234"))
	assert.Equal(t, http.StatusOK, send("192.168.1.101:1234"), "other clients are unaffected")
}

func TestSuspiciousActivityDetector_WindowResets(t *testing.T) {
	detector := newDetector(time.Millisecond, 1)
	assert.True(t, detector.RecordRequest("1.1.1.1"))
	assert.False(t, detector.RecordRequest("1.1.1.1"))

	time.Sleep(5 * time.Millisecond)
	assert.True(t, detector.RecordRequest("1.1.1.1"))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"direct", "203.0.113.5:5000", "", nil, "203.0.113.5"},
		{"untrusted proxy header ignored", "203.0.113.5:5000", "1.2.3.4", nil, "203.0.113.5"},
		{"trusted proxy", "10.0.0.1:5000", "1.2.3.4, 5.6.7.8", []string{"10.0.0.1"}, "5.6.7.8"},
		{"unparsable remote addr", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(make([]byte, 64))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet", nil)
	req.Header.Set(HeaderAuthorization, "Bearer session-token-123")
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "cookie-token-456"})
	req.Header.Set("User-Agent", "TestAgent")

	loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "session-token-123")
	assert.NotContains(t, out, "cookie-token-456")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, "request_id")
}
