package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pingFunc adapts a function to database.Pool
type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }
func (pingFunc) Close()                           {}

func TestHandleHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		wantCode int
		wantBody HealthResponse
	}{
		{"database reachable", nil, http.StatusOK, HealthResponse{Status: "ok"}},
		{"ping timeout", context.DeadlineExceeded, http.StatusServiceUnavailable,
			HealthResponse{Status: "unavailable", Message: "database connection failed"}},
		{"connection refused", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable,
			HealthResponse{Status: "unavailable", Message: "database connection failed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var deadlineSet bool
			pool := pingFunc(func(ctx context.Context) error {
				deadline, ok := ctx.Deadline()
				deadlineSet = ok && time.Until(deadline) <= readinessTimeout
				return tt.pingErr
			})

			w := httptest.NewRecorder()
			HandleReadyz(pool).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.True(t, deadlineSet, "ping must be bounded by the readiness timeout")
			body := decodeBody[HealthResponse](t, w)
			require.Equal(t, tt.wantBody, body)
		})
	}
}
