package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/session"
	"github.com/osse101/BroadcasterPro_Go/mocks"
)

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name           string
		discordID      string
		setupMocks     func(*mocks.MockAdminService)
		expectedStatus int
	}{
		{
			name:           "anonymous",
			setupMocks:     func(m *mocks.MockAdminService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:      "regular user",
			discordID: testUserID,
			setupMocks: func(m *mocks.MockAdminService) {
				m.On("IsAdmin", mock.Anything, testUserID).Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:      "admin",
			discordID: testAdminID,
			setupMocks: func(m *mocks.MockAdminService) {
				m.On("IsAdmin", mock.Anything, testAdminID).Return(true, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:      "lookup failure",
			discordID: testAdminID,
			setupMocks: func(m *mocks.MockAdminService) {
				m.On("IsAdmin", mock.Anything, testAdminID).Return(false, domain.ErrDatabaseError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			admins := mocks.NewMockAdminService(t)
			tt.setupMocks(admins)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})

			w := httptest.NewRecorder()
			RequireAdmin(admins)(next).ServeHTTP(w, newRequest(t, http.MethodGet, "/api/v1/admin/admins", nil, tt.discordID))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestIsAdmin_LookupFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	admins := mocks.NewMockAdminService(t)
	admins.On("IsAdmin", mock.Anything, testUserID).Return(false, domain.ErrDatabaseError)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	assert.False(t, isAdmin(r, admins, session.Session{DiscordID: testUserID}))
	assert.Contains(t, buf.String(), `"msg":"`+LogMsgAdminLookupFailed+`"`)
	assert.Contains(t, buf.String(), testUserID)
}
