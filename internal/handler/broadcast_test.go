package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/BroadcasterPro_Go/internal/broadcast"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/mocks"
)

func TestHandleSend(t *testing.T) {
	zero := 0
	tests := []struct {
		name           string
		body           any
		setupMocks     func(*mocks.MockBroadcastService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "inline by default with configured delay",
			body: BroadcastRequest{GuildID: testGuildID, Message: "hi {user}", EnableMentions: true},
			setupMocks: func(m *mocks.MockBroadcastService) {
				m.On("SendNow", mock.Anything, testUserID, mock.MatchedBy(func(r broadcast.DispatchRequest) bool {
					return r.GuildID == testGuildID && r.DelaySeconds == 2 && r.EnableMentions
				})).Return(&broadcast.SendResult{
					DispatchResult: broadcast.DispatchResult{Total: 3, Sent: 3},
					GuildName:      "Guild",
					CreditsUsed:    1,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"sent_count":3`,
		},
		{
			name: "explicit zero delay is kept",
			body: BroadcastRequest{GuildID: testGuildID, Message: "hi", DelaySeconds: &zero},
			setupMocks: func(m *mocks.MockBroadcastService) {
				m.On("SendNow", mock.Anything, testUserID, mock.MatchedBy(func(r broadcast.DispatchRequest) bool {
					return r.DelaySeconds == 0
				})).Return(&broadcast.SendResult{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "queue mode",
			body: BroadcastRequest{GuildID: testGuildID, Message: "hi", Mode: ModeQueue},
			setupMocks: func(m *mocks.MockBroadcastService) {
				m.On("Enqueue", mock.Anything, testUserID, mock.Anything).
					Return(&domain.QueueEntry{ID: 9, Status: domain.QueueStatusPending}, nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedBody:   `"status":"pending"`,
		},
		{
			name:           "invalid guild id rejected before the service",
			body:           BroadcastRequest{GuildID: "123", Message: "hi"},
			setupMocks:     func(m *mocks.MockBroadcastService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Must be a Discord ID",
		},
		{
			name:           "unknown target type",
			body:           BroadcastRequest{GuildID: testGuildID, Message: "hi", TargetType: "bots"},
			setupMocks:     func(m *mocks.MockBroadcastService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "target_type",
		},
		{
			name: "insufficient credits",
			body: BroadcastRequest{GuildID: testGuildID, Message: "hi"},
			setupMocks: func(m *mocks.MockBroadcastService) {
				m.On("SendNow", mock.Anything, testUserID, mock.Anything).
					Return(nil, domain.ErrInsufficientCredits)
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedBody:   ErrMsgInsufficientCredits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockBroadcastService(t)
			tt.setupMocks(svc)
			h := NewBroadcastHandler(svc, mocks.NewMockAdminService(t), 2)

			w := httptest.NewRecorder()
			h.HandleSend(w, newRequest(t, http.MethodPost, "/api/v1/broadcasts", tt.body, testUserID))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandleSend_RequiresSession(t *testing.T) {
	h := NewBroadcastHandler(mocks.NewMockBroadcastService(t), mocks.NewMockAdminService(t), 2)

	w := httptest.NewRecorder()
	h.HandleSend(w, newRequest(t, http.MethodPost, "/api/v1/broadcasts", BroadcastRequest{GuildID: testGuildID, Message: "hi"}, ""))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleEnqueue_IgnoresModeInBody(t *testing.T) {
	svc := mocks.NewMockBroadcastService(t)
	svc.On("Enqueue", mock.Anything, testUserID, mock.Anything).Return(&domain.QueueEntry{ID: 1}, nil)
	h := NewBroadcastHandler(svc, mocks.NewMockAdminService(t), 2)

	w := httptest.NewRecorder()
	h.HandleEnqueue(w, newRequest(t, http.MethodPost, "/", BroadcastRequest{GuildID: testGuildID, Message: "hi", Mode: ModeInline}, testUserID))

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestHandleGetStatus(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		svc := mocks.NewMockBroadcastService(t)
		admins := mocks.NewMockAdminService(t)
		admins.On("IsAdmin", mock.Anything, testUserID).Return(false, nil)
		svc.On("GetStatus", mock.Anything, testUserID, int64(7), false).
			Return(&domain.QueueEntry{ID: 7, Status: domain.QueueStatusProcessing, Progress: 40}, nil)
		h := NewBroadcastHandler(svc, admins, 2)

		w := httptest.NewRecorder()
		req := withURLParams(newRequest(t, http.MethodGet, "/api/v1/broadcasts/7", nil, testUserID), "id", "7")
		h.HandleGetStatus(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		entry := decodeBody[domain.QueueEntry](t, w)
		assert.Equal(t, 40, entry.Progress)
	})

	t.Run("not found", func(t *testing.T) {
		svc := mocks.NewMockBroadcastService(t)
		admins := mocks.NewMockAdminService(t)
		admins.On("IsAdmin", mock.Anything, testUserID).Return(false, nil)
		svc.On("GetStatus", mock.Anything, testUserID, int64(8), false).Return(nil, domain.ErrQueueEntryNotFound)
		h := NewBroadcastHandler(svc, admins, 2)

		w := httptest.NewRecorder()
		h.HandleGetStatus(w, withURLParams(newRequest(t, http.MethodGet, "/", nil, testUserID), "id", "8"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		h := NewBroadcastHandler(mocks.NewMockBroadcastService(t), mocks.NewMockAdminService(t), 2)

		w := httptest.NewRecorder()
		h.HandleGetStatus(w, withURLParams(newRequest(t, http.MethodGet, "/", nil, testUserID), "id", "abc"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidID)
	})
}

func TestHandleListUserBroadcasts(t *testing.T) {
	svc := mocks.NewMockBroadcastService(t)
	svc.On("GetUserBroadcasts", mock.Anything, testUserID, 5).
		Return(&broadcast.UserBroadcasts{Queue: []domain.QueueEntry{}, History: []domain.Broadcast{{ID: 1}}}, nil)
	h := NewBroadcastHandler(svc, mocks.NewMockAdminService(t), 2)

	w := httptest.NewRecorder()
	h.HandleListUserBroadcasts(w, newRequest(t, http.MethodGet, "/api/v1/broadcasts?limit=5", nil, testUserID))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"queue":[]`)
}

func TestHandleGetActive_EmptyList(t *testing.T) {
	svc := mocks.NewMockBroadcastService(t)
	svc.On("GetActive", mock.Anything).Return(nil, nil)
	h := NewBroadcastHandler(svc, mocks.NewMockAdminService(t), 2)

	w := httptest.NewRecorder()
	h.HandleGetActive(w, newRequest(t, http.MethodGet, "/", nil, testAdminID))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}
