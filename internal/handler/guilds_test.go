package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/BroadcasterPro_Go/internal/discord"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/mocks"
)

type recordedNames map[string]string

func (r recordedNames) Remember(guildID, name string) { r[guildID] = name }

func TestHandleBotInfo(t *testing.T) {
	bot := mocks.NewMockDiscordClient(t)
	bot.On("Me", mock.Anything).Return(&discord.Profile{ID: testAdminID, Username: "Broadcaster", Bot: true}, nil)
	bot.On("Guilds", mock.Anything).Return([]discord.Guild{{ID: testGuildID}, {ID: "423456789012345678"}}, nil)
	h := NewGuildHandler(bot, nil)

	w := httptest.NewRecorder()
	h.HandleBotInfo(w, newRequest(t, http.MethodGet, "/", nil, testUserID))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[BotInfoResponse](t, w)
	assert.Equal(t, 2, resp.GuildCount)
	assert.Equal(t, MsgConnectionOK, resp.Message)
}

func TestHandleBotInfo_BadToken(t *testing.T) {
	bot := mocks.NewMockDiscordClient(t)
	bot.On("Me", mock.Anything).Return(nil, &discord.UpstreamError{Op: "get user", Status: http.StatusUnauthorized, Reason: "401: Unauthorized"})
	h := NewGuildHandler(bot, nil)

	w := httptest.NewRecorder()
	h.HandleBotInfo(w, newRequest(t, http.MethodGet, "/", nil, testUserID))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "HTTP 401")
}

func TestHandleListGuilds_RemembersNames(t *testing.T) {
	bot := mocks.NewMockDiscordClient(t)
	bot.On("Guilds", mock.Anything).Return([]discord.Guild{{ID: testGuildID, Name: "Guild"}}, nil)
	names := recordedNames{}
	h := NewGuildHandler(bot, names)

	w := httptest.NewRecorder()
	h.HandleListGuilds(w, newRequest(t, http.MethodGet, "/", nil, testUserID))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Guild", names[testGuildID])
}

func TestHandleListMembers_SkipsBots(t *testing.T) {
	bot := mocks.NewMockDiscordClient(t)
	bot.On("GuildMembers", mock.Anything, testGuildID, domain.MaxGuildMembers).Return([]discord.Member{
		{ID: "1", Username: "alice"},
		{ID: "2", Username: "helper", Bot: true},
		{ID: "3", Username: "bob"},
	}, nil)
	h := NewGuildHandler(bot, nil)

	w := httptest.NewRecorder()
	h.HandleListMembers(w, withURLParams(newRequest(t, http.MethodGet, "/", nil, testUserID), "guild_id", testGuildID))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[MembersResponse](t, w)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "bob", resp.Members[1].Username)
}

func TestHandleVerifyGuild(t *testing.T) {
	tests := []struct {
		name           string
		guildID        string
		setupMocks     func(*mocks.MockDiscordClient)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "bot is in server",
			guildID: testGuildID,
			setupMocks: func(m *mocks.MockDiscordClient) {
				m.On("Guild", mock.Anything, testGuildID).Return(&discord.Guild{ID: testGuildID, Name: "Guild", MemberCount: 42}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"member_count":42`,
		},
		{
			name:    "unknown guild",
			guildID: testGuildID,
			setupMocks: func(m *mocks.MockDiscordClient) {
				m.On("Guild", mock.Anything, testGuildID).Return(nil, &discord.UpstreamError{Op: "get guild", Status: http.StatusNotFound, Reason: "Unknown Guild"})
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgBotNotInServer,
		},
		{
			name:    "discord down",
			guildID: testGuildID,
			setupMocks: func(m *mocks.MockDiscordClient) {
				m.On("Guild", mock.Anything, testGuildID).Return(nil, &discord.UpstreamError{Op: "get guild", Status: http.StatusBadGateway, Reason: "Bad Gateway"})
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "invalid id",
			guildID:        "guild",
			setupMocks:     func(m *mocks.MockDiscordClient) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidDiscordID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot := mocks.NewMockDiscordClient(t)
			tt.setupMocks(bot)
			h := NewGuildHandler(bot, nil)

			w := httptest.NewRecorder()
			h.HandleVerifyGuild(w, withURLParams(newRequest(t, http.MethodGet, "/", nil, testUserID), "guild_id", tt.guildID))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}
