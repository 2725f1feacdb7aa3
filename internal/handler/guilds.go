package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/BroadcasterPro_Go/internal/discord"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/logger"
)

// GuildRecorder remembers guild names seen in listings
type GuildRecorder interface {
	Remember(guildID, name string)
}

// GuildHandler exposes what the configured bot can see on Discord
type GuildHandler struct {
	bot   discord.Client
	names GuildRecorder
}

// NewGuildHandler creates a new guild handler. names may be nil.
func NewGuildHandler(bot discord.Client, names GuildRecorder) *GuildHandler {
	return &GuildHandler{bot: bot, names: names}
}

// BotInfoResponse describes the bot account
type BotInfoResponse struct {
	Message    string           `json:"message"`
	Bot        *discord.Profile `json:"bot"`
	GuildCount int              `json:"guild_count"`
}

// MembersResponse lists the non-bot members of a guild
type MembersResponse struct {
	GuildID string           `json:"guild_id"`
	Count   int              `json:"count"`
	Members []discord.Member `json:"members"`
}

// VerifyGuildResponse confirms the bot is in a guild
type VerifyGuildResponse struct {
	InServer    bool   `json:"in_server"`
	GuildID     string `json:"guild_id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
}

// HandleBotInfo checks the bot token and reports the bot account and guild count
// @Summary Bot info and connection test
// @Tags guilds
// @Produce json
// @Success 200 {object} BotInfoResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/bot [get]
func (h *GuildHandler) HandleBotInfo(w http.ResponseWriter, r *http.Request) {
	me, err := h.bot.Me(r.Context())
	if err != nil {
		respondServiceError(w, r, "get bot user", err)
		return
	}
	guilds, err := h.bot.Guilds(r.Context())
	if err != nil {
		respondServiceError(w, r, "list bot guilds", err)
		return
	}
	respondJSON(w, http.StatusOK, BotInfoResponse{
		Message:    MsgConnectionOK,
		Bot:        me,
		GuildCount: len(guilds),
	})
}

// HandleListGuilds returns the guilds the bot is a member of
// @Summary Bot guilds
// @Tags guilds
// @Produce json
// @Success 200 {array} discord.Guild
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/guilds [get]
func (h *GuildHandler) HandleListGuilds(w http.ResponseWriter, r *http.Request) {
	guilds, err := h.bot.Guilds(r.Context())
	if err != nil {
		respondServiceError(w, r, "list bot guilds", err)
		return
	}
	if h.names != nil {
		for _, g := range guilds {
			h.names.Remember(g.ID, g.Name)
		}
	}
	if guilds == nil {
		guilds = []discord.Guild{}
	}
	respondJSON(w, http.StatusOK, guilds)
}

// HandleListMembers returns up to 1000 non-bot members of a guild
// @Summary Guild members
// @Tags guilds
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Success 200 {object} MembersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/guilds/{guild_id}/members [get]
func (h *GuildHandler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildParam(w, r)
	if !ok {
		return
	}
	members, err := h.bot.GuildMembers(r.Context(), guildID, domain.MaxGuildMembers)
	if err != nil {
		respondServiceError(w, r, "list guild members", err)
		return
	}
	humans := make([]discord.Member, 0, len(members))
	for _, m := range members {
		if !m.Bot {
			humans = append(humans, m)
		}
	}
	respondJSON(w, http.StatusOK, MembersResponse{GuildID: guildID, Count: len(humans), Members: humans})
}

// HandleVerifyGuild reports whether the bot can see a guild
// @Summary Verify bot in server
// @Tags guilds
// @Produce json
// @Param guild_id path string true "Guild ID"
// @Success 200 {object} VerifyGuildResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/guilds/{guild_id} [get]
func (h *GuildHandler) HandleVerifyGuild(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildParam(w, r)
	if !ok {
		return
	}
	g, err := h.bot.Guild(r.Context(), guildID)
	if err != nil {
		status := discord.StatusCode(err)
		if errors.Is(err, domain.ErrUpstream) && (status == http.StatusNotFound || status == http.StatusForbidden) {
			logger.FromContext(r.Context()).Info(LogMsgBotNotInGuild, "guild_id", guildID, "status", status)
			respondError(w, http.StatusNotFound, ErrMsgBotNotInServer)
			return
		}
		respondServiceError(w, r, "get guild", err)
		return
	}
	if h.names != nil {
		h.names.Remember(g.ID, g.Name)
	}
	respondJSON(w, http.StatusOK, VerifyGuildResponse{
		InServer:    true,
		GuildID:     g.ID,
		Name:        g.Name,
		MemberCount: g.MemberCount,
	})
}

func guildParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	guildID := param(r, "guild_id")
	if !domain.IsValidDiscordID(guildID) {
		respondServiceError(w, r, "guild id", domain.ErrInvalidDiscordID)
		return "", false
	}
	return guildID, true
}
