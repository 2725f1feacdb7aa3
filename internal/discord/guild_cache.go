package discord

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BroadcasterPro_Go/internal/logger"
)

// GuildNames resolves guild names through a Client with an expiring cache
type GuildNames struct {
	client Client
	cache  *expirable.LRU[string, string]
}

// NewGuildNames creates a cache holding up to size names for ttl
func NewGuildNames(client Client, size int, ttl time.Duration) *GuildNames {
	return &GuildNames{
		client: client,
		cache:  expirable.NewLRU[string, string](size, nil, ttl),
	}
}

// Name returns the guild name, or UnknownGuildName if it cannot be fetched.
// Failed lookups are not cached.
func (g *GuildNames) Name(ctx context.Context, guildID string) string {
	if name, ok := g.cache.Get(guildID); ok {
		return name
	}
	guild, err := g.client.Guild(ctx, guildID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgGuildLookupFailed, "guild_id", guildID, "error", err)
		return UnknownGuildName
	}
	g.cache.Add(guildID, guild.Name)
	return guild.Name
}

// Remember stores a name already fetched elsewhere
func (g *GuildNames) Remember(guildID, name string) {
	g.cache.Add(guildID, name)
}
