package discord

import "time"

// Discord OAuth endpoints
const (
	OAuthAuthorizeURL = "https://discord.com/api/oauth2/authorize"
	OAuthTokenURL     = "https://discord.com/api/oauth2/token"
)

// OAuthScopes are requested at login
var OAuthScopes = []string{"identify", "email", "guilds"}

const (
	// RequestTimeout bounds a single REST call
	RequestTimeout = 15 * time.Second

	// UnknownGuildName is shown when a guild cannot be resolved
	UnknownGuildName = "Unknown Server"

	// MaxUserGuilds is the page size used when listing the bot's guilds
	MaxUserGuilds = 200

	// Guild name cache bounds
	GuildNameCacheSize = 500
	GuildNameCacheTTL  = 10 * time.Minute
)

// Log messages
const (
	LogMsgGuildLookupFailed = "Guild lookup failed, using placeholder name"
	LogMsgOAuthExchange     = "Exchanging OAuth code"
)
