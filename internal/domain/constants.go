package domain

import "time"

// Discord constants
const (
	DiscordCDNBase   = "https://cdn.discordapp.com"
	DefaultAvatarURL = DiscordCDNBase + "/embed/avatars/0.png"

	// ProBotUserID is the author ID of the ProBot account that posts credit transfers
	ProBotUserID = "282859044593598464"

	// MaxGuildMembers is the member page size used when enumerating a guild
	MaxGuildMembers = 1000

	// UnknownUsername is used when credits are granted to an account that never logged in
	UnknownUsername = "Unknown"
)

// Credit rules
const (
	// DefaultProBotCreditsPerBroadcast is the exchange rate of ProBot credits to broadcast credits
	DefaultProBotCreditsPerBroadcast = 500

	// MinProBotTransfer is the smallest manual transfer that can be processed
	MinProBotTransfer = 500

	// Wallet admins may grant up to 1000 credits at once; the admin console up to 10000.
	MinAdminGrant        = 1
	MaxWalletAdminGrant  = 1000
	MaxConsoleAdminGrant = 10000

	DefaultTransactionLimit = 10
	MaxTransactionLimit     = 100
	DefaultBroadcastLimit   = 10
)

// Payment monitoring
const (
	PaymentRequestTTL = 30 * time.Minute
)

// Broadcast defaults
const (
	DefaultDelaySeconds = 2
	MaxDelaySeconds     = 60
	MaxMessageLength    = 2000

	// Dispatch aborts once failures exceed AbortFailureThreshold while fewer than
	// AbortSuccessFloor messages were sent.
	AbortFailureThreshold = 10
	AbortSuccessFloor     = 5
)
