package handler

// Generic HTTP error messages for client responses.
// Internal error details are never echoed; tests reference these constants.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgInvalidID             = "Invalid id parameter"
	ErrMsgUnknownAction         = "Unknown action"
	ErrMsgOAuthDisabled         = "Discord login is not configured"
	ErrMsgLoginFailed           = "Discord login failed"
	ErrMsgBotNotInServer        = "Bot is not in this server"
	ErrMsgAmountOutOfRange      = "amount must be between %d and %d"
	ErrMsgInvalidMode           = "mode must be inline or queue"
)

// Success messages for API responses
const (
	MsgLoggedOut      = "Logged out"
	MsgCreditsAdded   = "Added %d credits to %s"
	MsgAdminGranted   = "Admin granted"
	MsgAdminRevoked   = "Admin revoked"
	MsgConnectionOK   = "Connected to Discord"
	MsgPaymentCreated = "Send %d ProBot credits to the recipient within 30 minutes"
)

// Log messages
const (
	LogMsgLoginRedirect      = "Redirecting to Discord login"
	LogMsgLoginSucceeded     = "User logged in"
	LogMsgLoginFailed        = "Discord login failed"
	LogMsgLoggedOut          = "User logged out"
	LogMsgBroadcastRequested = "Broadcast requested"
	LogMsgAdminAction        = "Admin action"
	LogMsgActionDispatched   = "Action dispatched"
	LogMsgServiceError       = "Request failed"
	LogMsgAdminLookupFailed  = "Admin lookup failed"
	LogMsgStateMismatch      = "OAuth state does not match this browser"
	LogMsgBotNotInGuild      = "Bot is not in guild"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
)
