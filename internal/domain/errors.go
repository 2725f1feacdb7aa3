package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound     = "user not found"
	ErrMsgInvalidDiscordID = "invalid Discord ID format"

	// Ledger errors
	ErrMsgInsufficientCredits = "insufficient credits"
	ErrMsgInvalidAmount       = "invalid amount"

	// Broadcast and queue errors
	ErrMsgUpstream            = "discord api error"
	ErrMsgQueueEntryNotFound  = "broadcast not found"
	ErrMsgInvalidTransition   = "invalid broadcast status transition"
	ErrMsgInvalidTargetFilter = "invalid target type"
	ErrMsgEmptyMessage        = "message is required"
	ErrMsgBroadcastAborted    = "broadcast aborted: too many failures"

	// Payment errors
	ErrMsgPaymentNotFound             = "payment request not found"
	ErrMsgTransferAlreadyProcessed    = "transfer already processed"
	ErrMsgBelowMinimumTransfer        = "transfer is below the minimum amount"
	ErrMsgProofRequired               = "payment proof is required"
	ErrMsgPaymentMonitorNotConfigured = "payment monitoring is not configured"

	// Auth errors
	ErrMsgUnauthenticated   = "not authenticated"
	ErrMsgNotAdmin          = "admin privileges required"
	ErrMsgInvalidOAuthState = "invalid oauth state"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound     = errors.New(ErrMsgUserNotFound)
	ErrInvalidDiscordID = errors.New(ErrMsgInvalidDiscordID)

	ErrInsufficientCredits = errors.New(ErrMsgInsufficientCredits)
	ErrInvalidAmount       = errors.New(ErrMsgInvalidAmount)

	ErrUpstream            = errors.New(ErrMsgUpstream)
	ErrQueueEntryNotFound  = errors.New(ErrMsgQueueEntryNotFound)
	ErrInvalidTransition   = errors.New(ErrMsgInvalidTransition)
	ErrInvalidTargetFilter = errors.New(ErrMsgInvalidTargetFilter)
	ErrEmptyMessage        = errors.New(ErrMsgEmptyMessage)
	ErrBroadcastAborted    = errors.New(ErrMsgBroadcastAborted)

	ErrPaymentNotFound             = errors.New(ErrMsgPaymentNotFound)
	ErrTransferAlreadyProcessed    = errors.New(ErrMsgTransferAlreadyProcessed)
	ErrBelowMinimumTransfer        = errors.New(ErrMsgBelowMinimumTransfer)
	ErrProofRequired               = errors.New(ErrMsgProofRequired)
	ErrPaymentMonitorNotConfigured = errors.New(ErrMsgPaymentMonitorNotConfigured)

	ErrUnauthenticated   = errors.New(ErrMsgUnauthenticated)
	ErrNotAdmin          = errors.New(ErrMsgNotAdmin)
	ErrInvalidOAuthState = errors.New(ErrMsgInvalidOAuthState)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
