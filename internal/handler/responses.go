package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/BroadcasterPro_Go/internal/discord"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still be a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and user message
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "op", op, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "op", op, "error", err)
	}
	respondError(w, status, msg)
}

// User-facing messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgUnauthenticated     = "Please log in with Discord"
	ErrMsgForbidden           = "Admin access required"
	ErrMsgUserNotFound        = "User not found"
	ErrMsgInvalidDiscordID    = "Invalid Discord ID. It must be 17-19 digits."
	ErrMsgInvalidAmount       = "Invalid amount"
	ErrMsgInsufficientCredits = "Insufficient credits. Please purchase more credits."
	ErrMsgBroadcastNotFound   = "Broadcast not found"
	ErrMsgPaymentNotFound     = "Payment request not found"
	ErrMsgTransferProcessed   = "This transfer was already processed"
	ErrMsgBelowMinimum        = "Minimum transfer is 500 ProBot credits"
	ErrMsgProofRequired       = "Transfer proof is required"
	ErrMsgMonitorDisabled     = "ProBot monitoring is not configured"
	ErrMsgInvalidState        = "Login expired. Please try again."
	ErrMsgInvalidTarget       = "Invalid target type"
	ErrMsgMessageRequired     = "Message is required"
	ErrMsgDiscordUnavailable  = "Discord request failed"
	ErrMsgInvalidTransition   = "Broadcast is not in a state that allows this"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP statuses and user messages
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrMsgUnauthenticated
	case errors.Is(err, domain.ErrNotAdmin):
		return http.StatusForbidden, ErrMsgForbidden
	case errors.Is(err, domain.ErrInvalidOAuthState):
		return http.StatusBadRequest, ErrMsgInvalidState
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFound
	case errors.Is(err, domain.ErrInvalidDiscordID):
		return http.StatusBadRequest, ErrMsgInvalidDiscordID
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmount
	case errors.Is(err, domain.ErrInsufficientCredits):
		return http.StatusPaymentRequired, ErrMsgInsufficientCredits
	case errors.Is(err, domain.ErrQueueEntryNotFound):
		return http.StatusNotFound, ErrMsgBroadcastNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, ErrMsgInvalidTransition
	case errors.Is(err, domain.ErrInvalidTargetFilter):
		return http.StatusBadRequest, ErrMsgInvalidTarget
	case errors.Is(err, domain.ErrEmptyMessage):
		return http.StatusBadRequest, ErrMsgMessageRequired
	case errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound, ErrMsgPaymentNotFound
	case errors.Is(err, domain.ErrTransferAlreadyProcessed):
		return http.StatusConflict, ErrMsgTransferProcessed
	case errors.Is(err, domain.ErrBelowMinimumTransfer):
		return http.StatusBadRequest, ErrMsgBelowMinimum
	case errors.Is(err, domain.ErrProofRequired):
		return http.StatusBadRequest, ErrMsgProofRequired
	case errors.Is(err, domain.ErrPaymentMonitorNotConfigured):
		return http.StatusServiceUnavailable, ErrMsgMonitorDisabled
	case errors.Is(err, domain.ErrInvalidInput):
		// validation messages are safe to echo
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUpstream):
		return upstreamStatus(err), err.Error()
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// upstreamStatus keeps Discord's client errors visible and reports the rest as a bad gateway
func upstreamStatus(err error) int {
	switch status := discord.StatusCode(err); {
	case status == http.StatusNotFound, status == http.StatusForbidden:
		return status
	default:
		return http.StatusBadGateway
	}
}
