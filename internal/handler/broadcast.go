package handler

import (
	"net/http"

	"github.com/osse101/BroadcasterPro_Go/internal/broadcast"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/logger"
)

// Broadcast modes
const (
	ModeInline = "inline"
	ModeQueue  = "queue"
)

// BroadcastHandler handles sending and tracking broadcasts
type BroadcastHandler struct {
	svc          broadcast.Service
	admins       AdminChecker
	defaultDelay int
}

// NewBroadcastHandler creates a new broadcast handler
func NewBroadcastHandler(svc broadcast.Service, admins AdminChecker, defaultDelay int) *BroadcastHandler {
	return &BroadcastHandler{svc: svc, admins: admins, defaultDelay: defaultDelay}
}

// BroadcastRequest is the body of a broadcast send
type BroadcastRequest struct {
	GuildID        string `json:"guild_id" validate:"required,snowflake"`
	Message        string `json:"message" validate:"required,max=2000"`
	TargetType     string `json:"target_type" validate:"omitempty,target_filter"`
	DelaySeconds   *int   `json:"delay_seconds" validate:"omitempty,min=0,max=60"`
	EnableMentions bool   `json:"enable_mentions"`
	BotToken       string `json:"bot_token,omitempty"`
	Mode           string `json:"mode" validate:"omitempty,oneof=inline queue"`
}

// HandleSend runs a broadcast inline or queues it, depending on mode (inline by default)
// @Summary Send a broadcast
// @Tags broadcasts
// @Accept json
// @Produce json
// @Param request body BroadcastRequest true "Broadcast"
// @Success 200 {object} broadcast.SendResult
// @Success 202 {object} domain.QueueEntry
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Router /api/v1/broadcasts [post]
func (h *BroadcastHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, "")
}

// HandleSendInline always runs the broadcast in the request
func (h *BroadcastHandler) HandleSendInline(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, ModeInline)
}

// HandleEnqueue always queues the broadcast for the worker
func (h *BroadcastHandler) HandleEnqueue(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, ModeQueue)
}

func (h *BroadcastHandler) send(w http.ResponseWriter, r *http.Request, mode string) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var req BroadcastRequest
	if err := DecodeAndValidateRequest(r, w, &req, "broadcast"); err != nil {
		return
	}
	if mode == "" {
		mode = req.Mode
	}
	if mode == "" {
		mode = ModeInline
	}

	dispatch := broadcast.DispatchRequest{
		BotToken:       req.BotToken,
		GuildID:        req.GuildID,
		Message:        req.Message,
		TargetFilter:   domain.TargetFilter(req.TargetType),
		DelaySeconds:   h.defaultDelay,
		EnableMentions: req.EnableMentions,
	}
	if req.DelaySeconds != nil {
		dispatch.DelaySeconds = *req.DelaySeconds
	}

	logger.FromContext(r.Context()).Info(LogMsgBroadcastRequested,
		"discord_id", sess.DiscordID, "guild_id", req.GuildID, "mode", mode)

	switch mode {
	case ModeQueue:
		entry, err := h.svc.Enqueue(r.Context(), sess.DiscordID, dispatch)
		if err != nil {
			respondServiceError(w, r, "queue broadcast", err)
			return
		}
		respondJSON(w, http.StatusAccepted, entry)
	case ModeInline:
		result, err := h.svc.SendNow(r.Context(), sess.DiscordID, dispatch)
		if err != nil {
			respondServiceError(w, r, "send broadcast", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	default:
		respondError(w, http.StatusBadRequest, ErrMsgInvalidMode)
	}
}

// HandleGetStatus returns a queued broadcast owned by the caller
// @Summary Queued broadcast status
// @Tags broadcasts
// @Produce json
// @Param id path int true "Queue entry ID"
// @Success 200 {object} domain.QueueEntry
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/broadcasts/{id} [get]
func (h *BroadcastHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	entry, err := h.svc.GetStatus(r.Context(), sess.DiscordID, id, isAdmin(r, h.admins, sess))
	if err != nil {
		respondServiceError(w, r, "get broadcast status", err)
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// HandleListUserBroadcasts returns the caller's queue entries and history
// @Summary My broadcasts
// @Tags broadcasts
// @Produce json
// @Param limit query int false "Entries per list"
// @Success 200 {object} broadcast.UserBroadcasts
// @Router /api/v1/broadcasts [get]
func (h *BroadcastHandler) HandleListUserBroadcasts(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	list, err := h.svc.GetUserBroadcasts(r.Context(), sess.DiscordID, limit)
	if err != nil {
		respondServiceError(w, r, "list broadcasts", err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// HandleGetActive returns the pending and processing queue entries
// @Summary Active broadcasts (admin)
// @Tags admin
// @Produce json
// @Success 200 {array} domain.QueueEntry
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/admin/broadcasts/active [get]
func (h *BroadcastHandler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.GetActive(r.Context())
	if err != nil {
		respondServiceError(w, r, "list active broadcasts", err)
		return
	}
	if entries == nil {
		entries = []domain.QueueEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}
