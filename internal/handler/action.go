package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/osse101/BroadcasterPro_Go/internal/logger"
)

// Action names a dashboard command posted to /api/v1/action
type Action string

const (
	ActionTestConnection        Action = "test_connection"
	ActionGetBotInfo            Action = "get_bot_info"
	ActionGetGuilds             Action = "get_guilds"
	ActionGetMembers            Action = "get_members"
	ActionVerifyBotInServer     Action = "verify_bot_in_server"
	ActionSendBroadcast         Action = "send_broadcast"
	ActionQueueBroadcast        Action = "queue_broadcast"
	ActionGetBroadcastStatus    Action = "get_broadcast_status"
	ActionGetUserBroadcasts     Action = "get_user_broadcasts"
	ActionGetWalletInfo         Action = "get_wallet_info"
	ActionCreatePaymentRequest  Action = "create_payment_request"
	ActionCheckPaymentStatus    Action = "check_payment_status"
	ActionRunProBotMonitor      Action = "run_probot_monitor"
	ActionProcessPayment        Action = "process_payment"
	ActionAdminAddCredits       Action = "admin_add_credits"
	ActionGetUserInfo           Action = "get_user_info"
	ActionReconcileUser         Action = "reconcile_user"
	ActionGetActiveBroadcasts   Action = "get_active_broadcasts"
	ActionListAdmins            Action = "list_admins"
	ActionGrantAdmin            Action = "grant_admin"
	ActionRevokeAdmin           Action = "revoke_admin"
	ActionGetRecentTransactions Action = "get_recent_transactions"
)

// Actions lists every known action
var Actions = []Action{
	ActionTestConnection, ActionGetBotInfo, ActionGetGuilds, ActionGetMembers, ActionVerifyBotInServer,
	ActionSendBroadcast, ActionQueueBroadcast, ActionGetBroadcastStatus, ActionGetUserBroadcasts,
	ActionGetWalletInfo, ActionCreatePaymentRequest, ActionCheckPaymentStatus,
	ActionRunProBotMonitor, ActionProcessPayment, ActionAdminAddCredits, ActionGetUserInfo,
	ActionReconcileUser, ActionGetActiveBroadcasts, ActionListAdmins, ActionGrantAdmin,
	ActionRevokeAdmin, ActionGetRecentTransactions,
}

// ParseAction returns the Action named s
func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// ActionRequest is the body of /api/v1/action
type ActionRequest struct {
	Action string         `json:"action" validate:"required"`
	Params map[string]any `json:"params"`
}

// Handlers groups the REST handlers so actions can reuse them
type Handlers struct {
	Auth      *AuthHandler
	Wallet    *WalletHandler
	Guild     *GuildHandler
	Broadcast *BroadcastHandler
	Payment   *PaymentHandler
	Admin     *AdminHandler
	Admins    AdminChecker
	// Events streams live broadcast progress; the route is omitted when nil
	Events http.HandlerFunc
}

// ActionHandler dispatches dashboard commands to the REST handlers
type ActionHandler struct {
	h            Handlers
	requireAdmin func(http.Handler) http.Handler
}

// NewActionHandler creates the action dispatcher
func NewActionHandler(h Handlers) *ActionHandler {
	return &ActionHandler{h: h, requireAdmin: RequireAdmin(h.Admins)}
}

// route returns the handler serving a and whether it needs the admin role
func (a *ActionHandler) route(action Action) (http.HandlerFunc, bool) {
	switch action {
	case ActionTestConnection, ActionGetBotInfo:
		return a.h.Guild.HandleBotInfo, false
	case ActionGetGuilds:
		return a.h.Guild.HandleListGuilds, false
	case ActionGetMembers:
		return a.h.Guild.HandleListMembers, false
	case ActionVerifyBotInServer:
		return a.h.Guild.HandleVerifyGuild, false
	case ActionSendBroadcast:
		return a.h.Broadcast.HandleSendInline, false
	case ActionQueueBroadcast:
		return a.h.Broadcast.HandleEnqueue, false
	case ActionGetBroadcastStatus:
		return a.h.Broadcast.HandleGetStatus, false
	case ActionGetUserBroadcasts:
		return a.h.Broadcast.HandleListUserBroadcasts, false
	case ActionGetWalletInfo:
		return a.h.Wallet.HandleGetWallet, false
	case ActionCreatePaymentRequest:
		return a.h.Payment.HandleCreateRequest, false
	case ActionCheckPaymentStatus:
		return a.h.Payment.HandleGetStatus, false
	case ActionRunProBotMonitor:
		return a.h.Payment.HandleScan, true
	case ActionProcessPayment:
		return a.h.Payment.HandleProcessManual, true
	case ActionAdminAddCredits:
		return a.h.Admin.HandleAddCredits, true
	case ActionGetUserInfo:
		return a.h.Admin.HandleGetUserInfo, true
	case ActionReconcileUser:
		return a.h.Admin.HandleReconcile, true
	case ActionGetActiveBroadcasts:
		return a.h.Broadcast.HandleGetActive, true
	case ActionListAdmins:
		return a.h.Admin.HandleListAdmins, true
	case ActionGrantAdmin:
		return a.h.Admin.HandleGrantAdmin, true
	case ActionRevokeAdmin:
		return a.h.Admin.HandleRevokeAdmin, true
	case ActionGetRecentTransactions:
		return a.h.Admin.HandleRecentTransactions, true
	}
	return nil, false
}

// HandleAction runs one dashboard command. params become both the JSON body
// and the query string of the request passed to the REST handler.
// @Summary Dashboard action
// @Tags actions
// @Accept json
// @Produce json
// @Param request body ActionRequest true "Action and params"
// @Success 200 {object} any
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/action [post]
func (a *ActionHandler) HandleAction(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}

	action, err := ParseAction(req.Action)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgUnknownAction)
		return
	}
	target, adminOnly := a.route(action)

	body, err := json.Marshal(req.Params)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}
	sub := r.Clone(r.Context())
	sub.Body = http.NoBody
	if len(req.Params) > 0 {
		sub.Body = io.NopCloser(bytes.NewReader(body))
	}
	sub.ContentLength = int64(len(body))
	sub.URL.RawQuery = flattenParams(req.Params).Encode()

	logger.FromContext(r.Context()).Debug(LogMsgActionDispatched, "action", action, "admin_only", adminOnly)

	var next http.Handler = target
	if adminOnly {
		next = a.requireAdmin(next)
	}
	next.ServeHTTP(w, sub)
}

// flattenParams renders scalar params as query values. Nested values are skipped.
func flattenParams(params map[string]any) url.Values {
	q := url.Values{}
	for k, v := range params {
		switch v := v.(type) {
		case string:
			q.Set(k, v)
		case json.Number:
			q.Set(k, v.String())
		case bool:
			q.Set(k, fmt.Sprint(v))
		}
	}
	return q
}
