package handler

import (
	"fmt"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/BroadcasterPro_Go/internal/admin"
	"github.com/osse101/BroadcasterPro_Go/internal/credits"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/logger"
	"github.com/osse101/BroadcasterPro_Go/internal/metrics"
	"github.com/osse101/BroadcasterPro_Go/internal/session"
	"github.com/osse101/BroadcasterPro_Go/internal/user"
)

// DescAdminGrant is the ledger description of an admin credit grant
const DescAdminGrant = "Admin grant by %s"

var printer = message.NewPrinter(language.English)

// AdminHandler handles the admin console
type AdminHandler struct {
	credits credits.Service
	users   user.Service
	admins  admin.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(creditsSvc credits.Service, users user.Service, admins admin.Service) *AdminHandler {
	return &AdminHandler{credits: creditsSvc, users: users, admins: admins}
}

// AddCreditsRequest grants credits to a user
type AddCreditsRequest struct {
	UserID string `json:"user_id" validate:"required,snowflake"`
	Amount int    `json:"amount" validate:"required"`
}

// AddCreditsResponse reports a grant
type AddCreditsResponse struct {
	Message     string              `json:"message"`
	Transaction *domain.Transaction `json:"transaction"`
}

// AdminRequest names a user to promote
type AdminRequest struct {
	DiscordID string `json:"discord_id" validate:"required,snowflake"`
}

// UserInfoResponse is everything the console shows about a user
type UserInfoResponse struct {
	User         *domain.User         `json:"user"`
	Stats        domain.UserStats     `json:"stats"`
	Transactions []domain.Transaction `json:"transactions"`
}

// HandleAddCredits grants up to 10000 credits
// @Summary Add credits (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AddCreditsRequest true "Grant"
// @Success 200 {object} AddCreditsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/credits [post]
func (h *AdminHandler) HandleAddCredits(w http.ResponseWriter, r *http.Request) {
	addCredits(w, r, h.credits, domain.MaxConsoleAdminGrant)
}

func addCredits(w http.ResponseWriter, r *http.Request, svc credits.Service, maxAmount int) {
	sess, _ := session.FromContext(r.Context())
	var req AddCreditsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "add credits"); err != nil {
		return
	}
	if req.Amount < domain.MinAdminGrant || req.Amount > maxAmount {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgAmountOutOfRange, domain.MinAdminGrant, maxAmount))
		return
	}

	tx, err := svc.Add(r.Context(), req.UserID, req.Amount, fmt.Sprintf(DescAdminGrant, sess.DiscordID), "", metrics.SourceAdmin)
	if err != nil {
		respondServiceError(w, r, "add credits", err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgAdminAction,
		"action", "add_credits", "admin_id", sess.DiscordID, "user_id", req.UserID, "amount", req.Amount)
	respondJSON(w, http.StatusOK, AddCreditsResponse{
		Message:     printer.Sprintf(MsgCreditsAdded, req.Amount, req.UserID),
		Transaction: tx,
	})
}

// HandleGetUserInfo returns a user with stats and recent transactions
// @Summary User info (admin)
// @Tags admin
// @Produce json
// @Param discord_id path string true "Discord ID"
// @Success 200 {object} UserInfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/users/{discord_id} [get]
func (h *AdminHandler) HandleGetUserInfo(w http.ResponseWriter, r *http.Request) {
	discordID, ok := discordIDParam(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	u, err := h.users.FindUserByDiscordID(r.Context(), discordID)
	if err != nil {
		respondServiceError(w, r, "get user", err)
		return
	}
	wallet, err := h.credits.GetWallet(r.Context(), discordID, limit)
	if err != nil {
		respondServiceError(w, r, "get wallet", err)
		return
	}
	respondJSON(w, http.StatusOK, UserInfoResponse{User: u, Stats: wallet.Stats, Transactions: wallet.Transactions})
}

// HandleReconcile compares a user's balance against the ledger
// @Summary Reconcile user (admin)
// @Tags admin
// @Produce json
// @Param discord_id path string true "Discord ID"
// @Success 200 {object} domain.Reconciliation
// @Router /api/v1/admin/users/{discord_id}/reconcile [get]
func (h *AdminHandler) HandleReconcile(w http.ResponseWriter, r *http.Request) {
	discordID, ok := discordIDParam(w, r)
	if !ok {
		return
	}
	rec, err := h.credits.Reconcile(r.Context(), discordID)
	if err != nil {
		respondServiceError(w, r, "reconcile", err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// HandleRecentTransactions returns the newest ledger rows across all users
// @Summary Recent transactions (admin)
// @Tags admin
// @Produce json
// @Param limit query int false "Rows to return (max 100)"
// @Success 200 {array} domain.Transaction
// @Router /api/v1/admin/transactions [get]
func (h *AdminHandler) HandleRecentTransactions(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	txs, err := h.credits.GetRecentTransactions(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, "recent transactions", err)
		return
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	respondJSON(w, http.StatusOK, txs)
}

// HandleListAdmins returns every admin
// @Summary List admins (admin)
// @Tags admin
// @Produce json
// @Success 200 {array} domain.Admin
// @Router /api/v1/admin/admins [get]
func (h *AdminHandler) HandleListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.admins.List(r.Context())
	if err != nil {
		respondServiceError(w, r, "list admins", err)
		return
	}
	if admins == nil {
		admins = []domain.Admin{}
	}
	respondJSON(w, http.StatusOK, admins)
}

// HandleGrantAdmin promotes a user to admin
// @Summary Grant admin (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminRequest true "User"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/admins [post]
func (h *AdminHandler) HandleGrantAdmin(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())
	var req AdminRequest
	if err := DecodeAndValidateRequest(r, w, &req, "grant admin"); err != nil {
		return
	}
	if err := h.admins.Grant(r.Context(), req.DiscordID, sess.DiscordID); err != nil {
		respondServiceError(w, r, "grant admin", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAdminGranted})
}

// HandleRevokeAdmin removes an admin. Admins cannot revoke themselves.
// @Summary Revoke admin (admin)
// @Tags admin
// @Produce json
// @Param discord_id path string true "Discord ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/admins/{discord_id} [delete]
func (h *AdminHandler) HandleRevokeAdmin(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())
	discordID, ok := discordIDParam(w, r)
	if !ok {
		return
	}
	if err := h.admins.Revoke(r.Context(), discordID, sess.DiscordID); err != nil {
		respondServiceError(w, r, "revoke admin", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAdminRevoked})
}

func discordIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := param(r, "discord_id")
	if !domain.IsValidDiscordID(id) {
		respondServiceError(w, r, "discord id", domain.ErrInvalidDiscordID)
		return "", false
	}
	return id, true
}
