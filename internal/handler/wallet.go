package handler

import (
	"net/http"

	"github.com/osse101/BroadcasterPro_Go/internal/credits"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
)

// WalletHandler serves the logged-in user's balance and ledger
type WalletHandler struct {
	credits credits.Service
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(creditsSvc credits.Service) *WalletHandler {
	return &WalletHandler{credits: creditsSvc}
}

// HandleGetWallet returns the user's stats and recent transactions
// @Summary Wallet info
// @Tags wallet
// @Produce json
// @Param limit query int false "Transactions to return (max 100)"
// @Success 200 {object} credits.Wallet
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/wallet [get]
func (h *WalletHandler) HandleGetWallet(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	wallet, err := h.credits.GetWallet(r.Context(), sess.DiscordID, limit)
	if err != nil {
		respondServiceError(w, r, "get wallet", err)
		return
	}
	respondJSON(w, http.StatusOK, wallet)
}

// HandleGrant lets an admin add up to 1000 credits from the wallet page
// @Summary Grant credits (wallet)
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body AddCreditsRequest true "Grant"
// @Success 200 {object} AddCreditsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/wallet/grant [post]
func (h *WalletHandler) HandleGrant(w http.ResponseWriter, r *http.Request) {
	addCredits(w, r, h.credits, domain.MaxWalletAdminGrant)
}
