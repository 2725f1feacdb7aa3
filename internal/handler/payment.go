package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/BroadcasterPro_Go/internal/payment"
	"github.com/osse101/BroadcasterPro_Go/internal/session"
)

// PaymentHandler handles ProBot payment requests and monitoring
type PaymentHandler struct {
	svc    payment.Service
	admins AdminChecker
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(svc payment.Service, admins AdminChecker) *PaymentHandler {
	return &PaymentHandler{svc: svc, admins: admins}
}

// CreatePaymentRequest is the body of a payment request
type CreatePaymentRequest struct {
	Credits int `json:"credits" validate:"required,min=1,max=1000"`
}

// CreatePaymentResponse tells the user what to transfer
type CreatePaymentResponse struct {
	Message string `json:"message"`
	*payment.RequestInfo
}

// ManualPaymentRequest is an admin-entered ProBot transfer
type ManualPaymentRequest struct {
	SenderID      string `json:"sender_id" validate:"required,snowflake"`
	ProBotCredits int    `json:"probot_credits" validate:"required,min=500"`
	Proof         string `json:"proof" validate:"required,max=500"`
}

// HandleCreateRequest opens a 30 minute payment window for the caller
// @Summary Create payment request
// @Tags payments
// @Accept json
// @Produce json
// @Param request body CreatePaymentRequest true "Credits wanted"
// @Success 201 {object} CreatePaymentResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/payments [post]
func (h *PaymentHandler) HandleCreateRequest(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var req CreatePaymentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "payment request"); err != nil {
		return
	}
	info, err := h.svc.CreateRequest(r.Context(), sess.DiscordID, req.Credits)
	if err != nil {
		respondServiceError(w, r, "create payment request", err)
		return
	}
	respondJSON(w, http.StatusCreated, CreatePaymentResponse{
		Message:     fmt.Sprintf(MsgPaymentCreated, info.Request.ExpectedAmount),
		RequestInfo: info,
	})
}

// HandleGetStatus returns a payment request of the caller
// @Summary Payment status
// @Tags payments
// @Produce json
// @Param id path int true "Payment request ID"
// @Success 200 {object} domain.PaymentRequest
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/payments/{id} [get]
func (h *PaymentHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	req, err := h.svc.GetRequest(r.Context(), sess.DiscordID, id, isAdmin(r, h.admins, sess))
	if err != nil {
		respondServiceError(w, r, "get payment request", err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

// HandleScan runs the ProBot monitor once
// @Summary Run ProBot monitor (admin)
// @Tags admin
// @Produce json
// @Success 200 {object} payment.ScanResult
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/admin/payments/scan [post]
func (h *PaymentHandler) HandleScan(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ScanChannel(r.Context())
	if err != nil {
		respondServiceError(w, r, "scan probot channel", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleProcessManual credits a transfer an admin verified by hand
// @Summary Process payment manually (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ManualPaymentRequest true "Transfer"
// @Success 200 {object} payment.ManualResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/admin/payments [post]
func (h *PaymentHandler) HandleProcessManual(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())
	var req ManualPaymentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "manual payment"); err != nil {
		return
	}
	result, err := h.svc.ProcessManual(r.Context(), sess.DiscordID, req.SenderID, req.ProBotCredits, req.Proof)
	if err != nil {
		respondServiceError(w, r, "process manual payment", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
