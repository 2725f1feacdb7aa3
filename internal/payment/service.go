// Package payment turns ProBot credit transfers into broadcast credits.
package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/BroadcasterPro_Go/internal/credits"
	"github.com/osse101/BroadcasterPro_Go/internal/discord"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/logger"
	"github.com/osse101/BroadcasterPro_Go/internal/metrics"
	"github.com/osse101/BroadcasterPro_Go/internal/repository"
)

// Config holds the payment settings
type Config struct {
	ChannelID         string
	RecipientID       string
	CreditsPerMessage int
	WalletURL         string
}

// RequestInfo is what a user needs to complete a payment
type RequestInfo struct {
	Request     *domain.PaymentRequest `json:"request"`
	RecipientID string                 `json:"recipient_id"`
	Credits     int                    `json:"credits"`
}

// ScanResult summarizes one pass over the ProBot channel
type ScanResult struct {
	Scanned   int `json:"scanned"`
	Credited  int `json:"credited"`
	Duplicate int `json:"duplicate"`
	Ignored   int `json:"ignored"`
	Failed    int `json:"failed"`
}

// ManualResult is the outcome of an admin-entered transfer
type ManualResult struct {
	Transaction *domain.Transaction `json:"transaction"`
	Credits     int                 `json:"credits_added"`
}

// Service defines the payment operations
type Service interface {
	CreateRequest(ctx context.Context, discordID string, credits int) (*RequestInfo, error)
	// GetRequest returns a payment request owned by discordID, or any request for admins
	GetRequest(ctx context.Context, discordID string, id int64, isAdmin bool) (*domain.PaymentRequest, error)
	// ScanChannel credits every new ProBot transfer in the configured channel
	ScanChannel(ctx context.Context) (*ScanResult, error)
	ProcessManual(ctx context.Context, adminID, senderID string, probotCredits int, proof string) (*ManualResult, error)
	ExpireStale(ctx context.Context) (int64, error)
}

type service struct {
	repo    repository.Payment
	credits credits.Service
	bot     discord.Client
	cfg     Config
	printer *message.Printer
	now     func() time.Time
}

// NewService creates a new payment service
func NewService(repo repository.Payment, creditsSvc credits.Service, bot discord.Client, cfg Config) Service {
	if cfg.CreditsPerMessage <= 0 {
		cfg.CreditsPerMessage = domain.DefaultProBotCreditsPerBroadcast
	}
	return &service{
		repo:    repo,
		credits: creditsSvc,
		bot:     bot,
		cfg:     cfg,
		printer: message.NewPrinter(language.English),
		now:     time.Now,
	}
}

func (s *service) CreateRequest(ctx context.Context, discordID string, creditCount int) (*RequestInfo, error) {
	if !domain.IsValidDiscordID(discordID) {
		return nil, domain.ErrInvalidDiscordID
	}
	if creditCount <= 0 {
		return nil, fmt.Errorf("%w: credits must be positive", domain.ErrInvalidAmount)
	}

	expected := creditCount * s.cfg.CreditsPerMessage
	req, err := s.repo.CreatePaymentRequest(ctx, discordID, expected, s.now().Add(domain.PaymentRequestTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to create payment request: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgPaymentRequestAdded, "discord_id", discordID, "expected_amount", expected)
	return &RequestInfo{Request: req, RecipientID: s.cfg.RecipientID, Credits: creditCount}, nil
}

func (s *service) GetRequest(ctx context.Context, discordID string, id int64, isAdmin bool) (*domain.PaymentRequest, error) {
	req, err := s.repo.GetPaymentRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && req.UserID != discordID {
		return nil, domain.ErrPaymentNotFound
	}
	return req, nil
}

func (s *service) ScanChannel(ctx context.Context) (*ScanResult, error) {
	if s.cfg.ChannelID == "" || s.cfg.RecipientID == "" {
		return nil, domain.ErrPaymentMonitorNotConfigured
	}
	log := logger.FromContext(ctx)
	log.Debug(LogMsgScanStarted, "channel_id", s.cfg.ChannelID)

	messages, err := s.bot.ChannelMessages(ctx, s.cfg.ChannelID, ScanMessageLimit)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{Scanned: len(messages)}
	for _, msg := range messages {
		transfer, ok := ParseTransfer(msg)
		if !ok {
			continue
		}
		if transfer.RecipientID != s.cfg.RecipientID {
			log.Debug(LogMsgTransferIgnored, "message_id", msg.ID, "recipient_id", transfer.RecipientID)
			result.Ignored++
			continue
		}
		switch err := s.processTransfer(ctx, *transfer); {
		case err == nil:
			result.Credited++
		case errors.Is(err, domain.ErrTransferAlreadyProcessed):
			result.Duplicate++
		case errors.Is(err, domain.ErrBelowMinimumTransfer):
			result.Ignored++
		default:
			log.Error(LogMsgCreditFailed, "message_id", msg.ID, "error", err)
			result.Failed++
		}
	}

	log.Info(LogMsgScanFinished,
		"scanned", result.Scanned,
		"credited", result.Credited,
		"duplicate", result.Duplicate,
		"failed", result.Failed)
	return result, nil
}

func (s *service) processTransfer(ctx context.Context, transfer domain.ProBotTransfer) error {
	log := logger.FromContext(ctx)

	creditCount := transfer.Amount / s.cfg.CreditsPerMessage
	if creditCount == 0 {
		log.Debug(LogMsgTransferTooSmall, "message_id", transfer.MessageID, "amount", transfer.Amount)
		return domain.ErrBelowMinimumTransfer
	}

	desc := fmt.Sprintf(DescProBotTransfer, transfer.Amount)
	if _, err := s.credits.AddTransfer(ctx, transfer, creditCount, desc); err != nil {
		return err
	}
	metrics.ProBotTransfersProcessed.Inc()
	log.Info(LogMsgTransferCredited, "message_id", transfer.MessageID, "payer_id", transfer.PayerID, "credits", creditCount)

	if _, err := s.repo.MarkReceived(ctx, transfer.PayerID, transfer.Amount, s.now()); err != nil {
		log.Warn(LogMsgMarkReceivedFailed, "payer_id", transfer.PayerID, "error", err)
	}

	s.confirm(ctx, transfer.PayerID, transfer.Amount, creditCount)
	return nil
}

func (s *service) ProcessManual(ctx context.Context, adminID, senderID string, probotCredits int, proof string) (*ManualResult, error) {
	if !domain.IsValidDiscordID(senderID) {
		return nil, domain.ErrInvalidDiscordID
	}
	if probotCredits < domain.MinProBotTransfer {
		return nil, fmt.Errorf("%w: minimum is %d", domain.ErrBelowMinimumTransfer, domain.MinProBotTransfer)
	}
	proof = strings.TrimSpace(proof)
	if proof == "" {
		return nil, domain.ErrProofRequired
	}

	creditCount := probotCredits / s.cfg.CreditsPerMessage
	desc := fmt.Sprintf(DescManualTransfer, probotCredits, proof)
	txn, err := s.credits.Add(ctx, senderID, creditCount, desc, ManualRefPrefix+proof, metrics.SourceManual)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.MarkReceived(ctx, senderID, probotCredits, s.now()); err != nil {
		logger.FromContext(ctx).Warn(LogMsgMarkReceivedFailed, "payer_id", senderID, "error", err)
	}

	logger.FromContext(ctx).Info(LogMsgManualPayment,
		"admin_id", adminID,
		"sender_id", senderID,
		"probot_credits", probotCredits,
		"credits", creditCount)
	return &ManualResult{Transaction: txn, Credits: creditCount}, nil
}

func (s *service) ExpireStale(ctx context.Context) (int64, error) {
	n, err := s.repo.ExpireStale(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.FromContext(ctx).Info(LogMsgPaymentsExpired, "count", n)
	}
	return n, nil
}

// confirm DMs the payer. Failures are logged only; the credits are already granted.
func (s *service) confirm(ctx context.Context, payerID string, probotAmount, creditCount int) {
	channelID, err := s.bot.CreateDM(ctx, payerID)
	if err == nil {
		err = s.bot.SendMessage(ctx, channelID, s.confirmationText(probotAmount, creditCount))
	}
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgConfirmationFailed, "payer_id", payerID, "error", err)
	}
}

// confirmationText is the DM sent after a transfer is credited
func (s *service) confirmationText(probotAmount, creditCount int) string {
	text := s.printer.Sprintf("✅ **Payment Successful!**\n\n"+
		"💰 **Received:** %d ProBot Credits\n"+
		"📨 **Added:** %d Broadcast Messages\n\n"+
		"🎉 Your credits have been added to your wallet!", probotAmount, creditCount)
	if s.cfg.WalletURL != "" {
		text += "\n🌐 Visit: " + s.cfg.WalletURL
	}
	return text
}
