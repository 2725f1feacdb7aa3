package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BroadcasterPro_Go/internal/discord"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/payment"
	"github.com/osse101/BroadcasterPro_Go/mocks"
)

const (
	channelID = "333333333333333333"
	adminID   = "444444444444444444"
)

type paymentMocks struct {
	repo    *mocks.MockRepositoryPayment
	credits *mocks.MockCreditsService
	bot     *mocks.MockDiscordClient
}

func newTestService(t *testing.T, cfg payment.Config) (payment.Service, paymentMocks) {
	m := paymentMocks{
		repo:    mocks.NewMockRepositoryPayment(t),
		credits: mocks.NewMockCreditsService(t),
		bot:     mocks.NewMockDiscordClient(t),
	}
	return payment.NewService(m.repo, m.credits, m.bot, cfg), m
}

func defaultConfig() payment.Config {
	return payment.Config{
		ChannelID:         channelID,
		RecipientID:       recipientID,
		CreditsPerMessage: 500,
		WalletURL:         "https://example.test/wallet",
	}
}

func transferMessage(id string, amount, to string) discord.ChannelMessage {
	return discord.ChannelMessage{
		ID:                 id,
		AuthorID:           domain.ProBotUserID,
		Content:            "transferred " + amount + " credits to <@" + to + ">",
		ReferencedAuthorID: payerID,
	}
}

func TestCreateRequest(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t, defaultConfig())

	m.repo.On("CreatePaymentRequest", ctx, payerID, 1500, mock.AnythingOfType("time.Time")).
		Return(&domain.PaymentRequest{ID: 7, UserID: payerID, ExpectedAmount: 1500, Status: domain.PaymentWaiting}, nil)

	info, err := svc.CreateRequest(ctx, payerID, 3)
	require.NoError(t, err)
	assert.Equal(t, recipientID, info.RecipientID)
	assert.Equal(t, 1500, info.Request.ExpectedAmount)
	assert.Equal(t, 3, info.Credits)
}

func TestCreateRequest_Validation(t *testing.T) {
	svc, _ := newTestService(t, defaultConfig())

	_, err := svc.CreateRequest(context.Background(), "abc", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidDiscordID)

	_, err = svc.CreateRequest(context.Background(), payerID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestGetRequest_Ownership(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t, defaultConfig())
	req := &domain.PaymentRequest{ID: 9, UserID: payerID, Status: domain.PaymentReceived}
	m.repo.On("GetPaymentRequest", ctx, int64(9)).Return(req, nil)

	got, err := svc.GetRequest(ctx, payerID, 9, false)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentReceived, got.Status)

	_, err = svc.GetRequest(ctx, adminID, 9, false)
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)

	got, err = svc.GetRequest(ctx, adminID, 9, true)
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
}

func TestScanChannel_NotConfigured(t *testing.T) {
	svc, _ := newTestService(t, payment.Config{CreditsPerMessage: 500})

	_, err := svc.ScanChannel(context.Background())
	assert.ErrorIs(t, err, domain.ErrPaymentMonitorNotConfigured)
}

func TestScanChannel_CreditsNewTransfers(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t, defaultConfig())

	messages := []discord.ChannelMessage{
		transferMessage("m1", "1000", recipientID),
		transferMessage("m2", "500", "999999999999999999"),
		transferMessage("m3", "500", recipientID),
		transferMessage("m4", "100", recipientID),
		{ID: "m5", AuthorID: payerID, Content: "hello"},
	}
	m.bot.On("ChannelMessages", ctx, channelID, payment.ScanMessageLimit).Return(messages, nil)

	m.credits.On("AddTransfer", ctx, mock.MatchedBy(func(tr domain.ProBotTransfer) bool {
		return tr.MessageID == "m1" && tr.PayerID == payerID && tr.Amount == 1000
	}), 2, "ProBot transfer: 1000 credits").Return(&domain.Transaction{ID: 1}, nil)
	m.credits.On("AddTransfer", ctx, mock.MatchedBy(func(tr domain.ProBotTransfer) bool {
		return tr.MessageID == "m3"
	}), 1, mock.Anything).Return(nil, domain.ErrTransferAlreadyProcessed)
	m.repo.On("MarkReceived", ctx, payerID, 1000, mock.AnythingOfType("time.Time")).Return(nil, nil)

	m.bot.On("CreateDM", ctx, payerID).Return("dm-1", nil)
	m.bot.On("SendMessage", ctx, "dm-1", mock.MatchedBy(func(text string) bool {
		return assert.Contains(t, text, "**Received:** 1,000 ProBot Credits") &&
			assert.Contains(t, text, "**Added:** 2 Broadcast Messages") &&
			assert.Contains(t, text, "https://example.test/wallet")
	})).Return(nil)

	result, err := svc.ScanChannel(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Scanned)
	assert.Equal(t, 1, result.Credited)
	assert.Equal(t, 1, result.Duplicate)
	assert.Equal(t, 2, result.Ignored)
	assert.Equal(t, 0, result.Failed)
}

func TestScanChannel_CreditFailureCountsAsFailed(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t, defaultConfig())

	m.bot.On("ChannelMessages", ctx, channelID, payment.ScanMessageLimit).
		Return([]discord.ChannelMessage{transferMessage("m1", "500", recipientID)}, nil)
	m.credits.On("AddTransfer", ctx, mock.Anything, 1, mock.Anything).Return(nil, domain.ErrDatabaseError)

	result, err := svc.ScanChannel(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, result.Credited)
	m.bot.AssertNotCalled(t, "CreateDM", mock.Anything, mock.Anything)
	m.repo.AssertNotCalled(t, "MarkReceived", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestScanChannel_ConfirmationFailureKeepsCredits(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t, defaultConfig())

	m.bot.On("ChannelMessages", ctx, channelID, payment.ScanMessageLimit).
		Return([]discord.ChannelMessage{transferMessage("m1", "500", recipientID)}, nil)
	m.credits.On("AddTransfer", ctx, mock.Anything, 1, mock.Anything).Return(&domain.Transaction{}, nil)
	m.repo.On("MarkReceived", ctx, payerID, 500, mock.Anything).Return(nil, nil)
	m.bot.On("CreateDM", ctx, payerID).Return("", errors.New("cannot send messages to this user"))

	result, err := svc.ScanChannel(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Credited)
}

func TestScanChannel_UpstreamError(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t, defaultConfig())
	m.bot.On("ChannelMessages", ctx, channelID, payment.ScanMessageLimit).Return(nil, domain.ErrUpstream)

	_, err := svc.ScanChannel(ctx)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestProcessManual(t *testing.T) {
	ctx := context.Background()

	t.Run("credits floor of probot amount", func(t *testing.T) {
		svc, m := newTestService(t, defaultConfig())
		m.credits.On("Add", ctx, payerID, 2, "ProBot transfer: 1200 credits - screenshot-42", "manual:screenshot-42", "manual").
			Return(&domain.Transaction{ID: 3, Amount: 2}, nil)
		m.repo.On("MarkReceived", ctx, payerID, 1200, mock.Anything).Return(nil, nil)

		result, err := svc.ProcessManual(ctx, adminID, payerID, 1200, "  screenshot-42 ")
		require.NoError(t, err)
		assert.Equal(t, 2, result.Credits)
		assert.Equal(t, int64(3), result.Transaction.ID)
	})

	tests := []struct {
		name    string
		sender  string
		amount  int
		proof   string
		wantErr error
	}{
		{"bad sender", "12345", 500, "proof", domain.ErrInvalidDiscordID},
		{"below minimum", payerID, 499, "proof", domain.ErrBelowMinimumTransfer},
		{"missing proof", payerID, 500, "   ", domain.ErrProofRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, defaultConfig())
			_, err := svc.ProcessManual(ctx, adminID, tt.sender, tt.amount, tt.proof)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpireStale(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t, defaultConfig())
	m.repo.On("ExpireStale", ctx, mock.MatchedBy(func(now time.Time) bool {
		return time.Since(now) < time.Minute
	})).Return(int64(4), nil)

	n, err := svc.ExpireStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
