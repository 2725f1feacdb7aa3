package domain

import "time"

// PaymentStatus is the state of a payment-monitoring entry
type PaymentStatus string

const (
	PaymentWaiting  PaymentStatus = "waiting"
	PaymentReceived PaymentStatus = "received"
	PaymentExpired  PaymentStatus = "expired"
)

// PaymentRequest correlates an expected ProBot transfer with a user
type PaymentRequest struct {
	ID             int64         `json:"id"`
	UserID         string        `json:"user_id"`
	ExpectedAmount int           `json:"expected_amount"`
	Status         PaymentStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	ExpiresAt      time.Time     `json:"expires_at"`
	ReceivedAt     *time.Time    `json:"received_at,omitempty"`
}

// ProBotTransfer is a credit transfer parsed from a ProBot channel message
type ProBotTransfer struct {
	MessageID   string    `json:"message_id"`
	PayerID     string    `json:"payer_id"`
	RecipientID string    `json:"recipient_id"`
	Amount      int       `json:"amount"`
	PostedAt    time.Time `json:"posted_at"`
}
