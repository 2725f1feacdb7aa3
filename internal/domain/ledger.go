package domain

import "time"

// TransactionType is the kind of ledger movement
type TransactionType string

const (
	TransactionPurchase TransactionType = "purchase"
	TransactionSpend    TransactionType = "spend"
	TransactionRefund   TransactionType = "refund"
)

const TransactionStatusCompleted = "completed"

// Transaction is an append-only ledger row
type Transaction struct {
	ID          int64           `json:"id"`
	UserID      string          `json:"user_id"`
	Type        TransactionType `json:"type"`
	Amount      int             `json:"amount"`
	Description string          `json:"description"`
	ExternalRef string          `json:"external_ref,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Signed returns the effect of the transaction on the balance
func (t Transaction) Signed() int {
	if t.Type == TransactionSpend {
		return -t.Amount
	}
	return t.Amount
}

// Reconciliation compares a user's balance against the ledger
type Reconciliation struct {
	DiscordID  string `json:"discord_id"`
	Balance    int    `json:"balance"`
	LedgerSum  int    `json:"ledger_sum"`
	Difference int    `json:"difference"`
	Balanced   bool   `json:"balanced"`
}
