package credits

// Log messages
const (
	LogMsgCreditsAdded    = "Credits added"
	LogMsgCreditsSpent    = "Credits spent"
	LogMsgCreditsRefunded = "Credits refunded"
	LogMsgInsufficient    = "Spend rejected: insufficient credits"
	LogMsgLedgerMismatch  = "Ledger does not match balance"
)

// Error messages
const (
	ErrMsgBeginTx          = "failed to begin transaction"
	ErrMsgCommitTx         = "failed to commit transaction"
	ErrMsgGetTransactions  = "failed to get transactions"
	ErrMsgGetUserStats     = "failed to get user stats"
	ErrMsgComputeLedgerSum = "failed to compute ledger sum"
)
