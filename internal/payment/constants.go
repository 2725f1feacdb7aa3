package payment

// ScanMessageLimit is how many recent channel messages one scan reads
const ScanMessageLimit = 50

// Ledger descriptions
const (
	DescProBotTransfer = "ProBot transfer: %d credits"
	DescManualTransfer = "ProBot transfer: %d credits - %s"
	ManualRefPrefix    = "manual:"
)

// Log messages
const (
	LogMsgScanStarted         = "Scanning ProBot channel"
	LogMsgScanFinished        = "ProBot scan finished"
	LogMsgTransferIgnored     = "Transfer is not addressed to the payment recipient"
	LogMsgTransferDuplicate   = "Transfer already processed"
	LogMsgTransferTooSmall    = "Transfer too small to buy a broadcast credit"
	LogMsgTransferCredited    = "ProBot transfer credited"
	LogMsgCreditFailed        = "Failed to credit ProBot transfer"
	LogMsgMarkReceivedFailed  = "Failed to mark payment request received"
	LogMsgConfirmationFailed  = "Failed to send payment confirmation"
	LogMsgManualPayment       = "Manual payment processed"
	LogMsgPaymentRequestAdded = "Payment request created"
	LogMsgPaymentsExpired     = "Expired stale payment requests"
)
