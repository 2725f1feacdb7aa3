package user

// Log messages
const (
	LogMsgUserRegistered = "User registered or refreshed"
)

// Error messages
const (
	ErrMsgRegisterUser = "failed to register user"
	ErrMsgFindUser     = "failed to find user"
)
