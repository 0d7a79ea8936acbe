package common

// Panic messages shared between the contracts and their clients. A faulted
// invocation surfaces one of these verbatim and rolls back every storage
// change it made.
var (
	// ErrInvalidFeeConfig appears when a fee percent is out of range or
	// protocol and subject percents together exceed the fee scale.
	ErrInvalidFeeConfig = "invalid fee configuration"
	// ErrInsufficientShares appears when a holder sells more shares than
	// they own.
	ErrInsufficientShares = "insufficient shares"
	// ErrSellLastShare appears when a sell would drain a seeded pool to
	// zero supply.
	ErrSellLastShare = "cannot sell the last share"
	// ErrFeeExceedsPrice appears when sell fees would exceed the base
	// price of the trade.
	ErrFeeExceedsPrice = "fees exceed base price"
	// ErrTokenNotSet appears when trading is attempted before the payment
	// token is configured.
	ErrTokenNotSet = "payment token is not set"
	// ErrFeeDestNotSet appears when a non-zero protocol fee has to be
	// distributed but destinations were never configured.
	ErrFeeDestNotSet = "fee destinations are not set"
	// ErrInsufficientFunds appears when a token transfer exceeds the
	// sender's balance.
	ErrInsufficientFunds = "insufficient funds"
	// ErrInsufficientAllowance appears when a spender pulls more tokens
	// than the account owner approved.
	ErrInsufficientAllowance = "insufficient allowance"
)
