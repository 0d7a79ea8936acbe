// Package sharesconst contains constants of the Shares contract that are
// shared between the contract itself and off-chain consumers.
package sharesconst

const (
	// FeeScale is the denominator of protocol and subject fee percents:
	// a percent value of 10 takes 10/100 of the base price.
	FeeScale = 100

	// PriceCoefficient scales curve weights to token units. With 8 token
	// decimals the unit ranked i costs i²/16000 whole tokens, the same
	// divisor the curve is known for: 10^8 / 16000.
	PriceCoefficient = 6250

	// FeeDestinationsNum is the number of protocol fee destination
	// accounts the contract distributes to.
	FeeDestinationsNum = 3
)
