package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

var (
	// ErrOwnerWitnessFailed appears when a method gated to the contract
	// owner is called by anybody else.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrWitnessFailed appears when the method must be called
	// using certain account but was not.
	ErrWitnessFailed = "witness check failed"
)

// CheckOwnerWitness checks witness of the contract owner.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(owner []byte) {
	checkWitnessWithPanic(owner, ErrOwnerWitnessFailed)
}

// CheckWitness checks witness of the passed account.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(acc []byte) {
	checkWitnessWithPanic(acc, ErrWitnessFailed)
}

func checkWitnessWithPanic(acc []byte, panicMsg string) {
	if !runtime.CheckWitness(acc) {
		panic(panicMsg)
	}
}
