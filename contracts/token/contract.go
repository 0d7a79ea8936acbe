package token

import (
	"github.com/abdul745/FriendTechV2/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol
	Symbol string
	// Amount of decimals
	Decimals int
	// Storage key for circulation value
	CirculationKey string
}

const (
	symbol      = "FTT"
	decimals    = 8
	circulation = "circulation"

	ownerKey = 'o'

	accPrefix       = 'b'
	allowancePrefix = 'a'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	args := data.([]any)
	owner := args[0].(interop.Hash160)
	if len(owner) != interop.Hash160Len {
		panic("invalid owner")
	}
	initialSupply := args[1].(int)
	if initialSupply < 0 {
		panic("negative initial supply")
	}

	storage.Put(ctx, ownerKey, owner)
	storage.Put(ctx, accountKey(owner), initialSupply)
	storage.Put(ctx, token.CirculationKey, initialSupply)
	runtime.Notify("Transfer", interop.Hash160(nil), owner, initialSupply)

	runtime.Log("payment token initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	owner := storage.Get(storage.GetReadOnlyContext(), ownerKey).(interop.Hash160)
	common.CheckOwnerWitness(owner)

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("payment token updated")
}

// Symbol is a NEP-17 standard method that returns the token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of token
// balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the total amount of
// tokens minted.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns the token balance of
// the specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers tokens from one
// account to another. It can be invoked by the account owner or by a
// contract transferring from its own account.
//
// It produces Transfer notification.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return token.transfer(ctx, from, to, amount)
}

// Approve allows the spender to pull up to amount tokens from the account
// through TransferFrom. It can be invoked only by the account owner. A new
// approval replaces the previous one.
//
// It produces Approval notification.
func Approve(acc, spender interop.Hash160, amount int) {
	if len(acc) != interop.Hash160Len || len(spender) != interop.Hash160Len {
		panic("invalid account")
	}
	if amount < 0 {
		panic("negative amount")
	}
	common.CheckWitness(acc)

	ctx := storage.GetContext()
	key := allowanceKey(acc, spender)
	if amount == 0 {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, amount)
	}
	runtime.Notify("Approval", acc, spender, amount)
}

// Allowance returns the remaining amount of tokens the spender is allowed to
// pull from the account.
func Allowance(acc, spender interop.Hash160) int {
	val := storage.Get(storage.GetReadOnlyContext(), allowanceKey(acc, spender))
	if val != nil {
		return val.(int)
	}
	return 0
}

// TransferFrom transfers tokens from one account to another on behalf of the
// spender, consuming the allowance the account gave to it. It can be invoked
// by the spender or by a contract pulling to its own account. Unlike
// Transfer it faults the transaction on insufficient funds or allowance, so
// the reason reaches the caller.
//
// It produces Transfer notification.
func TransferFrom(spender, from, to interop.Hash160, amount int) bool {
	if len(spender) != interop.Hash160Len ||
		len(from) != interop.Hash160Len ||
		len(to) != interop.Hash160Len {
		panic("invalid account")
	}
	if amount < 0 {
		panic("negative amount")
	}
	if !isUsableAddress(spender) {
		panic(common.ErrWitnessFailed)
	}

	ctx := storage.GetContext()
	allowance := Allowance(from, spender)
	if allowance < amount {
		panic(common.ErrInsufficientAllowance)
	}
	if token.balanceOf(ctx, from) < amount {
		panic(common.ErrInsufficientFunds)
	}

	key := allowanceKey(from, spender)
	if allowance == amount {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, allowance-amount)
	}

	token.move(ctx, from, to, amount)
	runtime.Notify("Transfer", from, to, amount)

	return true
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	val := storage.Get(ctx, accountKey(holder))
	if val != nil {
		return val.(int)
	}

	return 0
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int) bool {
	if amount < 0 {
		panic("negative amount")
	}

	if len(to) != interop.Hash160Len || !isUsableAddress(from) {
		runtime.Log("bad script hashes")
		return false
	}

	if t.balanceOf(ctx, from) < amount {
		runtime.Log("not enough assets")
		return false
	}

	t.move(ctx, from, to, amount)
	runtime.Notify("Transfer", from, to, amount)

	return true
}

// move updates both balance records. Funds checks are done by the caller.
func (t Token) move(ctx storage.Context, from, to interop.Hash160, amount int) {
	fromKey := accountKey(from)
	fromBalance := t.balanceOf(ctx, from) - amount
	if fromBalance == 0 {
		storage.Delete(ctx, fromKey)
	} else {
		storage.Put(ctx, fromKey, fromBalance)
	}

	toKey := accountKey(to)
	storage.Put(ctx, toKey, t.balanceOf(ctx, to)+amount)
}

// isUsableAddress checks if the sender is either a correct NEO address or SC address.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}

func accountKey(holder interop.Hash160) []byte {
	return append([]byte{accPrefix}, holder...)
}

func allowanceKey(acc, spender interop.Hash160) []byte {
	return append(append([]byte{allowancePrefix}, acc...), spender...)
}
