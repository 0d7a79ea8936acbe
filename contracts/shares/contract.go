package shares

import (
	"github.com/abdul745/FriendTechV2/common"
	"github.com/abdul745/FriendTechV2/contracts/shares/sharesconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// FeeDestinations stores the three accounts the protocol fee is split
// between.
type FeeDestinations struct {
	First  interop.Hash160
	Second interop.Hash160
	Third  interop.Hash160
}

const (
	ownerKey        = 'o'
	tokenKey        = 't'
	destinationsKey = 'd'
	protocolFeeKey  = 'p'
	subjectFeeKey   = 'q'

	supplyPrefix  = 's'
	balancePrefix = 'b'
)

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

	storage.Put(ctx, ownerKey, owner)
	storage.Put(ctx, protocolFeeKey, 0)
	storage.Put(ctx, subjectFeeKey, 0)

	runtime.Log("shares contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	checkOwner(storage.GetReadOnlyContext())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("shares contract updated")
}

// Owner returns the account allowed to configure the contract.
func Owner() interop.Hash160 {
	return contractOwner(storage.GetReadOnlyContext())
}

// TransferOwnership hands the owner role over to another account. It can be
// invoked only by the current owner.
//
// It produces OwnershipTransferred notification.
func TransferOwnership(newOwner interop.Hash160) {
	if len(newOwner) != interop.Hash160Len {
		panic("invalid new owner")
	}

	ctx := storage.GetContext()
	oldOwner := contractOwner(ctx)
	common.CheckOwnerWitness(oldOwner)

	storage.Put(ctx, ownerKey, newOwner)
	runtime.Notify("OwnershipTransferred", oldOwner, newOwner)
}

// SetToken sets the payment token contract trades are settled in. It can be
// invoked only by the contract owner. Buying and selling fail until the
// token is set.
func SetToken(token interop.Hash160) {
	if len(token) != interop.Hash160Len {
		panic("invalid token contract")
	}

	ctx := storage.GetContext()
	checkOwner(ctx)

	storage.Put(ctx, tokenKey, token)
	runtime.Log("payment token set")
}

// Token returns the configured payment token contract.
func Token() interop.Hash160 {
	return paymentToken(storage.GetReadOnlyContext())
}

// SetFeeDestinations sets the three accounts the protocol fee is distributed
// to. It can be invoked only by the contract owner.
func SetFeeDestinations(first, second, third interop.Hash160) {
	if len(first) != interop.Hash160Len ||
		len(second) != interop.Hash160Len ||
		len(third) != interop.Hash160Len {
		panic("invalid fee destination")
	}

	ctx := storage.GetContext()
	checkOwner(ctx)

	common.SetSerialized(ctx, destinationsKey, FeeDestinations{
		First:  first,
		Second: second,
		Third:  third,
	})
	runtime.Log("fee destinations set")
}

// SetProtocolFeePercent sets the share of the base price taken on every
// trade for the protocol, in percent. It can be invoked only by the contract
// owner. Protocol and subject percents together cannot exceed 100.
func SetProtocolFeePercent(p int) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	if p < 0 || p+subjectFeePercent(ctx) > sharesconst.FeeScale {
		panic(common.ErrInvalidFeeConfig)
	}
	storage.Put(ctx, protocolFeeKey, p)
}

// SetSubjectFeePercent sets the share of the base price paid to the traded
// subject on every trade, in percent. It can be invoked only by the contract
// owner. Protocol and subject percents together cannot exceed 100.
func SetSubjectFeePercent(p int) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	if p < 0 || p+protocolFeePercent(ctx) > sharesconst.FeeScale {
		panic(common.ErrInvalidFeeConfig)
	}
	storage.Put(ctx, subjectFeeKey, p)
}

// ProtocolFeePercent returns the configured protocol fee percent.
func ProtocolFeePercent() int {
	return protocolFeePercent(storage.GetReadOnlyContext())
}

// SubjectFeePercent returns the configured subject fee percent.
func SubjectFeePercent() int {
	return subjectFeePercent(storage.GetReadOnlyContext())
}

// SharesSupply returns the number of outstanding shares in the subject's
// pool. Unknown subjects have zero supply, a pool comes to existence with
// its first buy.
func SharesSupply(subject interop.Hash160) int {
	return poolSupply(storage.GetReadOnlyContext(), subject)
}

// SharesBalance returns the number of the subject's shares held by holder.
func SharesBalance(subject, holder interop.Hash160) int {
	return holderBalance(storage.GetReadOnlyContext(), subject, holder)
}

// GetBuyPrice returns the base price of buying amount shares of the subject
// at the current supply, fees excluded.
func GetBuyPrice(subject interop.Hash160, amount int) int {
	if amount < 0 {
		panic("negative amount")
	}
	return curvePrice(poolSupply(storage.GetReadOnlyContext(), subject), amount)
}

// GetSellPrice returns the base price of selling amount shares of the
// subject at the current supply, fees excluded.
func GetSellPrice(subject interop.Hash160, amount int) int {
	if amount < 0 {
		panic("negative amount")
	}
	supply := poolSupply(storage.GetReadOnlyContext(), subject)
	if amount > supply {
		panic("sell amount exceeds supply")
	}
	return curvePrice(supply-amount, amount)
}

// GetBuyPriceAfterFee returns the total amount of tokens charged for buying
// amount shares of the subject: base price plus protocol and subject fees.
func GetBuyPriceAfterFee(subject interop.Hash160, amount int) int {
	ctx := storage.GetReadOnlyContext()
	price := GetBuyPrice(subject, amount)
	return price + feeAmount(price, protocolFeePercent(ctx)) + feeAmount(price, subjectFeePercent(ctx))
}

// GetSellPriceAfterFee returns the amount of tokens paid out for selling
// amount shares of the subject: base price minus protocol and subject fees.
func GetSellPriceAfterFee(subject interop.Hash160, amount int) int {
	ctx := storage.GetReadOnlyContext()
	price := GetSellPrice(subject, amount)
	pFee := feeAmount(price, protocolFeePercent(ctx))
	sFee := feeAmount(price, subjectFeePercent(ctx))
	if pFee+sFee > price {
		panic(common.ErrFeeExceedsPrice)
	}
	return price - pFee - sFee
}

// BuySharesWithToken buys amount shares of the subject for the trader. The
// trader witness is required. The first share of a pool can be bought only
// by the subject itself. The trader pays the base price plus both fees in
// payment tokens through the allowance previously given to this contract.
//
// It produces Trade notification.
func BuySharesWithToken(trader, subject interop.Hash160, amount int) {
	if len(trader) != interop.Hash160Len || len(subject) != interop.Hash160Len {
		panic("invalid account")
	}
	if amount <= 0 {
		panic("non-positive amount")
	}
	common.CheckWitness(trader)

	ctx := storage.GetContext()
	supply := poolSupply(ctx, subject)
	if supply == 0 && !trader.Equals(subject) {
		panic("only the subject can buy the first share")
	}

	basePrice := curvePrice(supply, amount)
	pFee := feeAmount(basePrice, protocolFeePercent(ctx))
	sFee := feeAmount(basePrice, subjectFeePercent(ctx))
	token := paymentToken(ctx)

	// Ledger first, token movement after: a reentering token contract must
	// observe the already updated supply and balances.
	creditShares(ctx, subject, trader, amount)

	self := runtime.GetExecutingScriptHash()
	pullTokens(token, trader, self, basePrice+pFee+sFee)
	distributeProtocolFee(ctx, token, self, pFee)
	pushTokens(token, self, subject, sFee)

	runtime.Notify("Trade", subject, trader, true, amount, basePrice, pFee, sFee, supply+amount)
}

// SellSharesForToken sells amount of the trader's shares of the subject. The
// trader witness is required. A pool that has ever been seeded always keeps
// at least one outstanding share, selling the final one fails. The trader is
// paid the base price minus both fees in payment tokens.
//
// It produces Trade notification.
func SellSharesForToken(trader, subject interop.Hash160, amount int) {
	if len(trader) != interop.Hash160Len || len(subject) != interop.Hash160Len {
		panic("invalid account")
	}
	if amount <= 0 {
		panic("non-positive amount")
	}
	common.CheckWitness(trader)

	ctx := storage.GetContext()
	balance := holderBalance(ctx, subject, trader)
	if balance < amount {
		panic(common.ErrInsufficientShares)
	}

	supply := poolSupply(ctx, subject)
	if supply-amount < 1 {
		panic(common.ErrSellLastShare)
	}

	basePrice := curvePrice(supply-amount, amount)
	pFee := feeAmount(basePrice, protocolFeePercent(ctx))
	sFee := feeAmount(basePrice, subjectFeePercent(ctx))
	if pFee+sFee > basePrice {
		panic(common.ErrFeeExceedsPrice)
	}
	token := paymentToken(ctx)

	debitShares(ctx, subject, trader, amount)

	self := runtime.GetExecutingScriptHash()
	pushTokens(token, self, trader, basePrice-pFee-sFee)
	distributeProtocolFee(ctx, token, self, pFee)
	pushTokens(token, self, subject, sFee)

	runtime.Notify("Trade", subject, trader, false, amount, basePrice, pFee, sFee, supply-amount)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// sumOfSquares is the closed form of 1² + 2² + ... + n².
func sumOfSquares(n int) int {
	return n * (n + 1) * (2*n + 1) / 6
}

// curvePrice returns the summed marginal price of amount share units on top
// of the given supply: the unit ranked i is weighted i², the total is
// Σ i² over (supply, supply+amount] scaled to token units. Buy and sell use
// the same function, so the curve is continuous.
func curvePrice(supply, amount int) int {
	if amount == 0 {
		return 0
	}
	return (sumOfSquares(supply+amount) - sumOfSquares(supply)) * sharesconst.PriceCoefficient
}

func feeAmount(price, percent int) int {
	return price * percent / sharesconst.FeeScale
}

func contractOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

func checkOwner(ctx storage.Context) {
	common.CheckOwnerWitness(contractOwner(ctx))
}

func paymentToken(ctx storage.Context) interop.Hash160 {
	val := storage.Get(ctx, tokenKey)
	if val == nil {
		panic(common.ErrTokenNotSet)
	}
	return val.(interop.Hash160)
}

func protocolFeePercent(ctx storage.Context) int {
	return storage.Get(ctx, protocolFeeKey).(int)
}

func subjectFeePercent(ctx storage.Context) int {
	return storage.Get(ctx, subjectFeeKey).(int)
}

func supplyKey(subject interop.Hash160) []byte {
	return append([]byte{supplyPrefix}, subject...)
}

func balanceKey(subject, holder interop.Hash160) []byte {
	return append(append([]byte{balancePrefix}, subject...), holder...)
}

func poolSupply(ctx storage.Context, subject interop.Hash160) int {
	val := storage.Get(ctx, supplyKey(subject))
	if val != nil {
		return val.(int)
	}
	return 0
}

func holderBalance(ctx storage.Context, subject, holder interop.Hash160) int {
	val := storage.Get(ctx, balanceKey(subject, holder))
	if val != nil {
		return val.(int)
	}
	return 0
}

// creditShares increases both the holder balance and the pool supply.
func creditShares(ctx storage.Context, subject, holder interop.Hash160, amount int) {
	storage.Put(ctx, supplyKey(subject), poolSupply(ctx, subject)+amount)
	storage.Put(ctx, balanceKey(subject, holder), holderBalance(ctx, subject, holder)+amount)
}

// debitShares decreases both the holder balance and the pool supply. The
// caller checks the balance beforehand. Emptied balance records are removed.
func debitShares(ctx storage.Context, subject, holder interop.Hash160, amount int) {
	storage.Put(ctx, supplyKey(subject), poolSupply(ctx, subject)-amount)

	key := balanceKey(subject, holder)
	balance := holderBalance(ctx, subject, holder) - amount
	if balance == 0 {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, balance)
	}
}

// pullTokens charges the account through the allowance it gave to this
// contract. The token contract faults the transaction on insufficient funds
// or allowance.
func pullTokens(token, from, to interop.Hash160, amount int) {
	if amount == 0 {
		return
	}
	spender := runtime.GetExecutingScriptHash()
	ok := contract.Call(token, "transferFrom", contract.All, spender, from, to, amount).(bool)
	if !ok {
		panic("token pull failed")
	}
}

func pushTokens(token, from, to interop.Hash160, amount int) {
	if amount == 0 {
		return
	}
	ok := contract.Call(token, "transfer", contract.All, from, to, amount, nil).(bool)
	if !ok {
		panic("token transfer failed")
	}
}

// distributeProtocolFee splits fee between the three configured destinations.
// Every destination gets fee/3, the division remainder goes to the first
// one, so the parts always sum exactly to fee.
func distributeProtocolFee(ctx storage.Context, token, from interop.Hash160, fee int) {
	if fee == 0 {
		return
	}

	val := storage.Get(ctx, destinationsKey)
	if val == nil {
		panic(common.ErrFeeDestNotSet)
	}
	dst := std.Deserialize(val.([]byte)).(FeeDestinations)

	part := fee / sharesconst.FeeDestinationsNum
	pushTokens(token, from, dst.First, part+fee%sharesconst.FeeDestinationsNum)
	pushTokens(token, from, dst.Second, part)
	pushTokens(token, from, dst.Third, part)
}
