// Package shares contains RPC wrappers for the FriendTech Shares contract.
package shares

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// TradeEvent represents "Trade" event emitted by the contract.
type TradeEvent struct {
	Subject     util.Uint160
	Trader      util.Uint160
	IsBuy       bool
	Amount      *big.Int
	BasePrice   *big.Int
	ProtocolFee *big.Int
	SubjectFee  *big.Int
	NewSupply   *big.Int
}

// Invoker is used by ContractReader to call safe contract methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to create and send transactions.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract
// hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the
// given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// Token invokes `token` method of contract.
func (c *ContractReader) Token() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "token"))
}

// ProtocolFeePercent invokes `protocolFeePercent` method of contract.
func (c *ContractReader) ProtocolFeePercent() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "protocolFeePercent"))
}

// SubjectFeePercent invokes `subjectFeePercent` method of contract.
func (c *ContractReader) SubjectFeePercent() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "subjectFeePercent"))
}

// SharesSupply invokes `sharesSupply` method of contract.
func (c *ContractReader) SharesSupply(subject util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "sharesSupply", subject))
}

// SharesBalance invokes `sharesBalance` method of contract.
func (c *ContractReader) SharesBalance(subject, holder util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "sharesBalance", subject, holder))
}

// GetBuyPrice invokes `getBuyPrice` method of contract.
func (c *ContractReader) GetBuyPrice(subject util.Uint160, amount *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getBuyPrice", subject, amount))
}

// GetSellPrice invokes `getSellPrice` method of contract.
func (c *ContractReader) GetSellPrice(subject util.Uint160, amount *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getSellPrice", subject, amount))
}

// GetBuyPriceAfterFee invokes `getBuyPriceAfterFee` method of contract.
func (c *ContractReader) GetBuyPriceAfterFee(subject util.Uint160, amount *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getBuyPriceAfterFee", subject, amount))
}

// GetSellPriceAfterFee invokes `getSellPriceAfterFee` method of contract.
func (c *ContractReader) GetSellPriceAfterFee(subject util.Uint160, amount *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getSellPriceAfterFee", subject, amount))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// SetToken creates a transaction invoking `setToken` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetToken(token util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setToken", token)
}

// SetFeeDestinations creates a transaction invoking `setFeeDestinations`
// method of the contract. This transaction is signed and immediately sent to
// the network. The values returned are its hash, ValidUntilBlock value and
// error if any.
func (c *Contract) SetFeeDestinations(first, second, third util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setFeeDestinations", first, second, third)
}

// SetProtocolFeePercent creates a transaction invoking
// `setProtocolFeePercent` method of the contract. This transaction is signed
// and immediately sent to the network. The values returned are its hash,
// ValidUntilBlock value and error if any.
func (c *Contract) SetProtocolFeePercent(p *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setProtocolFeePercent", p)
}

// SetSubjectFeePercent creates a transaction invoking `setSubjectFeePercent`
// method of the contract. This transaction is signed and immediately sent to
// the network. The values returned are its hash, ValidUntilBlock value and
// error if any.
func (c *Contract) SetSubjectFeePercent(p *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setSubjectFeePercent", p)
}

// TransferOwnership creates a transaction invoking `transferOwnership`
// method of the contract. This transaction is signed and immediately sent to
// the network. The values returned are its hash, ValidUntilBlock value and
// error if any.
func (c *Contract) TransferOwnership(newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferOwnership", newOwner)
}

// BuySharesWithToken creates a transaction invoking `buySharesWithToken`
// method of the contract. This transaction is signed and immediately sent to
// the network. The values returned are its hash, ValidUntilBlock value and
// error if any.
func (c *Contract) BuySharesWithToken(trader, subject util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "buySharesWithToken", trader, subject, amount)
}

// BuySharesWithTokenTransaction creates a transaction invoking
// `buySharesWithToken` method of the contract. This transaction is signed,
// but not sent to the network, instead it's returned to the caller.
func (c *Contract) BuySharesWithTokenTransaction(trader, subject util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "buySharesWithToken", trader, subject, amount)
}

// SellSharesForToken creates a transaction invoking `sellSharesForToken`
// method of the contract. This transaction is signed and immediately sent to
// the network. The values returned are its hash, ValidUntilBlock value and
// error if any.
func (c *Contract) SellSharesForToken(trader, subject util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "sellSharesForToken", trader, subject, amount)
}

// SellSharesForTokenTransaction creates a transaction invoking
// `sellSharesForToken` method of the contract. This transaction is signed,
// but not sent to the network, instead it's returned to the caller.
func (c *Contract) SellSharesForTokenTransaction(trader, subject util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "sellSharesForToken", trader, subject, amount)
}

// TradeEventsFromApplicationLog retrieves a set of all emitted events
// with "Trade" name from the provided [result.ApplicationLog].
func TradeEventsFromApplicationLog(log *result.ApplicationLog) ([]*TradeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TradeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Trade" {
				continue
			}
			event := new(TradeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TradeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TradeEvent or
// returns an error if it's not possible to do to so.
func (e *TradeEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	if e.Subject, err = uint160FromItem(arr[0]); err != nil {
		return fmt.Errorf("field Subject: %w", err)
	}
	if e.Trader, err = uint160FromItem(arr[1]); err != nil {
		return fmt.Errorf("field Trader: %w", err)
	}
	if e.IsBuy, err = arr[2].TryBool(); err != nil {
		return fmt.Errorf("field IsBuy: %w", err)
	}
	if e.Amount, err = arr[3].TryInteger(); err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}
	if e.BasePrice, err = arr[4].TryInteger(); err != nil {
		return fmt.Errorf("field BasePrice: %w", err)
	}
	if e.ProtocolFee, err = arr[5].TryInteger(); err != nil {
		return fmt.Errorf("field ProtocolFee: %w", err)
	}
	if e.SubjectFee, err = arr[6].TryInteger(); err != nil {
		return fmt.Errorf("field SubjectFee: %w", err)
	}
	if e.NewSupply, err = arr[7].TryInteger(); err != nil {
		return fmt.Errorf("field NewSupply: %w", err)
	}

	return nil
}

func uint160FromItem(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesBE(b)
}
