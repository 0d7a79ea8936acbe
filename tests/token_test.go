package tests

import (
	"testing"

	"github.com/abdul745/FriendTechV2/common"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

func TestTokenDeploy(t *testing.T) {
	e := newExecutor(t)
	h := deployTokenContract(t, e)
	inv := e.CommitteeInvoker(h)

	inv.Invoke(t, "FTT", "symbol")
	inv.Invoke(t, 8, "decimals")
	inv.Invoke(t, initialTokenSupply, "totalSupply")
	inv.Invoke(t, initialTokenSupply, "balanceOf", e.CommitteeHash)
	inv.Invoke(t, common.Version, "version")
}

func TestTokenTransfer(t *testing.T) {
	e := newExecutor(t)
	h := deployTokenContract(t, e)
	inv := e.CommitteeInvoker(h)

	acc := e.NewAccount(t)
	accHash := acc.ScriptHash()

	inv.Invoke(t, true, "transfer", e.CommitteeHash, accHash, 1000, nil)
	inv.Invoke(t, 1000, "balanceOf", accHash)
	inv.Invoke(t, initialTokenSupply-1000, "balanceOf", e.CommitteeHash)

	// No witness of the sender, no transfer.
	e.NewInvoker(h, acc).Invoke(t, false, "transfer", e.CommitteeHash, accHash, 1, nil)

	// Exceeding the balance fails softly, NEP-17 style.
	e.NewInvoker(h, acc).Invoke(t, false, "transfer", accHash, e.CommitteeHash, 1001, nil)

	inv.InvokeFail(t, "negative amount", "transfer", e.CommitteeHash, accHash, -1, nil)
}

func TestTokenAllowance(t *testing.T) {
	e := newExecutor(t)
	h := deployTokenContract(t, e)
	committeeInv := e.CommitteeInvoker(h)

	holder := e.NewAccount(t)
	spender := e.NewAccount(t)
	holderHash := holder.ScriptHash()
	spenderHash := spender.ScriptHash()
	committeeInv.Invoke(t, true, "transfer", e.CommitteeHash, holderHash, 1000, nil)

	committeeInv.Invoke(t, 0, "allowance", holderHash, spenderHash)

	txH := e.NewInvoker(h, holder).Invoke(t, nil, "approve", holderHash, spenderHash, 500)
	e.CheckTxNotificationEvent(t, txH, 0, state.NotificationEvent{
		ScriptHash: h,
		Name:       "Approval",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.NewByteArray(holderHash.BytesBE()),
			stackitem.NewByteArray(spenderHash.BytesBE()),
			stackitem.Make(500),
		}),
	})
	committeeInv.Invoke(t, 500, "allowance", holderHash, spenderHash)

	// Only the account owner can approve.
	e.NewInvoker(h, spender).InvokeFail(t, common.ErrWitnessFailed,
		"approve", holderHash, spenderHash, 1000)

	spenderInv := e.NewInvoker(h, spender)
	spenderInv.Invoke(t, true, "transferFrom", spenderHash, holderHash, spenderHash, 200)
	committeeInv.Invoke(t, 300, "allowance", holderHash, spenderHash)
	committeeInv.Invoke(t, 200, "balanceOf", spenderHash)
	committeeInv.Invoke(t, 800, "balanceOf", holderHash)

	// The allowance caps the pull, the balance caps it too.
	spenderInv.InvokeFail(t, common.ErrInsufficientAllowance,
		"transferFrom", spenderHash, holderHash, spenderHash, 301)

	e.NewInvoker(h, holder).Invoke(t, nil, "approve", holderHash, spenderHash, 5000)
	spenderInv.InvokeFail(t, common.ErrInsufficientFunds,
		"transferFrom", spenderHash, holderHash, spenderHash, 1001)

	// Pulling on behalf of somebody else requires their witness.
	e.NewInvoker(h, holder).InvokeFail(t, common.ErrWitnessFailed,
		"transferFrom", spenderHash, holderHash, spenderHash, 1)

	// Draining the account leaves the unused allowance behind.
	spenderInv.Invoke(t, true, "transferFrom", spenderHash, holderHash, spenderHash, 800)
	committeeInv.Invoke(t, 4200, "allowance", holderHash, spenderHash)
	committeeInv.Invoke(t, 0, "balanceOf", holderHash)
	committeeInv.Invoke(t, 1000, "balanceOf", spenderHash)

	// An approval of zero clears the record.
	e.NewInvoker(h, holder).Invoke(t, nil, "approve", holderHash, spenderHash, 0)
	committeeInv.Invoke(t, 0, "allowance", holderHash, spenderHash)
}
