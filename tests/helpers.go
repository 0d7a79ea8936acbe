package tests

import (
	"path"
	"testing"

	"github.com/abdul745/FriendTechV2/contracts/shares/sharesconst"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

const (
	sharesPath = "../contracts/shares"
	tokenPath  = "../contracts/token"

	// 1,000,000 tokens with 8 decimals.
	initialTokenSupply = int64(1_000_000_0000_0000)
	// 10,000 tokens given to every trader account.
	traderFunds = int64(10_000_0000_0000)
)

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func deploySharesContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, sharesPath, path.Join(sharesPath, "config.yml"))
	e.DeployContract(t, c, []any{e.CommitteeHash})
	return c.Hash
}

func deployTokenContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))
	e.DeployContract(t, c, []any{e.CommitteeHash, initialTokenSupply})
	return c.Hash
}

// marketEnv is a deployed market: the shares contract wired to the payment
// token, fee destinations configured, fee percents left at the zero default.
// The committee account owns both contracts.
type marketEnv struct {
	e          *neotest.Executor
	shares     *neotest.ContractInvoker
	token      *neotest.ContractInvoker
	sharesHash util.Uint160
	tokenHash  util.Uint160
	dests      [sharesconst.FeeDestinationsNum]util.Uint160
}

func newMarketEnv(t *testing.T) *marketEnv {
	e := newExecutor(t)

	env := &marketEnv{
		e:          e,
		sharesHash: deploySharesContract(t, e),
		tokenHash:  deployTokenContract(t, e),
	}
	env.shares = e.CommitteeInvoker(env.sharesHash)
	env.token = e.CommitteeInvoker(env.tokenHash)

	for i := range env.dests {
		env.dests[i] = e.NewAccount(t).ScriptHash()
	}

	env.shares.Invoke(t, nil, "setToken", env.tokenHash)
	env.shares.Invoke(t, nil, "setFeeDestinations", env.dests[0], env.dests[1], env.dests[2])

	return env
}

func (env *marketEnv) setFees(t *testing.T, protocol, subject int64) {
	env.shares.Invoke(t, nil, "setProtocolFeePercent", protocol)
	env.shares.Invoke(t, nil, "setSubjectFeePercent", subject)
}

// newTrader creates an account holding payment tokens with the shares
// contract approved to spend all of them.
func (env *marketEnv) newTrader(t *testing.T) neotest.Signer {
	acc := env.e.NewAccount(t)
	env.token.Invoke(t, true, "transfer", env.e.CommitteeHash, acc.ScriptHash(), traderFunds, nil)
	env.tokenInvoker(acc).Invoke(t, nil, "approve", acc.ScriptHash(), env.sharesHash, traderFunds)
	return acc
}

func (env *marketEnv) sharesInvoker(acc neotest.Signer) *neotest.ContractInvoker {
	return env.e.NewInvoker(env.sharesHash, acc)
}

func (env *marketEnv) tokenInvoker(acc neotest.Signer) *neotest.ContractInvoker {
	return env.e.NewInvoker(env.tokenHash, acc)
}

func (env *marketEnv) tokenBalance(t *testing.T, acc util.Uint160) int64 {
	return testInvokeInt(t, env.token, "balanceOf", acc)
}

func testInvokeInt(t *testing.T, inv *neotest.ContractInvoker, method string, args ...any) int64 {
	stack, err := inv.TestInvoke(t, method, args...)
	require.NoError(t, err)
	return stack.Pop().BigInt().Int64()
}

// The same closed-form curve the contract uses, for expected values.
func sumOfSquares(n int64) int64 {
	return n * (n + 1) * (2*n + 1) / 6
}

func curvePrice(supply, amount int64) int64 {
	if amount == 0 {
		return 0
	}
	return (sumOfSquares(supply+amount) - sumOfSquares(supply)) * sharesconst.PriceCoefficient
}
