package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
)

// chainClient wraps the Neo RPC client with the read services the dump
// command needs. All state is read at the height observed on dial, so the
// report is a consistent snapshot even if blocks keep coming.
type chainClient struct {
	rpc *rpcclient.Client

	// height of the chain at the moment of connection.
	height uint32
}

// dialChain connects to the Neo RPC server. Connection and all requests are
// done within 15s timeout.
func dialChain(endpoint string) (*chainClient, error) {
	acc, err := wallet.NewAccount()
	if err != nil {
		return nil, fmt.Errorf("generate new Neo account: %w", err)
	}

	c, err := rpcclient.New(context.Background(), endpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		return nil, fmt.Errorf("init actor: %w", err)
	}

	height, err := act.GetBlockCount()
	if err != nil {
		return nil, fmt.Errorf("get number of the latest block: %w", err)
	}

	return &chainClient{
		rpc:    c,
		height: height,
	}, nil
}

func (x *chainClient) close() {
	x.rpc.Close()
}

// iterateStorage passes every storage item of the given contract into f,
// paging through the MPT state as of the snapshot height. It breaks on any
// f's error and returns it.
func (x *chainClient) iterateStorage(contract util.Uint160, f func(key, value []byte) error) error {
	stateRoot, err := x.rpc.GetStateRootByHeight(x.height - 1)
	if err != nil {
		return fmt.Errorf("get state root at block #%d: %w", x.height-1, err)
	}

	var start []byte

	for {
		res, err := x.rpc.FindStates(stateRoot.Root, contract, nil, start, nil)
		if err != nil {
			return fmt.Errorf("get storage items of the contract at state root '%s': %w", stateRoot.Root, err)
		}

		for i := range res.Results {
			err = f(res.Results[i].Key, res.Results[i].Value)
			if err != nil {
				return err
			}
		}

		if !res.Truncated {
			return nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}
