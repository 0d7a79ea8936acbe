package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/abdul745/FriendTechV2/rpc/shares"
	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Storage prefixes of the Shares contract, see its storage model.
const (
	supplyPrefix  = 's'
	balancePrefix = 'b'
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractHash := flag.String("contract", "", "LE script hash of the Shares contract")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractHash == "":
		log.Fatal("missing Shares contract hash")
	}

	h, err := util.Uint160DecodeStringLE(*contractHash)
	if err != nil {
		log.Fatal(fmt.Errorf("decode Shares contract hash: %w", err))
	}

	err = _dump(*neoRPCEndpoint, h)
	if err != nil {
		log.Fatal(err)
	}
}

func _dump(neoBlockchainRPCEndpoint string, contract util.Uint160) error {
	b, err := dialChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("dial Neo RPC server: %w", err)
	}

	defer b.close()

	reader := shares.NewReader(invoker.New(b.rpc, nil), contract)

	owner, err := reader.Owner()
	if err != nil {
		return fmt.Errorf("read contract owner: %w", err)
	}

	pPct, err := reader.ProtocolFeePercent()
	if err != nil {
		return fmt.Errorf("read protocol fee percent: %w", err)
	}

	sPct, err := reader.SubjectFeePercent()
	if err != nil {
		return fmt.Errorf("read subject fee percent: %w", err)
	}

	fmt.Printf("owner: %s\n", owner.StringLE())

	token, err := reader.Token()
	if err != nil {
		fmt.Println("payment token: not set")
	} else {
		fmt.Printf("payment token: %s\n", token.StringLE())
	}

	fmt.Printf("protocol fee: %s%%, subject fee: %s%%\n", pPct, sPct)

	supplies := make(map[util.Uint160]int64)
	holders := make(map[util.Uint160]int)

	err = b.iterateStorage(contract, func(key, value []byte) error {
		switch {
		case len(key) == 1+util.Uint160Size && key[0] == supplyPrefix:
			subject, err := util.Uint160DecodeBytesBE(key[1:])
			if err != nil {
				return fmt.Errorf("decode subject from supply key: %w", err)
			}
			supplies[subject] = bigint.FromBytes(value).Int64()
		case len(key) == 1+2*util.Uint160Size && key[0] == balancePrefix:
			subject, err := util.Uint160DecodeBytesBE(key[1 : 1+util.Uint160Size])
			if err != nil {
				return fmt.Errorf("decode subject from balance key: %w", err)
			}
			holders[subject]++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("iterate contract storage: %w", err)
	}

	fmt.Printf("pools: %d\n", len(supplies))
	for subject, supply := range supplies {
		fmt.Printf("%s\tsupply: %d\tholders: %d\n", subject.StringLE(), supply, holders[subject])
	}

	return nil
}
