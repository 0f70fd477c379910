package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"strings"

	"github.com/nspcc-dev/grants-contract/rpc/grants"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractAddress := flag.String("contract", "", "Address of the Grants contract (Neo address or LE script hash in hex)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractAddress == "":
		log.Fatal("missing Grants contract address")
	}

	grantsContract, err := parseContractAddress(*contractAddress)
	if err != nil {
		log.Fatal(fmt.Errorf("parse Grants contract address: %w", err))
	}

	err = listProposals(*neoRPCEndpoint, grantsContract)
	if err != nil {
		log.Fatal(err)
	}
}

func listProposals(neoBlockchainRPCEndpoint string, grantsContract util.Uint160) error {
	b, err := newRemoteBlockchain(neoBlockchainRPCEndpoint, grantsContract)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	authority, err := b.grants.Authority()
	if err != nil {
		return fmt.Errorf("get contract authority: %w", err)
	}

	count, err := b.grants.ProposalCount()
	if err != nil {
		return fmt.Errorf("get number of submitted proposals: %w", err)
	}

	fmt.Printf("Grants contract %s, authority %s, %d proposals submitted\n",
		address.Uint160ToString(grantsContract), address.Uint160ToString(authority), count)

	proposals, err := b.listProposals()
	if err != nil {
		return fmt.Errorf("list proposals: %w", err)
	}

	for _, p := range proposals {
		fmt.Printf("#%d [%s] %q: %d/%d milestones paid, %d total, receiver %s\n",
			p.ID, stateString(p.State), p.Title, p.CurrentMilestone, len(p.Milestones),
			p.TotalAmount, address.Uint160ToString(p.Receiver))
	}

	return nil
}

// parseContractAddress accepts both Neo address and hex-encoded LE script
// hash (with or without '0x' prefix).
func parseContractAddress(s string) (util.Uint160, error) {
	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}

	return util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
}

func stateString(state *big.Int) string {
	switch {
	case state.Cmp(grants.StateProposed) == 0:
		return "Proposed"
	case state.Cmp(grants.StateAccepted) == 0:
		return "Accepted"
	case state.Cmp(grants.StateCompleted) == 0:
		return "Completed"
	case state.Cmp(grants.StateRejected) == 0:
		return "Rejected"
	}

	return "Unknown"
}
