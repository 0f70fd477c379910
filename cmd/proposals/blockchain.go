package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nspcc-dev/grants-contract/rpc/grants"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// wrapper over the Neo RPC client providing Grants contract services needed
// for current command.
type remoteBlockchain struct {
	rpc     *rpcclient.Client
	invoker *invoker.Invoker

	grants *grants.ContractReader
}

// newRemoteBlockchain dials Neo RPC server and returns remoteBlockchain based
// on the opened connection. Connection and all requests are done within 15s
// timeout.
func newRemoteBlockchain(blockChainRPCEndpoint string, grantsContract util.Uint160) (*remoteBlockchain, error) {
	c, err := rpcclient.New(context.Background(), blockChainRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	inv := invoker.New(c, nil)

	return &remoteBlockchain{
		rpc:     c,
		invoker: inv,
		grants:  grants.NewReader(inv, grantsContract),
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// listProposals requests all proposals stored in the Grants contract.
// Iterator session is terminated before return.
func (x *remoteBlockchain) listProposals() ([]*grants.GrantsProposal, error) {
	sess, iter, err := x.grants.IterateProposals()
	if err != nil {
		return nil, fmt.Errorf("open proposal iterator: %w", err)
	}

	defer x.invoker.TerminateSession(sess)

	var res []*grants.GrantsProposal

	items, err := x.invoker.TraverseIterator(sess, &iter, 0)
	for ; err == nil && len(items) > 0; items, err = x.invoker.TraverseIterator(sess, &iter, 0) {
		for _, item := range items {
			p := new(grants.GrantsProposal)

			err = p.FromStackItem(item)
			if err != nil {
				return nil, fmt.Errorf("decode proposal from stack item: %w", err)
			}

			res = append(res, p)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("traverse proposal iterator: %w", err)
	}

	return res, nil
}
