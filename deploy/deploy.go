// Package deploy provides Grants contract deployment routine.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the Grants contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns error with 'Unknown
	// contract' substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups all parameters of the Grants contract deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance the contract is synchronized with.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	LocalAccount *wallet.Account

	// Compiled contract executable and manifest.
	NEF      nef.File
	Manifest manifest.Manifest

	// Account managing the proposal lifecycle. Passed to the contract on
	// initial deployment, ignored if the contract is already on the chain.
	Authority util.Uint160
}

// Deploy synchronizes the Grants contract with the Neo blockchain represented
// by given Prm.Blockchain: if the contract is already on the chain, Deploy
// just returns its address, otherwise the contract is deployed from the local
// account and Deploy waits for the transaction to be accepted.
//
// The on-chain address is a function of the deploying account and the
// contract itself, so repeated calls with the same parameters converge to the
// same contract. Deploy aborts only by context or when a fatal error occurs.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	switch {
	case prm.Logger == nil:
		return util.Uint160{}, errors.New("missing logger")
	case prm.Blockchain == nil:
		return util.Uint160{}, errors.New("missing blockchain client")
	case prm.LocalAccount == nil:
		return util.Uint160{}, errors.New("missing local account")
	case prm.Authority.Equals(util.Uint160{}):
		return util.Uint160{}, errors.New("missing authority account")
	}

	localActor, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from single local account: %w", err)
	}

	contractAddress := state.CreateContractHash(prm.LocalAccount.ScriptHash(), prm.NEF.Checksum, prm.Manifest.Name)

	l := prm.Logger.With(zap.Stringer("address", contractAddress))

	onChainState, err := readContractOnChainStateByAddress(prm.Blockchain, contractAddress)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("read on-chain state of the contract: %w", err)
	}

	if onChainState != nil {
		l.Info("contract is already on the chain, skip deployment")
		return contractAddress, nil
	}

	l.Info("contract is missing on the chain, deploying...")

	txHash, vub, err := management.New(localActor).Deploy(&prm.NEF, &prm.Manifest, []any{prm.Authority})
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send transaction deploying the contract: %w", err)
	}

	l.Info("transaction deploying the contract has been sent, waiting for the outcome...",
		zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	aer, err := localActor.Wait(txHash, vub, nil)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("wait for deploy transaction outcome: %w", err)
	}

	if aer.VMState != vmstate.Halt {
		return util.Uint160{}, fmt.Errorf("deploy transaction finished with %s state: %s", aer.VMState, aer.FaultException)
	}

	l.Info("contract successfully deployed")

	return contractAddress, nil
}

// readContractOnChainStateByAddress reads state of the contract deployed on
// the blockchain. Returns both nil if the contract is missing.
func readContractOnChainStateByAddress(b Blockchain, addr util.Uint160) (*state.Contract, error) {
	res, err := b.GetContractStateByHash(addr)
	if err != nil && strings.Contains(err.Error(), "Unknown contract") {
		return nil, nil
	}

	return res, err
}
