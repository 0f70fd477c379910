// Package grants contains RPC wrappers for Grants contract.
package grants

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// GrantsProposal is a contract-specific grants.Proposal type used by its methods.
type GrantsProposal struct {
	ID *big.Int
	Title string
	Description string
	URL string
	Tags []string
	Milestones []*big.Int
	TotalAmount *big.Int
	CurrentMilestone *big.Int
	Proposer util.Uint160
	Receiver util.Uint160
	Asset util.Uint160
	State *big.Int
	CreatedAt *big.Int
	ModifiedAt *big.Int
}

// NewProposalEvent represents "NewProposal" event emitted by the contract.
type NewProposalEvent struct {
	ID *big.Int
	Receiver util.Uint160
	Amount *big.Int
}

// AcceptProposalEvent represents "AcceptProposal" event emitted by the contract.
type AcceptProposalEvent struct {
	ID *big.Int
}

// RejectProposalEvent represents "RejectProposal" event emitted by the contract.
type RejectProposalEvent struct {
	ID *big.Int
	Reason string
}

// MilestoneCompletedEvent represents "MilestoneCompleted" event emitted by the contract.
type MilestoneCompletedEvent struct {
	ID *big.Int
	Milestone *big.Int
	Milestones *big.Int
	Amount *big.Int
	Asset util.Uint160
}

// CompleteProposalEvent represents "CompleteProposal" event emitted by the contract.
type CompleteProposalEvent struct {
	ID *big.Int
	Amount *big.Int
	Asset util.Uint160
}

// WithdrawEvent represents "Withdraw" event emitted by the contract.
type WithdrawEvent struct {
	Receiver util.Uint160
	Amount *big.Int
	Asset util.Uint160
}

// DepositEvent represents "Deposit" event emitted by the contract.
type DepositEvent struct {
	From util.Uint160
	Amount *big.Int
	Asset util.Uint160
}

// DesignateAuthorityEvent represents "DesignateAuthority" event emitted by the contract.
type DesignateAuthorityEvent struct {
	Authority util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Authority invokes `authority` method of contract.
func (c *ContractReader) Authority() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "authority"))
}

// GetProposal invokes `getProposal` method of contract.
func (c *ContractReader) GetProposal(id *big.Int) (*GrantsProposal, error) {
	return itemToGrantsProposal(unwrap.Item(c.invoker.Call(c.hash, "getProposal", id)))
}

// IterateProposals invokes `iterateProposals` method of contract.
func (c *ContractReader) IterateProposals() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateProposals"))
}

// IterateProposalsExpanded is similar to IterateProposals (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateProposalsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateProposals", _numOfIteratorItems))
}

// ProposalCount invokes `proposalCount` method of contract.
func (c *ContractReader) ProposalCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "proposalCount"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AcceptProposal creates a transaction invoking `acceptProposal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AcceptProposal(id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "acceptProposal", id)
}

// AcceptProposalTransaction creates a transaction invoking `acceptProposal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AcceptProposalTransaction(id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "acceptProposal", id)
}

// AcceptProposalUnsigned creates a transaction invoking `acceptProposal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AcceptProposalUnsigned(id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "acceptProposal", nil, id)
}

// CompleteMilestone creates a transaction invoking `completeMilestone` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CompleteMilestone(id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "completeMilestone", id)
}

// CompleteMilestoneTransaction creates a transaction invoking `completeMilestone` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CompleteMilestoneTransaction(id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "completeMilestone", id)
}

// CompleteMilestoneUnsigned creates a transaction invoking `completeMilestone` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CompleteMilestoneUnsigned(id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "completeMilestone", nil, id)
}

// CreateProposal creates a transaction invoking `createProposal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateProposal(title string, description string, url string, tags []string, milestones []*big.Int, receiver util.Uint160, asset util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createProposal", title, description, url, tags, milestones, receiver, asset)
}

// CreateProposalTransaction creates a transaction invoking `createProposal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateProposalTransaction(title string, description string, url string, tags []string, milestones []*big.Int, receiver util.Uint160, asset util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createProposal", title, description, url, tags, milestones, receiver, asset)
}

// CreateProposalUnsigned creates a transaction invoking `createProposal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateProposalUnsigned(title string, description string, url string, tags []string, milestones []*big.Int, receiver util.Uint160, asset util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createProposal", nil, title, description, url, tags, milestones, receiver, asset)
}

// DesignateAuthority creates a transaction invoking `designateAuthority` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DesignateAuthority(addr util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "designateAuthority", addr)
}

// DesignateAuthorityTransaction creates a transaction invoking `designateAuthority` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DesignateAuthorityTransaction(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "designateAuthority", addr)
}

// DesignateAuthorityUnsigned creates a transaction invoking `designateAuthority` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DesignateAuthorityUnsigned(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "designateAuthority", nil, addr)
}

// EmergencyPayout creates a transaction invoking `emergencyPayout` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) EmergencyPayout(id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "emergencyPayout", id)
}

// EmergencyPayoutTransaction creates a transaction invoking `emergencyPayout` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EmergencyPayoutTransaction(id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "emergencyPayout", id)
}

// EmergencyPayoutUnsigned creates a transaction invoking `emergencyPayout` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EmergencyPayoutUnsigned(id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "emergencyPayout", nil, id)
}

// OnNEP17Payment creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OnNEP17Payment(from util.Uint160, amount *big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "onNEP17Payment", from, amount, data)
}

// OnNEP17PaymentTransaction creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OnNEP17PaymentTransaction(from util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "onNEP17Payment", from, amount, data)
}

// OnNEP17PaymentUnsigned creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OnNEP17PaymentUnsigned(from util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "onNEP17Payment", nil, from, amount, data)
}

// RejectProposal creates a transaction invoking `rejectProposal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RejectProposal(id *big.Int, reason string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "rejectProposal", id, reason)
}

// RejectProposalTransaction creates a transaction invoking `rejectProposal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RejectProposalTransaction(id *big.Int, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "rejectProposal", id, reason)
}

// RejectProposalUnsigned creates a transaction invoking `rejectProposal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RejectProposalUnsigned(id *big.Int, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "rejectProposal", nil, id, reason)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// WithdrawAsset creates a transaction invoking `withdrawAsset` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawAsset(receiver util.Uint160, amount *big.Int, asset util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawAsset", receiver, amount, asset)
}

// WithdrawAssetTransaction creates a transaction invoking `withdrawAsset` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawAssetTransaction(receiver util.Uint160, amount *big.Int, asset util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawAsset", receiver, amount, asset)
}

// WithdrawAssetUnsigned creates a transaction invoking `withdrawAsset` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawAssetUnsigned(receiver util.Uint160, amount *big.Int, asset util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawAsset", nil, receiver, amount, asset)
}

// itemToGrantsProposal converts stack item into *GrantsProposal.
func itemToGrantsProposal(item stackitem.Item, err error) (*GrantsProposal, error) {
	if err != nil {
		return nil, err
	}
	var res = new(GrantsProposal)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of GrantsProposal from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *GrantsProposal) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 14 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Title, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Title: %w", err)
	}

	index++
	res.Description, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	res.URL, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field URL: %w", err)
	}

	index++
	res.Tags, err = func (item stackitem.Item) ([]string, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]string, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (string, error) {
				b, err := item.TryBytes()
				if err != nil {
					return "", err
				}
				if !utf8.Valid(b) {
					return "", errors.New("not a UTF-8 string")
				}
				return string(b), nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Tags: %w", err)
	}

	index++
	res.Milestones, err = func (item stackitem.Item) ([]*big.Int, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*big.Int, len(arr))
		for i := range res {
			res[i], err = arr[i].TryInteger()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Milestones: %w", err)
	}

	index++
	res.TotalAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalAmount: %w", err)
	}

	index++
	res.CurrentMilestone, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CurrentMilestone: %w", err)
	}

	index++
	res.Proposer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Proposer: %w", err)
	}

	index++
	res.Receiver, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Receiver: %w", err)
	}

	index++
	res.Asset, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	index++
	res.State, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field State: %w", err)
	}

	index++
	res.CreatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}

	index++
	res.ModifiedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ModifiedAt: %w", err)
	}

	return nil
}

// NewProposalEventsFromApplicationLog retrieves a set of all emitted events
// with "NewProposal" name from the provided [result.ApplicationLog].
func NewProposalEventsFromApplicationLog(log *result.ApplicationLog) ([]*NewProposalEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NewProposalEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NewProposal" {
				continue
			}
			event := new(NewProposalEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NewProposalEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NewProposalEvent or
// returns an error if it's not possible to do to so.
func (e *NewProposalEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Receiver, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Receiver: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// AcceptProposalEventsFromApplicationLog retrieves a set of all emitted events
// with "AcceptProposal" name from the provided [result.ApplicationLog].
func AcceptProposalEventsFromApplicationLog(log *result.ApplicationLog) ([]*AcceptProposalEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AcceptProposalEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AcceptProposal" {
				continue
			}
			event := new(AcceptProposalEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AcceptProposalEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AcceptProposalEvent or
// returns an error if it's not possible to do to so.
func (e *AcceptProposalEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	return nil
}

// RejectProposalEventsFromApplicationLog retrieves a set of all emitted events
// with "RejectProposal" name from the provided [result.ApplicationLog].
func RejectProposalEventsFromApplicationLog(log *result.ApplicationLog) ([]*RejectProposalEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RejectProposalEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RejectProposal" {
				continue
			}
			event := new(RejectProposalEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RejectProposalEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RejectProposalEvent or
// returns an error if it's not possible to do to so.
func (e *RejectProposalEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Reason, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Reason: %w", err)
	}

	return nil
}

// MilestoneCompletedEventsFromApplicationLog retrieves a set of all emitted events
// with "MilestoneCompleted" name from the provided [result.ApplicationLog].
func MilestoneCompletedEventsFromApplicationLog(log *result.ApplicationLog) ([]*MilestoneCompletedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MilestoneCompletedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "MilestoneCompleted" {
				continue
			}
			event := new(MilestoneCompletedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MilestoneCompletedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MilestoneCompletedEvent or
// returns an error if it's not possible to do to so.
func (e *MilestoneCompletedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Milestone, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Milestone: %w", err)
	}

	index++
	e.Milestones, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Milestones: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Asset, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	return nil
}

// CompleteProposalEventsFromApplicationLog retrieves a set of all emitted events
// with "CompleteProposal" name from the provided [result.ApplicationLog].
func CompleteProposalEventsFromApplicationLog(log *result.ApplicationLog) ([]*CompleteProposalEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CompleteProposalEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CompleteProposal" {
				continue
			}
			event := new(CompleteProposalEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CompleteProposalEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CompleteProposalEvent or
// returns an error if it's not possible to do to so.
func (e *CompleteProposalEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Asset, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	return nil
}

// WithdrawEventsFromApplicationLog retrieves a set of all emitted events
// with "Withdraw" name from the provided [result.ApplicationLog].
func WithdrawEventsFromApplicationLog(log *result.ApplicationLog) ([]*WithdrawEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WithdrawEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Withdraw" {
				continue
			}
			event := new(WithdrawEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WithdrawEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WithdrawEvent or
// returns an error if it's not possible to do to so.
func (e *WithdrawEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Receiver, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Receiver: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Asset, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	return nil
}

// DepositEventsFromApplicationLog retrieves a set of all emitted events
// with "Deposit" name from the provided [result.ApplicationLog].
func DepositEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Deposit" {
				continue
			}
			event := new(DepositEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositEvent or
// returns an error if it's not possible to do to so.
func (e *DepositEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Asset, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	return nil
}

// DesignateAuthorityEventsFromApplicationLog retrieves a set of all emitted events
// with "DesignateAuthority" name from the provided [result.ApplicationLog].
func DesignateAuthorityEventsFromApplicationLog(log *result.ApplicationLog) ([]*DesignateAuthorityEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DesignateAuthorityEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DesignateAuthority" {
				continue
			}
			event := new(DesignateAuthorityEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DesignateAuthorityEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DesignateAuthorityEvent or
// returns an error if it's not possible to do to so.
func (e *DesignateAuthorityEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Authority, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	return nil
}
