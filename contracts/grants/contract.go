package grants

import (
	"github.com/nspcc-dev/grants-contract/common"
	"github.com/nspcc-dev/grants-contract/contracts/grants/proposalstate"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Proposal is a funding proposal record stored by the contract.
type Proposal struct {
	// Sequential identifier of the proposal, starts from 1.
	ID int

	// Short human-readable name of the proposal.
	Title string

	// Free-form description of the proposed work.
	Description string

	// Reference link with proposal details.
	URL string

	// Free-form labels assigned by the proposer.
	Tags []string

	// Payout amounts per milestone. The list never changes after
	// the proposal has been submitted.
	Milestones []int

	// Sum of all milestone amounts, fixed at submission.
	TotalAmount int

	// Number of milestones already paid out.
	CurrentMilestone int

	// Account that submitted the proposal.
	Proposer interop.Hash160

	// Account milestone payouts are transferred to.
	Receiver interop.Hash160

	// NEP-17 token contract payouts are made in.
	Asset interop.Hash160

	// Current proposal state.
	State proposalstate.Type

	// Submission time in milliseconds.
	CreatedAt int

	// Time of the last state change in milliseconds.
	ModifiedAt int
}

const (
	proposalPrefix = 'p'

	proposalCountKey = 'c'
	authorityKey     = 'a'

	maxTotalAmount = 9007199254740991 // Max integer in JSON bound (2**53-1)
)

const (
	// ErrEmptyMilestones is thrown when a proposal is submitted with no
	// milestones.
	ErrEmptyMilestones = "empty milestone list"
	// ErrNonPositiveAmount is thrown when a milestone or withdrawal amount
	// is zero or negative.
	ErrNonPositiveAmount = "non-positive amount"
	// ErrAmountOverflow is thrown when the milestone sum exceeds the max
	// supported amount.
	ErrAmountOverflow = "total amount out of range"
	// ErrInvalidReceiver is thrown when receiver is not a 20-byte script hash.
	ErrInvalidReceiver = "invalid receiver"
	// ErrInvalidAsset is thrown when asset is not a 20-byte script hash.
	ErrInvalidAsset = "invalid asset"
	// ErrInvalidAuthority is thrown when authority is not a 20-byte script hash.
	ErrInvalidAuthority = "invalid authority"
	// ErrProposalNotFound is thrown when the requested proposal does not exist.
	ErrProposalNotFound = "proposal not found"
	// ErrInvalidState is thrown when the proposal state does not allow the
	// requested transition.
	ErrInvalidState = "invalid proposal state"
	// ErrMilestonesExhausted is thrown when all milestones have been paid
	// out already.
	ErrMilestonesExhausted = "no unpaid milestones left"
	// ErrTransferFailed is thrown when the NEP-17 transfer from the contract
	// account returns false.
	ErrTransferFailed = "asset transfer failed"
	// ErrInsufficientFunds is thrown when the contract custody balance is
	// smaller than the requested withdrawal.
	ErrInsufficientFunds = "insufficient contract balance"
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]any)
	authority := args[0].(interop.Hash160)
	if len(authority) != interop.Hash160Len {
		panic(ErrInvalidAuthority)
	}

	storage.Put(ctx, authorityKey, authority)
	storage.Put(ctx, proposalCountKey, 0)

	runtime.Log("grants contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("grants contract updated")
}

// CreateProposal is a method that submits a new funding proposal and returns
// its id. It can be invoked by anyone; the transaction sender is recorded as
// the proposer. Milestone list must not be empty, every amount must be
// positive and the milestone sum must not exceed the supported maximum.
//
// It produces NewProposal notification.
func CreateProposal(title, description, url string, tags []string, milestones []int, receiver, asset interop.Hash160) int {
	if len(milestones) == 0 {
		panic(ErrEmptyMilestones)
	}

	total := 0
	for i := range milestones {
		if milestones[i] <= 0 {
			panic(ErrNonPositiveAmount)
		}

		total += milestones[i]
		if total > maxTotalAmount {
			panic(ErrAmountOverflow)
		}
	}

	if len(receiver) != interop.Hash160Len {
		panic(ErrInvalidReceiver)
	}
	if len(asset) != interop.Hash160Len {
		panic(ErrInvalidAsset)
	}

	ctx := storage.GetContext()
	id := getProposalCount(ctx) + 1

	tx := runtime.GetScriptContainer()
	now := runtime.GetTime()

	common.SetSerialized(ctx, proposalKey(id), Proposal{
		ID:               id,
		Title:            title,
		Description:      description,
		URL:              url,
		Tags:             tags,
		Milestones:       milestones,
		TotalAmount:      total,
		CurrentMilestone: 0,
		Proposer:         tx.Sender,
		Receiver:         receiver,
		Asset:            asset,
		State:            proposalstate.Proposed,
		CreatedAt:        now,
		ModifiedAt:       now,
	})
	storage.Put(ctx, proposalCountKey, id)

	runtime.Notify("NewProposal", id, receiver, total)

	return id
}

// AcceptProposal is a method that approves a submitted proposal for milestone
// funding. It can be invoked only by the grant program authority. The
// proposal must be in the [proposalstate.Proposed] state.
//
// It produces AcceptProposal notification.
func AcceptProposal(id int) {
	ctx := storage.GetContext()
	common.CheckAuthorityWitness(getAuthority(ctx))

	p := getProposal(ctx, id)
	if p.State != proposalstate.Proposed {
		panic(ErrInvalidState)
	}

	p.State = proposalstate.Accepted
	p.ModifiedAt = runtime.GetTime()
	common.SetSerialized(ctx, proposalKey(id), p)

	runtime.Notify("AcceptProposal", id)
}

// RejectProposal is a method that turns a proposal down. It can be invoked
// only by the grant program authority. The proposal must be in the
// [proposalstate.Proposed] or [proposalstate.Accepted] state; milestones
// already paid are not clawed back. The reason is carried by the
// notification only and is not stored.
//
// It produces RejectProposal notification.
func RejectProposal(id int, reason string) {
	ctx := storage.GetContext()
	common.CheckAuthorityWitness(getAuthority(ctx))

	p := getProposal(ctx, id)
	if p.State != proposalstate.Proposed && p.State != proposalstate.Accepted {
		panic(ErrInvalidState)
	}

	p.State = proposalstate.Rejected
	p.ModifiedAt = runtime.GetTime()
	common.SetSerialized(ctx, proposalKey(id), p)

	runtime.Notify("RejectProposal", id, reason)
}

// CompleteMilestone is a method that pays the next unpaid milestone of an
// accepted proposal to its receiver. It can be invoked only by the grant
// program authority. The transfer is performed first; if it fails, the whole
// invocation fails and no record is modified. Paying the last milestone also
// moves the proposal to the [proposalstate.Completed] state.
//
// It produces MilestoneCompleted notification, followed by CompleteProposal
// notification on the last milestone.
func CompleteMilestone(id int) {
	ctx := storage.GetContext()
	common.CheckAuthorityWitness(getAuthority(ctx))

	p := getProposal(ctx, id)
	if p.State != proposalstate.Accepted {
		panic(ErrInvalidState)
	}
	if p.CurrentMilestone >= len(p.Milestones) {
		panic(ErrMilestonesExhausted)
	}

	amount := p.Milestones[p.CurrentMilestone]
	transferAssets(p.Asset, p.Receiver, amount)

	// Not p.CurrentMilestone++: the neo-go compiler drops the write-back
	// of ++/-- on struct fields and leaves the value on the VM stack.
	p.CurrentMilestone = p.CurrentMilestone + 1
	p.ModifiedAt = runtime.GetTime()
	if p.CurrentMilestone == len(p.Milestones) {
		p.State = proposalstate.Completed
	}
	common.SetSerialized(ctx, proposalKey(id), p)

	runtime.Notify("MilestoneCompleted", id, p.CurrentMilestone, len(p.Milestones), amount, p.Asset)
	if p.State == proposalstate.Completed {
		runtime.Notify("CompleteProposal", id, p.TotalAmount, p.Asset)
	}
}

// EmergencyPayout is a method that pays all remaining milestones of an
// accepted proposal at once and completes it. It can be invoked only by the
// grant program authority. The transfer is performed first; if it fails, the
// whole invocation fails and no record is modified.
//
// It produces CompleteProposal notification.
func EmergencyPayout(id int) {
	ctx := storage.GetContext()
	common.CheckAuthorityWitness(getAuthority(ctx))

	p := getProposal(ctx, id)
	if p.State != proposalstate.Accepted {
		panic(ErrInvalidState)
	}
	if p.CurrentMilestone >= len(p.Milestones) {
		panic(ErrMilestonesExhausted)
	}

	remaining := 0
	for i := p.CurrentMilestone; i < len(p.Milestones); i++ {
		remaining += p.Milestones[i]
	}
	transferAssets(p.Asset, p.Receiver, remaining)

	p.CurrentMilestone = len(p.Milestones)
	p.State = proposalstate.Completed
	p.ModifiedAt = runtime.GetTime()
	common.SetSerialized(ctx, proposalKey(id), p)

	runtime.Notify("CompleteProposal", id, p.TotalAmount, p.Asset)
}

// WithdrawAsset is a method that transfers assets from the contract custody
// balance to the specified receiver. It can be invoked only by the grant
// program authority. Proposal records are not affected.
//
// It produces Withdraw notification.
func WithdrawAsset(receiver interop.Hash160, amount int, asset interop.Hash160) {
	ctx := storage.GetReadOnlyContext()
	common.CheckAuthorityWitness(getAuthority(ctx))

	if len(receiver) != interop.Hash160Len {
		panic(ErrInvalidReceiver)
	}
	if len(asset) != interop.Hash160Len {
		panic(ErrInvalidAsset)
	}
	if amount <= 0 {
		panic(ErrNonPositiveAmount)
	}

	self := runtime.GetExecutingScriptHash()
	balance := contract.Call(asset, "balanceOf", contract.ReadOnly, self).(int)
	if balance < amount {
		panic(ErrInsufficientFunds)
	}

	transferAssets(asset, receiver, amount)

	runtime.Notify("Withdraw", receiver, amount, asset)
}

// OnNEP17Payment is a callback for NEP-17 compatible token contracts. The
// contract accepts inbound transfers of any NEP-17 asset into its custody
// balance.
//
// It produces Deposit notification.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	asset := runtime.GetCallingScriptHash()
	runtime.Notify("Deposit", from, amount, asset)
}

// DesignateAuthority is a method that hands the grant program over to
// another authority account. It can be invoked only by the current
// authority.
//
// It produces DesignateAuthority notification.
func DesignateAuthority(addr interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckAuthorityWitness(getAuthority(ctx))

	if len(addr) != interop.Hash160Len {
		panic(ErrInvalidAuthority)
	}

	storage.Put(ctx, authorityKey, addr)

	runtime.Notify("DesignateAuthority", addr)
}

// GetProposal returns the [Proposal] with the specified id. The method
// panics if the proposal does not exist.
func GetProposal(id int) Proposal {
	ctx := storage.GetReadOnlyContext()
	return getProposal(ctx, id)
}

// ProposalCount returns the number of proposals ever submitted. Rejected
// proposals are counted too, ids are never reused.
func ProposalCount() int {
	ctx := storage.GetReadOnlyContext()
	return getProposalCount(ctx)
}

// IterateProposals returns an iterator over all stored [Proposal] records.
func IterateProposals() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{proposalPrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// Authority returns the script hash of the current grant program authority.
func Authority() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getAuthority(ctx)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func proposalKey(id int) []byte {
	return append([]byte{proposalPrefix}, convert.ToBytes(id)...)
}

func getProposal(ctx storage.Context, id int) Proposal {
	data := storage.Get(ctx, proposalKey(id))
	if data == nil {
		panic(ErrProposalNotFound)
	}

	return std.Deserialize(data.([]byte)).(Proposal)
}

func getProposalCount(ctx storage.Context) int {
	count := storage.Get(ctx, proposalCountKey)
	if count != nil {
		return count.(int)
	}

	return 0
}

func getAuthority(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, authorityKey).(interop.Hash160)
}

func transferAssets(asset, receiver interop.Hash160, amount int) {
	from := runtime.GetExecutingScriptHash()
	transferred := contract.Call(asset, "transfer", contract.All, from, receiver, amount, nil).(bool)
	if !transferred {
		panic(ErrTransferFailed)
	}
}
