package tests

import (
	"encoding/json"
	"math/big"
	"path"
	"testing"

	"github.com/nspcc-dev/grants-contract/common"
	"github.com/nspcc-dev/grants-contract/contracts/grants"
	"github.com/nspcc-dev/grants-contract/contracts/grants/proposalstate"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const grantsPath = "../contracts/grants"
const nep17RefusePath = "../internal/testcontracts/nep17refuse"

func deployGrantsContract(t *testing.T, e *neotest.Executor, authority util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, grantsPath, path.Join(grantsPath, "config.yml"))
	e.DeployContract(t, c, []interface{}{authority})
	return c.Hash
}

// newGrantsInvoker deploys the contract on a fresh single-node chain and
// returns an invoker signed by the grant program authority.
func newGrantsInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)

	authority := e.NewAccount(t)
	h := deployGrantsContract(t, e, authority.ScriptHash())

	return e.CommitteeInvoker(h).WithSigners(authority)
}

// fundGrantsContract transfers GAS from the validator to the contract
// custody balance and returns the GAS contract hash.
func fundGrantsContract(t *testing.T, c *neotest.ContractInvoker, amount int64) util.Uint160 {
	gasHash, err := c.Chain.GetNativeContractScriptHash(nativenames.Gas)
	require.NoError(t, err)

	vc := c.CommitteeInvoker(gasHash).WithSigners(c.Validator)
	vc.Invoke(t, true, "transfer",
		c.Validator.ScriptHash(), c.Hash, amount, nil)

	return gasHash
}

type proposalRecord struct {
	id        int64
	title     string
	tags      []string
	total     int64
	current   int64
	proposer  []byte
	receiver  []byte
	asset     []byte
	state     int64
	createdAt int64
}

func getProposalRecord(t *testing.T, c *neotest.ContractInvoker, id int64) proposalRecord {
	res, err := c.TestInvoke(t, "getProposal", id)
	require.NoError(t, err)

	fields := res.Top().Array()
	require.Len(t, fields, 14)

	var tags []string
	for _, item := range fields[4].Value().([]stackitem.Item) {
		tags = append(tags, string(item.Value().([]byte)))
	}

	return proposalRecord{
		id:        fields[0].Value().(*big.Int).Int64(),
		title:     string(fields[1].Value().([]byte)),
		tags:      tags,
		total:     fields[6].Value().(*big.Int).Int64(),
		current:   fields[7].Value().(*big.Int).Int64(),
		proposer:  fields[8].Value().([]byte),
		receiver:  fields[9].Value().([]byte),
		asset:     fields[10].Value().([]byte),
		state:     fields[11].Value().(*big.Int).Int64(),
		createdAt: fields[12].Value().(*big.Int).Int64(),
	}
}

func TestDeploy(t *testing.T) {
	e := newExecutor(t)

	authority := e.NewAccount(t)
	h := deployGrantsContract(t, e, authority.ScriptHash())
	c := e.CommitteeInvoker(h)

	c.Invoke(t, stackitem.NewByteArray(authority.ScriptHash().BytesBE()), "authority")
	c.Invoke(t, int64(0), "proposalCount")
	c.Invoke(t, common.Version, "version")
	c.InvokeFail(t, grants.ErrProposalNotFound, "getProposal", int64(1))
}

func TestUpdate(t *testing.T) {
	e := newExecutor(t)

	authority := e.NewAccount(t)
	ctr := neotest.CompileFile(t, e.CommitteeHash, grantsPath, path.Join(grantsPath, "config.yml"))
	e.DeployContract(t, ctr, []interface{}{authority.ScriptHash()})

	bNEF, err := ctr.NEF.Bytes()
	require.NoError(t, err)
	jManifest, err := json.Marshal(ctr.Manifest)
	require.NoError(t, err)

	c := e.CommitteeInvoker(ctr.Hash)

	// The authority manages proposals, not the contract code.
	c.WithSigners(authority).InvokeFail(t, "only committee can update contract",
		"update", bNEF, jManifest, nil)

	c.InvokeFail(t, common.ErrAlreadyUpdated, "update", bNEF, jManifest, nil)
}

func TestCreateProposal(t *testing.T) {
	c := newGrantsInvoker(t)
	gasHash, err := c.Chain.GetNativeContractScriptHash(nativenames.Gas)
	require.NoError(t, err)

	receiver := util.Uint160{0xa1, 0xb2, 0xc3}
	proposer := c.NewAccount(t)
	cProposer := c.WithSigners(proposer)

	milestones := []interface{}{int64(100), int64(250), int64(650)}

	t.Run("invalid input", func(t *testing.T) {
		cProposer.InvokeFail(t, grants.ErrEmptyMilestones, "createProposal",
			"Storage gateway", "", "", []interface{}{}, []interface{}{}, receiver, gasHash)
		cProposer.InvokeFail(t, grants.ErrNonPositiveAmount, "createProposal",
			"Storage gateway", "", "", []interface{}{}, []interface{}{int64(100), int64(0)}, receiver, gasHash)
		cProposer.InvokeFail(t, grants.ErrNonPositiveAmount, "createProposal",
			"Storage gateway", "", "", []interface{}{}, []interface{}{int64(-5)}, receiver, gasHash)
		cProposer.InvokeFail(t, grants.ErrAmountOverflow, "createProposal",
			"Storage gateway", "", "", []interface{}{}, []interface{}{int64(9007199254740991), int64(1)}, receiver, gasHash)
		cProposer.InvokeFail(t, grants.ErrInvalidReceiver, "createProposal",
			"Storage gateway", "", "", []interface{}{}, milestones, []byte{1, 2, 3}, gasHash)
		cProposer.InvokeFail(t, grants.ErrInvalidAsset, "createProposal",
			"Storage gateway", "", "", []interface{}{}, milestones, receiver, []byte{1, 2, 3})
	})

	h := cProposer.Invoke(t, int64(1), "createProposal",
		"Storage gateway", "S3 compatible gateway", "https://example.org/grants/1",
		[]interface{}{"infra", "storage"}, milestones, receiver, gasHash)

	aer := cProposer.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "NewProposal", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewBigInteger(big.NewInt(1)),
		stackitem.NewByteArray(receiver.BytesBE()),
		stackitem.NewBigInteger(big.NewInt(1000)),
	}), aer.Events[0].Item)

	c.Invoke(t, int64(1), "proposalCount")

	p := getProposalRecord(t, c, 1)
	require.EqualValues(t, 1, p.id)
	require.Equal(t, "Storage gateway", p.title)
	require.Equal(t, []string{"infra", "storage"}, p.tags)
	require.EqualValues(t, 1000, p.total)
	require.EqualValues(t, 0, p.current)
	require.Equal(t, proposer.ScriptHash().BytesBE(), p.proposer)
	require.Equal(t, receiver.BytesBE(), p.receiver)
	require.Equal(t, gasHash.BytesBE(), p.asset)
	require.EqualValues(t, proposalstate.Proposed, p.state)
	require.NotZero(t, p.createdAt)

	// Ids are sequential and never reused.
	cProposer.Invoke(t, int64(2), "createProposal",
		"Monitoring", "", "", []interface{}{}, []interface{}{int64(50)}, receiver, gasHash)
	c.Invoke(t, int64(2), "proposalCount")
}

func TestAcceptProposal(t *testing.T) {
	c := newGrantsInvoker(t)
	gasHash, err := c.Chain.GetNativeContractScriptHash(nativenames.Gas)
	require.NoError(t, err)

	receiver := util.Uint160{0xa1, 0xb2, 0xc3}
	proposer := c.NewAccount(t)
	cProposer := c.WithSigners(proposer)

	cProposer.Invoke(t, int64(1), "createProposal",
		"Storage gateway", "", "", []interface{}{}, []interface{}{int64(100)}, receiver, gasHash)

	c.InvokeFail(t, grants.ErrProposalNotFound, "acceptProposal", int64(42))
	cProposer.InvokeFail(t, common.ErrAuthorityWitnessFailed, "acceptProposal", int64(1))

	h := c.Invoke(t, stackitem.Null{}, "acceptProposal", int64(1))
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "AcceptProposal", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewBigInteger(big.NewInt(1)),
	}), aer.Events[0].Item)

	p := getProposalRecord(t, c, 1)
	require.EqualValues(t, proposalstate.Accepted, p.state)

	c.InvokeFail(t, grants.ErrInvalidState, "acceptProposal", int64(1))
}

func TestRejectProposal(t *testing.T) {
	c := newGrantsInvoker(t)
	gasHash, err := c.Chain.GetNativeContractScriptHash(nativenames.Gas)
	require.NoError(t, err)

	receiver := util.Uint160{0xa1, 0xb2, 0xc3}
	proposer := c.NewAccount(t)
	cProposer := c.WithSigners(proposer)

	cProposer.Invoke(t, int64(1), "createProposal",
		"Storage gateway", "", "", []interface{}{}, []interface{}{int64(100)}, receiver, gasHash)
	cProposer.Invoke(t, int64(2), "createProposal",
		"Monitoring", "", "", []interface{}{}, []interface{}{int64(50)}, receiver, gasHash)

	cProposer.InvokeFail(t, common.ErrAuthorityWitnessFailed, "rejectProposal", int64(1), "spam")
	c.InvokeFail(t, grants.ErrProposalNotFound, "rejectProposal", int64(42), "spam")

	// Rejection of a submitted proposal.
	h := c.Invoke(t, stackitem.Null{}, "rejectProposal", int64(1), "out of scope")
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "RejectProposal", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewBigInteger(big.NewInt(1)),
		stackitem.NewByteArray([]byte("out of scope")),
	}), aer.Events[0].Item)

	p := getProposalRecord(t, c, 1)
	require.EqualValues(t, proposalstate.Rejected, p.state)

	// Rejected state is terminal.
	c.InvokeFail(t, grants.ErrInvalidState, "rejectProposal", int64(1), "again")
	c.InvokeFail(t, grants.ErrInvalidState, "acceptProposal", int64(1))
	c.InvokeFail(t, grants.ErrInvalidState, "completeMilestone", int64(1))

	// Rejection of an accepted proposal.
	c.Invoke(t, stackitem.Null{}, "acceptProposal", int64(2))
	c.Invoke(t, stackitem.Null{}, "rejectProposal", int64(2), "funding stopped")

	p = getProposalRecord(t, c, 2)
	require.EqualValues(t, proposalstate.Rejected, p.state)
}

func TestCompleteMilestone(t *testing.T) {
	c := newGrantsInvoker(t)
	gasHash := fundGrantsContract(t, c, 2000)
	gasInvoker := c.CommitteeInvoker(gasHash)

	receiver := util.Uint160{0xa1, 0xb2, 0xc3}
	proposer := c.NewAccount(t)
	cProposer := c.WithSigners(proposer)

	cProposer.Invoke(t, int64(1), "createProposal",
		"Storage gateway", "", "", []interface{}{}, []interface{}{int64(100), int64(250), int64(650)}, receiver, gasHash)

	// Milestones of a submitted but not accepted proposal cannot be paid.
	c.InvokeFail(t, grants.ErrInvalidState, "completeMilestone", int64(1))

	c.Invoke(t, stackitem.Null{}, "acceptProposal", int64(1))
	cProposer.InvokeFail(t, common.ErrAuthorityWitnessFailed, "completeMilestone", int64(1))

	h := c.Invoke(t, stackitem.Null{}, "completeMilestone", int64(1))
	aer := c.CheckHalt(t, h)
	require.Equal(t, 2, len(aer.Events))
	require.Equal(t, "Transfer", aer.Events[0].Name)
	require.Equal(t, "MilestoneCompleted", aer.Events[1].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewBigInteger(big.NewInt(1)),
		stackitem.NewBigInteger(big.NewInt(1)),
		stackitem.NewBigInteger(big.NewInt(3)),
		stackitem.NewBigInteger(big.NewInt(100)),
		stackitem.NewByteArray(gasHash.BytesBE()),
	}), aer.Events[1].Item)

	gasInvoker.Invoke(t, int64(100), "balanceOf", receiver)

	p := getProposalRecord(t, c, 1)
	require.EqualValues(t, 1, p.current)
	require.EqualValues(t, proposalstate.Accepted, p.state)

	c.Invoke(t, stackitem.Null{}, "completeMilestone", int64(1))
	gasInvoker.Invoke(t, int64(350), "balanceOf", receiver)

	// The last milestone also completes the proposal.
	h = c.Invoke(t, stackitem.Null{}, "completeMilestone", int64(1))
	aer = c.CheckHalt(t, h)
	require.Equal(t, 3, len(aer.Events))
	require.Equal(t, "Transfer", aer.Events[0].Name)
	require.Equal(t, "MilestoneCompleted", aer.Events[1].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewBigInteger(big.NewInt(1)),
		stackitem.NewBigInteger(big.NewInt(3)),
		stackitem.NewBigInteger(big.NewInt(3)),
		stackitem.NewBigInteger(big.NewInt(650)),
		stackitem.NewByteArray(gasHash.BytesBE()),
	}), aer.Events[1].Item)
	require.Equal(t, "CompleteProposal", aer.Events[2].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewBigInteger(big.NewInt(1)),
		stackitem.NewBigInteger(big.NewInt(1000)),
		stackitem.NewByteArray(gasHash.BytesBE()),
	}), aer.Events[2].Item)

	gasInvoker.Invoke(t, int64(1000), "balanceOf", receiver)
	gasInvoker.Invoke(t, int64(1000), "balanceOf", c.Hash)

	p = getProposalRecord(t, c, 1)
	require.EqualValues(t, 3, p.current)
	require.EqualValues(t, proposalstate.Completed, p.state)

	// Completed state is terminal.
	c.InvokeFail(t, grants.ErrInvalidState, "completeMilestone", int64(1))
	c.InvokeFail(t, grants.ErrInvalidState, "rejectProposal", int64(1), "too late")
}

func TestCompleteMilestoneRollback(t *testing.T) {
	t.Run("transfer returns false", func(t *testing.T) {
		c := newGrantsInvoker(t)
		gasHash := fundGrantsContract(t, c, 50) // not enough for the first milestone

		receiver := util.Uint160{0xa1, 0xb2, 0xc3}
		proposer := c.NewAccount(t)
		cProposer := c.WithSigners(proposer)

		cProposer.Invoke(t, int64(1), "createProposal",
			"Storage gateway", "", "", []interface{}{}, []interface{}{int64(100), int64(250)}, receiver, gasHash)
		c.Invoke(t, stackitem.Null{}, "acceptProposal", int64(1))

		c.InvokeFail(t, grants.ErrTransferFailed, "completeMilestone", int64(1))

		p := getProposalRecord(t, c, 1)
		require.EqualValues(t, 0, p.current)
		require.EqualValues(t, proposalstate.Accepted, p.state)

		c.CommitteeInvoker(gasHash).Invoke(t, int64(0), "balanceOf", receiver)
	})

	t.Run("receiver refuses payment", func(t *testing.T) {
		c := newGrantsInvoker(t)
		gasHash := fundGrantsContract(t, c, 2000)

		ctrRefuse := neotest.CompileFile(t, c.CommitteeHash, nep17RefusePath, path.Join(nep17RefusePath, "config.yml"))
		c.DeployContract(t, ctrRefuse, nil)

		proposer := c.NewAccount(t)
		cProposer := c.WithSigners(proposer)

		cProposer.Invoke(t, int64(1), "createProposal",
			"Storage gateway", "", "", []interface{}{}, []interface{}{int64(100)}, ctrRefuse.Hash, gasHash)
		c.Invoke(t, stackitem.Null{}, "acceptProposal", int64(1))

		c.InvokeFail(t, "payments are not accepted", "completeMilestone", int64(1))

		p := getProposalRecord(t, c, 1)
		require.EqualValues(t, 0, p.current)
		require.EqualValues(t, proposalstate.Accepted, p.state)
	})
}

func TestEmergencyPayout(t *testing.T) {
	c := newGrantsInvoker(t)
	gasHash := fundGrantsContract(t, c, 2000)
	gasInvoker := c.CommitteeInvoker(gasHash)

	receiver := util.Uint160{0xa1, 0xb2, 0xc3}
	proposer := c.NewAccount(t)
	cProposer := c.WithSigners(proposer)

	cProposer.Invoke(t, int64(1), "createProposal",
		"Storage gateway", "", "", []interface{}{}, []interface{}{int64(100), int64(250), int64(650)}, receiver, gasHash)

	c.InvokeFail(t, grants.ErrInvalidState, "emergencyPayout", int64(1))

	c.Invoke(t, stackitem.Null{}, "acceptProposal", int64(1))
	cProposer.InvokeFail(t, common.ErrAuthorityWitnessFailed, "emergencyPayout", int64(1))

	// Pay the first milestone the regular way, then everything at once.
	c.Invoke(t, stackitem.Null{}, "completeMilestone", int64(1))

	h := c.Invoke(t, stackitem.Null{}, "emergencyPayout", int64(1))
	aer := c.CheckHalt(t, h)
	require.Equal(t, 2, len(aer.Events))
	require.Equal(t, "Transfer", aer.Events[0].Name)
	require.Equal(t, "CompleteProposal", aer.Events[1].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewBigInteger(big.NewInt(1)),
		stackitem.NewBigInteger(big.NewInt(1000)),
		stackitem.NewByteArray(gasHash.BytesBE()),
	}), aer.Events[1].Item)

	// The event carries the proposal total, the transfer itself moves
	// only the remaining 900.
	gasInvoker.Invoke(t, int64(1000), "balanceOf", receiver)

	p := getProposalRecord(t, c, 1)
	require.EqualValues(t, 3, p.current)
	require.EqualValues(t, proposalstate.Completed, p.state)

	c.InvokeFail(t, grants.ErrInvalidState, "emergencyPayout", int64(1))
}

func TestWithdrawAsset(t *testing.T) {
	c := newGrantsInvoker(t)
	gasHash := fundGrantsContract(t, c, 500)
	gasInvoker := c.CommitteeInvoker(gasHash)

	receiver := util.Uint160{0xfe, 0xed}
	outsider := c.NewAccount(t)

	c.WithSigners(outsider).InvokeFail(t, common.ErrAuthorityWitnessFailed,
		"withdrawAsset", receiver, int64(100), gasHash)
	c.InvokeFail(t, grants.ErrNonPositiveAmount, "withdrawAsset", receiver, int64(0), gasHash)
	c.InvokeFail(t, grants.ErrInvalidReceiver, "withdrawAsset", []byte{1, 2, 3}, int64(100), gasHash)
	c.InvokeFail(t, grants.ErrInsufficientFunds, "withdrawAsset", receiver, int64(10_000), gasHash)

	h := c.Invoke(t, stackitem.Null{}, "withdrawAsset", receiver, int64(200), gasHash)
	aer := c.CheckHalt(t, h)
	require.Equal(t, 2, len(aer.Events))
	require.Equal(t, "Transfer", aer.Events[0].Name)
	require.Equal(t, "Withdraw", aer.Events[1].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(receiver.BytesBE()),
		stackitem.NewBigInteger(big.NewInt(200)),
		stackitem.NewByteArray(gasHash.BytesBE()),
	}), aer.Events[1].Item)

	gasInvoker.Invoke(t, int64(200), "balanceOf", receiver)
	gasInvoker.Invoke(t, int64(300), "balanceOf", c.Hash)

	// Withdrawal does not touch proposal records.
	c.Invoke(t, int64(0), "proposalCount")
}

func TestDeposit(t *testing.T) {
	c := newGrantsInvoker(t)

	gasHash, err := c.Chain.GetNativeContractScriptHash(nativenames.Gas)
	require.NoError(t, err)

	vc := c.CommitteeInvoker(gasHash).WithSigners(c.Validator)
	h := vc.Invoke(t, true, "transfer",
		c.Validator.ScriptHash(), c.Hash, int64(777), nil)

	aer := vc.CheckHalt(t, h)
	require.Equal(t, 2, len(aer.Events))
	require.Equal(t, "Transfer", aer.Events[0].Name)
	require.Equal(t, "Deposit", aer.Events[1].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(c.Validator.ScriptHash().BytesBE()),
		stackitem.NewBigInteger(big.NewInt(777)),
		stackitem.NewByteArray(gasHash.BytesBE()),
	}), aer.Events[1].Item)

	c.CommitteeInvoker(gasHash).Invoke(t, int64(777), "balanceOf", c.Hash)
}

func TestDesignateAuthority(t *testing.T) {
	c := newGrantsInvoker(t)
	gasHash, err := c.Chain.GetNativeContractScriptHash(nativenames.Gas)
	require.NoError(t, err)

	receiver := util.Uint160{0xa1, 0xb2, 0xc3}
	newAuthority := c.NewAccount(t)
	cNew := c.WithSigners(newAuthority)

	cNew.InvokeFail(t, common.ErrAuthorityWitnessFailed, "designateAuthority", newAuthority.ScriptHash())
	c.InvokeFail(t, grants.ErrInvalidAuthority, "designateAuthority", []byte{1, 2, 3})

	h := c.Invoke(t, stackitem.Null{}, "designateAuthority", newAuthority.ScriptHash())
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "DesignateAuthority", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(newAuthority.ScriptHash().BytesBE()),
	}), aer.Events[0].Item)

	c.Invoke(t, stackitem.NewByteArray(newAuthority.ScriptHash().BytesBE()), "authority")

	proposer := c.NewAccount(t)
	c.WithSigners(proposer).Invoke(t, int64(1), "createProposal",
		"Storage gateway", "", "", []interface{}{}, []interface{}{int64(100)}, receiver, gasHash)

	// The previous authority has no access anymore.
	c.InvokeFail(t, common.ErrAuthorityWitnessFailed, "acceptProposal", int64(1))
	cNew.Invoke(t, stackitem.Null{}, "acceptProposal", int64(1))
}

func TestIterateProposals(t *testing.T) {
	c := newGrantsInvoker(t)
	gasHash, err := c.Chain.GetNativeContractScriptHash(nativenames.Gas)
	require.NoError(t, err)

	receiver := util.Uint160{0xa1, 0xb2, 0xc3}
	proposer := c.NewAccount(t)
	cProposer := c.WithSigners(proposer)

	res, err := c.TestInvoke(t, "iterateProposals")
	require.NoError(t, err)
	iter, ok := res.Top().Value().(*storage.Iterator)
	require.True(t, ok)
	require.Empty(t, iteratorToArray(iter))

	for i := int64(1); i <= 3; i++ {
		cProposer.Invoke(t, i, "createProposal",
			"Proposal", "", "", []interface{}{}, []interface{}{int64(100 * i)}, receiver, gasHash)
	}

	res, err = c.TestInvoke(t, "iterateProposals")
	require.NoError(t, err)
	iter, ok = res.Top().Value().(*storage.Iterator)
	require.True(t, ok)

	items := iteratorToArray(iter)
	require.Len(t, items, 3)
	for i, item := range items {
		fields := item.Value().([]stackitem.Item)
		require.EqualValues(t, i+1, fields[0].Value().(*big.Int).Int64())
	}
}
