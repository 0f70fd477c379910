/*
Package grants implements Grants contract for N3 compatible networks.

Grants contract tracks funding proposals of a grant program and pays them
out in NEP-17 tokens milestone by milestone. Anyone can submit a proposal
naming a receiver account, a payout asset and a list of milestone amounts.
The grant program authority reviews proposals and either accepts or rejects
them; accepted proposals are paid from the contract custody balance one
milestone at a time, with an emergency route paying everything that remains
in a single transfer. The contract holds custody of any NEP-17 assets
transferred to its address and the authority can withdraw unallocated
custody funds at any time.

Proposal records are never deleted and identifiers are never reused, so the
contract storage together with the emitted notifications forms a complete
history of the grant program.

# Contract notifications

NewProposal notification. This notification is produced when any account
submits a funding proposal.

	NewProposal:
	  - name: id
	    type: Integer
	  - name: receiver
	    type: Hash160
	  - name: amount
	    type: Integer

AcceptProposal notification. This notification is produced when the
authority approves a proposal for milestone funding.

	AcceptProposal:
	  - name: id
	    type: Integer

RejectProposal notification. This notification is produced when the
authority turns a proposal down, before or during funding.

	RejectProposal:
	  - name: id
	    type: Integer
	  - name: reason
	    type: String

MilestoneCompleted notification. This notification is produced when a
milestone payout has been transferred to the proposal receiver.

	MilestoneCompleted:
	  - name: id
	    type: Integer
	  - name: milestone
	    type: Integer
	  - name: milestones
	    type: Integer
	  - name: amount
	    type: Integer
	  - name: asset
	    type: Hash160

CompleteProposal notification. This notification is produced when the last
milestone of a proposal has been paid, either one by one or via the
emergency payout route. The amount is the proposal total.

	CompleteProposal:
	  - name: id
	    type: Integer
	  - name: amount
	    type: Integer
	  - name: asset
	    type: Hash160

Withdraw notification. This notification is produced when the authority
withdraws assets from the contract custody balance.

	Withdraw:
	  - name: receiver
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: asset
	    type: Hash160

Deposit notification. This notification is produced when any NEP-17 asset
is transferred to the contract address.

	Deposit:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: asset
	    type: Hash160

DesignateAuthority notification. This notification is produced when the
grant program is handed over to another authority account.

	DesignateAuthority:
	  - name: authority
	    type: Hash160
*/
package grants

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'c' -> int
   number of proposals ever submitted
 - 'a' -> interop.Hash160
   script hash of the grant program authority
 - p<id> -> std.Serialize(Proposal)
   proposal records (here Proposal is a structure defined in current package)

# Proposals
Contract stores a record for every proposal ever submitted, including
rejected and completed ones. Records are only appended and updated in
place, never deleted.
*/
