package grants

import (
	"math/big"

	"github.com/nspcc-dev/grants-contract/contracts/grants/proposalstate"
)

// Possible proposal states in [GrantsProposal].
var (
	// StateProposed is used by submitted proposals awaiting a decision.
	StateProposed = big.NewInt(int64(proposalstate.Proposed))

	// StateAccepted is used by approved proposals with milestone payouts
	// in progress.
	StateAccepted = big.NewInt(int64(proposalstate.Accepted))

	// StateCompleted is used by proposals with all milestones paid out.
	StateCompleted = big.NewInt(int64(proposalstate.Completed))

	// StateRejected is used by declined proposals.
	StateRejected = big.NewInt(int64(proposalstate.Rejected))
)
