package proposalstate

// Type is an enumeration for proposal states.
type Type int

// Various proposal states.
const (
	_ Type = iota

	// Proposed stands for proposals that have been submitted but
	// not reviewed yet.
	Proposed

	// Accepted stands for proposals approved for milestone funding.
	Accepted

	// Completed stands for proposals with all milestones paid out.
	// The state is terminal.
	Completed

	// Rejected stands for proposals turned down before or during
	// funding. The state is terminal.
	Rejected
)
