package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

var (
	// ErrAuthorityWitnessFailed appears when the method must be
	// called by the grant program authority but was not.
	ErrAuthorityWitnessFailed = "authority witness check failed"
)

// CheckAuthorityWitness checks witness of the passed authority account.
// It panics with ErrAuthorityWitnessFailed message on fail.
func CheckAuthorityWitness(authority []byte) {
	if !runtime.CheckWitness(authority) {
		panic(ErrAuthorityWitnessFailed)
	}
}
