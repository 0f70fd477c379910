package nep17refuse

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
)

// OnNEP17Payment rejects every inbound NEP-17 transfer. Any token transfer
// to this contract address faults the transferring transaction as a whole.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	panic("payments are not accepted")
}

func Verify() bool {
	return true
}
