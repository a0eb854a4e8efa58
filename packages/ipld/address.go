package ipld

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/ledgeraddr/packages/address"
)

// FromAddress returns a Bytes node holding the binary representation of the address.
func FromAddress(a address.Address) Node {
	return Bytes(a.Bytes())
}

// ToAddress parses the address stored in a Bytes node.
func ToAddress(node Node) (address.Address, error) {
	raw, ok := node.AsBytes()
	if !ok {
		return address.Undef, errors.Errorf("expected Bytes node but got %s: %w", node.Kind(), address.ErrInvalidPayload)
	}

	return address.NewFromBytes(raw)
}
