package address

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"
)

// MarshalCBOR encodes the address as a CBOR byte string holding its wire representation.
func (a Address) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(a.Bytes())
}

// UnmarshalCBOR decodes an address from a CBOR byte string. An empty byte string decodes to Undef.
func (a *Address) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return errors.Errorf("failed to decode address byte string (%v): %w", err, ErrInvalidPayload)
	}

	if len(raw) == 0 {
		*a = Undef
		return nil
	}

	address, err := NewFromBytes(raw)
	if err != nil {
		return err
	}
	*a = address

	return nil
}

// MarshalText encodes the address in its Testnet textual representation.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an address from its textual representation.
func (a *Address) UnmarshalText(text []byte) error {
	if string(text) == UndefAddressString {
		*a = Undef
		return nil
	}

	address, err := NewFromString(string(text))
	if err != nil {
		return err
	}
	*a = address

	return nil
}

// MarshalJSON encodes the address as a JSON string.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes an address from a JSON string.
func (a *Address) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return errors.Errorf("failed to decode address string (%v): %w", err, ErrInvalidPayload)
	}

	return a.UnmarshalText([]byte(text))
}
