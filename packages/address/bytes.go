package address

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/marshalutil"
)

// NewFromBytes unmarshals an address from its wire representation (protocol byte followed by the payload). The
// whole slice has to be consumed.
func NewFromBytes(raw []byte) (Address, error) {
	if len(raw) == 0 {
		return Undef, errors.Wrap(ErrInvalidLength, "missing protocol byte")
	}

	protocol, err := ProtocolFromByte(raw[0])
	if err != nil {
		return Undef, err
	}

	return newFromPayload(protocol, raw[1:])
}

// NewFromMarshalUtil reads a single address from the given MarshalUtil. Unlike NewFromBytes it only consumes the
// bytes that belong to the address, so it can be used to parse addresses embedded in larger structures.
func NewFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Address, error) {
	protocolByte, err := marshalUtil.ReadByte()
	if err != nil {
		return Undef, errors.Errorf("failed to parse protocol (%v): %w", err, ErrInvalidLength)
	}
	protocol, err := ProtocolFromByte(protocolByte)
	if err != nil {
		return Undef, err
	}

	if protocol == ID {
		payload, err := readUvarint(marshalUtil)
		if err != nil {
			return Undef, err
		}

		return newFromPayload(protocol, payload)
	}

	payloadLength, _, err := PayloadLength(protocol)
	if err != nil {
		return Undef, err
	}
	payload, err := marshalUtil.ReadBytes(payloadLength)
	if err != nil {
		return Undef, errors.Errorf("failed to parse %s payload (%v): %w", protocol, err, ErrInvalidLength)
	}

	return newFromPayload(protocol, payload)
}

// newFromPayload creates the address variant of the given protocol after validating the payload.
func newFromPayload(protocol Protocol, payload []byte) (Address, error) {
	if protocol == ID {
		id, err := decodeID(payload)
		if err != nil {
			return Undef, err
		}

		return NewIDAddress(id), nil
	}

	if err := ValidatePayload(protocol, payload); err != nil {
		return Undef, err
	}

	switch protocol {
	case SECP256K1:
		var digest secp256k1Payload
		copy(digest[:], payload)

		return Address{payload: digest}, nil
	case Actor:
		var digest actorPayload
		copy(digest[:], payload)

		return Address{payload: digest}, nil
	default:
		return NewBLSAddress(payload)
	}
}

// readUvarint reads the bytes of one uvarint: every byte up to and including the first one without the continuation
// bit.
func readUvarint(marshalUtil *marshalutil.MarshalUtil) ([]byte, error) {
	payload := make([]byte, 0, MaxIDPayloadLength)
	for len(payload) < MaxIDPayloadLength {
		b, err := marshalUtil.ReadByte()
		if err != nil {
			return nil, errors.Errorf("failed to parse ID payload (%v): %w", err, ErrInvalidLength)
		}
		payload = append(payload, b)

		if b&0x80 == 0 {
			return payload, nil
		}
	}

	return nil, errors.Wrap(ErrInvalidPayload, "uvarint overflows uint64")
}

// AppendTo appends the wire representation of the address to the given MarshalUtil.
func (a Address) AppendTo(marshalUtil *marshalutil.MarshalUtil) *marshalutil.MarshalUtil {
	return marshalUtil.WriteBytes(a.Bytes())
}
