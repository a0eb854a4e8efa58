package address

import (
	"encoding/binary"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/multiformats/go-varint"
)

// region Protocol /////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// ID represents the address protocol of actor and account IDs assigned by the init actor.
	ID Protocol = iota

	// SECP256K1 represents the address protocol of accounts secured by a secp256k1 public key.
	SECP256K1

	// Actor represents the address protocol of actors derived from their creation seed.
	Actor

	// BLS represents the address protocol of accounts secured by a BLS public key.
	BLS

	// Unknown is returned by the undefined address.
	Unknown = Protocol(255)
)

const (
	// PayloadHashLength defines the hash length taken over addresses using the Actor and SECP256K1 protocols.
	PayloadHashLength = 20

	// BLSPublicKeyLength defines the length of a BLS public key (and of the payload of a BLS address).
	BLSPublicKeyLength = 48

	// ChecksumHashLength defines the hash length used for calculating address checksums.
	ChecksumHashLength = 4

	// MaxIDPayloadLength is the longest minimal uvarint encoding of a uint64.
	MaxIDPayloadLength = 10

	// MaxIDStringLength is the amount of decimal digits of the largest ID.
	MaxIDStringLength = 20

	// MaxAddressStringLength is the max length of an address encoded as a string. It includes the network prefix,
	// the protocol and the base32 encoded BLS public key and checksum.
	MaxAddressStringLength = 2 + 84
)

// Protocol is the discriminator of the different address schemes.
type Protocol byte

// ProtocolFromByte returns the Protocol identified by the given byte.
func ProtocolFromByte(b byte) (Protocol, error) {
	if p := Protocol(b); p.IsKnown() {
		return p, nil
	}

	return Unknown, errors.Wrapf(ErrUnknownProtocol, "protocol byte %d", b)
}

// PayloadLength returns the payload length rule of the Protocol. Fixed length protocols return their length,
// the ID protocol returns variable=true and the longest possible payload.
func PayloadLength(p Protocol) (length int, variable bool, err error) {
	switch p {
	case ID:
		return MaxIDPayloadLength, true, nil
	case SECP256K1, Actor:
		return PayloadHashLength, false, nil
	case BLS:
		return BLSPublicKeyLength, false, nil
	default:
		return 0, false, ErrUnknownProtocol
	}
}

// ValidatePayload checks that payload is a well-formed payload of the given Protocol.
func ValidatePayload(p Protocol, payload []byte) error {
	switch p {
	case ID:
		_, err := decodeID(payload)
		return err
	case SECP256K1, Actor:
		if len(payload) != PayloadHashLength {
			return InvalidPayloadLengthError{Length: len(payload)}
		}
	case BLS:
		if len(payload) != BLSPublicKeyLength {
			return InvalidBLSLengthError{Length: len(payload)}
		}
	default:
		return ErrUnknownProtocol
	}

	return nil
}

// IsKnown returns true if the Protocol is one of the supported address schemes.
func (p Protocol) IsKnown() bool {
	return p <= BLS
}

// String returns a human readable version of the Protocol.
func (p Protocol) String() string {
	switch p {
	case ID:
		return "ID"
	case SECP256K1:
		return "SECP256K1"
	case Actor:
		return "Actor"
	case BLS:
		return "BLS"
	default:
		return "Unknown(" + strconv.Itoa(int(p)) + ")"
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region uvarint helpers //////////////////////////////////////////////////////////////////////////////////////////////

// encodeID returns the minimal uvarint encoding of id.
func encodeID(id uint64) []byte {
	return varint.ToUvarint(id)
}

// decodeID decodes an ID payload. The payload must consist of exactly one minimal uvarint.
func decodeID(payload []byte) (uint64, error) {
	if len(payload) == 0 {
		return 0, ErrInvalidLength
	}

	id, n, err := uvarint(payload)
	if err != nil {
		return 0, err
	}
	if n != len(payload) {
		return 0, errors.Wrapf(ErrInvalidPayload, "%d trailing bytes after ID", len(payload)-n)
	}

	return id, nil
}

// uvarint reads a minimal uvarint from the start of buf and returns the value and the amount of bytes read.
func uvarint(buf []byte) (uint64, int, error) {
	id, n := binary.Uvarint(buf)
	switch {
	case n == 0:
		return 0, 0, errors.Wrap(ErrInvalidPayload, "truncated uvarint")
	case n < 0:
		return 0, 0, errors.Wrap(ErrInvalidPayload, "uvarint overflows uint64")
	case n != varint.UvarintSize(id):
		return 0, 0, errors.Wrap(ErrInvalidPayload, varint.ErrNotMinimal.Error())
	}

	return id, n, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
