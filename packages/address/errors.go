package address

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrUnknownNetwork is returned when encountering an unknown network in an address.
	ErrUnknownNetwork = errors.New("unknown address network")

	// ErrUnknownProtocol is returned when encountering an unknown protocol in an address.
	ErrUnknownProtocol = errors.New("unknown address protocol")

	// ErrInvalidPayload is returned when encountering an invalid address payload.
	ErrInvalidPayload = errors.New("invalid address payload")

	// ErrInvalidLength is returned when encountering an address of invalid length.
	ErrInvalidLength = errors.New("invalid address length")

	// ErrInvalidChecksum is returned when encountering an invalid address checksum.
	ErrInvalidChecksum = errors.New("invalid address checksum")

	// ErrInvalidPayloadLength is matched by every InvalidPayloadLengthError.
	ErrInvalidPayloadLength = errors.New("invalid payload length")

	// ErrInvalidBLSLength is matched by every InvalidBLSLengthError.
	ErrInvalidBLSLength = errors.New("invalid BLS public key length")

	// ErrBase32Decoding is matched by every Base32DecodingError.
	ErrBase32Decoding = errors.New("base32 decoding failed")
)

// InvalidPayloadLengthError is returned when a SECP256K1 or Actor payload does not have PayloadHashLength bytes.
type InvalidPayloadLengthError struct {
	Length int
}

func (e InvalidPayloadLengthError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalidPayloadLength, e.Length)
}

func (e InvalidPayloadLengthError) Unwrap() error {
	return ErrInvalidPayloadLength
}

// InvalidBLSLengthError is returned when a BLS public key does not have BLSPublicKeyLength bytes.
type InvalidBLSLengthError struct {
	Length int
}

func (e InvalidBLSLengthError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalidBLSLength, e.Length)
}

func (e InvalidBLSLengthError) Unwrap() error {
	return ErrInvalidBLSLength
}

// Base32DecodingError is returned when the body of a textual address is not valid base32. Message names the index
// of the offending character within the body.
type Base32DecodingError struct {
	Message string
}

func (e Base32DecodingError) Error() string {
	return fmt.Sprintf("%s: %s", ErrBase32Decoding, e.Message)
}

func (e Base32DecodingError) Unwrap() error {
	return ErrBase32Decoding
}
