package address

import (
	"encoding/base32"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// region Network //////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// Mainnet is the main network, its addresses start with MainnetPrefix.
	Mainnet Network = iota

	// Testnet is the test network, its addresses start with TestnetPrefix.
	Testnet
)

const (
	// MainnetPrefix is the first character of textual mainnet addresses.
	MainnetPrefix = 'f'

	// TestnetPrefix is the first character of textual testnet addresses.
	TestnetPrefix = 't'
)

// Network selects the prefix of textual addresses. It is never stored inside an Address.
type Network byte

// ParseNetwork returns the Network identified by the given prefix character.
func ParseNetwork(prefix byte) (Network, error) {
	switch prefix {
	case MainnetPrefix:
		return Mainnet, nil
	case TestnetPrefix:
		return Testnet, nil
	default:
		return 0, errors.Wrapf(ErrUnknownNetwork, "prefix %q", prefix)
	}
}

// NetworkFromString returns the Network of a textual address.
func NetworkFromString(text string) (Network, error) {
	if len(text) == 0 {
		return 0, ErrInvalidLength
	}

	return ParseNetwork(text[0])
}

// Prefix returns the character that textual addresses of the Network start with.
func (n Network) Prefix() byte {
	if n == Mainnet {
		return MainnetPrefix
	}

	return TestnetPrefix
}

// String returns a human readable version of the Network.
func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	default:
		return "Network(" + strconv.Itoa(int(n)) + ")"
	}
}

// NetworkFromName returns the Network with the given name ("mainnet" or "testnet").
func NetworkFromName(name string) (Network, error) {
	switch strings.ToLower(name) {
	case "mainnet":
		return Mainnet, nil
	case "testnet":
		return Testnet, nil
	default:
		return 0, errors.Wrapf(ErrUnknownNetwork, "network %q", name)
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region textual codec ////////////////////////////////////////////////////////////////////////////////////////////////

const encodeStd = "abcdefghijklmnopqrstuvwxyz234567"

// AddressEncoding defines the base32 config used for address encoding and decoding.
var AddressEncoding = base32.NewEncoding(encodeStd).WithPadding(base32.NoPadding)

// Format returns the textual representation of the address on the given Network.
func (a Address) Format(network Network) string {
	if a.payload == nil {
		return UndefAddressString
	}

	var builder strings.Builder
	builder.WriteByte(network.Prefix())
	builder.WriteString(strconv.Itoa(int(a.Protocol())))

	switch p := a.payload.(type) {
	case idPayload:
		builder.WriteString(strconv.FormatUint(uint64(p), 10))
	default:
		builder.WriteString(AddressEncoding.EncodeToString(append(p.bytes(), Checksum(a.Bytes())...)))
	}

	return builder.String()
}

// NewFromString parses the textual representation of an address. The network prefix is validated but not kept.
// ID bodies have to be canonical decimals: leading zeros (e.g. "t0007") are rejected with ErrInvalidPayload.
func NewFromString(text string) (Address, error) {
	if len(text) < 3 || len(text) > MaxAddressStringLength {
		return Undef, errors.Wrapf(ErrInvalidLength, "%d characters", len(text))
	}

	if _, err := ParseNetwork(text[0]); err != nil {
		return Undef, err
	}

	if text[1] < '0' || text[1] > '9' {
		return Undef, errors.Wrapf(ErrUnknownProtocol, "protocol %q", text[1])
	}
	protocol, err := ProtocolFromByte(text[1] - '0')
	if err != nil {
		return Undef, err
	}

	body := text[2:]
	if protocol == ID {
		return parseIDBody(body)
	}

	return parseHashedBody(protocol, body)
}

func parseIDBody(body string) (Address, error) {
	if len(body) > MaxIDStringLength {
		return Undef, errors.Wrapf(ErrInvalidLength, "ID with %d digits", len(body))
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return Undef, errors.Wrapf(ErrInvalidPayload, "non-digit %q in ID", body[i])
		}
	}
	if len(body) > 1 && body[0] == '0' {
		return Undef, errors.Wrap(ErrInvalidPayload, "leading zero in ID")
	}

	id, err := strconv.ParseUint(body, 10, 64)
	if err != nil {
		return Undef, errors.Wrapf(ErrInvalidPayload, "failed to parse ID: %s", err)
	}

	return NewIDAddress(id), nil
}

func parseHashedBody(protocol Protocol, body string) (Address, error) {
	for i := 0; i < len(body); i++ {
		if strings.IndexByte(encodeStd, body[i]) < 0 {
			return Undef, Base32DecodingError{Message: fmt.Sprintf("invalid symbol at %d", i)}
		}
	}

	decoded, err := AddressEncoding.DecodeString(body)
	if err != nil {
		return Undef, Base32DecodingError{Message: err.Error()}
	}
	// the unused trailing bits of the last symbol have to be zero
	if AddressEncoding.EncodeToString(decoded) != body {
		return Undef, Base32DecodingError{Message: fmt.Sprintf("invalid symbol at %d", len(body)-1)}
	}

	payloadLength, _, err := PayloadLength(protocol)
	if err != nil {
		return Undef, err
	}
	if len(decoded) != payloadLength+ChecksumHashLength {
		return Undef, errors.Wrapf(ErrInvalidLength, "decoded %d bytes for %s address", len(decoded), protocol)
	}

	raw := make([]byte, 0, 1+payloadLength)
	raw = append(raw, byte(protocol))
	raw = append(raw, decoded[:payloadLength]...)
	if !ValidateChecksum(raw, decoded[payloadLength:]) {
		return Undef, ErrInvalidChecksum
	}

	return NewFromBytes(raw)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
