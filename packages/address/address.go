package address

import (
	"bytes"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/byteutils"
	"github.com/iotaledger/hive.go/stringify"
)

// region Address //////////////////////////////////////////////////////////////////////////////////////////////////////

// Undef is the undefined address. It is the zero value of Address.
var Undef = Address{}

// UndefAddressString is the string used to represent an empty address when encoded to a string.
const UndefAddressString = "<empty>"

// Address is the identifier of an account, an actor or a miner worker. It holds exactly one payload variant of the
// supported protocols and is immutable once created. Addresses are comparable and can be used as map keys.
type Address struct {
	payload payload
}

// NewIDAddress returns an address using the ID protocol.
func NewIDAddress(id uint64) Address {
	return Address{payload: idPayload(id)}
}

// NewSecp256k1Address returns an address using the SECP256K1 protocol. The payload is the hashed public key.
func NewSecp256k1Address(publicKey []byte) Address {
	return Address{payload: secp256k1Payload(addressHash(publicKey))}
}

// NewActorAddress returns an address using the Actor protocol. The payload is the hashed creation seed.
func NewActorAddress(data []byte) Address {
	return Address{payload: actorPayload(addressHash(data))}
}

// NewBLSAddress returns an address using the BLS protocol. The public key is used as payload without hashing.
func NewBLSAddress(publicKey []byte) (Address, error) {
	if len(publicKey) != BLSPublicKeyLength {
		return Undef, InvalidBLSLengthError{Length: len(publicKey)}
	}

	var key blsPayload
	copy(key[:], publicKey)

	return Address{payload: key}, nil
}

// IDFromAddress returns the ID of an address using the ID protocol.
func IDFromAddress(address Address) (uint64, error) {
	id, ok := address.payload.(idPayload)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidPayload, "%s address is not an ID address", address.Protocol())
	}

	return uint64(id), nil
}

// Protocol returns the protocol of the address or Unknown for the undefined address.
func (a Address) Protocol() Protocol {
	if a.payload == nil {
		return Unknown
	}

	return a.payload.protocol()
}

// Payload returns the protocol specific payload of the address (without the protocol byte).
func (a Address) Payload() []byte {
	if a.payload == nil {
		return []byte{}
	}

	return a.payload.bytes()
}

// Bytes returns the wire representation of the address: the protocol byte followed by the payload.
func (a Address) Bytes() []byte {
	if a.payload == nil {
		return []byte{}
	}

	return byteutils.ConcatBytes([]byte{byte(a.payload.protocol())}, a.payload.bytes())
}

// Empty returns true if the address is the undefined address.
func (a Address) Empty() bool {
	return a == Undef
}

// Equals returns true if both addresses use the same protocol and payload.
func (a Address) Equals(other Address) bool {
	return a == other
}

// String returns the textual representation of the address on the Testnet.
func (a Address) String() string {
	return a.Format(Testnet)
}

// GoString returns a human readable version of the address for debug purposes.
func (a Address) GoString() string {
	return stringify.Struct("Address",
		stringify.StructField("Protocol", a.Protocol().String()),
		stringify.StructField("Payload", a.Payload()),
		stringify.StructField("Text", a.String()),
	)
}

// Compare orders addresses lexicographically by protocol and then by payload. The undefined address sorts first.
func Compare(a, b Address) int {
	return bytes.Compare(a.Bytes(), b.Bytes())
}

// Sort sorts the addresses in place according to Compare.
func Sort(addresses []Address) {
	sort.Slice(addresses, func(i, j int) bool {
		return Compare(addresses[i], addresses[j]) < 0
	})
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region payload variants /////////////////////////////////////////////////////////////////////////////////////////////

// payload is the closed set of protocol variants an Address can hold.
type payload interface {
	protocol() Protocol
	bytes() []byte
}

type idPayload uint64

func (i idPayload) protocol() Protocol { return ID }

func (i idPayload) bytes() []byte { return encodeID(uint64(i)) }

type secp256k1Payload [PayloadHashLength]byte

func (s secp256k1Payload) protocol() Protocol { return SECP256K1 }

func (s secp256k1Payload) bytes() []byte { return append([]byte(nil), s[:]...) }

type actorPayload [PayloadHashLength]byte

func (a actorPayload) protocol() Protocol { return Actor }

func (a actorPayload) bytes() []byte { return append([]byte(nil), a[:]...) }

type blsPayload [BLSPublicKeyLength]byte

func (b blsPayload) protocol() Protocol { return BLS }

func (b blsPayload) bytes() []byte { return append([]byte(nil), b[:]...) }

// code contract (make sure the variants implement all required methods)
var (
	_ payload = idPayload(0)
	_ payload = secp256k1Payload{}
	_ payload = actorPayload{}
	_ payload = blsPayload{}
)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
