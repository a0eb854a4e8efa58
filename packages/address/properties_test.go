package address

import (
	"testing"

	"github.com/multiformats/go-varint"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func addressGenerator() *rapid.Generator[Address] {
	return rapid.Custom(func(t *rapid.T) Address {
		switch Protocol(rapid.IntRange(0, 3).Draw(t, "protocol")) {
		case ID:
			return NewIDAddress(rapid.Uint64().Draw(t, "id"))
		case SECP256K1:
			return NewSecp256k1Address(rapid.SliceOf(rapid.Byte()).Draw(t, "publicKey"))
		case Actor:
			return NewActorAddress(rapid.SliceOf(rapid.Byte()).Draw(t, "seed"))
		default:
			address, err := NewBLSAddress(rapid.SliceOfN(rapid.Byte(), BLSPublicKeyLength, BLSPublicKeyLength).Draw(t, "publicKey"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			return address
		}
	})
}

func TestProperties_UvarintRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		id := rapid.Uint64().Draw(t, "id")

		encoded := encodeID(id)
		require.Len(t, encoded, varint.UvarintSize(id))
		require.LessOrEqual(t, len(encoded), MaxIDPayloadLength)

		decoded, err := decodeID(encoded)
		require.NoError(t, err)
		require.Equal(t, id, decoded)
	})
}

func TestProperties_BinaryRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		address := addressGenerator().Draw(t, "address")

		decoded, err := NewFromBytes(address.Bytes())
		require.NoError(t, err)
		require.Equal(t, address, decoded)
		require.Equal(t, address.Protocol(), Protocol(address.Bytes()[0]))
	})
}

func TestProperties_TextRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		address := addressGenerator().Draw(t, "address")
		network := rapid.SampledFrom([]Network{Mainnet, Testnet}).Draw(t, "network")

		text := address.Format(network)
		require.LessOrEqual(t, len(text), MaxAddressStringLength)
		require.Equal(t, network.Prefix(), text[0])

		decoded, err := NewFromString(text)
		require.NoError(t, err)
		require.Equal(t, address, decoded)
	})
}

func TestProperties_CBORRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		address := addressGenerator().Draw(t, "address")

		encoded, err := address.MarshalCBOR()
		require.NoError(t, err)

		var decoded Address
		require.NoError(t, decoded.UnmarshalCBOR(encoded))
		require.Equal(t, address, decoded)
	})
}

func TestProperties_OrderingFollowsBytes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := addressGenerator().Draw(t, "a")
		b := addressGenerator().Draw(t, "b")

		require.Equal(t, a == b, Compare(a, b) == 0)
		require.Equal(t, -Compare(a, b), Compare(b, a))
	})
}
