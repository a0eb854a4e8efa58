package address

import (
	"testing"

	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromBytes_Invalid(t *testing.T) {
	padded := func(protocol Protocol, length int) []byte {
		raw := make([]byte, length)
		raw[0] = byte(protocol)
		return raw
	}

	_, err := NewFromBytes([]byte{4, 4, 4})
	assert.ErrorIs(t, err, ErrUnknownProtocol)

	_, err = NewFromBytes([]byte{0})
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = NewFromBytes(nil)
	assert.ErrorIs(t, err, ErrInvalidLength)

	for _, protocol := range []Protocol{SECP256K1, Actor} {
		for _, length := range []int{PayloadHashLength - 1, PayloadHashLength + 1} {
			_, err = NewFromBytes(padded(protocol, length+1))

			var lengthErr InvalidPayloadLengthError
			require.ErrorAs(t, err, &lengthErr)
			assert.Equal(t, length, lengthErr.Length)
			assert.ErrorIs(t, err, ErrInvalidPayloadLength)
		}
	}

	for _, length := range []int{BLSPublicKeyLength - 1, BLSPublicKeyLength + 1} {
		_, err = NewFromBytes(padded(BLS, length+1))

		var lengthErr InvalidBLSLengthError
		require.ErrorAs(t, err, &lengthErr)
		assert.Equal(t, length, lengthErr.Length)
	}
}

func TestNewFromBytes_IDPayload(t *testing.T) {
	// 150 is 0x96 0x01
	address, err := NewFromBytes([]byte{0, 0x96, 0x01})
	require.NoError(t, err)
	assert.Equal(t, NewIDAddress(150), address)

	// non-minimal encodings of 0 and 1
	_, err = NewFromBytes([]byte{0, 0x80, 0x00})
	assert.ErrorIs(t, err, ErrInvalidPayload)
	_, err = NewFromBytes([]byte{0, 0x81, 0x80, 0x00})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	// truncated
	_, err = NewFromBytes([]byte{0, 0x96})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	// trailing bytes
	_, err = NewFromBytes([]byte{0, 0x01, 0x01})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	// overflow
	_, err = NewFromBytes([]byte{0, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	maxID, err := NewFromBytes([]byte{0, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01})
	require.NoError(t, err)
	assert.Equal(t, NewIDAddress(^uint64(0)), maxID)
}

func TestValidatePayload(t *testing.T) {
	assert.NoError(t, ValidatePayload(ID, []byte{0x96, 0x01}))
	assert.ErrorIs(t, ValidatePayload(ID, []byte{0x80, 0x00}), ErrInvalidPayload)
	assert.NoError(t, ValidatePayload(SECP256K1, make([]byte, PayloadHashLength)))
	assert.ErrorIs(t, ValidatePayload(Actor, make([]byte, BLSPublicKeyLength)), ErrInvalidPayloadLength)
	assert.NoError(t, ValidatePayload(BLS, make([]byte, BLSPublicKeyLength)))
	assert.ErrorIs(t, ValidatePayload(BLS, make([]byte, PayloadHashLength)), ErrInvalidBLSLength)
	assert.ErrorIs(t, ValidatePayload(Protocol(4), nil), ErrUnknownProtocol)
}

func TestPayloadLength(t *testing.T) {
	length, variable, err := PayloadLength(ID)
	require.NoError(t, err)
	assert.True(t, variable)
	assert.Equal(t, MaxIDPayloadLength, length)

	for protocol, expected := range map[Protocol]int{SECP256K1: 20, Actor: 20, BLS: 48} {
		length, variable, err = PayloadLength(protocol)
		require.NoError(t, err)
		assert.False(t, variable)
		assert.Equal(t, expected, length)
	}

	for _, b := range []byte{4, 5, 128, 255} {
		_, _, err = PayloadLength(Protocol(b))
		assert.ErrorIs(t, err, ErrUnknownProtocol)

		_, err = ProtocolFromByte(b)
		assert.ErrorIs(t, err, ErrUnknownProtocol)
	}
}

func TestNewFromMarshalUtil(t *testing.T) {
	bls, err := NewBLSAddress(make([]byte, BLSPublicKeyLength))
	require.NoError(t, err)

	addresses := []Address{
		NewIDAddress(0),
		NewSecp256k1Address([]byte("satoshi")),
		NewIDAddress(^uint64(0)),
		NewActorAddress([]byte("nakamoto")),
		bls,
		NewIDAddress(150),
	}

	marshalUtil := marshalutil.New()
	for _, address := range addresses {
		address.AppendTo(marshalUtil)
	}
	marshalUtil.WriteByte(0xAA)

	reader := marshalutil.New(marshalUtil.Bytes())
	for _, expected := range addresses {
		address, err := NewFromMarshalUtil(reader)
		require.NoError(t, err)
		assert.Equal(t, expected, address)
	}

	trailer, err := reader.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0xAA), trailer)

	_, err = NewFromMarshalUtil(reader)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestNewFromMarshalUtil_Truncated(t *testing.T) {
	raw := NewActorAddress([]byte("satoshi")).Bytes()

	_, err := NewFromMarshalUtil(marshalutil.New(raw[:len(raw)-1]))
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = NewFromMarshalUtil(marshalutil.New([]byte{0, 0x96}))
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = NewFromMarshalUtil(marshalutil.New([]byte{9, 0}))
	assert.ErrorIs(t, err, ErrUnknownProtocol)
}
