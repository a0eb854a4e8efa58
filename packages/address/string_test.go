package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromString_Invalid(t *testing.T) {
	testVectors := []struct {
		input    string
		expected error
	}{
		{input: "Q2gfvuyh7v2sx3patm5k23wdzmhyhtmqctasbr23y", expected: ErrUnknownNetwork},
		{input: "t4gfvuyh7v2sx3patm5k23wdzmhyhtmqctasbr23y", expected: ErrUnknownProtocol},
		{input: "tagfvuyh7v2sx3patm5k23wdzmhyhtmqctasbr23y", expected: ErrUnknownProtocol},
		{input: "t2gfvuyh7v2sx3patm5k23wdzmhyhtmqctasbr24y", expected: ErrInvalidChecksum},
		{input: "t0banananananannnnnnnnn", expected: ErrInvalidLength},
		{input: "t0banananananannnnnnnn", expected: ErrInvalidPayload},
		{input: "t018446744073709551616", expected: ErrInvalidPayload},
		{input: "t0007", expected: ErrInvalidPayload},
		{input: "t0-1", expected: ErrInvalidPayload},
		{input: "t2", expected: ErrInvalidLength},
		{input: "", expected: ErrInvalidLength},
		{input: "t2gfvuyh7v2sx3patm5k23wdzmhyhtmqctasbr2", expected: ErrInvalidLength},
		{input: "t2gfvuyh7v2sx3patm5k23wdzmhyhtmqctasbr23yaaa", expected: ErrInvalidLength},
	}

	for _, testVector := range testVectors {
		_, err := NewFromString(testVector.input)
		assert.ErrorIs(t, err, testVector.expected, testVector.input)
	}
}

func TestNewFromString_Base32Decoding(t *testing.T) {
	testVectors := []struct {
		input    string
		expected string
	}{
		{input: "t2gfvuyh7v2sx3patm1k23wdzmhyhtmqctasbr24y", expected: "invalid symbol at 16"},
		{input: "t2gfvuyh7v2sx3paTm1k23wdzmhyhtmqctasbr24y", expected: "invalid symbol at 14"},
	}

	for _, testVector := range testVectors {
		_, err := NewFromString(testVector.input)

		var decodingErr Base32DecodingError
		require.ErrorAs(t, err, &decodingErr)
		assert.Equal(t, testVector.expected, decodingErr.Message)
		assert.ErrorIs(t, err, ErrBase32Decoding)
	}
}

func TestNewFromString_ChecksumBitFlip(t *testing.T) {
	for _, text := range []string{
		"t15ihq5ibzwki2b4ep2f46avlkrqzhpqgtga7pdrq",
		"t2gfvuyh7v2sx3patm5k23wdzmhyhtmqctasbr23y",
		"t3vvmn62lofvhjd2ugzca6sof2j2ubwok6cj4xxbfzz4yuxfkgobpihhd2thlanmsh3w2ptld2gqkn2jvlss4a",
	} {
		decoded, err := AddressEncoding.DecodeString(text[2:])
		require.NoError(t, err)

		for bit := 0; bit < len(decoded)*8; bit++ {
			flipped := append([]byte(nil), decoded...)
			flipped[bit/8] ^= 1 << (7 - bit%8)

			_, err := NewFromString(text[:2] + AddressEncoding.EncodeToString(flipped))
			assert.ErrorIs(t, err, ErrInvalidChecksum, "%s with bit %d flipped", text, bit)
		}
	}
}

func TestNewFromString_NonCanonicalBase32(t *testing.T) {
	// "y" and "z" only differ in the unused trailing bits of the last symbol
	_, err := NewFromString("t2gfvuyh7v2sx3patm5k23wdzmhyhtmqctasbr23z")

	var decodingErr Base32DecodingError
	require.ErrorAs(t, err, &decodingErr)
	assert.Equal(t, "invalid symbol at 38", decodingErr.Message)
	assert.ErrorIs(t, err, ErrBase32Decoding)

	_, err = NewFromString("t2gfvuyh7v2sx3patm5k23wdzmhyhtmqctasbr23y")
	assert.NoError(t, err)
}

func TestNewFromString_LeadingZeroID(t *testing.T) {
	_, err := NewFromString("t0007")
	assert.ErrorIs(t, err, ErrInvalidPayload)

	address, err := NewFromString("t00")
	require.NoError(t, err)
	assert.Equal(t, NewIDAddress(0), address)
}

func TestFormat_Networks(t *testing.T) {
	address := NewActorAddress([]byte("satoshi"))

	mainnet := address.Format(Mainnet)
	testnet := address.Format(Testnet)
	assert.Equal(t, "f"+testnet[1:], mainnet)

	network, err := NetworkFromString(mainnet)
	require.NoError(t, err)
	assert.Equal(t, Mainnet, network)

	network, err = NetworkFromString(testnet)
	require.NoError(t, err)
	assert.Equal(t, Testnet, network)

	fromMainnet, err := NewFromString(mainnet)
	require.NoError(t, err)
	fromTestnet, err := NewFromString(testnet)
	require.NoError(t, err)
	assert.Equal(t, fromMainnet, fromTestnet)

	_, err = NetworkFromString("x0")
	assert.ErrorIs(t, err, ErrUnknownNetwork)
}

func TestAddress_TextAndJSON(t *testing.T) {
	address := NewIDAddress(1729)

	text, err := address.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "t01729", string(text))

	var fromText Address
	require.NoError(t, fromText.UnmarshalText(text))
	assert.Equal(t, address, fromText)

	jsonBytes, err := address.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"t01729"`, string(jsonBytes))

	var fromJSON Address
	require.NoError(t, fromJSON.UnmarshalJSON(jsonBytes))
	assert.Equal(t, address, fromJSON)

	var undef Address
	require.NoError(t, undef.UnmarshalJSON([]byte(`"<empty>"`)))
	assert.True(t, undef.Empty())

	assert.ErrorIs(t, fromJSON.UnmarshalJSON([]byte(`17`)), ErrInvalidPayload)
	assert.ErrorIs(t, fromJSON.UnmarshalJSON([]byte(`"t4aaa"`)), ErrUnknownProtocol)
}

func TestNetworkFromName(t *testing.T) {
	network, err := NetworkFromName("mainnet")
	require.NoError(t, err)
	assert.Equal(t, Mainnet, network)

	network, err = NetworkFromName("Testnet")
	require.NoError(t, err)
	assert.Equal(t, Testnet, network)
	assert.Equal(t, "testnet", network.String())

	_, err = NetworkFromName("devnet")
	assert.ErrorIs(t, err, ErrUnknownNetwork)
}
