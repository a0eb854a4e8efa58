package address

import (
	"bytes"

	"golang.org/x/crypto/blake2b"
)

// Checksum returns the ChecksumHashLength bytes long BLAKE2b digest of data.
func Checksum(data []byte) []byte {
	return hash(data, ChecksumHashLength)
}

// ValidateChecksum returns true if expected is the checksum of data.
func ValidateChecksum(data, expected []byte) bool {
	return bytes.Equal(Checksum(data), expected)
}

// addressHash returns the PayloadHashLength bytes long BLAKE2b digest used as payload of SECP256K1 and Actor
// addresses.
func addressHash(data []byte) (digest [PayloadHashLength]byte) {
	copy(digest[:], hash(data, PayloadHashLength))

	return digest
}

func hash(data []byte, size int) []byte {
	h, err := blake2b.New(size, nil)
	if err != nil {
		// only reachable with a size outside of [1, 64]
		panic(err)
	}
	h.Write(data)

	return h.Sum(nil)
}
