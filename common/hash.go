package common

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// HashLength is the expected length of a block hash in bytes.
const HashLength = 32

// Hash represents the 32-byte digest of a block.
type Hash [HashLength]byte

// BytesToHash converts b to a Hash. If b is larger than HashLength, b is
// cropped from the left; if smaller, it is left-padded with zeros.
func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

// HexToHash parses a hex-encoded block hash, with or without the 0x prefix.
// The encoding must describe exactly HashLength bytes.
func HexToHash(s string) (Hash, error) {
	str := strings.TrimPrefix(s, "0x")
	if len(str) != 2*HashLength {
		return Hash{}, fmt.Errorf("invalid hash length: %v", s)
	}
	b, err := hex.DecodeString(str)
	if err != nil {
		return Hash{}, fmt.Errorf("invalid hash encoding: %v", s)
	}
	return BytesToHash(b), nil
}

// Bytes returns the hash as a byte slice.
func (h Hash) Bytes() []byte {
	return h[:]
}

// Hex returns the hex encoding of the hash with the 0x prefix.
func (h Hash) Hex() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (h Hash) String() string {
	return h.Hex()
}

// IsEmpty indicates whether the hash is the zero value.
func (h Hash) IsEmpty() bool {
	return h == Hash{}
}
