// Package keccak computes Keccak-256 digests, the hash function used
// throughout the Ethereum ABI and EVM, which predates and differs from
// the NIST SHA-3 standardization (different padding, no domain
// separation suffix).
package keccak

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// Sum256 hashes the concatenation of data and returns the 32-byte
// Keccak-256 digest.
func Sum256(data ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// New returns a fresh Keccak-256 hash.Hash, for callers that want to
// write data incrementally.
func New() hash.Hash {
	return sha3.NewLegacyKeccak256()
}
