// Package hashes provides the domain-separated hash writers consumed
// by header, transaction, merkle and script hashing. Plain commitments
// (merkle, header, transaction) use double SHA256, matching the
// teacher's hashserialization package; domain-separated hashing for
// capabilities that need to avoid cross-protocol hash collisions (e.g.
// signature digests) use SHA3-256 seeded with a short domain tag, via
// golang.org/x/crypto/sha3.
package hashes

import (
	"crypto/sha256"
	"hash"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"golang.org/x/crypto/sha3"
)

// HashWriter accumulates bytes and finalizes them into a DomainHash.
type HashWriter struct {
	hash.Hash
}

// Write implements io.Writer.
func (h HashWriter) Write(p []byte) (n int, err error) {
	return h.Hash.Write(p)
}

// Finalize returns the final hash.
func (h HashWriter) Finalize() externalapi.DomainHash {
	var sum externalapi.DomainHash
	h.Hash.Sum(sum[:0])
	return sum
}

// NewHashWriter returns a HashWriter for a single SHA256 pass.
func NewHashWriter() HashWriter {
	return HashWriter{Hash: sha256.New()}
}

// doubleHashWriter buffers writes and double-hashes on Finalize. SHA256
// doesn't allow restarting mid-stream without buffering, so unlike
// HashWriter this accumulates into memory.
type doubleHashWriter struct {
	buf []byte
}

// Write implements io.Writer.
func (w *doubleHashWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// Finalize returns SHA256(SHA256(data)).
func (w *doubleHashWriter) Finalize() externalapi.DomainHash {
	first := sha256.Sum256(w.buf)
	second := sha256.Sum256(first[:])
	return externalapi.DomainHash(second)
}

// NewDoubleHashWriter returns a writer that double-SHA256-hashes
// everything written to it, used for header and transaction hashing.
func NewDoubleHashWriter() *doubleHashWriter {
	return &doubleHashWriter{}
}

// HashData double-SHA256-hashes a single byte slice.
func HashData(data []byte) externalapi.DomainHash {
	w := NewDoubleHashWriter()
	_, _ = w.Write(data)
	return w.Finalize()
}

// DomainSeparatedHash hashes data using SHA3-256 seeded with domain, a
// short ASCII tag identifying the calling context (e.g. "header",
// "transaction", "merkle", "script"). This keeps hashes computed for
// different purposes from colliding even on identical byte inputs.
func DomainSeparatedHash(domain string, data []byte) externalapi.DomainHash {
	h := sha3.New256()
	_, _ = h.Write([]byte(domain))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(data)
	var sum externalapi.DomainHash
	h.Sum(sum[:0])
	return sum
}

// ToBig returns the hash interpreted as a big-endian unsigned integer,
// for comparing against a proof-of-work target. The raw hash bytes are
// treated as a little-endian number (matching the reversed-hex display
// convention), so they are reversed before the big.Int is built.
func ToBig(hash *externalapi.DomainHash) *big.Int {
	reversed := make([]byte, externalapi.DomainHashSize)
	for i, b := range hash {
		reversed[externalapi.DomainHashSize-1-i] = b
	}
	return new(big.Int).SetBytes(reversed)
}

// ToUint256 is ToBig's counterpart for the proof-of-work path, which
// compares hashes against compact-target bits decoded into a
// github.com/holiman/uint256 value (see utils/difficulty).
func ToUint256(hash *externalapi.DomainHash) *uint256.Int {
	reversed := make([]byte, externalapi.DomainHashSize)
	for i, b := range hash {
		reversed[externalapi.DomainHashSize-1-i] = b
	}
	return new(uint256.Int).SetBytes(reversed)
}
