package utxo

import (
	"github.com/kaspanet/go-secp256k1"
)

// MuHash is a commutative, invertible multiset hash: folding an
// element in with Add and then folding it out with Remove always
// returns to the prior state. spec.md §4.3 requires the multiplicative
// construction for real deployments (a placeholder XOR hash is only
// acceptable for tests); this wraps go-secp256k1's elliptic-curve
// multiset accumulator, the same primitive the teacher computes over
// its own UTXO set (domain/blockdag.calcMultiset), rather than
// reimplementing the construction over math/big.
type MuHash struct {
	multiset *secp256k1.MultiSet
}

// NewMuHash returns the identity (empty-set) MuHash state.
func NewMuHash() *MuHash {
	return &MuHash{multiset: secp256k1.NewMultiset()}
}

// Clone returns a deep copy of m.
func (m *MuHash) Clone() *MuHash {
	return &MuHash{multiset: m.multiset.Clone()}
}

// Add folds data into the multiset hash.
func (m *MuHash) Add(data []byte) {
	m.multiset.Add(data)
}

// Remove folds data out of the multiset hash. Add followed by Remove
// of the same data restores the prior state exactly.
func (m *MuHash) Remove(data []byte) {
	m.multiset.Remove(data)
}

// Equal returns whether m and other commit to the same multiset.
func (m *MuHash) Equal(other *MuHash) bool {
	if m == nil || other == nil {
		return m == other
	}
	return *m.multiset.Finalize() == *other.multiset.Finalize()
}

// Digest returns the 32-byte commitment over the current state,
// suitable for embedding in a block header's UTXO commitment field.
func (m *MuHash) Digest() [32]byte {
	digest := m.multiset.Finalize()
	return [32]byte(*digest)
}
