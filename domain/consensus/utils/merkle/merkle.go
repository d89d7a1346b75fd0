// Package merkle computes the binary merkle commitment over a block's
// transaction hashes.
//
// spec.md §4.4 flags the teacher's bisection-based builder
// (`start + (end-start)/2`) as an unresolved inconsistency and requires
// implementations to pick exactly one rule and document it. This
// package keeps the teacher's own array-based construction (see
// nextPowerOfTwo / the "no right child" branch below), which already
// is the canonical duplicate-last-node rule, not the bisection variant
// — see DESIGN.md for the resolution record.
package merkle

import (
	"math"

	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/hashes"
)

// nextPowerOfTwo returns the next highest power of two from a given number if
// it is not already a power of two. This is a helper function used during the
// calculation of a merkle tree.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	if n&(n-1) == 0 {
		return n
	}
	exponent := uint(math.Log2(float64(n))) + 1
	return 1 << exponent
}

// hashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the hash of their concatenation.
func hashMerkleBranches(left, right *externalapi.DomainHash) *externalapi.DomainHash {
	w := hashes.NewDoubleHashWriter()
	_, _ = w.Write(left[:])
	_, _ = w.Write(right[:])
	h := w.Finalize()
	return &h
}

// CalculateHashMerkleRoot calculates the merkle root of a tree over the
// given ordered transaction hashes. An empty sequence yields the
// all-zero hash.
func CalculateHashMerkleRoot(txHashes []*externalapi.DomainHash) externalapi.DomainHash {
	if len(txHashes) == 0 {
		return externalapi.DomainHash{}
	}
	return *merkleRoot(txHashes)
}

// merkleRoot creates a merkle tree from a slice of hashes, and returns its root.
func merkleRoot(hashes []*externalapi.DomainHash) *externalapi.DomainHash {
	if len(hashes) == 1 {
		return hashMerkleBranches(hashes[0], hashes[0])
	}

	nextPoT := nextPowerOfTwo(len(hashes))
	arraySize := nextPoT*2 - 1
	merkles := make([]*externalapi.DomainHash, arraySize)

	for i, hash := range hashes {
		merkles[i] = hash
	}

	offset := nextPoT
	for i := 0; i < arraySize-1; i += 2 {
		switch {
		// When there is no left child node, the parent is nil too.
		case merkles[i] == nil:
			merkles[offset] = nil

		// When there is no right child, the parent is generated by
		// hashing the concatenation of the left child with itself.
		case merkles[i+1] == nil:
			merkles[offset] = hashMerkleBranches(merkles[i], merkles[i])

		// The normal case sets the parent node to the double sha256
		// of the concatenation of the left and right children.
		default:
			merkles[offset] = hashMerkleBranches(merkles[i], merkles[i+1])
		}
		offset++
	}

	return merkles[len(merkles)-1]
}

// ProofStep is one sibling hash on the path from a leaf to the root,
// with a flag identifying which side of the concatenation it sits on.
type ProofStep struct {
	Sibling   externalapi.DomainHash
	IsLeftSib bool
}

// VerifyProof verifies that leaf, combined in order with proof,
// reproduces claimedRoot.
func VerifyProof(leaf externalapi.DomainHash, proof []ProofStep, claimedRoot externalapi.DomainHash) bool {
	current := leaf
	for _, step := range proof {
		if step.IsLeftSib {
			current = *hashMerkleBranches(&step.Sibling, &current)
		} else {
			current = *hashMerkleBranches(&current, &step.Sibling)
		}
	}
	return current == claimedRoot
}
