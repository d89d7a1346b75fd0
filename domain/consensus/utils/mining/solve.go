// Package mining adapts the teacher's SolveBlock test helper
// (domain/consensus/utils/mining/solve.go) to the new header shape: it
// brute-forces a header's nonce until the proof-of-work bound from
// spec.md §4.5 is met, so block/validator tests can build blocks that
// pass the PoW check without a real miner.
package mining

import (
	"math"
	"math/rand"

	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/difficulty"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/hashes"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/hashserialization"
)

// SolveHeader increments header's nonce, starting from a random point,
// until its hash meets the target implied by header.Bits.
func SolveHeader(header *externalapi.DomainBlockHeader, rd *rand.Rand) {
	target := difficulty.CompactToTarget(header.Bits)

	for i := rd.Uint64(); i < math.MaxUint64; i++ {
		header.Nonce = i
		hash := hashserialization.HeaderHash(header)
		if difficulty.HashMeetsTarget(hashes.ToUint256(hash), target) {
			return
		}
	}

	panic("exhausted the nonce space without finding a hash under target")
}

// SolveBlock solves block.Header in place.
func SolveBlock(block *externalapi.DomainBlock, rd *rand.Rand) {
	SolveHeader(block.Header, rd)
}
