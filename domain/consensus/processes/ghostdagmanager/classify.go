package ghostdagmanager

import "github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"

// classifyMergeSet walks mergeSet in the topological order sortMergeSet
// already produced (by blue score, then blue work, then hash, matching
// compare.go's less) and classifies each block blue or red under the
// k-cluster anticone rule: a block is blue iff adding it to the
// tentative blue set keeps its own anticone within that blue set at
// most k, and does not push any already-blue block's anticone count
// past k either.
func (gm *Manager) classifyMergeSet(selectedParent *externalapi.DomainHash, mergeSet []*externalapi.DomainHash) (
	blues []*externalapi.DomainHash, reds []*externalapi.DomainHash, anticoneSizes map[externalapi.DomainHash]uint64, err error) {

	blues = make([]*externalapi.DomainHash, 0, len(mergeSet))
	reds = make([]*externalapi.DomainHash, 0, len(mergeSet))
	anticoneSizes = make(map[externalapi.DomainHash]uint64, len(mergeSet))

	for _, candidate := range mergeSet {
		isBlue, candidateAnticoneSize, updates, err := gm.checkBlueCandidate(blues, anticoneSizes, candidate)
		if err != nil {
			return nil, nil, nil, err
		}
		if !isBlue {
			reds = append(reds, candidate)
			continue
		}
		blues = append(blues, candidate)
		anticoneSizes[*candidate] = candidateAnticoneSize
		for hash, size := range updates {
			anticoneSizes[hash] = size
		}
	}
	return blues, reds, anticoneSizes, nil
}

// checkBlueCandidate reports whether candidate may join the tentative
// blue set, and if so, its anticone size plus the anticone-size
// increments every already-blue block in its anticone picks up.
func (gm *Manager) checkBlueCandidate(
	tentativeBlues []*externalapi.DomainHash,
	anticoneSizes map[externalapi.DomainHash]uint64,
	candidate *externalapi.DomainHash) (isBlue bool, candidateAnticoneSize uint64, updates map[externalapi.DomainHash]uint64, err error) {

	updates = make(map[externalapi.DomainHash]uint64)

	for _, blue := range tentativeBlues {
		inAnticone, err := gm.isInAnticone(candidate, blue)
		if err != nil {
			return false, 0, nil, err
		}
		if !inAnticone {
			continue
		}

		candidateAnticoneSize++
		if candidateAnticoneSize > uint64(gm.k) {
			return false, 0, nil, nil
		}

		blueNewAnticoneSize := anticoneSizes[*blue] + 1
		if blueNewAnticoneSize > uint64(gm.k) {
			return false, 0, nil, nil
		}
		updates[*blue] = blueNewAnticoneSize
	}
	return true, candidateAnticoneSize, updates, nil
}

// isInAnticone reports whether a and b are mutually unreachable: the
// anticone relationship the k-cluster rule is defined over.
func (gm *Manager) isInAnticone(a, b *externalapi.DomainHash) (bool, error) {
	aAncestorOfB, err := gm.dagTopologyManager.IsAncestorOf(a, b)
	if err != nil {
		return false, err
	}
	if aAncestorOfB {
		return false, nil
	}
	bAncestorOfA, err := gm.dagTopologyManager.IsAncestorOf(b, a)
	if err != nil {
		return false, err
	}
	return !bAncestorOfA, nil
}
