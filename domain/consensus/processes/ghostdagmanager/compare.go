package ghostdagmanager

import (
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
)

// findSelectedParent returns the biggest of parentHashes by less.
func (gm *Manager) findSelectedParent(parentHashes []*externalapi.DomainHash) (*externalapi.DomainHash, error) {
	var selectedParent *externalapi.DomainHash
	for _, hash := range parentHashes {
		if selectedParent == nil {
			selectedParent = hash
			continue
		}
		isHashBiggerThanSelectedParent, err := gm.less(selectedParent, hash)
		if err != nil {
			return nil, err
		}
		if isHashBiggerThanSelectedParent {
			selectedParent = hash
		}
	}
	return selectedParent, nil
}

func (gm *Manager) less(blockHashA *externalapi.DomainHash, blockHashB *externalapi.DomainHash) (bool, error) {
	chosenSelectedParent, err := gm.ChooseSelectedParent(blockHashA, blockHashB)
	if err != nil {
		return false, err
	}
	return *chosenSelectedParent == *blockHashB, nil
}

// ChooseSelectedParent returns the biggest of blockHashes by blue score,
// with blue work and then hash as tiebreaks.
func (gm *Manager) ChooseSelectedParent(blockHashes ...*externalapi.DomainHash) (*externalapi.DomainHash, error) {
	selectedParent := blockHashes[0]
	selectedParentGHOSTDAGData, err := gm.ghostdagDataStore.Get(selectedParent)
	if err != nil {
		return nil, err
	}
	for _, blockHash := range blockHashes {
		blockGHOSTDAGData, err := gm.ghostdagDataStore.Get(blockHash)
		if err != nil {
			return nil, err
		}

		if Less(selectedParent, selectedParentGHOSTDAGData, blockHash, blockGHOSTDAGData) {
			selectedParent = blockHash
			selectedParentGHOSTDAGData = blockGHOSTDAGData
		}
	}

	return selectedParent, nil
}

// Less reports whether (blockHashA, ghostdagDataA) is ordered before
// (blockHashB, ghostdagDataB): smaller blue score first, blue work as
// the first tiebreak, hash as the final tiebreak.
func Less(blockHashA *externalapi.DomainHash, ghostdagDataA *externalapi.BlockGHOSTDAGData,
	blockHashB *externalapi.DomainHash, ghostdagDataB *externalapi.BlockGHOSTDAGData) bool {
	if ghostdagDataA.BlueScore() != ghostdagDataB.BlueScore() {
		return ghostdagDataA.BlueScore() < ghostdagDataB.BlueScore()
	}
	switch ghostdagDataA.BlueWork().Cmp(ghostdagDataB.BlueWork()) {
	case -1:
		return true
	case 1:
		return false
	case 0:
		// Ties are broken in favor of the smaller hash.
		return externalapi.Less(blockHashB, blockHashA)
	default:
		panic("BlueWork.Cmp is defined to always return -1/1/0 and nothing else")
	}
}
