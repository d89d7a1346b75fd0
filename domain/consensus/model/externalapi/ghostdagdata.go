package externalapi

import "github.com/kaspanet/ghostdag-core/domain/consensus/utils/work"

// BlockGHOSTDAGData holds a block's GHOSTDAG-derived verdict: its
// selected parent, merge-set classification and accumulated work, the
// data the chain selector and pruning index are driven by.
type BlockGHOSTDAGData struct {
	blueScore          uint64
	blueWork           *work.BlueWork
	ownWork            *work.BlueWork
	selectedParent     *DomainHash
	mergeSetBlues      []*DomainHash
	mergeSetReds       []*DomainHash
	bluesAnticoneSizes map[DomainHash]uint64
}

// NewBlockGHOSTDAGData builds a BlockGHOSTDAGData from the GHOSTDAG
// engine's computed fields. A genesis block's selectedParent is the
// all-zero hash, the sentinel IsGenesis checks against.
func NewBlockGHOSTDAGData(
	blueScore uint64,
	blueWork *work.BlueWork,
	ownWork *work.BlueWork,
	selectedParent *DomainHash,
	mergeSetBlues []*DomainHash,
	mergeSetReds []*DomainHash,
	bluesAnticoneSizes map[DomainHash]uint64,
) *BlockGHOSTDAGData {
	return &BlockGHOSTDAGData{
		blueScore:          blueScore,
		blueWork:           blueWork,
		ownWork:            ownWork,
		selectedParent:     selectedParent,
		mergeSetBlues:      mergeSetBlues,
		mergeSetReds:       mergeSetReds,
		bluesAnticoneSizes: bluesAnticoneSizes,
	}
}

// BlueScore returns the block's GHOSTDAG blue score.
func (d *BlockGHOSTDAGData) BlueScore() uint64 {
	return d.blueScore
}

// BlueWork returns the block's accumulated blue work: its selected
// parent's blue work plus the block's own work and the own work of
// every merge-set blue.
func (d *BlockGHOSTDAGData) BlueWork() *work.BlueWork {
	return d.blueWork
}

// OwnWork returns the proof-of-work the block itself contributes,
// independent of its ancestry.
func (d *BlockGHOSTDAGData) OwnWork() *work.BlueWork {
	return d.ownWork
}

// SelectedParent returns the block's selected parent.
func (d *BlockGHOSTDAGData) SelectedParent() *DomainHash {
	return d.selectedParent
}

// MergeSetBlues returns the merge-set members classified blue.
func (d *BlockGHOSTDAGData) MergeSetBlues() []*DomainHash {
	return d.mergeSetBlues
}

// MergeSetReds returns the merge-set members classified red.
func (d *BlockGHOSTDAGData) MergeSetReds() []*DomainHash {
	return d.mergeSetReds
}

// BluesAnticoneSizes returns, for every merge-set blue, the size of
// its anticone restricted to the merge set's blues.
func (d *BlockGHOSTDAGData) BluesAnticoneSizes() map[DomainHash]uint64 {
	return d.bluesAnticoneSizes
}

// IsGenesis reports whether this data belongs to the DAG's root: a
// genesis block is assembled with the all-zero hash as its selected
// parent, since it has none.
func (d *BlockGHOSTDAGData) IsGenesis() bool {
	return d.selectedParent.IsZero()
}

// Clone returns a deep copy of d.
func (d *BlockGHOSTDAGData) Clone() *BlockGHOSTDAGData {
	if d == nil {
		return nil
	}

	var blueWork, ownWork *work.BlueWork
	if d.blueWork != nil {
		blueWork = d.blueWork.Clone()
	}
	if d.ownWork != nil {
		ownWork = d.ownWork.Clone()
	}

	anticoneSizes := make(map[DomainHash]uint64, len(d.bluesAnticoneSizes))
	for hash, size := range d.bluesAnticoneSizes {
		anticoneSizes[hash] = size
	}

	return &BlockGHOSTDAGData{
		blueScore:          d.blueScore,
		blueWork:           blueWork,
		ownWork:            ownWork,
		selectedParent:     d.selectedParent.Clone(),
		mergeSetBlues:      CloneHashes(d.mergeSetBlues),
		mergeSetReds:       CloneHashes(d.mergeSetReds),
		bluesAnticoneSizes: anticoneSizes,
	}
}
