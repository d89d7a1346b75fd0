// Package ghostdagmanager implements the GHOSTDAG/PHANTOM block
// classification engine (spec.md §4.1): selecting a block's selected
// parent, computing its merge set, classifying merge-set blocks blue
// or red under the k-cluster anticone rule, and assembling the
// resulting BlockGHOSTDAGData. compare.go and mergeset.go carry the
// teacher's own selected-parent and merge-set algorithms
// (processes/ghostdagmanager/{compare,mergeset}.go), generalized from
// the teacher's model.DomainHash/model.BlockGHOSTDAGData types to this
// module's externalapi types; this file adds the k-cluster
// classification pass and the top-level AddBlock contract the teacher
// left to be assembled by its BlockProcessor.
package ghostdagmanager

import (
	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/blockrelationstore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/ghostdagdatastore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/dagtopologymanager"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/difficulty"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/work"
)

// Manager runs the GHOSTDAG classification algorithm over blocks as
// they're ingested into the relations graph.
type Manager struct {
	k                  externalapi.KType
	relationStore      *blockrelationstore.Store
	ghostdagDataStore  *ghostdagdatastore.Store
	dagTopologyManager *dagtopologymanager.Manager
}

// New instantiates a GHOSTDAG manager with cluster size k.
func New(
	k externalapi.KType,
	relationStore *blockrelationstore.Store,
	ghostdagDataStore *ghostdagdatastore.Store,
	dagTopologyManager *dagtopologymanager.Manager,
) *Manager {
	return &Manager{
		k:                  k,
		relationStore:      relationStore,
		ghostdagDataStore:  ghostdagDataStore,
		dagTopologyManager: dagTopologyManager,
	}
}

// GenesisData returns the GHOSTDAG data a genesis block is assembled
// with: zero blue score, blue work equal to the genesis block's own
// work from bits, and an all-zero selected parent
// (BlockGHOSTDAGData.IsGenesis's sentinel).
func GenesisData(bits uint32) *externalapi.BlockGHOSTDAGData {
	ownWork := work.FromUint256(difficulty.WorkFromBits(bits))
	return externalapi.NewBlockGHOSTDAGData(
		0,
		ownWork,
		ownWork,
		&externalapi.DomainHash{},
		nil,
		nil,
		make(map[externalapi.DomainHash]uint64),
	)
}

// AddBlock registers blockHash's relations and computes its GHOSTDAG
// data, per the five-step contract in spec.md §4.1:
//  1. select the selected parent among blockHash's direct parents
//  2. compute the merge set: blocks in the past of blockHash but not
//     in the past of the selected parent
//  3. classify each merge-set block blue or red under the k-cluster
//     anticone rule, processing in the topological order mergeSet
//     already returns them in
//  4. assemble blue_score, blue_work and blues_anticone_sizes
//  5. commit relations and GHOSTDAG data
func (gm *Manager) AddBlock(blockHash *externalapi.DomainHash, parents []*externalapi.DomainHash, bits uint32) (*externalapi.BlockGHOSTDAGData, error) {
	ownWork := work.FromUint256(difficulty.WorkFromBits(bits))

	if len(parents) == 0 {
		if err := gm.relationStore.Insert(blockHash, nil); err != nil {
			return nil, err
		}
		data := GenesisData(bits)
		if err := gm.ghostdagDataStore.Insert(blockHash, data); err != nil {
			return nil, err
		}
		return data, nil
	}

	if err := gm.relationStore.Insert(blockHash, parents); err != nil {
		return nil, err
	}

	selectedParent, err := gm.findSelectedParent(parents)
	if err != nil {
		return nil, err
	}
	selectedParentData, err := gm.ghostdagDataStore.Get(selectedParent)
	if err != nil {
		return nil, err
	}

	mergeSet, err := gm.mergeSet(selectedParent, parents)
	if err != nil {
		return nil, err
	}

	blues, reds, anticoneSizes, err := gm.classifyMergeSet(selectedParent, mergeSet)
	if err != nil {
		return nil, err
	}

	blueWork := selectedParentData.BlueWork().Add(ownWork)
	for _, blue := range blues {
		blueData, err := gm.ghostdagDataStore.Get(blue)
		if err != nil {
			return nil, err
		}
		blueWork = blueWork.Add(blueData.OwnWork())
	}

	data := externalapi.NewBlockGHOSTDAGData(
		selectedParentData.BlueScore()+uint64(len(blues))+1,
		blueWork,
		ownWork,
		selectedParent,
		blues,
		reds,
		anticoneSizes,
	)
	if err := gm.ghostdagDataStore.Insert(blockHash, data); err != nil {
		return nil, err
	}
	log.Debug().Stringer("block", blockHash).Uint64("blueScore", data.BlueScore()).
		Int("blues", len(blues)).Int("reds", len(reds)).Msg("added block to GHOSTDAG DAG")
	return data, nil
}
