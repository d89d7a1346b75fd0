// Package pruningmanager implements spec.md §4.6's pruning index: a
// pruning_point and the set of hashes behind it that are safe to
// evict. Queries are read-only; the index advertises what may be
// pruned but does not delete anything itself. Adapted from the
// teacher's pruningmanager.go, which coupled pruning-point advancement
// to DB-transaction UTXO-set-commitment validation, acceptance-data
// deletion, and archival-node bookkeeping; all of that eviction
// machinery is external to this index per spec.md §4.6, so this keeps
// only the finality-depth rule (finalityScore, pruningDepth) the
// teacher used to decide where the pruning point may advance to.
package pruningmanager

import (
	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/ghostdagdatastore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/dagtraversalmanager"
	"github.com/kaspanet/ghostdag-core/domain/consensus/ruleerrors"
)

// Manager tracks the current pruning point and the set of hashes
// behind it.
type Manager struct {
	ghostdagDataStore   *ghostdagdatastore.Store
	dagTraversalManager *dagtraversalmanager.Manager

	finalityInterval uint64
	pruningDepth     uint64
	genesisHash      *externalapi.DomainHash

	pruningPoint *externalapi.DomainHash
	pruned       map[externalapi.DomainHash]struct{}
}

// New instantiates a pruning manager whose pruning point starts at
// genesisHash.
func New(
	ghostdagDataStore *ghostdagdatastore.Store,
	dagTraversalManager *dagtraversalmanager.Manager,
	genesisHash *externalapi.DomainHash,
	finalityInterval uint64,
	pruningDepth uint64) *Manager {
	return &Manager{
		ghostdagDataStore:   ghostdagDataStore,
		dagTraversalManager: dagTraversalManager,
		finalityInterval:    finalityInterval,
		pruningDepth:        pruningDepth,
		genesisHash:         genesisHash,
		pruningPoint:        genesisHash,
		pruned:              make(map[externalapi.DomainHash]struct{}),
	}
}

// PruningPoint returns the current pruning point.
func (pm *Manager) PruningPoint() *externalapi.DomainHash {
	return pm.pruningPoint
}

// IsPruned reports whether blockHash has been marked behind the
// pruning point.
func (pm *Manager) IsPruned(blockHash *externalapi.DomainHash) bool {
	_, ok := pm.pruned[*blockHash]
	return ok
}

// finalityScore is the number of finality intervals that have passed
// since genesis at blueScore.
func (pm *Manager) finalityScore(blueScore uint64) uint64 {
	return blueScore / pm.finalityInterval
}

// UpdatePruningPoint advances the pruning point toward
// virtualSelectedParent if a new candidate, at least pruningDepth
// below it on the selected-parent chain, has moved into a later
// finality interval than the current pruning point. Every hash on the
// selected-parent chain strictly behind the new pruning point is
// marked pruned.
func (pm *Manager) UpdatePruningPoint(virtualSelectedParent *externalapi.DomainHash) error {
	virtualGHOSTDAGData, err := pm.ghostdagDataStore.Get(virtualSelectedParent)
	if err != nil {
		return err
	}
	if virtualGHOSTDAGData.BlueScore() < pm.pruningDepth {
		return nil
	}

	candidate, err := pm.dagTraversalManager.HighestChainBlockBelowBlueScore(
		virtualSelectedParent, virtualGHOSTDAGData.BlueScore()-pm.pruningDepth+1)
	if err != nil {
		return err
	}
	if candidate == nil {
		return nil
	}

	candidateGHOSTDAGData, err := pm.ghostdagDataStore.Get(candidate)
	if err != nil {
		return err
	}
	currentGHOSTDAGData, err := pm.ghostdagDataStore.Get(pm.pruningPoint)
	if err != nil {
		return err
	}
	if pm.finalityScore(candidateGHOSTDAGData.BlueScore()) <= pm.finalityScore(currentGHOSTDAGData.BlueScore()) {
		return nil
	}

	it := pm.dagTraversalManager.SelectedParentIterator(candidate)
	if _, err := it.Next(); err != nil {
		return err
	}
	for {
		hash, err := it.Next()
		if err != nil {
			return err
		}
		if hash == nil {
			break
		}
		pm.pruned[*hash] = struct{}{}
		if hash.Equal(pm.pruningPoint) {
			break
		}
	}
	log.Debug().Stringer("from", pm.pruningPoint).Stringer("to", candidate).Msg("moving pruning point")
	pm.pruningPoint = candidate
	return nil
}

// IsValidPruningPoint reports whether blockHash could stand as the
// pruning point against headersSelectedTip: it must sit at least
// pruningDepth blocks below the tip, and must not share its selected
// parent's finality interval.
func (pm *Manager) IsValidPruningPoint(blockHash *externalapi.DomainHash, headersSelectedTip *externalapi.DomainHash) (bool, error) {
	if blockHash.Equal(pm.genesisHash) {
		return true, nil
	}

	ghostdagData, err := pm.ghostdagDataStore.Get(blockHash)
	if err != nil {
		return false, err
	}
	tipGHOSTDAGData, err := pm.ghostdagDataStore.Get(headersSelectedTip)
	if err != nil {
		return false, err
	}
	if tipGHOSTDAGData.BlueScore() < ghostdagData.BlueScore() ||
		tipGHOSTDAGData.BlueScore()-ghostdagData.BlueScore() < pm.pruningDepth {
		return false, nil
	}

	selectedParent := ghostdagData.SelectedParent()
	if selectedParent == nil {
		return false, ruleerrors.New(ruleerrors.KindPruning, "pruning point candidate %s has no selected parent", blockHash)
	}
	selectedParentGHOSTDAGData, err := pm.ghostdagDataStore.Get(selectedParent)
	if err != nil {
		return false, err
	}
	return pm.finalityScore(ghostdagData.BlueScore()) != pm.finalityScore(selectedParentGHOSTDAGData.BlueScore()), nil
}
