// Package pastmediantimemanager computes a block's past median time:
// the median timestamp over a window of its selected-parent chain.
// Block validation does not call it, so no header timestamp is checked
// against it. Adapted from the
// teacher's pastmediantimemanager.go, which drove the same
// windowMedianTimestamp off a DB-backed blockHeaderStore and
// dagTraversalManager.BlueWindow; this keeps that shape against the
// in-memory blockheaderstore and dagtraversalmanager built for this
// tree.
package pastmediantimemanager

import (
	"sort"

	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/blockheaderstore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/dagtraversalmanager"
	"github.com/kaspanet/ghostdag-core/domain/consensus/ruleerrors"
)

// Manager computes past median time over a window of
// 2*timestampDeviationTolerance-1 blocks.
type Manager struct {
	timestampDeviationTolerance uint64
	dagTraversalManager         *dagtraversalmanager.Manager
	blockHeaderStore            *blockheaderstore.Store
}

// New instantiates a past median time manager.
func New(
	timestampDeviationTolerance uint64,
	dagTraversalManager *dagtraversalmanager.Manager,
	blockHeaderStore *blockheaderstore.Store) *Manager {
	return &Manager{
		timestampDeviationTolerance: timestampDeviationTolerance,
		dagTraversalManager:         dagTraversalManager,
		blockHeaderStore:            blockHeaderStore,
	}
}

// PastMedianTime returns the median timestamp of blockHash's
// selected-parent-chain window.
func (pmt *Manager) PastMedianTime(blockHash *externalapi.DomainHash) (int64, error) {
	windowSize := 2*pmt.timestampDeviationTolerance - 1
	window, err := pmt.dagTraversalManager.BlueWindow(blockHash, windowSize)
	if err != nil {
		return 0, err
	}
	return pmt.windowMedianTimestamp(window)
}

func (pmt *Manager) windowMedianTimestamp(window []*externalapi.DomainHash) (int64, error) {
	if len(window) == 0 {
		return 0, ruleerrors.New(ruleerrors.KindGeneric, "cannot calculate median timestamp for an empty block window")
	}

	timestamps := make([]int64, len(window))
	for i, hash := range window {
		header, err := pmt.blockHeaderStore.Header(hash)
		if err != nil {
			return 0, err
		}
		timestamps[i] = header.Timestamp
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })
	return timestamps[len(timestamps)/2], nil
}
