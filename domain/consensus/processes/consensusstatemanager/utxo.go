package consensusstatemanager

import (
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/utxo"
)

// AcceptBlockUTXOs folds a newly-accepted block's transactions into
// the virtual UTXO set (spec.md §4.3: UtxoDiff::from_transaction,
// UtxoCollection.apply_diff), one transaction at a time so that a
// conflicting transaction fails without touching the rest of the
// block's outputs. blockDAAScore is recorded on every output entry
// the block's transactions create.
//
// This folds the selected-parent-chain-extension case only; a reorg's
// removed chain would need its diffs unwound in reverse, which the
// Collection/Diff primitives already support (an unwind is itself a
// diff with ToAdd/ToRemove swapped) but which this wiring does not yet
// drive automatically.
func (m *Manager) AcceptBlockUTXOs(transactions []*externalapi.DomainTransaction, blockDAAScore uint64) error {
	for _, tx := range transactions {
		diff := utxo.DiffFromTransaction(tx, blockDAAScore)
		if err := m.utxoSet.ApplyDiff(diff); err != nil {
			return err
		}
	}
	return nil
}
