package utxo

import (
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/hashserialization"
)

// Diff is the atomic unit of UTXO change applied when a block is
// accepted into the virtual chain (spec.md §3 UtxoDiff).
type Diff struct {
	ToAdd    map[externalapi.DomainOutpoint]*externalapi.UTXOEntry
	ToRemove map[externalapi.DomainOutpoint]struct{}
}

// NewDiff returns an empty Diff.
func NewDiff() *Diff {
	return &Diff{
		ToAdd:    make(map[externalapi.DomainOutpoint]*externalapi.UTXOEntry),
		ToRemove: make(map[externalapi.DomainOutpoint]struct{}),
	}
}

// AddEntry stages outpoint/entry for addition.
func (d *Diff) AddEntry(outpoint externalapi.DomainOutpoint, entry *externalapi.UTXOEntry) {
	d.ToAdd[outpoint] = entry
}

// RemoveEntry stages outpoint for removal.
func (d *Diff) RemoveEntry(outpoint externalapi.DomainOutpoint) {
	d.ToRemove[outpoint] = struct{}{}
}

// DiffFromTransaction builds the diff implied by accepting tx at the
// given block DAA score: every input's previous outpoint is removed
// (except for a coinbase, whose input is skipped), and one new entry
// is added for every output (spec.md §4.3).
func DiffFromTransaction(tx *externalapi.DomainTransaction, blockDAAScore uint64) *Diff {
	diff := NewDiff()
	isCoinbase := tx.IsCoinbase()
	if !isCoinbase {
		for _, input := range tx.Inputs {
			diff.ToRemove[input.PreviousOutpoint] = struct{}{}
		}
	}

	txID := hashserialization.TransactionHash(tx)
	for i, output := range tx.Outputs {
		outpoint := externalapi.DomainOutpoint{TransactionID: *txID, Index: uint32(i)}
		diff.ToAdd[outpoint] = externalapi.NewUTXOEntry(output.Value, output.ScriptPublicKey, isCoinbase, blockDAAScore)
	}
	return diff
}
