package utxo

import (
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/ruleerrors"
)

// View is an immutable copy-on-write snapshot layered over a base
// Collection plus a pending Diff, used to validate transactions
// without touching the live set (spec.md §4.3).
type View struct {
	base *Collection
	diff *Diff
}

// NewView layers diff over base. Neither is mutated by the view.
func NewView(base *Collection, diff *Diff) *View {
	if diff == nil {
		diff = NewDiff()
	}
	return &View{base: base, diff: diff}
}

// Get looks up outpoint, honoring the overlay diff: a staged removal
// hides a base entry, and a staged addition is visible even if absent
// from base.
func (v *View) Get(outpoint externalapi.DomainOutpoint) (*externalapi.UTXOEntry, bool) {
	if entry, ok := v.diff.ToAdd[outpoint]; ok {
		return entry, true
	}
	if _, removed := v.diff.ToRemove[outpoint]; removed {
		return nil, false
	}
	return v.base.Get(outpoint)
}

// ValidateTransaction checks that every non-coinbase input's outpoint
// is present in the view and that no input is duplicated within the
// transaction. Coinbase transactions bypass the presence check since
// their sole input references the all-zero outpoint by construction.
func (v *View) ValidateTransaction(tx *externalapi.DomainTransaction) error {
	if tx.HasDuplicateInputs() {
		return ruleerrors.New(ruleerrors.KindTransactionValidation,
			"transaction has a duplicate input outpoint")
	}
	if tx.IsCoinbase() {
		return nil
	}
	for _, input := range tx.Inputs {
		if _, ok := v.Get(input.PreviousOutpoint); !ok {
			return ruleerrors.New(ruleerrors.KindUTXONotFound,
				"outpoint %s:%d not found in UTXO view", input.PreviousOutpoint.TransactionID, input.PreviousOutpoint.Index)
		}
	}
	return nil
}
