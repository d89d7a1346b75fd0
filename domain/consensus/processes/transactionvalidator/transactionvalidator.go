// Package transactionvalidator implements the transaction-level
// structural rules and mass accounting spec.md §3/§4.5 place ahead of
// the GHOSTDAG engine: the coinbase predicate, duplicate-input
// rejection, and the per-transaction/per-block mass heuristic.
// Adapted from the teacher's transactionvalidator.go, which carried
// this responsibility behind a DB-backed UTXO/DAA-score lookup and a
// txscript signature-cache pair; script *execution* is out of scope
// here (spec.md §1), so this keeps only the structural and mass rules;
// it performs no signature verification and does not call
// utils/sigcheck.
package transactionvalidator

import (
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/ruleerrors"
)

// Mass weights from spec.md §4.5's placeholder heuristic:
// 100 + 50*|inputs| + 30*|outputs|.
const (
	baseMass       = 100
	massPerInput   = 50
	massPerOutput  = 30
)

// Manager validates transaction structure and accounts transaction
// and block mass.
type Manager struct {
	maxBlockMass uint64
}

// New instantiates a transaction validator bounding blocks to maxBlockMass.
func New(maxBlockMass uint64) *Manager {
	return &Manager{maxBlockMass: maxBlockMass}
}

// IsCoinbase reports whether tx satisfies spec.md §3's coinbase
// predicate: exactly one input whose previous outpoint is the all-zero
// hash, and exactly one output.
func IsCoinbase(tx *externalapi.DomainTransaction) bool {
	if len(tx.Inputs) != 1 || len(tx.Outputs) != 1 {
		return false
	}
	return tx.Inputs[0].PreviousOutpoint.TransactionID.IsZero()
}

// ValidateStructure enforces spec.md §3's transaction invariants: at
// least one input unless the transaction is a coinbase, at least one
// output, and no duplicate (prev_tx_hash, index) among inputs.
func (v *Manager) ValidateStructure(tx *externalapi.DomainTransaction) error {
	if len(tx.Outputs) == 0 {
		return ruleerrors.New(ruleerrors.KindTransactionValidation, "transaction has no outputs")
	}
	if len(tx.Inputs) == 0 && !IsCoinbase(tx) {
		return ruleerrors.New(ruleerrors.KindTransactionValidation, "non-coinbase transaction has no inputs")
	}

	seen := make(map[externalapi.DomainOutpoint]struct{}, len(tx.Inputs))
	for _, input := range tx.Inputs {
		if _, exists := seen[input.PreviousOutpoint]; exists {
			return ruleerrors.New(ruleerrors.KindTransactionValidation,
				"transaction spends outpoint %s more than once", &input.PreviousOutpoint.TransactionID)
		}
		seen[input.PreviousOutpoint] = struct{}{}
	}
	return nil
}

// TransactionMass computes tx's accounted mass under spec.md §4.5's
// placeholder heuristic.
func TransactionMass(tx *externalapi.DomainTransaction) uint64 {
	return baseMass + massPerInput*uint64(len(tx.Inputs)) + massPerOutput*uint64(len(tx.Outputs))
}

// BlockMass sums TransactionMass across transactions.
func BlockMass(transactions []*externalapi.DomainTransaction) uint64 {
	var total uint64
	for _, tx := range transactions {
		total += TransactionMass(tx)
	}
	return total
}

// ValidateBlockMass checks transactions' combined mass against
// maxBlockMass, failing with KindMiningRuleViolation per spec.md
// §4.5's validation pipeline step 2.
func (v *Manager) ValidateBlockMass(transactions []*externalapi.DomainTransaction) error {
	mass := BlockMass(transactions)
	if mass > v.maxBlockMass {
		return ruleerrors.New(ruleerrors.KindMiningRuleViolation,
			"block mass %d exceeds the maximum allowed %d", mass, v.maxBlockMass)
	}
	return nil
}
