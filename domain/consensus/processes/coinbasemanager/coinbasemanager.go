// Package coinbasemanager implements the coinbase subsidy schedule
// supplementing spec.md's purely-structural coinbase predicate
// (spec.md §3, §4.5 pipeline step 5). Adapted from the teacher's
// coinbasemanager.go's calcBlockSubsidy, which halves a base subsidy
// every subsidyReductionInterval blocks of blue score; this drops the
// teacher's acceptance-data-driven coinbase-transaction-construction
// path (fee aggregation across merge-set blues, payload
// serialization), since building a canonical expected coinbase
// transaction is external mining/template logic, not a consensus rule
// — validation here only checks coinbase position and arity (spec.md
// §4.5 step 5), leaving value correctness as an external template
// concern.
package coinbasemanager

import (
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/transactionvalidator"
	"github.com/kaspanet/ghostdag-core/domain/consensus/ruleerrors"
)

// baseSubsidy is the subsidy paid at blue score zero, halved every
// subsidyReductionInterval blocks thereafter.
const baseSubsidy = 5_000_000_000

// Manager computes the block subsidy schedule and validates a block's
// coinbase placement.
type Manager struct {
	subsidyReductionInterval uint64
}

// New instantiates a coinbase manager halving the subsidy every
// subsidyReductionInterval blocks of blue score.
func New(subsidyReductionInterval uint64) *Manager {
	return &Manager{subsidyReductionInterval: subsidyReductionInterval}
}

// SubsidyForBlueScore returns the coinbase subsidy owed to a block at
// the given blue score: baseSubsidy >> (blueScore / subsidyReductionInterval).
func (c *Manager) SubsidyForBlueScore(blueScore uint64) uint64 {
	if c.subsidyReductionInterval == 0 {
		return baseSubsidy
	}
	shift := blueScore / c.subsidyReductionInterval
	if shift >= 64 {
		return 0
	}
	return baseSubsidy >> shift
}

// ValidateCoinbasePlacement enforces spec.md §4.5 pipeline step 5:
// exactly one coinbase transaction, at position 0; every other
// transaction must be non-coinbase.
func ValidateCoinbasePlacement(transactions []*externalapi.DomainTransaction) error {
	if len(transactions) == 0 {
		return ruleerrors.New(ruleerrors.KindTransactionValidation, "block has no transactions")
	}
	if !transactionvalidator.IsCoinbase(transactions[0]) {
		return ruleerrors.New(ruleerrors.KindTransactionValidation, "first transaction is not a coinbase")
	}
	for _, tx := range transactions[1:] {
		if transactionvalidator.IsCoinbase(tx) {
			return ruleerrors.New(ruleerrors.KindTransactionValidation,
				"coinbase transaction found outside of position 0")
		}
	}
	return nil
}
