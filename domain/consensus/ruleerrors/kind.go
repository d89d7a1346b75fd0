// Package ruleerrors implements the flat error taxonomy surfaced by the
// consensus core (spec.md §7). Every consensus-facing error carries a
// Kind so callers can branch on error class without string matching,
// while github.com/pkg/errors.Wrap still layers human-readable context
// the way the rest of the corpus does.
package ruleerrors

// Kind identifies the class of a consensus error.
type Kind int

// Error kinds, grouped as in spec.md §7.
const (
	// Structural
	KindBlockHashMismatch Kind = iota
	KindInvalidBlockHeader
	KindMerkleRootMismatch

	// Transaction
	KindTransactionValidation
	KindInvalidSignature
	KindScriptValidation
	KindInsufficientFunds

	// UTXO
	KindUTXONotFound
	KindAlreadySpent
	KindDiffApplicationFailed

	// GHOSTDAG
	KindMissingGHOSTDAGData
	KindInvalidSelectedParent
	KindNoValidParent
	KindInvalidAnticone
	KindInvalidKParameter

	// Chain selection
	KindNoTips
	KindNoCommonAncestor

	// Mining
	KindMiningRuleViolation
	KindDAAScoreCalculationFailed

	// Operational
	KindPruning
	KindNetworkProtocol
	KindGeneric
)

var kindNames = map[Kind]string{
	KindBlockHashMismatch:          "BlockHashMismatch",
	KindInvalidBlockHeader:         "InvalidBlockHeader",
	KindMerkleRootMismatch:         "MerkleRootMismatch",
	KindTransactionValidation:      "TransactionValidation",
	KindInvalidSignature:           "InvalidSignature",
	KindScriptValidation:           "ScriptValidation",
	KindInsufficientFunds:          "InsufficientFunds",
	KindUTXONotFound:               "UtxoNotFound",
	KindAlreadySpent:               "AlreadySpent",
	KindDiffApplicationFailed:      "DiffApplicationFailed",
	KindMissingGHOSTDAGData:        "MissingGhostDagData",
	KindInvalidSelectedParent:      "InvalidSelectedParent",
	KindNoValidParent:              "NoValidParent",
	KindInvalidAnticone:            "InvalidAnticone",
	KindInvalidKParameter:          "InvalidKParameter",
	KindNoTips:                     "NoTips",
	KindNoCommonAncestor:           "NoCommonAncestor",
	KindMiningRuleViolation:        "MiningRuleViolation",
	KindDAAScoreCalculationFailed:  "DaaScoreCalculationFailed",
	KindPruning:                    "Pruning",
	KindNetworkProtocol:            "NetworkProtocol",
	KindGeneric:                    "Generic",
}

// String renders the kind's display name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
