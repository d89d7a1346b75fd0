package externalapi

// DomainTransactionInput is a domain representation of a transaction input
type DomainTransactionInput struct {
	PreviousOutpoint DomainOutpoint
	SignatureScript  []byte
	Sequence         uint64
}

// Clone returns a deep copy of input.
func (input *DomainTransactionInput) Clone() *DomainTransactionInput {
	signatureScriptClone := make([]byte, len(input.SignatureScript))
	copy(signatureScriptClone, input.SignatureScript)

	return &DomainTransactionInput{
		PreviousOutpoint: *input.PreviousOutpoint.Clone(),
		SignatureScript:  signatureScriptClone,
		Sequence:         input.Sequence,
	}
}

// DomainTransactionOutput is a domain representation of a transaction output
type DomainTransactionOutput struct {
	Value           uint64
	ScriptPublicKey []byte
}

// Clone returns a deep copy of output.
func (output *DomainTransactionOutput) Clone() *DomainTransactionOutput {
	scriptPublicKeyClone := make([]byte, len(output.ScriptPublicKey))
	copy(scriptPublicKeyClone, output.ScriptPublicKey)

	return &DomainTransactionOutput{
		Value:           output.Value,
		ScriptPublicKey: scriptPublicKeyClone,
	}
}

// DomainOutpoint is a domain representation of the outpoint/utxo of a transaction.
type DomainOutpoint struct {
	TransactionID DomainHash
	Index         uint32
}

// Clone returns a deep copy of outpoint.
func (outpoint *DomainOutpoint) Clone() *DomainOutpoint {
	return &DomainOutpoint{
		TransactionID: outpoint.TransactionID,
		Index:         outpoint.Index,
	}
}

// DomainTransaction represents a kaspa transaction
type DomainTransaction struct {
	Version  uint16
	Inputs   []*DomainTransactionInput
	Outputs  []*DomainTransactionOutput
	LockTime uint32
}

// IsCoinbase reports whether tx is a coinbase transaction: exactly one
// input whose previous outpoint is the all-zero hash, and exactly one
// output.
func (tx *DomainTransaction) IsCoinbase() bool {
	if len(tx.Inputs) != 1 || len(tx.Outputs) != 1 {
		return false
	}
	return tx.Inputs[0].PreviousOutpoint.TransactionID.IsZero()
}

// HasDuplicateInputs reports whether tx spends the same previous
// outpoint more than once.
func (tx *DomainTransaction) HasDuplicateInputs() bool {
	seen := make(map[DomainOutpoint]struct{}, len(tx.Inputs))
	for _, input := range tx.Inputs {
		if _, exists := seen[input.PreviousOutpoint]; exists {
			return true
		}
		seen[input.PreviousOutpoint] = struct{}{}
	}
	return false
}

// Clone returns a deep copy of tx.
func (tx *DomainTransaction) Clone() *DomainTransaction {
	inputs := make([]*DomainTransactionInput, len(tx.Inputs))
	for i, input := range tx.Inputs {
		inputs[i] = input.Clone()
	}

	outputs := make([]*DomainTransactionOutput, len(tx.Outputs))
	for i, output := range tx.Outputs {
		outputs[i] = output.Clone()
	}

	return &DomainTransaction{
		Version:  tx.Version,
		Inputs:   inputs,
		Outputs:  outputs,
		LockTime: tx.LockTime,
	}
}
