// Package hashserialization implements the canonical, content-defining
// byte layouts used to hash headers and transactions (spec.md §3, §6).
// The layout mirrors the teacher's own hashserialization package:
// fixed-width little-endian integers, length-prefixed variable byte
// strings, fields concatenated in struct-declaration order.
package hashserialization

import (
	"encoding/binary"
	"io"

	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/hashes"
	"github.com/pkg/errors"
)

// TransactionHash computes the transaction's canonical, content-defining
// hash: two structurally equal transactions always hash equally.
func TransactionHash(tx *externalapi.DomainTransaction) *externalapi.DomainHash {
	writer := hashes.NewDoubleHashWriter()
	err := serializeTransaction(writer, tx)
	if err != nil {
		// The writer buffers in memory and never fails; any error here
		// indicates a structurally invalid transaction reached hashing,
		// which callers must prevent via validation.
		panic(errors.Wrap(err, "TransactionHash failed for a structurally-invalid transaction"))
	}
	res := writer.Finalize()
	return &res
}

func serializeTransaction(w io.Writer, tx *externalapi.DomainTransaction) error {
	if err := writeUint16(w, tx.Version); err != nil {
		return err
	}

	if err := writeUint64(w, uint64(len(tx.Inputs))); err != nil {
		return err
	}
	for _, input := range tx.Inputs {
		if err := writeTransactionInput(w, input); err != nil {
			return err
		}
	}

	if err := writeUint64(w, uint64(len(tx.Outputs))); err != nil {
		return err
	}
	for _, output := range tx.Outputs {
		if err := writeTxOut(w, output); err != nil {
			return err
		}
	}

	return writeUint32(w, tx.LockTime)
}

func writeTransactionInput(w io.Writer, input *externalapi.DomainTransactionInput) error {
	if err := writeOutpoint(w, &input.PreviousOutpoint); err != nil {
		return err
	}
	if err := writeVarBytes(w, input.SignatureScript); err != nil {
		return err
	}
	return writeUint64(w, input.Sequence)
}

func writeOutpoint(w io.Writer, outpoint *externalapi.DomainOutpoint) error {
	if _, err := w.Write(outpoint.TransactionID[:]); err != nil {
		return err
	}
	return writeUint32(w, outpoint.Index)
}

func writeTxOut(w io.Writer, output *externalapi.DomainTransactionOutput) error {
	if err := writeUint64(w, output.Value); err != nil {
		return err
	}
	return writeVarBytes(w, output.ScriptPublicKey)
}

func writeVarBytes(w io.Writer, data []byte) error {
	if err := writeUint64(w, uint64(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

func writeUint16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}
