package hashserialization

import (
	"encoding/binary"
	"io"

	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/hashes"
	"github.com/pkg/errors"
)

// blueWorkEncodedSize is the fixed width (in bytes) the header wire
// format reserves for blue work (spec.md §6): 24 bytes little-endian,
// i.e. 192 bits.
const blueWorkEncodedSize = 24

// HeaderHash computes the header's hash deterministically over every
// field, nonce included, following the wire layout fixed in spec.md §6:
// version ‖ parent-count ‖ per-level counts and hashes ‖ merkle_root ‖
// timestamp ‖ bits ‖ nonce ‖ daa_score ‖ blue_score ‖ blue_work ‖
// pruning_point.
func HeaderHash(header *externalapi.DomainBlockHeader) *externalapi.DomainHash {
	writer := hashes.NewDoubleHashWriter()
	err := serializeHeader(writer, header, header.Nonce)
	if err != nil {
		panic(errors.Wrap(err, "HeaderHash failed for a structurally-invalid header"))
	}
	res := writer.Finalize()
	return &res
}

// HashWithNonce computes the header's hash as if its nonce field were
// trialNonce, without mutating the header. It is the mining-loop
// primitive: Header.HashWithNonce(n) always equals the hash of a clone
// of the header with Nonce set to n.
func HashWithNonce(header *externalapi.DomainBlockHeader, trialNonce uint64) *externalapi.DomainHash {
	writer := hashes.NewDoubleHashWriter()
	err := serializeHeader(writer, header, trialNonce)
	if err != nil {
		panic(errors.Wrap(err, "HashWithNonce failed for a structurally-invalid header"))
	}
	res := writer.Finalize()
	return &res
}

func serializeHeader(w io.Writer, header *externalapi.DomainBlockHeader, nonce uint64) error {
	if err := writeUint16(w, header.Version); err != nil {
		return err
	}

	if err := writeUint32(w, uint32(len(header.ParentsByLevel))); err != nil {
		return err
	}
	for _, level := range header.ParentsByLevel {
		if err := writeUint32(w, uint32(len(level))); err != nil {
			return err
		}
		for _, parent := range level {
			if _, err := w.Write(parent[:]); err != nil {
				return err
			}
		}
	}

	if _, err := w.Write(header.HashMerkleRoot[:]); err != nil {
		return err
	}

	var timestampBuf [8]byte
	binary.LittleEndian.PutUint64(timestampBuf[:], uint64(header.Timestamp))
	if _, err := w.Write(timestampBuf[:]); err != nil {
		return err
	}

	if err := writeUint32(w, header.Bits); err != nil {
		return err
	}

	if err := writeUint64(w, nonce); err != nil {
		return err
	}

	if err := writeUint64(w, header.DAAScore); err != nil {
		return err
	}

	if err := writeUint64(w, header.BlueScore); err != nil {
		return err
	}

	blueWorkBuf := make([]byte, blueWorkEncodedSize)
	if header.BlueWork != nil {
		trimmed := header.BlueWork.BigEndianTrimmed()
		// trimmed is big-endian; re-express little-endian into the
		// fixed-width field by writing it reversed from byte 0, leaving
		// the zero padding at the end.
		for i := 0; i < len(trimmed) && i < blueWorkEncodedSize; i++ {
			blueWorkBuf[i] = trimmed[len(trimmed)-1-i]
		}
	}
	if _, err := w.Write(blueWorkBuf); err != nil {
		return err
	}

	_, err := w.Write(header.PruningPoint[:])
	return err
}
