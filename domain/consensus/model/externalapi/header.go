package externalapi

import "github.com/kaspanet/ghostdag-core/domain/consensus/utils/work"

// KType defines the size of the GHOSTDAG consensus algorithm's K parameter.
type KType uint8

// DomainBlockHeader holds the fields that define a block independently
// of its body: the fields hashserialization.HeaderHash commits to.
type DomainBlockHeader struct {
	Version        uint16
	ParentsByLevel [][]*DomainHash
	HashMerkleRoot DomainHash
	Timestamp      int64
	Bits           uint32
	Nonce          uint64
	DAAScore       uint64
	BlueScore      uint64
	BlueWork       *work.BlueWork
	PruningPoint   DomainHash
}

// DirectParents returns the header's level-0 (direct) parents, the
// only level the GHOSTDAG engine and chain selector operate over.
func (header *DomainBlockHeader) DirectParents() []*DomainHash {
	if len(header.ParentsByLevel) == 0 {
		return nil
	}
	return header.ParentsByLevel[0]
}

// Clone returns a deep copy of header.
func (header *DomainBlockHeader) Clone() *DomainBlockHeader {
	parentsByLevel := make([][]*DomainHash, len(header.ParentsByLevel))
	for i, level := range header.ParentsByLevel {
		parentsByLevel[i] = CloneHashes(level)
	}

	var blueWork *work.BlueWork
	if header.BlueWork != nil {
		blueWork = header.BlueWork.Clone()
	}

	return &DomainBlockHeader{
		Version:        header.Version,
		ParentsByLevel: parentsByLevel,
		HashMerkleRoot: header.HashMerkleRoot,
		Timestamp:      header.Timestamp,
		Bits:           header.Bits,
		Nonce:          header.Nonce,
		DAAScore:       header.DAAScore,
		BlueScore:      header.BlueScore,
		BlueWork:       blueWork,
		PruningPoint:   header.PruningPoint,
	}
}
