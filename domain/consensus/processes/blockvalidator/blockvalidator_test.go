package blockvalidator

import (
	"math/rand"
	"testing"

	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/transactionvalidator"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/hashserialization"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/merkle"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/mining"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/work"
)

func buildTestBlock(t *testing.T, parent *externalapi.DomainHash, selectedParent *externalapi.DomainHash) *externalapi.DomainBlock {
	coinbase := &externalapi.DomainTransaction{
		Version: 0,
		Inputs: []*externalapi.DomainTransactionInput{
			{PreviousOutpoint: externalapi.DomainOutpoint{Index: 0xffffffff}},
		},
		Outputs: []*externalapi.DomainTransactionOutput{{Value: 100}},
	}
	txHash := hashserialization.TransactionHash(coinbase)
	root := merkle.CalculateHashMerkleRoot([]*externalapi.DomainHash{txHash})

	header := &externalapi.DomainBlockHeader{
		Version:        0,
		ParentsByLevel: [][]*externalapi.DomainHash{{parent}},
		HashMerkleRoot: root,
		Timestamp:      1,
		Bits:           0x207fffff,
		BlueWork:       work.Zero(),
	}

	block := &externalapi.DomainBlock{
		Header:       header,
		Transactions: []*externalapi.DomainTransaction{coinbase},
		GhostDagData: externalapi.NewBlockGHOSTDAGData(1, work.Zero(), work.Zero(), selectedParent, nil, nil, nil),
	}
	mining.SolveBlock(block, rand.New(rand.NewSource(1)))
	return block
}

// TestValidateBlockAccepts checks that a correctly constructed block
// (merkle root matching, PoW solved, selected parent among the
// header's parents, coinbase at position 0) passes every pipeline step.
func TestValidateBlockAccepts(t *testing.T) {
	v := New(transactionvalidator.New(500000))
	parent := &externalapi.DomainHash{}
	parent[0] = 7

	block := buildTestBlock(t, parent, parent)
	if err := v.ValidateBlock(block, false); err != nil {
		t.Fatalf("ValidateBlock: %+v", err)
	}
}

// TestValidateBlockRejectsBadMerkleRoot checks that a tampered merkle
// root is rejected.
func TestValidateBlockRejectsBadMerkleRoot(t *testing.T) {
	v := New(transactionvalidator.New(500000))
	parent := &externalapi.DomainHash{}
	parent[0] = 7

	block := buildTestBlock(t, parent, parent)
	block.Header.HashMerkleRoot[0] ^= 0xff

	if err := v.ValidateBlock(block, false); err == nil {
		t.Fatalf("expected ValidateBlock to reject a tampered merkle root")
	}
}

// TestValidateBlockRejectsWrongSelectedParent checks that a GhostDagData
// whose selected parent isn't among the header's parents is rejected.
func TestValidateBlockRejectsWrongSelectedParent(t *testing.T) {
	v := New(transactionvalidator.New(500000))
	parent := &externalapi.DomainHash{}
	parent[0] = 7
	other := &externalapi.DomainHash{}
	other[0] = 9

	block := buildTestBlock(t, parent, other)
	if err := v.ValidateBlock(block, false); err == nil {
		t.Fatalf("expected ValidateBlock to reject a selected parent outside the header's parents")
	}
}
