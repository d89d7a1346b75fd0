package ghostdagmanager

import (
	"testing"

	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/blockrelationstore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/ghostdagdatastore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/dagtopologymanager"
)

func hashFromByte(b byte) *externalapi.DomainHash {
	hash := externalapi.DomainHash{}
	hash[0] = b
	return &hash
}

func newTestManager(k externalapi.KType) *Manager {
	relationStore := blockrelationstore.New()
	ghostdagDataStore := ghostdagdatastore.New()
	topologyManager := dagtopologymanager.New(relationStore, ghostdagDataStore)
	return New(k, relationStore, ghostdagDataStore, topologyManager)
}

// TestAddBlockGenesis checks that a parentless block gets zero blue
// score and is marked as genesis.
func TestAddBlockGenesis(t *testing.T) {
	gm := newTestManager(3)
	genesisHash := hashFromByte(1)

	data, err := gm.AddBlock(genesisHash, nil, 0x207fffff)
	if err != nil {
		t.Fatalf("AddBlock: %+v", err)
	}
	if data.BlueScore() != 0 {
		t.Fatalf("expected blue score 0, got %d", data.BlueScore())
	}
	if !data.IsGenesis() {
		t.Fatalf("expected genesis data to report IsGenesis")
	}
}

// TestAddBlockChain checks that a simple chain accrues blue score one
// per block, with every ancestor classified blue.
func TestAddBlockChain(t *testing.T) {
	gm := newTestManager(3)
	genesisHash := hashFromByte(1)
	if _, err := gm.AddBlock(genesisHash, nil, 0x207fffff); err != nil {
		t.Fatalf("AddBlock genesis: %+v", err)
	}

	blockA := hashFromByte(2)
	dataA, err := gm.AddBlock(blockA, []*externalapi.DomainHash{genesisHash}, 0x207fffff)
	if err != nil {
		t.Fatalf("AddBlock A: %+v", err)
	}
	if dataA.BlueScore() != 1 {
		t.Fatalf("expected blue score 1, got %d", dataA.BlueScore())
	}
	if !dataA.SelectedParent().Equal(genesisHash) {
		t.Fatalf("expected selected parent to be genesis")
	}

	blockB := hashFromByte(3)
	dataB, err := gm.AddBlock(blockB, []*externalapi.DomainHash{blockA}, 0x207fffff)
	if err != nil {
		t.Fatalf("AddBlock B: %+v", err)
	}
	if dataB.BlueScore() != 2 {
		t.Fatalf("expected blue score 2, got %d", dataB.BlueScore())
	}
}

// TestAddBlockMergesSiblingAsBlue checks that merging a sibling block
// under a permissive k classifies it blue and folds it into the blue
// score and merge set.
func TestAddBlockMergesSiblingAsBlue(t *testing.T) {
	gm := newTestManager(3)
	genesisHash := hashFromByte(1)
	if _, err := gm.AddBlock(genesisHash, nil, 0x207fffff); err != nil {
		t.Fatalf("AddBlock genesis: %+v", err)
	}

	blockA := hashFromByte(2)
	if _, err := gm.AddBlock(blockA, []*externalapi.DomainHash{genesisHash}, 0x207fffff); err != nil {
		t.Fatalf("AddBlock A: %+v", err)
	}
	blockB := hashFromByte(3)
	if _, err := gm.AddBlock(blockB, []*externalapi.DomainHash{genesisHash}, 0x207fffff); err != nil {
		t.Fatalf("AddBlock B: %+v", err)
	}

	blockC := hashFromByte(4)
	dataC, err := gm.AddBlock(blockC, []*externalapi.DomainHash{blockA, blockB}, 0x207fffff)
	if err != nil {
		t.Fatalf("AddBlock C: %+v", err)
	}

	if len(dataC.MergeSetReds()) != 0 {
		t.Fatalf("expected no red merge-set members under k=3, got %d", len(dataC.MergeSetReds()))
	}
	if len(dataC.MergeSetBlues()) != 1 {
		t.Fatalf("expected exactly one merged blue sibling, got %d", len(dataC.MergeSetBlues()))
	}
	// blue score = selected parent's blue score (1) + 1 merged blue + 1
	if dataC.BlueScore() != 3 {
		t.Fatalf("expected blue score 3, got %d", dataC.BlueScore())
	}
}

// TestChooseSelectedParentPrefersHigherBlueWork checks that
// ChooseSelectedParent picks the parent with strictly higher blue
// work over one with equal or lower blue work.
func TestChooseSelectedParentPrefersHigherBlueWork(t *testing.T) {
	gm := newTestManager(3)
	genesisHash := hashFromByte(1)
	if _, err := gm.AddBlock(genesisHash, nil, 0x207fffff); err != nil {
		t.Fatalf("AddBlock genesis: %+v", err)
	}

	// blockA has lower-difficulty (higher target, less work) than blockB.
	blockA := hashFromByte(2)
	if _, err := gm.AddBlock(blockA, []*externalapi.DomainHash{genesisHash}, 0x207fffff); err != nil {
		t.Fatalf("AddBlock A: %+v", err)
	}
	blockB := hashFromByte(3)
	if _, err := gm.AddBlock(blockB, []*externalapi.DomainHash{genesisHash}, 0x1e7fffff); err != nil {
		t.Fatalf("AddBlock B: %+v", err)
	}

	selected, err := gm.ChooseSelectedParent(blockA, blockB)
	if err != nil {
		t.Fatalf("ChooseSelectedParent: %+v", err)
	}
	if !selected.Equal(blockB) {
		t.Fatalf("expected the higher-work block to be selected")
	}
}
