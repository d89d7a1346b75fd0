package pruningmanager

import (
	"testing"

	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/blockrelationstore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/ghostdagdatastore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/dagtopologymanager"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/dagtraversalmanager"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/ghostdagmanager"
)

func hashFromByte(b byte) *externalapi.DomainHash {
	hash := externalapi.DomainHash{}
	hash[0] = b
	return &hash
}

// TestUpdatePruningPointAdvances builds a long chain and checks the
// pruning point advances to stay pruningDepth below the tip while
// marking the blocks it passes over as pruned.
func TestUpdatePruningPointAdvances(t *testing.T) {
	relationStore := blockrelationstore.New()
	ghostdagDataStore := ghostdagdatastore.New()
	topologyManager := dagtopologymanager.New(relationStore, ghostdagDataStore)
	gm := ghostdagmanager.New(3, relationStore, ghostdagDataStore, topologyManager)
	dtm := dagtraversalmanager.New(topologyManager, relationStore, ghostdagDataStore)

	genesisHash := hashFromByte(1)
	if _, err := gm.AddBlock(genesisHash, nil, 0x207fffff); err != nil {
		t.Fatalf("AddBlock genesis: %+v", err)
	}

	pm := New(ghostdagDataStore, dtm, genesisHash, 2, 5)

	parent := genesisHash
	var tip *externalapi.DomainHash
	for i := 2; i <= 20; i++ {
		hash := hashFromByte(byte(i))
		if _, err := gm.AddBlock(hash, []*externalapi.DomainHash{parent}, 0x207fffff); err != nil {
			t.Fatalf("AddBlock %d: %+v", i, err)
		}
		parent = hash
		tip = hash
		if err := pm.UpdatePruningPoint(tip); err != nil {
			t.Fatalf("UpdatePruningPoint at %d: %+v", i, err)
		}
	}

	if pm.PruningPoint().Equal(genesisHash) {
		t.Fatalf("expected pruning point to advance past genesis after 19 blocks")
	}
	if !pm.IsPruned(genesisHash) {
		t.Fatalf("expected genesis to be pruned once the pruning point advanced past it")
	}
	if pm.IsPruned(tip) {
		t.Fatalf("tip must never be pruned")
	}
}
