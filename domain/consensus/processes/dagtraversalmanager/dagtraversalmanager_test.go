package dagtraversalmanager

import (
	"testing"

	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/blockrelationstore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/ghostdagdatastore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/dagtopologymanager"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/ghostdagmanager"
)

func hashFromByte(b byte) *externalapi.DomainHash {
	hash := externalapi.DomainHash{}
	hash[0] = b
	return &hash
}

// TestSelectedParentIterator checks the iterator walks a chain
// tip-first down to genesis.
func TestSelectedParentIterator(t *testing.T) {
	relationStore := blockrelationstore.New()
	ghostdagDataStore := ghostdagdatastore.New()
	topologyManager := dagtopologymanager.New(relationStore, ghostdagDataStore)
	gm := ghostdagmanager.New(3, relationStore, ghostdagDataStore, topologyManager)
	dtm := New(topologyManager, relationStore, ghostdagDataStore)

	genesisHash := hashFromByte(1)
	if _, err := gm.AddBlock(genesisHash, nil, 0x207fffff); err != nil {
		t.Fatalf("AddBlock genesis: %+v", err)
	}
	blockA := hashFromByte(2)
	if _, err := gm.AddBlock(blockA, []*externalapi.DomainHash{genesisHash}, 0x207fffff); err != nil {
		t.Fatalf("AddBlock A: %+v", err)
	}
	blockB := hashFromByte(3)
	if _, err := gm.AddBlock(blockB, []*externalapi.DomainHash{blockA}, 0x207fffff); err != nil {
		t.Fatalf("AddBlock B: %+v", err)
	}

	it := dtm.SelectedParentIterator(blockB)
	var chain []*externalapi.DomainHash
	for {
		hash, err := it.Next()
		if err != nil {
			t.Fatalf("Next: %+v", err)
		}
		if hash == nil {
			break
		}
		chain = append(chain, hash)
	}

	if len(chain) != 3 || !chain[0].Equal(blockB) || !chain[1].Equal(blockA) || !chain[2].Equal(genesisHash) {
		t.Fatalf("unexpected chain: %v", chain)
	}
}
