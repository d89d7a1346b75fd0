package pastmediantimemanager

import (
	"testing"

	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/blockheaderstore"
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

// TestPastMedianTimeIsWindowMedian checks the median is computed over
// the selected-parent chain's timestamps, not insertion order.
func TestPastMedianTimeIsWindowMedian(t *testing.T) {
	relationStore := blockrelationstore.New()
	ghostdagDataStore := ghostdagdatastore.New()
	headerStore := blockheaderstore.New()
	topologyManager := dagtopologymanager.New(relationStore, ghostdagDataStore)
	gm := ghostdagmanager.New(3, relationStore, ghostdagDataStore, topologyManager)
	dtm := dagtraversalmanager.New(topologyManager, relationStore, ghostdagDataStore)
	pmt := New(5, dtm, headerStore)

	timestamps := []int64{10, 50, 20, 40, 30}
	var parent *externalapi.DomainHash
	var tip *externalapi.DomainHash
	for i, ts := range timestamps {
		hash := hashFromByte(byte(i + 1))
		var parents []*externalapi.DomainHash
		if parent != nil {
			parents = []*externalapi.DomainHash{parent}
		}
		if _, err := gm.AddBlock(hash, parents, 0x207fffff); err != nil {
			t.Fatalf("AddBlock %d: %+v", i, err)
		}
		if err := headerStore.Insert(hash, &externalapi.DomainBlockHeader{Timestamp: ts}); err != nil {
			t.Fatalf("Insert header %d: %+v", i, err)
		}
		parent = hash
		tip = hash
	}

	medianTime, err := pmt.PastMedianTime(tip)
	if err != nil {
		t.Fatalf("PastMedianTime: %+v", err)
	}
	// windowSize = 2*5-1 = 9, but the chain has only 5 blocks, so the
	// whole chain is the window: sorted [10,20,30,40,50], median 30.
	if medianTime != 30 {
		t.Fatalf("expected median 30, got %d", medianTime)
	}
}
