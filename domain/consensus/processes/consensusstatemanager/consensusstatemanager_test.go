package consensusstatemanager

import (
	"testing"

	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/blockrelationstore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/ghostdagdatastore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/dagtopologymanager"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/ghostdagmanager"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/hashserialization"
)

func hashFromByte(b byte) *externalapi.DomainHash {
	hash := externalapi.DomainHash{}
	hash[0] = b
	return &hash
}

type testHarness struct {
	ghostdag *ghostdagmanager.Manager
	selector *Manager
}

func newTestHarness() *testHarness {
	relationStore := blockrelationstore.New()
	ghostdagDataStore := ghostdagdatastore.New()
	topologyManager := dagtopologymanager.New(relationStore, ghostdagDataStore)
	gm := ghostdagmanager.New(3, relationStore, ghostdagDataStore, topologyManager)
	selector := New(relationStore, ghostdagDataStore)
	return &testHarness{ghostdag: gm, selector: selector}
}

// TestSelectTipPrefersHigherBlueScore builds two competing chains off
// genesis and checks that SelectTip returns the tip of the longer one.
func TestSelectTipPrefersHigherBlueScore(t *testing.T) {
	h := newTestHarness()
	genesisHash := hashFromByte(1)
	if _, err := h.ghostdag.AddBlock(genesisHash, nil, 0x207fffff); err != nil {
		t.Fatalf("AddBlock genesis: %+v", err)
	}

	shortTip := hashFromByte(2)
	if _, err := h.ghostdag.AddBlock(shortTip, []*externalapi.DomainHash{genesisHash}, 0x207fffff); err != nil {
		t.Fatalf("AddBlock shortTip: %+v", err)
	}

	longA := hashFromByte(3)
	if _, err := h.ghostdag.AddBlock(longA, []*externalapi.DomainHash{genesisHash}, 0x207fffff); err != nil {
		t.Fatalf("AddBlock longA: %+v", err)
	}
	longTip := hashFromByte(4)
	if _, err := h.ghostdag.AddBlock(longTip, []*externalapi.DomainHash{longA}, 0x207fffff); err != nil {
		t.Fatalf("AddBlock longTip: %+v", err)
	}

	tip, err := h.selector.SelectTip()
	if err != nil {
		t.Fatalf("SelectTip: %+v", err)
	}
	if !tip.Equal(longTip) {
		t.Fatalf("expected the longer chain's tip to be selected")
	}
}

// TestUpdateVirtualStateAndReorg checks that UpdateVirtualState tracks
// the winning tip, and that HandleReorg reports the correct added and
// removed chains when a competing chain overtakes it.
func TestUpdateVirtualStateAndReorg(t *testing.T) {
	h := newTestHarness()
	genesisHash := hashFromByte(1)
	if _, err := h.ghostdag.AddBlock(genesisHash, nil, 0x207fffff); err != nil {
		t.Fatalf("AddBlock genesis: %+v", err)
	}

	chainA1 := hashFromByte(2)
	if _, err := h.ghostdag.AddBlock(chainA1, []*externalapi.DomainHash{genesisHash}, 0x207fffff); err != nil {
		t.Fatalf("AddBlock chainA1: %+v", err)
	}
	if err := h.selector.UpdateVirtualState(chainA1); err != nil {
		t.Fatalf("UpdateVirtualState chainA1: %+v", err)
	}

	chainB1 := hashFromByte(3)
	if _, err := h.ghostdag.AddBlock(chainB1, []*externalapi.DomainHash{genesisHash}, 0x207fffff); err != nil {
		t.Fatalf("AddBlock chainB1: %+v", err)
	}
	chainB2 := hashFromByte(4)
	if _, err := h.ghostdag.AddBlock(chainB2, []*externalapi.DomainHash{chainB1}, 0x207fffff); err != nil {
		t.Fatalf("AddBlock chainB2: %+v", err)
	}

	added, removed, err := h.selector.HandleReorg(chainA1, chainB2)
	if err != nil {
		t.Fatalf("HandleReorg: %+v", err)
	}
	if len(removed) != 1 || !removed[0].Equal(chainA1) {
		t.Fatalf("expected removed=[chainA1], got %v", removed)
	}
	if len(added) != 2 || !added[0].Equal(chainB1) || !added[1].Equal(chainB2) {
		t.Fatalf("expected added=[chainB1, chainB2], got %v", added)
	}

	state := h.selector.VirtualState()
	if !state.SelectedTip.Equal(chainB2) {
		t.Fatalf("expected virtual tip to be chainB2 after reorg")
	}
}

// TestAcceptBlockUTXOs checks that a coinbase's output becomes
// spendable in the virtual UTXO set, and that a later transaction
// spending it removes the spent outpoint and adds its own outputs.
func TestAcceptBlockUTXOs(t *testing.T) {
	h := newTestHarness()

	coinbase := &externalapi.DomainTransaction{
		Inputs:  []*externalapi.DomainTransactionInput{{PreviousOutpoint: externalapi.DomainOutpoint{Index: 0xffffffff}}},
		Outputs: []*externalapi.DomainTransactionOutput{{Value: 100}},
	}
	if err := h.selector.AcceptBlockUTXOs([]*externalapi.DomainTransaction{coinbase}, 0); err != nil {
		t.Fatalf("AcceptBlockUTXOs coinbase: %+v", err)
	}
	if h.selector.UTXOSet().Len() != 1 {
		t.Fatalf("expected 1 live UTXO after accepting the coinbase, got %d", h.selector.UTXOSet().Len())
	}

	coinbaseTxID := hashserialization.TransactionHash(coinbase)
	spend := &externalapi.DomainTransaction{
		Inputs:  []*externalapi.DomainTransactionInput{{PreviousOutpoint: externalapi.DomainOutpoint{TransactionID: *coinbaseTxID, Index: 0}}},
		Outputs: []*externalapi.DomainTransactionOutput{{Value: 90}, {Value: 9}},
	}
	if err := h.selector.AcceptBlockUTXOs([]*externalapi.DomainTransaction{spend}, 1); err != nil {
		t.Fatalf("AcceptBlockUTXOs spend: %+v", err)
	}
	if h.selector.UTXOSet().Len() != 2 {
		t.Fatalf("expected 2 live UTXOs after the spend, got %d", h.selector.UTXOSet().Len())
	}
	if _, ok := h.selector.UTXOSet().Get(externalapi.DomainOutpoint{TransactionID: *coinbaseTxID, Index: 0}); ok {
		t.Fatalf("expected the coinbase output to be spent")
	}
}
