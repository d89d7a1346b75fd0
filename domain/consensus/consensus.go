// Package consensus wires the GHOSTDAG engine, chain selector,
// pruning index and validation pipeline together behind a single
// ProcessBlock entrypoint, the same role the teacher's consensus.go
// gave its Consensus interface over a BlockProcessor/
// ConsensusStateManager pair. Network transport, sync-state tracking,
// and block-template construction are out of scope (spec.md §1), so
// this carries none of the teacher's appmessage/handler surface —
// only the validate-then-ingest path spec.md §2 describes.
package consensus

import (
	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/blockheaderstore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/blockrelationstore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/blockstatusstore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/blockstore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/datastructures/ghostdagdatastore"
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/blockvalidator"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/coinbasemanager"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/consensusstatemanager"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/dagtopologymanager"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/dagtraversalmanager"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/ghostdagmanager"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/pastmediantimemanager"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/pruningmanager"
	"github.com/kaspanet/ghostdag-core/domain/consensus/processes/transactionvalidator"
	"github.com/kaspanet/ghostdag-core/domain/consensus/ruleerrors"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/hashserialization"
	"github.com/kaspanet/ghostdag-core/domain/dagconfig"
)

// Consensus ingests blocks and maintains the resulting DAG, chain
// selection, UTXO set, and pruning state.
type Consensus struct {
	params *dagconfig.Params

	relationStore     *blockrelationstore.Store
	ghostdagDataStore *ghostdagdatastore.Store
	headerStore       *blockheaderstore.Store
	blockStore        *blockstore.Store
	statusStore       *blockstatusstore.Store

	dagTopologyManager    *dagtopologymanager.Manager
	dagTraversalManager   *dagtraversalmanager.Manager
	ghostdagManager       *ghostdagmanager.Manager
	stateManager          *consensusstatemanager.Manager
	pastMedianTimeManager *pastmediantimemanager.Manager
	pruningManager        *pruningmanager.Manager
	blockValidator        *blockvalidator.Manager
	transactionValidator  *transactionvalidator.Manager
	coinbaseManager       *coinbasemanager.Manager
}

// New wires every consensus subsystem for params and inserts the
// network's genesis block.
func New(params *dagconfig.Params) (*Consensus, error) {
	relationStore := blockrelationstore.New()
	ghostdagDataStore := ghostdagdatastore.New()
	headerStore := blockheaderstore.New()

	dagTopologyManager := dagtopologymanager.New(relationStore, ghostdagDataStore)
	dagTraversalManager := dagtraversalmanager.New(dagTopologyManager, relationStore, ghostdagDataStore)
	ghostdagManager := ghostdagmanager.New(params.K, relationStore, ghostdagDataStore, dagTopologyManager)
	stateManager := consensusstatemanager.New(relationStore, ghostdagDataStore)
	transactionValidator := transactionvalidator.New(params.MaxBlockMass)

	c := &Consensus{
		params:                params,
		relationStore:         relationStore,
		ghostdagDataStore:     ghostdagDataStore,
		headerStore:           headerStore,
		blockStore:            blockstore.New(),
		statusStore:           blockstatusstore.New(),
		dagTopologyManager:    dagTopologyManager,
		dagTraversalManager:   dagTraversalManager,
		ghostdagManager:       ghostdagManager,
		stateManager:          stateManager,
		pastMedianTimeManager: pastmediantimemanager.New(params.TimestampDeviationTolerance, dagTraversalManager, headerStore),
		pruningManager:        pruningmanager.New(ghostdagDataStore, dagTraversalManager, params.GenesisHash(), params.FinalityDepth(), params.PruningDepth()),
		blockValidator:        blockvalidator.New(transactionValidator),
		transactionValidator:  transactionValidator,
		coinbaseManager:       coinbasemanager.New(params.SubsidyReductionInterval),
	}

	if err := c.ProcessBlock(params.GenesisBlock); err != nil {
		return nil, err
	}
	return c, nil
}

// ProcessBlock validates block and, if valid, ingests it: registers
// its relations and GHOSTDAG data, stores its header and body, folds
// its transactions into the virtual UTXO set if it extends the
// selected tip, and advances the pruning point. This is the
// consensus-core side of spec.md §2's data flow; network-level
// ordering (waiting for parents to arrive) is the caller's job.
func (c *Consensus) ProcessBlock(block *externalapi.DomainBlock) error {
	blockHash := hashserialization.HeaderHash(block.Header)
	isGenesis := len(block.Header.DirectParents()) == 0

	for _, tx := range block.Transactions {
		if err := c.transactionValidator.ValidateStructure(tx); err != nil {
			return err
		}
	}

	for _, parent := range block.Header.DirectParents() {
		if !c.relationStore.Has(parent) {
			return ruleerrors.New(ruleerrors.KindNoValidParent, "block %s references unknown parent %s", blockHash, parent)
		}
	}

	ghostdagData, err := c.ghostdagManager.AddBlock(blockHash, block.Header.DirectParents(), block.Header.Bits)
	if err != nil {
		return err
	}
	block.GhostDagData = ghostdagData

	if err := c.blockValidator.ValidateBlock(block, isGenesis); err != nil {
		if statusErr := c.statusStore.Set(blockHash, externalapi.StatusInvalid); statusErr != nil {
			return statusErr
		}
		return err
	}

	if err := c.headerStore.Insert(blockHash, block.Header); err != nil {
		return err
	}
	if err := c.blockStore.Insert(blockHash, block); err != nil {
		return err
	}
	if err := c.statusStore.Set(blockHash, externalapi.StatusValid); err != nil {
		return err
	}

	if isGenesis {
		if err := c.stateManager.UpdateVirtualState(blockHash); err != nil {
			return err
		}
		return c.stateManager.AcceptBlockUTXOs(block.Transactions, ghostdagData.BlueScore())
	}

	virtualBefore := c.stateManager.VirtualState()
	if err := c.stateManager.UpdateVirtualState(blockHash); err != nil {
		return err
	}
	virtualAfter := c.stateManager.VirtualState()

	if virtualBefore == nil || !virtualBefore.SelectedTip.Equal(virtualAfter.SelectedTip) {
		if err := c.stateManager.AcceptBlockUTXOs(block.Transactions, ghostdagData.BlueScore()); err != nil {
			return err
		}
		return c.pruningManager.UpdatePruningPoint(virtualAfter.SelectedTip)
	}
	return nil
}

// VirtualState returns the current chain-selector state.
func (c *Consensus) VirtualState() *consensusstatemanager.VirtualState {
	return c.stateManager.VirtualState()
}
