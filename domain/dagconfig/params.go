// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dagconfig carries the per-network consensus parameters and
// the externally-consumed configuration surface (spec.md §6), in the
// same Params-registry shape the teacher's dagconfig used for its
// wire/application parameters.
package dagconfig

import (
	"time"

	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/utils/hashserialization"
	"github.com/pkg/errors"
)

// Consensus constants (default mainnet values, spec.md §6).
const (
	MaxBlockMass               = 500000
	TargetBlockTime            = 1 * time.Second
	DifficultyAdjustmentWindow = 1024
	HalvingInterval            = 210000
	MaxTransactionsPerBlock    = 10000
	CoinbaseMaturity           = 100
	MaxSigOpsPerBlock          = 20000
	DefaultGhostDAGK           = 18
	ProtocolVersion            = 1
)

// KType defines the size of the GHOSTDAG consensus algorithm's K parameter.
type KType = externalapi.KType

// NetworkMagic identifies a network on the wire. The core never reads
// the wire itself and does not check any value against it; it is
// carried in Params for callers.
type NetworkMagic [4]byte

// Network magic bytes (spec.md §6).
var (
	MainnetMagic = NetworkMagic{0xab, 0xcd, 0xef, 0x12}
	TestnetMagic = NetworkMagic{0xba, 0xdc, 0xfe, 0x21}
	DevnetMagic  = NetworkMagic{0xca, 0xed, 0xfa, 0x31}
	SimnetMagic  = NetworkMagic{0xda, 0xec, 0xfb, 0x41}
)

// Params defines a network's consensus parameters. The distilled set
// the core actually consumes to validate and order blocks; any wire,
// RPC or P2P parameters belong in Config instead.
type Params struct {
	// K is the GHOSTDAG k-cluster size.
	K KType

	// Name is a human-readable network identifier.
	Name string

	// Magic is the network's wire magic bytes.
	Magic NetworkMagic

	// GenesisBlock is the first block of the DAG.
	GenesisBlock *externalapi.DomainBlock

	// MaxBlockMass bounds the accounted mass of a single block.
	MaxBlockMass uint64

	// CoinbaseMaturity is the number of blocks required before newly
	// mined coins can be spent.
	CoinbaseMaturity uint64

	// SubsidyReductionInterval is the interval of blocks before the
	// coinbase subsidy is halved.
	SubsidyReductionInterval uint64

	// TargetTimePerBlock is the desired amount of time between blocks.
	TargetTimePerBlock time.Duration

	// FinalityDuration is the duration of the finality window.
	FinalityDuration time.Duration

	// TimestampDeviationTolerance is the maximum offset a block
	// timestamp may have into the future before it is rejected.
	TimestampDeviationTolerance uint64

	// DifficultyAdjustmentWindowSize is the window size inspected when
	// calculating the required difficulty of each block.
	DifficultyAdjustmentWindowSize uint64
}

// FinalityDepth returns the number of blocks, measured in blue score,
// that FinalityDuration spans at this network's target block rate.
func (p *Params) FinalityDepth() uint64 {
	return uint64(p.FinalityDuration / p.TargetTimePerBlock)
}

// PruningDepth returns how far behind the virtual selected parent a
// block must sit, in blue score, before it is safe to prune: twice the
// finality depth, so a pruned block can never re-enter a finality
// window a reorg might still reach.
func (p *Params) PruningDepth() uint64 {
	return 2 * p.FinalityDepth()
}

// GenesisHash returns the hash of the network's genesis block.
func (p *Params) GenesisHash() *externalapi.DomainHash {
	return hashserialization.HeaderHash(p.GenesisBlock.Header)
}

// Config is the externally-consumed configuration surface spec.md §6
// names: it shapes how a consensus instance is operated, not the
// consensus rules themselves.
type Config struct {
	// NetworkName selects which Params a consensus instance runs with.
	NetworkName string

	// Archival keeps full historical block data instead of pruning it.
	Archival bool

	// SanityCheck enables extra internal consistency assertions.
	SanityCheck bool

	// UTXOIndex maintains an address-to-UTXO lookup index.
	UTXOIndex bool

	// UnsafeRPC allows RPC methods that can leak private key material
	// or otherwise destabilize a node.
	UnsafeRPC bool

	// UnsyncedMining permits block production before the DAG is caught
	// up with its peers.
	UnsyncedMining bool

	// MainnetMining permits mining on mainnet (disabled by default to
	// avoid accidental mainnet block production from test tooling).
	MainnetMining bool

	// P2PListenAddress is the address the node listens for peers on.
	P2PListenAddress string

	// ExternalIP is the address advertised to peers, if set.
	ExternalIP string

	// BlockTemplateCacheLifetime bounds how long a cached block
	// template may be served before it is recomputed.
	BlockTemplateCacheLifetime time.Duration

	// UPnP enables automatic port forwarding via UPnP.
	UPnP bool

	// RAMScale scales internal cache sizes relative to the default
	// profile; must be a positive real number.
	RAMScale float64

	// RetentionPeriodDays optionally bounds how long pruned data is
	// kept before being discarded entirely. Zero means unbounded.
	RetentionPeriodDays uint64
}

// Validate checks the invariants spec.md §6 places on the
// configuration surface.
func (c *Config) Validate(params *Params) error {
	if c.RAMScale <= 0 {
		return errors.Errorf("RAM scale factor must be positive, got %f", c.RAMScale)
	}
	if params.TargetTimePerBlock <= 0 {
		return errors.New("target time per block must be positive")
	}
	if params.MaxBlockMass == 0 {
		return errors.New("max block mass must be positive")
	}
	return nil
}

var (
	// ErrDuplicateNet is returned by Register when params for a
	// network have already been registered.
	ErrDuplicateNet = errors.New("duplicate network")

	registeredNets = make(map[string]struct{})
)

// Register records params as the parameters for its network name, so
// library code can later look networks up by name. It fails with
// ErrDuplicateNet on repeated registration.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Name]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Name] = struct{}{}
	return nil
}

func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

func init() {
	mustRegister(&MainnetParams)
	mustRegister(&TestnetParams)
	mustRegister(&SimnetParams)
	mustRegister(&DevnetParams)
}

// MainnetParams defines the consensus parameters for the main network.
var MainnetParams = Params{
	K:                              DefaultGhostDAGK,
	Name:                           "mainnet",
	Magic:                          MainnetMagic,
	GenesisBlock:                   &mainnetGenesis,
	MaxBlockMass:                   MaxBlockMass,
	CoinbaseMaturity:               CoinbaseMaturity,
	SubsidyReductionInterval:       HalvingInterval,
	TargetTimePerBlock:             TargetBlockTime,
	FinalityDuration:               24 * time.Hour,
	TimestampDeviationTolerance:    132,
	DifficultyAdjustmentWindowSize: DifficultyAdjustmentWindow,
}

// TestnetParams defines the consensus parameters for the test network.
var TestnetParams = Params{
	K:                              DefaultGhostDAGK,
	Name:                           "testnet",
	Magic:                          TestnetMagic,
	GenesisBlock:                   &testnetGenesis,
	MaxBlockMass:                   MaxBlockMass,
	CoinbaseMaturity:               CoinbaseMaturity,
	SubsidyReductionInterval:       HalvingInterval,
	TargetTimePerBlock:             TargetBlockTime,
	FinalityDuration:               24 * time.Hour,
	TimestampDeviationTolerance:    132,
	DifficultyAdjustmentWindowSize: DifficultyAdjustmentWindow,
}

// SimnetParams defines the consensus parameters for the simulation
// network, tuned for fast local block production.
var SimnetParams = Params{
	K:                              DefaultGhostDAGK,
	Name:                           "simnet",
	Magic:                          SimnetMagic,
	GenesisBlock:                   &simnetGenesis,
	MaxBlockMass:                   MaxBlockMass,
	CoinbaseMaturity:               CoinbaseMaturity,
	SubsidyReductionInterval:       HalvingInterval,
	TargetTimePerBlock:             time.Millisecond,
	FinalityDuration:               time.Minute,
	TimestampDeviationTolerance:    132,
	DifficultyAdjustmentWindowSize: DifficultyAdjustmentWindow,
}

// DevnetParams defines the consensus parameters for the development network.
var DevnetParams = Params{
	K:                              DefaultGhostDAGK,
	Name:                           "devnet",
	Magic:                          DevnetMagic,
	GenesisBlock:                   &devnetGenesis,
	MaxBlockMass:                   MaxBlockMass,
	CoinbaseMaturity:               CoinbaseMaturity,
	SubsidyReductionInterval:       HalvingInterval,
	TargetTimePerBlock:             TargetBlockTime,
	FinalityDuration:               24 * time.Hour,
	TimestampDeviationTolerance:    132,
	DifficultyAdjustmentWindowSize: DifficultyAdjustmentWindow,
}
