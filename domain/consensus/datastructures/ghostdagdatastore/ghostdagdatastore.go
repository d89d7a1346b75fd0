// Package ghostdagdatastore holds the GHOSTDAG engine's per-block
// verdicts. Adapted from the teacher's ghostdagdatastore.go, which
// layered an LRU cache and a protobuf-serialized DB commit on top of
// an in-memory staging map; since persistence is out of scope here,
// this keeps only the concurrent in-memory map the teacher's cache
// was fronting.
package ghostdagdatastore

import (
	"sync"

	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/ruleerrors"
)

// Store is a concurrent mapping from block hash to BlockGHOSTDAGData.
type Store struct {
	mu      sync.RWMutex
	entries map[externalapi.DomainHash]*externalapi.BlockGHOSTDAGData
}

// New returns an empty GHOSTDAG data store.
func New() *Store {
	return &Store{entries: make(map[externalapi.DomainHash]*externalapi.BlockGHOSTDAGData)}
}

// Insert records data for blockHash. It fails if data already exists
// for the hash: GHOSTDAG data is written exactly once, when a block is
// first accepted.
func (s *Store) Insert(blockHash *externalapi.DomainHash, data *externalapi.BlockGHOSTDAGData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[*blockHash]; exists {
		return ruleerrors.New(ruleerrors.KindGeneric, "GHOSTDAG data for %s already exists", blockHash)
	}
	s.entries[*blockHash] = data.Clone()
	return nil
}

// Get returns the GHOSTDAG data recorded for blockHash.
func (s *Store) Get(blockHash *externalapi.DomainHash) (*externalapi.BlockGHOSTDAGData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.entries[*blockHash]
	if !ok {
		return nil, ruleerrors.New(ruleerrors.KindMissingGHOSTDAGData, "no GHOSTDAG data found for %s", blockHash)
	}
	return data.Clone(), nil
}

// Has reports whether GHOSTDAG data has been recorded for blockHash.
func (s *Store) Has(blockHash *externalapi.DomainHash) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[*blockHash]
	return ok
}
