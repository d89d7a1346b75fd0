// Package blockstatusstore tracks each block's validation status. Only
// the Invalid and Valid statuses exist; there are no Accepted or
// MainChain statuses, and a recorded status is never promoted or
// demoted to another one. Adapted from
// the teacher's stub (blockstatusstore.go), which left every method
// unimplemented behind a DB-transaction signature; this is a plain
// concurrent in-memory map instead, since persistence is out of scope.
package blockstatusstore

import (
	"sync"

	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/ruleerrors"
)

// Store is a concurrent mapping from block hash to BlockStatus.
type Store struct {
	mu       sync.RWMutex
	statuses map[externalapi.DomainHash]externalapi.BlockStatus
}

// New returns an empty block status store.
func New() *Store {
	return &Store{statuses: make(map[externalapi.DomainHash]externalapi.BlockStatus)}
}

// Set records status for blockHash, validating the transition against
// the previously recorded status (if any) via BlockStatus.CanTransitionTo.
func (s *Store) Set(blockHash *externalapi.DomainHash, status externalapi.BlockStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, exists := s.statuses[*blockHash]; exists && !current.CanTransitionTo(status) {
		return ruleerrors.New(ruleerrors.KindGeneric,
			"invalid block status transition for %s: %s -> %s", blockHash, current, status)
	}
	s.statuses[*blockHash] = status
	return nil
}

// Get returns the status recorded for blockHash, and whether one was found.
func (s *Store) Get(blockHash *externalapi.DomainHash) (externalapi.BlockStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status, ok := s.statuses[*blockHash]
	return status, ok
}

// Exists reports whether a status has been recorded for blockHash.
func (s *Store) Exists(blockHash *externalapi.DomainHash) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.statuses[*blockHash]
	return ok
}
