// Package blockrelationstore holds the DAG's parent/children edges.
// Adapted from the teacher's stub (blockrelationstore.go), which left
// Insert/Get unimplemented behind a DB-transaction signature; since
// persistence is out of scope here, this is a concurrent in-memory
// map instead: a single RWMutex protects the map and the parent edges
// (written once, at insertion), and each entry's children slice
// carries its own lock so Get can copy it after releasing the store
// lock. Insert appends to the parents' children slices while holding
// the store-wide write lock, so concurrent inserts, including inserts
// of sibling blocks, are serialized.
package blockrelationstore

import (
	"sync"

	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/ruleerrors"
)

type entry struct {
	mu       sync.Mutex
	parents  []*externalapi.DomainHash
	children []*externalapi.DomainHash
}

// Store is a concurrent mapping from block hash to BlockRelations.
type Store struct {
	mu      sync.RWMutex
	entries map[externalapi.DomainHash]*entry
}

// New returns an empty relations store.
func New() *Store {
	return &Store{entries: make(map[externalapi.DomainHash]*entry)}
}

// Insert records blockHash's parents and initializes an empty
// children list. It fails if blockHash was already inserted.
func (s *Store) Insert(blockHash *externalapi.DomainHash, parents []*externalapi.DomainHash) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[*blockHash]; exists {
		return ruleerrors.New(ruleerrors.KindGeneric, "block relations for %s already exist", blockHash)
	}
	s.entries[*blockHash] = &entry{parents: externalapi.CloneHashes(parents)}

	for _, parent := range parents {
		parentEntry, ok := s.entries[*parent]
		if !ok {
			continue
		}
		parentEntry.mu.Lock()
		parentEntry.children = append(parentEntry.children, blockHash)
		parentEntry.mu.Unlock()
	}
	return nil
}

// Get returns blockHash's recorded relations.
func (s *Store) Get(blockHash *externalapi.DomainHash) (*externalapi.BlockRelations, error) {
	s.mu.RLock()
	e, ok := s.entries[*blockHash]
	s.mu.RUnlock()
	if !ok {
		return nil, ruleerrors.New(ruleerrors.KindMissingGHOSTDAGData, "no block relations found for %s", blockHash)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return &externalapi.BlockRelations{
		Parents:  externalapi.CloneHashes(e.parents),
		Children: externalapi.CloneHashes(e.children),
	}, nil
}

// Has reports whether blockHash has recorded relations.
func (s *Store) Has(blockHash *externalapi.DomainHash) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[*blockHash]
	return ok
}

// Tips returns every block with no recorded children, the DAG tips
// select_tip scans over (spec.md §4.2).
func (s *Store) Tips() []*externalapi.DomainHash {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tips := make([]*externalapi.DomainHash, 0)
	for hash, e := range s.entries {
		hash := hash
		e.mu.Lock()
		isTip := len(e.children) == 0
		e.mu.Unlock()
		if isTip {
			tips = append(tips, &hash)
		}
	}
	return tips
}
