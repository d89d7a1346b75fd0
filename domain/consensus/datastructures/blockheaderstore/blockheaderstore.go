// Package blockheaderstore holds inserted block headers by hash.
// Adapted from the teacher's blockheaderstore.go, which staged headers
// behind a DB transaction and an LRU cache; since persistence is out
// of scope here, this is a plain concurrent in-memory map, following
// blockrelationstore's shape.
package blockheaderstore

import (
	"sync"

	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/ruleerrors"
)

// Store is a concurrent mapping from block hash to header.
type Store struct {
	mu      sync.RWMutex
	headers map[externalapi.DomainHash]*externalapi.DomainBlockHeader
}

// New returns an empty header store.
func New() *Store {
	return &Store{headers: make(map[externalapi.DomainHash]*externalapi.DomainBlockHeader)}
}

// Insert records header under blockHash. It fails if blockHash
// already has a stored header.
func (s *Store) Insert(blockHash *externalapi.DomainHash, header *externalapi.DomainBlockHeader) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.headers[*blockHash]; exists {
		return ruleerrors.New(ruleerrors.KindGeneric, "header for %s already exists", blockHash)
	}
	s.headers[*blockHash] = header
	return nil
}

// Header returns blockHash's stored header.
func (s *Store) Header(blockHash *externalapi.DomainHash) (*externalapi.DomainBlockHeader, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	header, ok := s.headers[*blockHash]
	if !ok {
		return nil, ruleerrors.New(ruleerrors.KindGeneric, "no header found for %s", blockHash)
	}
	return header, nil
}

// HasHeader reports whether blockHash has a stored header.
func (s *Store) HasHeader(blockHash *externalapi.DomainHash) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.headers[*blockHash]
	return ok
}
