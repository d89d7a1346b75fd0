// Package blockstore holds full blocks (header plus transactions) by
// hash. Adapted from the teacher's stub (blockstore.go), which left
// every method panicking or no-op behind a DB-transaction signature;
// this is a plain concurrent in-memory map instead, following
// blockheaderstore's shape.
package blockstore

import (
	"sync"

	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/ruleerrors"
)

// Store is a concurrent mapping from block hash to full block.
type Store struct {
	mu     sync.RWMutex
	blocks map[externalapi.DomainHash]*externalapi.DomainBlock
}

// New returns an empty block store.
func New() *Store {
	return &Store{blocks: make(map[externalapi.DomainHash]*externalapi.DomainBlock)}
}

// Insert records block under blockHash. It fails if blockHash already
// has a stored block.
func (s *Store) Insert(blockHash *externalapi.DomainHash, block *externalapi.DomainBlock) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.blocks[*blockHash]; exists {
		return ruleerrors.New(ruleerrors.KindGeneric, "block %s is already stored", blockHash)
	}
	s.blocks[*blockHash] = block
	return nil
}

// Block returns the block stored under blockHash.
func (s *Store) Block(blockHash *externalapi.DomainHash) (*externalapi.DomainBlock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	block, ok := s.blocks[*blockHash]
	if !ok {
		return nil, ruleerrors.New(ruleerrors.KindGeneric, "no block found for %s", blockHash)
	}
	return block, nil
}

// Blocks returns the blocks stored under blockHashes, in order.
func (s *Store) Blocks(blockHashes []*externalapi.DomainHash) ([]*externalapi.DomainBlock, error) {
	blocks := make([]*externalapi.DomainBlock, len(blockHashes))
	for i, hash := range blockHashes {
		block, err := s.Block(hash)
		if err != nil {
			return nil, err
		}
		blocks[i] = block
	}
	return blocks, nil
}

// HasBlock reports whether blockHash has a stored block.
func (s *Store) HasBlock(blockHash *externalapi.DomainHash) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blocks[*blockHash]
	return ok
}
