package utxo

import (
	"sync"

	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/ruleerrors"
)

// Collection is a concurrent mapping from Outpoint to UTXOEntry, plus a
// MuHash accumulator commitment over all present outpoints (spec.md
// §4.3). A single RWMutex guards the whole mapping: diff application
// is infrequent relative to reads, so a coarse lock is an acceptable
// trade against the per-shard locking the relations graph needs.
type Collection struct {
	mu      sync.RWMutex
	entries map[externalapi.DomainOutpoint]*externalapi.UTXOEntry
	muHash  *MuHash
}

// New returns an empty UTXO collection.
func New() *Collection {
	return &Collection{
		entries: make(map[externalapi.DomainOutpoint]*externalapi.UTXOEntry),
		muHash:  NewMuHash(),
	}
}

func muHashElement(outpoint externalapi.DomainOutpoint, entry *externalapi.UTXOEntry) []byte {
	buf := make([]byte, 0, externalapi.DomainHashSize+4+len(entry.ScriptPublicKey)+17)
	buf = append(buf, outpoint.TransactionID[:]...)
	buf = appendUint32(buf, outpoint.Index)
	buf = appendUint64(buf, entry.Amount)
	buf = appendUint64(buf, entry.BlockDAAScore)
	if entry.IsCoinbase {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = append(buf, entry.ScriptPublicKey...)
	return buf
}

func appendUint32(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func appendUint64(buf []byte, v uint64) []byte {
	return append(buf,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

// Insert adds outpoint/entry to the live set. It fails with
// AlreadySpent if the outpoint is already present.
func (c *Collection) Insert(outpoint externalapi.DomainOutpoint, entry *externalapi.UTXOEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.insertLocked(outpoint, entry)
}

func (c *Collection) insertLocked(outpoint externalapi.DomainOutpoint, entry *externalapi.UTXOEntry) error {
	if _, exists := c.entries[outpoint]; exists {
		return ruleerrors.New(ruleerrors.KindAlreadySpent,
			"outpoint %s:%d is already present in the UTXO set", outpoint.TransactionID, outpoint.Index)
	}
	c.entries[outpoint] = entry
	c.muHash.Add(muHashElement(outpoint, entry))
	return nil
}

// Remove removes outpoint if present, unfolding it from the MuHash,
// and returns the entry that was removed (nil if absent).
func (c *Collection) Remove(outpoint externalapi.DomainOutpoint) (*externalapi.UTXOEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(outpoint)
}

func (c *Collection) removeLocked(outpoint externalapi.DomainOutpoint) (*externalapi.UTXOEntry, error) {
	entry, exists := c.entries[outpoint]
	if !exists {
		return nil, nil
	}
	delete(c.entries, outpoint)
	c.muHash.Remove(muHashElement(outpoint, entry))
	return entry, nil
}

// Get performs a read-only lookup.
func (c *Collection) Get(outpoint externalapi.DomainOutpoint) (*externalapi.UTXOEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[outpoint]
	return entry, ok
}

// Len returns the number of live entries.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// MuHashDigest returns the current MuHash commitment over the live set.
func (c *Collection) MuHashDigest() [32]byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.muHash.Digest()
}

// ApplyDiff applies diff.ToAdd then diff.ToRemove atomically: readers
// never observe a partially-applied diff, and a failure partway
// through (a conflicting add, or a removal of a missing outpoint)
// reverses every change already made before returning the error.
func (c *Collection) ApplyDiff(diff *Diff) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	applied := make([]externalapi.DomainOutpoint, 0, len(diff.ToAdd))
	for outpoint, entry := range diff.ToAdd {
		if err := c.insertLocked(outpoint, entry); err != nil {
			c.rollbackAdds(applied)
			return ruleerrors.Wrap(ruleerrors.KindDiffApplicationFailed, err, "failed applying diff additions")
		}
		applied = append(applied, outpoint)
	}

	removed := make(map[externalapi.DomainOutpoint]*externalapi.UTXOEntry, len(diff.ToRemove))
	for outpoint := range diff.ToRemove {
		if _, exists := c.entries[outpoint]; !exists {
			c.rollbackAdds(applied)
			c.rollbackRemoves(removed)
			return ruleerrors.New(ruleerrors.KindDiffApplicationFailed,
				"cannot remove missing outpoint %s:%d", outpoint.TransactionID, outpoint.Index)
		}
		entry, _ := c.removeLocked(outpoint)
		removed[outpoint] = entry
	}

	return nil
}

func (c *Collection) rollbackAdds(applied []externalapi.DomainOutpoint) {
	for _, outpoint := range applied {
		_, _ = c.removeLocked(outpoint)
	}
}

func (c *Collection) rollbackRemoves(removed map[externalapi.DomainOutpoint]*externalapi.UTXOEntry) {
	for outpoint, entry := range removed {
		_ = c.insertLocked(outpoint, entry)
	}
}
