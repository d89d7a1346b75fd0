package consensusstatemanager

import (
	"github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostdag-core/domain/consensus/ruleerrors"
)

// HandleReorg computes the reorg path between oldTip and newTip
// (spec.md §4.2's handle_reorg): the lowest common selected-parent
// ancestor is found by walking oldTip's selected-parent chain into a
// set, then walking newTip's chain until a hash lands in that set.
// removed is oldTip's chain down to (exclusive of) the ancestor, tip
// first; added is newTip's chain down to the ancestor, reversed so it
// reads ancestor-to-tip. UpdateVirtualState is called for newTip
// before returning.
func (m *Manager) HandleReorg(oldTip, newTip *externalapi.DomainHash) (added, removed []*externalapi.DomainHash, err error) {
	oldChain, oldIndex, err := m.selectedParentChainSet(oldTip)
	if err != nil {
		return nil, nil, err
	}

	var commonAncestor *externalapi.DomainHash
	newChain := make([]*externalapi.DomainHash, 0)
	current := newTip
	for {
		if _, ok := oldIndex[*current]; ok {
			commonAncestor = current
			break
		}
		newChain = append(newChain, current)

		data, err := m.ghostdagDataStore.Get(current)
		if err != nil {
			return nil, nil, err
		}
		if data.IsGenesis() {
			return nil, nil, ruleerrors.New(ruleerrors.KindNoCommonAncestor,
				"no common selected-parent ancestor between %s and %s", oldTip, newTip)
		}
		current = data.SelectedParent()
	}

	removed = make([]*externalapi.DomainHash, 0, oldIndex[*commonAncestor])
	for _, hash := range oldChain {
		if *hash == *commonAncestor {
			break
		}
		removed = append(removed, hash)
	}

	added = make([]*externalapi.DomainHash, len(newChain))
	for i, hash := range newChain {
		added[len(newChain)-1-i] = hash
	}

	if err := m.UpdateVirtualState(newTip); err != nil {
		return nil, nil, err
	}

	return added, removed, nil
}

// selectedParentChainSet walks tip's selected-parent chain back to
// genesis, returning it tip-first alongside a hash->position index.
func (m *Manager) selectedParentChainSet(tip *externalapi.DomainHash) ([]*externalapi.DomainHash, map[externalapi.DomainHash]int, error) {
	chain := make([]*externalapi.DomainHash, 0)
	index := make(map[externalapi.DomainHash]int)

	current := tip
	for {
		chain = append(chain, current)
		index[*current] = len(chain) - 1

		data, err := m.ghostdagDataStore.Get(current)
		if err != nil {
			return nil, nil, err
		}
		if data.IsGenesis() {
			break
		}
		current = data.SelectedParent()
	}
	return chain, index, nil
}
