package dagtraversalmanager

import "github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"

// BlueWindow returns up to windowSize blocks from highHash's
// selected-parent chain, highHash first, for the pastmediantimemanager
// to compute a median timestamp over (spec.md §4.5 pipeline step 0).
// It returns fewer than windowSize hashes once the chain runs into
// genesis.
func (dtm *Manager) BlueWindow(highHash *externalapi.DomainHash, windowSize uint64) ([]*externalapi.DomainHash, error) {
	window := make([]*externalapi.DomainHash, 0, windowSize)
	it := dtm.SelectedParentIterator(highHash)
	for uint64(len(window)) < windowSize {
		hash, err := it.Next()
		if err != nil {
			return nil, err
		}
		if hash == nil {
			break
		}
		window = append(window, hash)
	}
	return window, nil
}
