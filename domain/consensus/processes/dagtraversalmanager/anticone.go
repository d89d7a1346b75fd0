package dagtraversalmanager

import "github.com/kaspanet/ghostdag-core/domain/consensus/model/externalapi"

// Anticone returns every block in the DAG whose relation to blockHash
// is mutual unreachability, found by walking back from every current
// tip, pruning branches that run into blockHash's past and skipping
// (but still walking through) blocks in blockHash's future.
func (dtm *Manager) Anticone(blockHash *externalapi.DomainHash) ([]*externalapi.DomainHash, error) {
	anticone := make([]*externalapi.DomainHash, 0)
	queue := dtm.relationStore.Tips()
	visited := make(map[externalapi.DomainHash]struct{})

	for len(queue) > 0 {
		var current *externalapi.DomainHash
		current, queue = queue[0], queue[1:]

		if _, seen := visited[*current]; seen {
			continue
		}
		visited[*current] = struct{}{}

		currentIsAncestorOfBlock, err := dtm.dagTopologyManager.IsAncestorOf(current, blockHash)
		if err != nil {
			return nil, err
		}
		if currentIsAncestorOfBlock {
			continue
		}

		blockIsAncestorOfCurrent, err := dtm.dagTopologyManager.IsAncestorOf(blockHash, current)
		if err != nil {
			return nil, err
		}
		if !blockIsAncestorOfCurrent {
			anticone = append(anticone, current)
		}

		currentParents, err := dtm.dagTopologyManager.Parents(current)
		if err != nil {
			return nil, err
		}
		queue = append(queue, currentParents...)
	}

	return anticone, nil
}
