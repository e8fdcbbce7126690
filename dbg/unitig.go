package dbg

import (
	"errors"
	"fmt"
)

// ErrBrokenInvariant note the degree maps disagree with Adj, a caller contract
// violation, never retried
var ErrBrokenInvariant = errors.New("dbg: degree maps inconsistent with adjacency")

type edgeKey struct {
	u, v string
}

// Unitigs greedy extract the maximal non-branching node paths. Anchors are
// scanned in Nodes order, the neighbors of one anchor in Adj list order, so
// the output order is reproducible for the same input. The visited set is
// keyed by the (source, destination) pair, parallel edges collapse to one
// traversal and the output covers the deduplicated edge set. Each deduplicated
// edge is walked exactly once, O(|E|) overall.
//
// A pure cycle hold no anchor and yield no unitig. A node that never occurs as
// an edge source is absent from Adj and never enumerated.
func (g *DBG) Unitigs() ([][]string, error) {
	visited := make(map[edgeKey]struct{})
	var unitigs [][]string

	for _, v := range g.Nodes {
		if !g.IsAnchor(v) {
			continue
		}
		for _, w := range g.Adj[v] {
			if _, ok := visited[edgeKey{v, w}]; ok {
				continue
			}
			path := []string{v}
			visited[edgeKey{v, w}] = struct{}{}
			cur := w
			for g.InDeg[cur] == 1 && g.OutDeg[cur] == 1 {
				path = append(path, cur)
				ws := g.Adj[cur]
				if len(ws) == 0 {
					return nil, fmt.Errorf("%w: OutDeg[%s]==1 but Adj[%s] is empty", ErrBrokenInvariant, cur, cur)
				}
				next := ws[0]
				visited[edgeKey{cur, next}] = struct{}{}
				cur = next
			}
			path = append(path, cur)
			unitigs = append(unitigs, path)
		}
	}
	return unitigs, nil
}

// SpellPath render a unitig node path to its base sequence, the first kmer
// plus the last base of every following kmer
func SpellPath(path []string) []byte {
	if len(path) == 0 {
		return nil
	}
	seq := make([]byte, 0, len(path[0])+len(path)-1)
	seq = append(seq, path[0]...)
	for _, node := range path[1:] {
		seq = append(seq, node[len(node)-1])
	}
	return seq
}
