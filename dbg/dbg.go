package dbg

import (
	"utg/utils"
)

// DBG is a de Bruijn multigraph over kmer nodes. Nodes keeps the Adj keys in
// first-insertion order, the unitig traversal order depends on it, so Adj must
// never be written except through addEdge.
type DBG struct {
	Kmerlen int
	Nodes   []string // Adj keys, first-insertion order
	Adj     map[string][]string
	InDeg   map[string]int
	OutDeg  map[string]int
}

func NewDBG(kmerlen int) *DBG {
	return &DBG{
		Kmerlen: kmerlen,
		Adj:     make(map[string][]string),
		InDeg:   make(map[string]int),
		OutDeg:  make(map[string]int),
	}
}

func (g *DBG) addEdge(u, v string) {
	if _, ok := g.Adj[u]; !ok {
		g.Nodes = append(g.Nodes, u)
	}
	g.Adj[u] = append(g.Adj[u], v)
	g.OutDeg[u]++
	g.InDeg[v]++
	// every node referenced by an edge get an entry in both degree maps
	if _, ok := g.InDeg[u]; !ok {
		g.InDeg[u] = 0
	}
	if _, ok := g.OutDeg[v]; !ok {
		g.OutDeg[v] = 0
	}
}

// ConstructDBG build the DBG from the read set by a sliding window of kmerlen,
// one edge occurrence per window position, u = read[i:i+k], v = read[i+1:i+k+1].
// Reads shorter than kmerlen+1 contribute no edge. kmerlen <= 0 or no read long
// enough note an empty graph, not an error.
func ConstructDBG(reads []string, kmerlen int) *DBG {
	g := NewDBG(kmerlen)
	if kmerlen <= 0 {
		return g
	}
	for _, read := range reads {
		for i := 0; i+kmerlen < len(read); i++ {
			u := read[i : i+kmerlen]
			v := read[i+1 : i+kmerlen+1]
			g.addEdge(u, v)
		}
	}
	return g
}

// EdgeCount note the total edge occurrences, multi-edges counted separately
func (g *DBG) EdgeCount() (num int) {
	for _, ws := range g.Adj {
		num += len(ws)
	}
	return num
}

// NodeCount note the number of distinct nodes referenced by any edge
func (g *DBG) NodeCount() int {
	return len(g.InDeg)
}

// IsAnchor note node can not used as the interior link of a non-branching chain
func (g *DBG) IsAnchor(node string) bool {
	return g.InDeg[node] != 1 || g.OutDeg[node] != 1 ||
		(g.InDeg[node] == 0 && g.OutDeg[node] == 0)
}

// MaxOutDeg used by the cdbg stats report
func (g *DBG) MaxOutDeg() (max int) {
	for _, d := range g.OutDeg {
		max = utils.MaxInt(max, d)
	}
	return max
}
