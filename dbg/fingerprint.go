package dbg

import (
	"encoding/binary"

	"github.com/cespare/xxhash"

	"utg/bnt"
)

// Fingerprint hash the graph in its stored order, nodes then the adjacency
// list of every node, kmers in the 2-bits packed form. Same read set and
// kmerlen must note the same fingerprint between runs.
func (g *DBG) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	writeKmer := func(kmer string) {
		kb := bnt.GetKmerBnt([]byte(kmer))
		for _, w := range kb.Seq {
			binary.LittleEndian.PutUint64(buf[:], w)
			h.Write(buf[:])
		}
		binary.LittleEndian.PutUint64(buf[:], uint64(kb.Len))
		h.Write(buf[:])
	}
	for _, u := range g.Nodes {
		writeKmer(u)
		binary.LittleEndian.PutUint64(buf[:], uint64(len(g.Adj[u])))
		h.Write(buf[:])
		for _, v := range g.Adj[u] {
			writeKmer(v)
		}
	}
	return h.Sum64()
}
