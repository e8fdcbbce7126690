package dbg

import (
	"log"
	"os"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// GraphvizDBG write the DBG to a dot file, one node per kmer labeled with the
// degree pair, one edge per deduplicated (u,v) pair labeled with the
// multiplicity
func GraphvizDBG(g *DBG, graphfn string) {
	// create a new graph
	gv := gographviz.NewGraph()
	gv.SetName("G")
	gv.SetDir(true)
	gv.SetStrict(false)
	added := make(map[string]bool)
	addNode := func(node string) {
		if added[node] {
			return
		}
		added[node] = true
		attr := make(map[string]string)
		attr["color"] = "Green"
		attr["shape"] = "record"
		attr["label"] = "\"" + node + "|{" + strconv.Itoa(g.InDeg[node]) +
			"|" + strconv.Itoa(g.OutDeg[node]) + "}\""
		gv.AddNode("G", "\""+node+"\"", attr)
	}
	// discovery order, keep the dot output identical between runs
	for _, u := range g.Nodes {
		addNode(u)
		for _, v := range g.Adj[u] {
			addNode(v)
		}
	}
	for _, u := range g.Nodes {
		count := make(map[string]int)
		var order []string
		for _, v := range g.Adj[u] {
			if count[v] == 0 {
				order = append(order, v)
			}
			count[v]++
		}
		for _, v := range order {
			attr := make(map[string]string)
			attr["color"] = "Blue"
			attr["label"] = "\"x" + strconv.Itoa(count[v]) + "\""
			gv.AddEdge("\""+u+"\"", "\""+v+"\"", true, attr)
		}
	}
	gfp, err := os.Create(graphfn)
	if err != nil {
		log.Fatalf("[GraphvizDBG] Create file: %s failed, err: %v\n", graphfn, err)
	}
	defer gfp.Close()
	gfp.WriteString(gv.String())
}
