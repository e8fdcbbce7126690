package dbg

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/jwaldrip/odin/cli"
	"github.com/klauspost/compress/gzip"

	"utg/reads"
	"utg/utils"
)

type Options struct {
	utils.ArgsOpt
	Input string
	Graph bool
}

func checkArgs(c cli.Command) (opt Options, suc bool) {
	opt.Input = c.Flag("input").String()
	return opt, true
}

func setup(c cli.Command, subcmd string) (opt Options, readsArr []string) {
	gOpt, suc := utils.CheckGlobalArgs(c.Parent())
	if suc == false {
		log.Fatalf("[%s] check global Arguments error, opt: %v\n", subcmd, gOpt)
	}
	tmp, suc := checkArgs(c)
	if suc == false {
		log.Fatalf("[%s] check Arguments error, opt: %v\n", subcmd, tmp)
	}
	opt = tmp
	opt.ArgsOpt = gOpt
	fmt.Printf("[%s] opt: %v\n", subcmd, opt)
	runtime.GOMAXPROCS(opt.NumCPU)

	if opt.Cpuprofile != "" {
		profileFn := opt.Prefix + "." + subcmd + ".prof"
		cpuprofilefp, err := os.Create(profileFn)
		if err != nil {
			log.Fatalf("[%s] open cpuprofile file: %v failed\n", subcmd, profileFn)
		}
		pprof.StartCPUProfile(cpuprofilefp)
	}

	var fns []string
	if opt.Input != "" {
		fns = strings.Split(opt.Input, ",")
	} else {
		if opt.CfgFn == "" {
			log.Fatalf("[%s] none of args 'input' and 'C' set\n", subcmd)
		}
		cfgInfo, err := reads.ParseCfg(opt.CfgFn)
		if err != nil {
			log.Fatalf("[%s] parse cfg: %v err: %v\n", subcmd, opt.CfgFn, err)
		}
		fns = cfgInfo.FileNames()
	}
	if len(fns) == 0 {
		log.Fatalf("[%s] no reads file found\n", subcmd)
	}
	readsArr = reads.LoadReads(fns, opt.NumCPU)
	return opt, readsArr
}

// CDBG construct the De bruijn graph from the read set and report the graph
// stats, optional write the dot file
func CDBG(c cli.Command) {
	opt, readsArr := setup(c, "CDBG")
	defer pprof.StopCPUProfile()
	graph, ok := c.Flag("Graph").Get().(bool)
	if !ok {
		log.Fatalf("[CDBG] args 'Graph': %v set error\n", c.Flag("Graph").String())
	}
	opt.Graph = graph

	g := ConstructDBG(readsArr, opt.Kmer)
	var anchorNum int
	for _, v := range g.Nodes {
		if g.IsAnchor(v) {
			anchorNum++
		}
	}
	fmt.Printf("[CDBG] node number: %d, edge number: %d, anchor number: %d, max out degree: %d\n",
		g.NodeCount(), g.EdgeCount(), anchorNum, g.MaxOutDeg())
	fmt.Printf("[CDBG] graph fingerprint: %016x\n", g.Fingerprint())
	if opt.Graph {
		graphfn := opt.Prefix + ".dot"
		GraphvizDBG(g, graphfn)
		fmt.Printf("[CDBG] write dot file: %s\n", graphfn)
	}
}

// UTG construct the De bruijn graph and extract the maximal non-branching
// paths, write <prefix>.utg.fa.gz and <prefix>.utg.path
func UTG(c cli.Command) {
	opt, readsArr := setup(c, "UTG")
	defer pprof.StopCPUProfile()

	g := ConstructDBG(readsArr, opt.Kmer)
	unitigs, err := g.Unitigs()
	if err != nil {
		log.Fatalf("[UTG] extract unitigs err: %v\n", err)
	}
	WriteUnitigs(opt.Prefix, unitigs)
	var totalLen int
	for _, path := range unitigs {
		totalLen += opt.Kmer + len(path) - 1
	}
	fmt.Printf("[UTG] unitig number: %d, total spelled length: %d\n", len(unitigs), totalLen)
}

// WriteUnitigs write the spelled unitig sequences to <prefix>.utg.fa.gz and
// the node paths to <prefix>.utg.path, both in extraction order
func WriteUnitigs(prefix string, unitigs [][]string) {
	faFn := prefix + ".utg.fa.gz"
	fafp, err := os.Create(faFn)
	if err != nil {
		log.Fatalf("[WriteUnitigs] Create file: %s failed, err: %v\n", faFn, err)
	}
	defer fafp.Close()
	gzfp := gzip.NewWriter(fafp)
	defer gzfp.Close()
	buffp := bufio.NewWriter(gzfp)
	defer buffp.Flush()

	pathFn := prefix + ".utg.path"
	pathfp, err := os.Create(pathFn)
	if err != nil {
		log.Fatalf("[WriteUnitigs] Create file: %s failed, err: %v\n", pathFn, err)
	}
	defer pathfp.Close()
	pathbuffp := bufio.NewWriter(pathfp)
	defer pathbuffp.Flush()

	for i, path := range unitigs {
		seq := SpellPath(path)
		fmt.Fprintf(buffp, ">utg%d len:%d nodes:%d\n%s\n", i, len(seq), len(path), seq)
		fmt.Fprintf(pathbuffp, "utg%d\t%s\n", i, strings.Join(path, " "))
	}
}
