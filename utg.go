package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/jwaldrip/odin/cli"

	"utg/dbg"
)

const Kmerdef = 31

var app = cli.New("1.0.0", "greedy unitig extraction from a de Bruijn graph of sequencing reads", func(c cli.Command) {})

func init() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6090", nil))
	}()
	app.DefineStringFlag("C", "", "read library configure file")
	app.DefineStringFlag("cpuprofile", "", "write cpu profile to <prefix>.<cmd>.prof")
	app.DefineIntFlag("K", Kmerdef, "kmer length")
	app.DefineStringFlag("p", "utg", "prefix of the output file")
	app.DefineIntFlag("t", 1, "number of CPU used")

	cdbg := app.DefineSubCommand("cdbg", "construct De bruijn Graph and report stats", dbg.CDBG)
	{
		cdbg.DefineStringFlag("input", "", "comma separated reads file list, override the 'C' cfg")
		cdbg.DefineBoolFlag("Graph", false, "output dot graph file")
	}
	utg := app.DefineSubCommand("utg", "construct De bruijn Graph and extract unitigs", dbg.UTG)
	{
		utg.DefineStringFlag("input", "", "comma separated reads file list, override the 'C' cfg")
	}
}

func main() {
	app.Start()
}
