package reads

import (
	"bufio"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

type LibInfo struct {
	Name       string // name of library
	AsmFlag    uint8  // note which assembly phase used, 1 used for all step of assembly pipeline
	SeqProfile uint8  // note the data origin
	FnName     []string
}

type CfgInfo struct {
	MaxRdLen int // maximum read length
	MinRdLen int // minimum read length
	Libs     []LibInfo
}

// ParseCfg parse the read library config file, one [LIB] block per library,
// read files listed by 'f' lines
func ParseCfg(fn string) (cfgInfo CfgInfo, e error) {
	var inFile *os.File
	var err error
	if inFile, err = os.Open(fn); err != nil {
		log.Fatal(err)
	}
	var libInfo LibInfo
	defer inFile.Close()
	reader := bufio.NewReader(inFile)
	eof := false
	for !eof {
		var line string
		line, err = reader.ReadString('\n')
		if err == io.EOF {
			err = nil
			eof = true
		} else if err != nil {
			log.Fatal(err)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		var v int
		switch fields[0] {
		case "[global_setting]":
		case "[LIB]":
			if libInfo.Name != "" {
				cfgInfo.Libs = append(cfgInfo.Libs, libInfo)
				var nli LibInfo
				libInfo = nli
			}
		case "max_rd_len":
			v, err = strconv.Atoi(fields[2])
			cfgInfo.MaxRdLen = v
		case "min_rd_len":
			v, err = strconv.Atoi(fields[2])
			cfgInfo.MinRdLen = v
		case "name":
			libInfo.Name = fields[2]
		case "asm_flag":
			v, err = strconv.Atoi(fields[2])
			libInfo.AsmFlag = uint8(v)
		case "seq_profile":
			v, err = strconv.Atoi(fields[2])
			libInfo.SeqProfile = uint8(v)
		case "f", "f1", "f2":
			libInfo.FnName = append(libInfo.FnName, fields[2])
		default:
			if fields[0][0] != '#' && fields[0][0] != ';' {
				log.Fatalf("[ParseCfg] noknown line: %v\n", line)
			}
		}
		if err != nil {
			log.Fatalf("[ParseCfg] line: %v parse err: %v\n", line, err)
		}
	}
	if libInfo.Name != "" {
		cfgInfo.Libs = append(cfgInfo.Libs, libInfo)
	}

	return cfgInfo, nil
}

// FileNames collect the read file names of every library in cfg order
func (cfgInfo CfgInfo) FileNames() (fns []string) {
	for _, lib := range cfgInfo.Libs {
		fns = append(fns, lib.FnName...)
	}
	return fns
}
