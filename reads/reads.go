package reads

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/google/brotli/go/cbrotli"
	"github.com/klauspost/compress/gzip"

	"utg/bnt"
)

// GetReadsFileFormat note "fa"|"fq"|"bam" by the file name suffix, optional
// compress suffix *.gz or *.br
func GetReadsFileFormat(fn string) (format string) {
	sfn := strings.Split(fn, ".")
	if len(sfn) < 2 {
		log.Fatalf("[GetReadsFileFormat] reads file: %v need suffix end with '*.[fasta|fa|fq|fastq|bam][.gz|.br]'\n", fn)
	}
	tmp := sfn[len(sfn)-1]
	if tmp == "gz" || tmp == "br" {
		if len(sfn) < 3 {
			log.Fatalf("[GetReadsFileFormat] reads file: %v need suffix end with '*.[fasta|fa|fq|fastq].[gz|br]'\n", fn)
		}
		tmp = sfn[len(sfn)-2]
	}
	switch tmp {
	case "fa", "fasta":
		format = "fa"
	case "fq", "fastq":
		format = "fq"
	case "bam":
		format = "bam"
	default:
		log.Fatalf("[GetReadsFileFormat] reads file: %v need suffix end with '*.[fasta|fa|fq|fastq|bam][.gz|.br]'\n", fn)
	}

	return format
}

// openReadsFile open fn and stack the decompress reader by the suffix
func openReadsFile(fn string) (io.Reader, func()) {
	fp, err := os.Open(fn)
	if err != nil {
		log.Fatalf("[openReadsFile] file: %v open failed, err: %v\n", fn, err)
	}
	if strings.HasSuffix(fn, ".gz") {
		gzfp, err := gzip.NewReader(fp)
		if err != nil {
			log.Fatalf("[openReadsFile] file: %v create gzip reader err: %v\n", fn, err)
		}
		return gzfp, func() { gzfp.Close(); fp.Close() }
	}
	if strings.HasSuffix(fn, ".br") {
		brfp := cbrotli.NewReader(fp)
		return brfp, func() { brfp.Close(); fp.Close() }
	}
	return fp, func() { fp.Close() }
}

func getFastaReads(r io.Reader, fn string) (seqs []string) {
	fafp := fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA))
	for {
		s, err := fafp.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			log.Fatalf("[getFastaReads] read file: %s error: %v\n", fn, err)
		}
		l := s.(*linear.Seq)
		sq := make([]byte, len(l.Seq))
		for j, v := range l.Seq {
			sq[j] = byte(v)
		}
		seqs = append(seqs, string(sq))
	}
	return seqs
}

func getFastqReads(r io.Reader, fn string) (seqs []string) {
	buffp := bufio.NewReader(r)
	for {
		b := make([][]byte, 4)
		var err error
		i := 0
		for ; i < 4; i++ {
			b[i], err = buffp.ReadBytes('\n')
			if err != nil {
				break
			}
		}
		if err != nil {
			if err != io.EOF {
				log.Fatalf("[getFastqReads] file: %s encounter err: %v\n", fn, err)
			}
			if i == 0 {
				break
			}
			log.Fatalf("[getFastqReads] file: %s found not unbroken record\n", fn)
		}
		if len(b[0]) == 0 || b[0][0] != '@' {
			log.Fatalf("[getFastqReads] file: %s record head line: %s not start with '@'\n", fn, b[0])
		}
		seqs = append(seqs, string(b[1][:len(b[1])-1]))
	}
	return seqs
}

func getBamReads(fn string, numCPU int) (seqs []string) {
	fp, err := os.Open(fn)
	if err != nil {
		log.Fatalf("[getBamReads] open file: %s failed, err: %v\n", fn, err)
	}
	defer fp.Close()
	bamfp, err := bam.NewReader(fp, numCPU/5+1)
	if err != nil {
		log.Fatalf("[getBamReads] create bam.NewReader err: %v\n", err)
	}
	defer bamfp.Close()
	for {
		r, err := bamfp.Read()
		if err != nil {
			break
		}
		if r.Flags&sam.Unmapped != 0 {
			continue
		}
		seqs = append(seqs, string(r.Seq.Expand()))
	}
	return seqs
}

// LoadReads load the read sequences of fns in file then record order,
// normalized to the upper case ACGT alphabet, reads with any other symbol are
// dropped
func LoadReads(fns []string, numCPU int) (reads []string) {
	var dropped int
	for _, fn := range fns {
		format := GetReadsFileFormat(fn)
		var seqs []string
		if format == "bam" {
			seqs = getBamReads(fn, numCPU)
		} else {
			fp, closefn := openReadsFile(fn)
			if format == "fa" {
				seqs = getFastaReads(fp, fn)
			} else {
				seqs = getFastqReads(fp, fn)
			}
			closefn()
		}
		for _, sq := range seqs {
			bs, ok := bnt.Transform2BntByte([]byte(sq))
			if !ok {
				dropped++
				continue
			}
			reads = append(reads, string(bnt.TransformBnt2Char(bs)))
		}
	}
	fmt.Printf("[LoadReads] processed reads number is: %d, dropped: %d\n", len(reads), dropped)
	return reads
}
