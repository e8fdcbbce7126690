package reads

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestGetReadsFileFormat(t *testing.T) {
	cases := []struct {
		fn, format string
	}{
		{"reads.fa", "fa"},
		{"reads.fasta", "fa"},
		{"reads.fa.gz", "fa"},
		{"reads.fasta.br", "fa"},
		{"reads.fq", "fq"},
		{"reads.fastq.gz", "fq"},
		{"reads.fq.br", "fq"},
		{"aln.bam", "bam"},
		{"sample_1.K31.fq.gz", "fq"},
	}
	for _, c := range cases {
		if got := GetReadsFileFormat(c.fn); got != c.format {
			t.Errorf("GetReadsFileFormat(%s) = %s; want %s", c.fn, got, c.format)
		}
	}
}

func TestLoadReadsFasta(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "reads.fa")
	fa := ">1 first\nACGTACGT\n>2 multi line record\nacgt\nACGT\n"
	if err := ioutil.WriteFile(fn, []byte(fa), 0644); err != nil {
		t.Fatal(err)
	}
	got := LoadReads([]string{fn}, 1)
	want := []string{"ACGTACGT", "ACGTACGT"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadReads = %v; want %v", got, want)
	}
}

func TestLoadReadsFastqGz(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "reads.fq.gz")
	fp, err := os.Create(fn)
	if err != nil {
		t.Fatal(err)
	}
	gzfp := gzip.NewWriter(fp)
	fq := "@1\nACGTN\n+\nIIIII\n@2\nggcaa\n+\nIIIII\n"
	if _, err := gzfp.Write([]byte(fq)); err != nil {
		t.Fatal(err)
	}
	gzfp.Close()
	fp.Close()

	// read 1 contain 'N', dropped by the alphabet normalization
	got := LoadReads([]string{fn}, 1)
	want := []string{"GGCAA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadReads = %v; want %v", got, want)
	}
}

func TestLoadReadsFileOrder(t *testing.T) {
	dir := t.TempDir()
	fn1 := filepath.Join(dir, "a.fa")
	fn2 := filepath.Join(dir, "b.fa")
	if err := ioutil.WriteFile(fn1, []byte(">1\nAAAA\n>2\nCCCC\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(fn2, []byte(">3\nGGGG\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got := LoadReads([]string{fn2, fn1}, 1)
	want := []string{"GGGG", "AAAA", "CCCC"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadReads = %v; want %v", got, want)
	}
}
