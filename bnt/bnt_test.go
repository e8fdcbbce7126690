package bnt

import (
	"bytes"
	"testing"
)

func TestTransform2BntByte(t *testing.T) {
	bs, ok := Transform2BntByte([]byte("ACGTacgt"))
	if !ok {
		t.Fatal("Transform2BntByte(ACGTacgt) not ok")
	}
	want := []byte{0, 1, 2, 3, 0, 1, 2, 3}
	if !bytes.Equal(bs, want) {
		t.Errorf("bnt = %v; want %v", bs, want)
	}
	if got := TransformBnt2Char(bs); !bytes.Equal(got, []byte("ACGTACGT")) {
		t.Errorf("char = %s; want ACGTACGT", got)
	}

	if _, ok := Transform2BntByte([]byte("ACGN")); ok {
		t.Error("Transform2BntByte(ACGN) must not ok")
	}
}

func TestBntRev(t *testing.T) {
	for i := byte(0); i < BaseTypeNum; i++ {
		if BntRev[BntRev[i]] != i {
			t.Errorf("BntRev not self inverse at %d", i)
		}
	}
	if BntRev[Base2Bnt['A']] != Base2Bnt['T'] || BntRev[Base2Bnt['C']] != Base2Bnt['G'] {
		t.Error("BntRev not the complement transform")
	}
}

func TestGetKmerBnt(t *testing.T) {
	kb := GetKmerBnt([]byte("AC"))
	if kb.Len != 2 || len(kb.Seq) != 1 {
		t.Fatalf("kb = %+v", kb)
	}
	// A in the top 2 bits, C the next pair
	if want := uint64(1) << 60; kb.Seq[0] != want {
		t.Errorf("Seq[0] = %x; want %x", kb.Seq[0], want)
	}

	// 33 bases need the second uint64 word
	long := make([]byte, NumBaseInUint64+1)
	for i := range long {
		long[i] = 'T'
	}
	kb = GetKmerBnt(long)
	if kb.Len != NumBaseInUint64+1 || len(kb.Seq) != 2 {
		t.Fatalf("kb = %+v", kb)
	}
}

func TestBiggerThan(t *testing.T) {
	a := GetKmerBnt([]byte("ACGT"))
	b := GetKmerBnt([]byte("ACGA"))
	if !a.BiggerThan(b) {
		t.Error("ACGT must be bigger than ACGA")
	}
	if b.BiggerThan(a) {
		t.Error("ACGA must not be bigger than ACGT")
	}
	c := GetKmerBnt([]byte("ACGTA"))
	if !c.BiggerThan(a) {
		t.Error("longer kmer must be bigger")
	}
}

func Benchmark_Transform2BntByte(b *testing.B) {
	seq := bytes.Repeat([]byte("ACGT"), 64)
	for i := 0; i < b.N; i++ {
		Transform2BntByte(seq)
	}
}
