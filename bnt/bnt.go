package bnt

// base numerical transform, 2-bits per base

const (
	BaseTypeNum     = 4
	NumBitsInBase   = 2
	NumBaseInByte   = 4
	NumBaseInUint64 = 32
	InvalidBase     = BaseTypeNum
)

var Bnt2Base = [BaseTypeNum]byte{'A', 'C', 'G', 'T'}

// BntRev note the complement bnt base
var BntRev = [BaseTypeNum]byte{3, 2, 1, 0}

var Base2Bnt = func() (m [256]byte) {
	for i := range m {
		m[i] = InvalidBase
	}
	m['A'], m['a'] = 0, 0
	m['C'], m['c'] = 1, 1
	m['G'], m['g'] = 2, 2
	m['T'], m['t'] = 3, 3
	return m
}()

// Transform2BntByte transform base char sequence to the bnt byte sequence,
// ok == false if seq contain any base not in [ACGTacgt]
func Transform2BntByte(seq []byte) (bs []byte, ok bool) {
	bs = make([]byte, len(seq))
	for i, c := range seq {
		b := Base2Bnt[c]
		if b == InvalidBase {
			return nil, false
		}
		bs[i] = b
	}
	return bs, true
}

// TransformBnt2Char transform bnt byte sequence back to the base char sequence
func TransformBnt2Char(bs []byte) []byte {
	seq := make([]byte, len(bs))
	for i, b := range bs {
		seq[i] = Bnt2Base[b]
	}
	return seq
}

// KmerBnt compact kmer base sequence to the uint64 Array
type KmerBnt struct {
	Seq []uint64
	Len int // length of Sequence
}

// GetKmerBnt pack a kmer char sequence, Base2Bnt per base, NumBaseInUint64
// bases per word, first base in the high bits of Seq[0]
func GetKmerBnt(kmer []byte) (kb KmerBnt) {
	kb.Len = len(kmer)
	kb.Seq = make([]uint64, (len(kmer)+NumBaseInUint64-1)/NumBaseInUint64)
	for i, c := range kmer {
		b := uint64(Base2Bnt[c] & 0x3)
		kb.Seq[i/NumBaseInUint64] |= b << uint((NumBaseInUint64-1-i%NumBaseInUint64)*NumBitsInBase)
	}
	return kb
}

func (k1 KmerBnt) BiggerThan(k2 KmerBnt) bool {
	if k1.Len < k2.Len {
		return false
	} else if k1.Len > k2.Len {
		return true
	} else {
		for i := 0; i < len(k1.Seq); i++ {
			if k1.Seq[i] < k2.Seq[i] {
				return false
			} else if k1.Seq[i] > k2.Seq[i] {
				return true
			}
		}
	}

	return false
}
