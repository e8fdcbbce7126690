package reads

import (
	"io/ioutil"
	"path/filepath"
	"reflect"
	"testing"
)

const cfgText = `[global_setting]
max_rd_len = 100
min_rd_len = 50
# comment line
[LIB]
name = lib1
asm_flag = 1
seq_profile = 1
f1 = lib1_1.fa
f2 = lib1_2.fa.gz
[LIB]
name = ont
f = ont.fq
`

func TestParseCfg(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "utg.cfg")
	if err := ioutil.WriteFile(fn, []byte(cfgText), 0644); err != nil {
		t.Fatal(err)
	}
	cfgInfo, err := ParseCfg(fn)
	if err != nil {
		t.Fatalf("ParseCfg err: %v", err)
	}
	if cfgInfo.MaxRdLen != 100 || cfgInfo.MinRdLen != 50 {
		t.Errorf("rd len = (%d,%d); want (100,50)", cfgInfo.MaxRdLen, cfgInfo.MinRdLen)
	}
	if len(cfgInfo.Libs) != 2 {
		t.Fatalf("lib number = %d; want 2", len(cfgInfo.Libs))
	}
	lib := cfgInfo.Libs[0]
	if lib.Name != "lib1" || lib.AsmFlag != 1 || lib.SeqProfile != 1 {
		t.Errorf("lib1 = %+v", lib)
	}
	want := []string{"lib1_1.fa", "lib1_2.fa.gz", "ont.fq"}
	if got := cfgInfo.FileNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("FileNames = %v; want %v", got, want)
	}
}
