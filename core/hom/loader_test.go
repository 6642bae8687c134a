package hom

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const goodTable = `Scaffold	Indv	O(HOM)	E(hom)	N	F
# vcftools --het, scaffold_1
scaffold_1	ind_01	900	850.5	1000	0.33
scaffold_1	ind_02	120	110.2	150	0.25
`

func writeTemp(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "het.tsv")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadTSV(t *testing.T) {
	recs, err := LoadTSV(writeTemp(t, goodTable))
	if err != nil {
		t.Fatalf("LoadTSV: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	r := recs[0]
	if r.Scaffold != "scaffold_1" || r.Individual != "ind_01" ||
		r.ObsHom != 900 || r.ExpHom != 850.5 || r.Loci != 1000 || r.F != 0.33 {
		t.Fatalf("bad record: %+v", r)
	}
}

func TestLoadTSV_MissingFile(t *testing.T) {
	if _, err := LoadTSV(filepath.Join(t.TempDir(), "nope.tsv")); !os.IsNotExist(err) {
		t.Fatalf("want not-exist error, got %v", err)
	}
}

func TestLoadTSV_BadHeader(t *testing.T) {
	_, err := LoadTSV(writeTemp(t, "Scaffold\tIndv\tO(HOM)\tE(hom)\tN_SITES\tF\n"))
	if !errors.Is(err, ErrSchema) {
		t.Fatalf("want ErrSchema, got %v", err)
	}
}

func TestLoadTSV_BadFieldCount(t *testing.T) {
	_, err := LoadTSV(writeTemp(t, "Scaffold\tIndv\tO(HOM)\tE(hom)\tN\tF\nscaffold_1\tind_01\t900\n"))
	if !errors.Is(err, ErrSchema) {
		t.Fatalf("want ErrSchema, got %v", err)
	}
}

func TestLoadTSV_BadNumber(t *testing.T) {
	_, err := LoadTSV(writeTemp(t, "Scaffold\tIndv\tO(HOM)\tE(hom)\tN\tF\nscaffold_1\tind_01\tnine\t850.5\t1000\t0.33\n"))
	if err == nil {
		t.Fatal("want parse error, got nil")
	}
}

func TestLoadTSV_EmptyTable(t *testing.T) {
	_, err := LoadTSV(writeTemp(t, "# nothing here\n"))
	if !errors.Is(err, ErrSchema) {
		t.Fatalf("want ErrSchema, got %v", err)
	}
}
