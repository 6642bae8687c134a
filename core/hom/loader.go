// core/hom/loader.go
package hom

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrSchema reports an unexpected homozygosity-table layout.
var ErrSchema = errors.New("homozygosity table schema mismatch")

// Columns is the required header of the homozygosity table, in order.
var Columns = []string{"Scaffold", "Indv", "O(HOM)", "E(hom)", "N", "F"}

// LoadTSV reads a tab-separated homozygosity table. The first
// non-comment line must be the header (see Columns, case-sensitive).
// Blank lines and '#' comments are skipped.
func LoadTSV(path string) ([]Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var list []Record
	sc := bufio.NewScanner(fh)
	ln := 0
	sawHeader := false
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if !sawHeader {
			if err := checkHeader(f); err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, ln, err)
			}
			sawHeader = true
			continue
		}
		if len(f) != len(Columns) {
			return nil, fmt.Errorf("%s:%d: %w: want %d fields, got %d", path, ln, ErrSchema, len(Columns), len(f))
		}
		r := Record{Scaffold: f[0], Individual: f[1]}
		if r.ObsHom, err = strconv.Atoi(f[2]); err != nil {
			return nil, fmt.Errorf("%s:%d bad O(HOM): %v", path, ln, err)
		}
		if r.ExpHom, err = strconv.ParseFloat(f[3], 64); err != nil {
			return nil, fmt.Errorf("%s:%d bad E(hom): %v", path, ln, err)
		}
		if r.Loci, err = strconv.Atoi(f[4]); err != nil {
			return nil, fmt.Errorf("%s:%d bad N: %v", path, ln, err)
		}
		if r.F, err = strconv.ParseFloat(f[5], 64); err != nil {
			return nil, fmt.Errorf("%s:%d bad F: %v", path, ln, err)
		}
		list = append(list, r)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, fmt.Errorf("%s: %w: empty table", path, ErrSchema)
	}
	return list, nil
}

func checkHeader(f []string) error {
	if len(f) != len(Columns) {
		return fmt.Errorf("%w: header wants columns %v", ErrSchema, Columns)
	}
	for i, c := range Columns {
		if f[i] != c {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrSchema, i+1, f[i], c)
		}
	}
	return nil
}
