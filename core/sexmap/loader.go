// core/sexmap/loader.go
package sexmap

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrSchema reports an unexpected sex-table layout.
var ErrSchema = errors.New("sex table schema mismatch")

// LoadTSV reads the two-column sex table (header "Indv	Sex").
// Blank lines and '#' comments are skipped. A duplicated individual is
// an error; the table is a lookup, not a log.
func LoadTSV(path string) (Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	tbl := make(Table)
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
			if len(f) != 2 || f[0] != "Indv" || f[1] != "Sex" {
				return nil, fmt.Errorf("%s:%d: %w: header wants \"Indv Sex\"", path, ln, ErrSchema)
			}
			sawHeader = true
			continue
		}
		if len(f) != 2 {
			return nil, fmt.Errorf("%s:%d: %w: want 2 fields, got %d", path, ln, ErrSchema, len(f))
		}
		sex, err := Parse(f[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %v", path, ln, err)
		}
		if _, dup := tbl[f[0]]; dup {
			return nil, fmt.Errorf("%s:%d: duplicate individual %q", path, ln, f[0])
		}
		tbl[f[0]] = sex
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, fmt.Errorf("%s: %w: empty table", path, ErrSchema)
	}
	return tbl, nil
}
