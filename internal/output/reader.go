// internal/output/reader.go
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hetscan-core/engine"
)

// ReadComparisonsTSV parses a comparison table previously produced by
// WriteComparisonsTSV, used by the plotting binary. The header row is
// required and checked against ComparisonHeader.
func ReadComparisonsTSV(r io.Reader) ([]engine.Comparison, error) {
	want := strings.Split(ComparisonHeader, "\t")
	sc := bufio.NewScanner(r)
	ln := 0
	sawHeader := false
	var list []engine.Comparison
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		f := strings.Split(line, "\t")
		if !sawHeader {
			if len(f) != len(want) {
				return nil, fmt.Errorf("line %d: header wants %d columns, got %d", ln, len(want), len(f))
			}
			for i := range want {
				if f[i] != want[i] {
					return nil, fmt.Errorf("line %d: column %d is %q, want %q", ln, i+1, f[i], want[i])
				}
			}
			sawHeader = true
			continue
		}
		if len(f) != len(want) {
			return nil, fmt.Errorf("line %d: want %d fields, got %d", ln, len(want), len(f))
		}
		var (
			c   engine.Comparison
			err error
		)
		c.Scaffold = f[0]
		if c.MeanMale, err = strconv.ParseFloat(f[1], 64); err != nil {
			return nil, fmt.Errorf("line %d: bad PO.het_Male: %v", ln, err)
		}
		if c.MeanFemale, err = strconv.ParseFloat(f[2], 64); err != nil {
			return nil, fmt.Errorf("line %d: bad PO.het_Female: %v", ln, err)
		}
		if c.SEMMale, err = strconv.ParseFloat(f[3], 64); err != nil {
			return nil, fmt.Errorf("line %d: bad sem_Male: %v", ln, err)
		}
		if c.SEMFemale, err = strconv.ParseFloat(f[4], 64); err != nil {
			return nil, fmt.Errorf("line %d: bad sem_Female: %v", ln, err)
		}
		if c.P, err = strconv.ParseFloat(f[5], 64); err != nil {
			return nil, fmt.Errorf("line %d: bad p.value: %v", ln, err)
		}
		c.Method = f[6]
		c.Significant = f[7]
		list = append(list, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, fmt.Errorf("empty comparison table")
	}
	return list, nil
}

// IsSignificant reports whether a row carries the below-alpha label.
func IsSignificant(c engine.Comparison) bool {
	return strings.HasPrefix(c.Significant, "p-value <")
}
