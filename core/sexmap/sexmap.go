// core/sexmap/sexmap.go
package sexmap

import (
	"fmt"
	"strings"
)

// Sex is the two-valued annotation attached to each individual.
type Sex uint8

const (
	Unknown Sex = iota
	Male
	Female
)

func (s Sex) String() string {
	switch s {
	case Male:
		return "Male"
	case Female:
		return "Female"
	default:
		return "Unknown"
	}
}

// Parse accepts the usual spellings: "M"/"Male", "F"/"Female",
// case-insensitive.
func Parse(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return Male, nil
	case "f", "female":
		return Female, nil
	default:
		return Unknown, fmt.Errorf("unrecognized sex label %q", s)
	}
}

// Table maps an individual identifier (case-sensitive, must match the
// homozygosity table exactly) to its sex.
type Table map[string]Sex
