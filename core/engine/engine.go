// core/engine/engine.go
package engine

import (
	"fmt"

	"hetscan-core/sexmap"
)

// Config holds the comparison and candidate-filter parameters.
type Config struct {
	Alpha            float64    // significance level for the p-value cut
	LinkageThreshold float64    // heterozygosity ceiling for the heterogametic sex
	Heterogametic    sexmap.Sex // which sex carries two different sex chromosomes
}

const (
	DefaultAlpha            = 0.001
	DefaultLinkageThreshold = 0.05
)

// Engine classifies per-scaffold comparisons with a given config.
type Engine struct {
	cfg Config
}

// New creates an Engine, filling zero-valued config fields with the
// defaults (ZW system: heterogametic female).
func New(c Config) *Engine {
	if c.Alpha == 0 {
		c.Alpha = DefaultAlpha
	}
	if c.LinkageThreshold == 0 {
		c.LinkageThreshold = DefaultLinkageThreshold
	}
	if c.Heterogametic == sexmap.Unknown {
		c.Heterogametic = sexmap.Female
	}
	return &Engine{cfg: c}
}

// Config returns the effective configuration.
func (e *Engine) Config() Config { return e.cfg }

// GroupSummary is the per-(scaffold, sex) aggregate of PropObsHet.
type GroupSummary struct {
	Scaffold string
	Sex      sexmap.Sex
	N        int
	Mean     float64
	SEM      float64
}

// Summary is one scaffold's wide row, both sexes side by side. Only
// scaffolds with defined aggregates for both sexes get a Summary.
type Summary struct {
	Scaffold   string
	NMale      int
	NFemale    int
	MeanMale   float64
	MeanFemale float64
	SEMMale    float64
	SEMFemale  float64
}

// Comparison is a scaffold's test result joined with its Summary.
type Comparison struct {
	Summary
	T           float64
	DF          float64
	P           float64
	Method      string
	Significant string
}

// Label renders the significance classification for a p-value. The
// strict inequality is deliberate; the candidate cut (Candidate) is
// inclusive.
func (e *Engine) Label(p float64) string {
	if p < e.cfg.Alpha {
		return fmt.Sprintf("p-value < %g", e.cfg.Alpha)
	}
	return fmt.Sprintf("p-value >= %g", e.cfg.Alpha)
}

// Candidate reports whether a comparison passes the sex-linkage filter:
// an inclusive p-value cut plus near-zero heterozygosity in the
// heterogametic sex.
func (e *Engine) Candidate(c Comparison) bool {
	if !(c.P <= e.cfg.Alpha) { // NaN-safe
		return false
	}
	mean := c.MeanFemale
	if e.cfg.Heterogametic == sexmap.Male {
		mean = c.MeanMale
	}
	return mean < e.cfg.LinkageThreshold
}
