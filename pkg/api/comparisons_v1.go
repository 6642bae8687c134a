// pkg/api/comparisons_v1.go
package api

// ComparisonV1 is the stable JSON schema for per-scaffold comparison
// rows. Keep fields, names, and types stable. Add new fields only with
// ",omitempty".
type ComparisonV1 struct {
	Scaffold    string  `json:"scaffold"`
	NMale       int     `json:"n_male"`
	NFemale     int     `json:"n_female"`
	MeanMale    float64 `json:"po_het_male"`
	MeanFemale  float64 `json:"po_het_female"`
	SEMMale     float64 `json:"sem_male"`
	SEMFemale   float64 `json:"sem_female"`
	T           float64 `json:"t"`
	DF          float64 `json:"df"`
	P           float64 `json:"p_value"`
	Method      string  `json:"method"`
	Significant string  `json:"significant,omitempty"`
}
