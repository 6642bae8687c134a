package sqlout

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hetscan-core/engine"
	"hetscan-core/sexmap"
)

func TestStoreRun(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "results.sqlite"))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	cfg := engine.Config{Alpha: 0.001, LinkageThreshold: 0.05, Heterogametic: sexmap.Female}
	rows := []engine.Comparison{
		{
			Summary: engine.Summary{Scaffold: "chrZ", NMale: 10, NFemale: 10,
				MeanMale: 0.3, MeanFemale: 0.02, SEMMale: 0.004, SEMFemale: 0.001},
			T: 55, DF: 11, P: 1e-12,
			Method: "Welch two-sample t-test", Significant: "p-value < 0.001",
		},
		{
			Summary: engine.Summary{Scaffold: "scaffold_7", NMale: 5, NFemale: 5,
				MeanMale: 0.2, MeanFemale: 0.21, SEMMale: 0.01, SEMFemale: 0.01},
			T: -0.5, DF: 8, P: 0.6,
			Method: "Welch two-sample t-test", Significant: "p-value >= 0.001",
		},
	}
	isCand := func(c engine.Comparison) bool { return c.Scaffold == "chrZ" }
	require.NoError(t, StoreRun(db, cfg, rows, isCand))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM comparisons`).Scan(&n))
	require.Equal(t, 2, n)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM comparisons WHERE candidate = 1`).Scan(&n))
	require.Equal(t, 1, n)

	var scaffold string
	require.NoError(t, db.QueryRow(
		`SELECT scaffold FROM comparisons WHERE p_value < 0.001`).Scan(&scaffold))
	require.Equal(t, "chrZ", scaffold)
}
