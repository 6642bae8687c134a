package plotout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"hetscan-core/engine"
)

func TestScatter_WritesPNG(t *testing.T) {
	rows := []engine.Comparison{
		{
			Summary: engine.Summary{Scaffold: "chrZ",
				MeanMale: 0.30, MeanFemale: 0.02, SEMMale: 0.004, SEMFemale: 0.001},
			P: 1e-12, Significant: "p-value < 0.001",
		},
		{
			Summary: engine.Summary{Scaffold: "scaffold_7",
				MeanMale: 0.21, MeanFemale: 0.22, SEMMale: 0.01, SEMFemale: 0.02},
			P: 0.6, Significant: "p-value >= 0.001",
		},
	}
	path := filepath.Join(t.TempDir(), "scatter.png")
	require.NoError(t, Scatter(rows, "test", path, 16*vg.Centimeter, 12*vg.Centimeter))

	st, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, st.Size(), int64(0))
}

func TestScatter_EmptyInputStillRenders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.svg")
	require.NoError(t, Scatter(nil, "empty", path, 10*vg.Centimeter, 10*vg.Centimeter))
	_, err := os.Stat(path)
	require.NoError(t, err)
}
