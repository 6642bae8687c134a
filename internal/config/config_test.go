package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hetscan-core/sexmap"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 0.001, cfg.Alpha)
	require.Equal(t, 0.05, cfg.LinkageThreshold)
	require.Equal(t, 100, cfg.MinLoci)
	sex, err := cfg.Heterogametic()
	require.NoError(t, err)
	require.Equal(t, sexmap.Female, sex)
}

func TestLoad_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "hetscan.yaml")
	require.NoError(t, os.WriteFile(p, []byte(
		"heterogametic_sex: Male\nlinkage_threshold: 0.1\nalpha: 0.01\nmin_loci: 50\nthreads: 4\n"), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, 0.01, cfg.Alpha)
	require.Equal(t, 0.1, cfg.LinkageThreshold)
	require.Equal(t, 50, cfg.MinLoci)
	require.Equal(t, 4, cfg.Threads)
	sex, err := cfg.Heterogametic()
	require.NoError(t, err)
	require.Equal(t, sexmap.Male, sex)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "hetscan.yaml")
	require.NoError(t, os.WriteFile(p, []byte("alpha: 0.01\n"), 0o644))
	t.Setenv("HETSCAN_ALPHA", "0.05")
	t.Setenv("HETSCAN_HETEROGAMETIC_SEX", "male")

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, 0.05, cfg.Alpha)
	sex, err := cfg.Heterogametic()
	require.NoError(t, err)
	require.Equal(t, sexmap.Male, sex)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Alpha = 1.5
	require.Error(t, bad.Validate())

	bad = cfg
	bad.HeterogameticSex = "both"
	require.Error(t, bad.Validate())

	bad = cfg
	bad.Threads = -1
	require.Error(t, bad.Validate())
}
