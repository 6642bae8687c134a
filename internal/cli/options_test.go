package cli

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("hetscan")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseArgs_Minimal(t *testing.T) {
	opt, err := parse(t, "--hom", "het.tsv", "--sex", "sex.tsv")
	require.NoError(t, err)
	require.Equal(t, "het.tsv", opt.HomFile)
	require.Equal(t, "sex.tsv", opt.SexFile)
	require.Equal(t, 0.001, opt.Alpha)
	require.Equal(t, 100, opt.MinLoci)
	require.True(t, opt.Header)
	require.True(t, opt.WasSet("hom"))
	require.False(t, opt.WasSet("alpha"))
}

func TestParseArgs_RequiredInputs(t *testing.T) {
	_, err := parse(t, "--sex", "sex.tsv")
	require.Error(t, err)
	_, err = parse(t, "--hom", "het.tsv")
	require.Error(t, err)
}

func TestParseArgs_Validation(t *testing.T) {
	for _, argv := range [][]string{
		{"--hom", "h", "--sex", "s", "--alpha", "1.5"},
		{"--hom", "h", "--sex", "s", "--linkage-threshold", "0"},
		{"--hom", "h", "--sex", "s", "--output", "xml"},
		{"--hom", "h", "--sex", "s", "--threads", "-1"},
		{"--hom", "h", "--sex", "s", "--min-loci", "-5"},
	} {
		_, err := parse(t, argv...)
		require.Error(t, err, "argv %v", argv)
	}
}

func TestParseArgs_Help(t *testing.T) {
	_, err := parse(t, "-h")
	require.True(t, errors.Is(err, flag.ErrHelp))
}

func TestParseArgs_NoHeader(t *testing.T) {
	opt, err := parse(t, "--hom", "h", "--sex", "s", "--no-header")
	require.NoError(t, err)
	require.False(t, opt.Header)
}
