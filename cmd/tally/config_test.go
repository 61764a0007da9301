package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
samples:
  - "1,2,3"
  - "//;\n4;5"
  - ""
`

func TestLoadSamples(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tally.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	samples, err := loadSamples(path)
	require.NoError(t, err)

	// Quoted YAML decodes \n into a real newline.
	assert.Equal(t, []string{"1,2,3", "//;\n4;5", ""}, samples)
}

func TestLoadSamples_FileNotFound(t *testing.T) {
	_, err := loadSamples("/no/such/file.yaml")
	assert.Error(t, err)
}

func TestLoadSamples_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tally.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples: []\n"), 0o600))

	_, err := loadSamples(path)
	assert.ErrorContains(t, err, "no samples")
}

func TestLoadEnvOptions(t *testing.T) {
	t.Setenv("TALLY_SAMPLES", "demo.yaml")
	t.Setenv("TALLY_NO_COLOR", "true")

	opts, err := loadEnvOptions()
	require.NoError(t, err)

	assert.Equal(t, "demo.yaml", opts.Samples)
	assert.True(t, opts.NoColor)
}

func TestLoadEnvOptions_Defaults(t *testing.T) {
	t.Setenv("TALLY_SAMPLES", "")
	t.Setenv("TALLY_NO_COLOR", "")

	opts, err := loadEnvOptions()
	require.NoError(t, err)

	assert.Empty(t, opts.Samples)
	assert.False(t, opts.NoColor)
}
