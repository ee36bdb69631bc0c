package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestEmpty_Defaults(t *testing.T) {
	t.Parallel()

	cfg := Empty()
	assert.Equal(t, 10.0, cfg.GetThresholdKm())
	assert.Equal(t, 1.0, cfg.GetSafeDistanceKm())
	assert.Equal(t, 0.01, cfg.GetCollisionRadiusKm())
	assert.Equal(t, 10000, cfg.GetSampleCount())
	assert.Equal(t, uint64(42), cfg.GetSeed())
	assert.Equal(t, 50.0, cfg.GetCellSizeKm())
	assert.Equal(t, 1000.0, cfg.GetDryMassKg())
	assert.Equal(t, 300.0, cfg.GetIspS())
	assert.Equal(t, 50.0, cfg.GetFuelMassKg())
	assert.Equal(t, 86400, cfg.GetMaxSnapshots())
	assert.Equal(t, 10000, cfg.GetMaxEvents())
	assert.Equal(t, 1.0, cfg.GetSnapshotSeconds())
}

func TestLoad_PartialOverride(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"threshold_km": 25.0, "sample_count": 2000, "seed": 7}`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25.0, cfg.GetThresholdKm())
	assert.Equal(t, 2000, cfg.GetSampleCount())
	assert.Equal(t, uint64(7), cfg.GetSeed())

	// Untouched fields keep their defaults.
	assert.Equal(t, 1.0, cfg.GetSafeDistanceKm())
	assert.Equal(t, 50.0, cfg.GetCellSizeKm())
}

func TestLoad_RejectsNonJSONExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".json")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Parallel()

	cases := []string{
		`{"threshold_km": -1}`,
		`{"cell_size_km": 0}`,
		`{"sample_count": -5}`,
		`{"isp_s": 0}`,
		`{"max_snapshots": 0}`,
		`{"snapshot_seconds": -0.5}`,
	}
	for _, body := range cases {
		path := writeConfig(t, body)
		_, err := Load(path)
		assert.Error(t, err, "body %s", body)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"threshold_km": `)
	_, err := Load(path)
	require.Error(t, err)
}
