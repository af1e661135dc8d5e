package settings

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackwink/weather/src/units"
)

const defaultFile = `{
    "api_key": "your-api-key",
    "date": "date",
    "time": "civilian",
    "units": "english"
}
`

func TestStore_LoadMissing(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), ".weatherrc"), nil)

	layer, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, layer)
	assert.False(t, s.Exists())
}

func TestStore_LoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".weatherrc")
	s := NewStore(path, nil)

	layer, err := s.LoadOrCreate()
	require.NoError(t, err)
	require.NotNil(t, layer)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, defaultFile, string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}

	resolved, err := Resolve(layer, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, Defaults(), resolved)
}

func TestStore_LoadOrCreateKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".weatherrc")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_key": "abc", "units": "metric"}`), 0600))

	layer, err := NewStore(path, nil).LoadOrCreate()
	require.NoError(t, err)

	resolved, err := Resolve(layer, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "abc", resolved.APIKey)
	assert.Equal(t, units.Metric, resolved.Units)
	assert.Equal(t, units.Civilian, resolved.Time)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"api_key": "abc", "units": "metric"}`, string(data))
}

func TestStore_LoadLegacyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".weatherrc")
	require.NoError(t, os.WriteFile(path, []byte("{\n\"api_key\": \"your-api-key\",\n\"metric\": true\n}"), 0600))

	layer, err := NewStore(path, nil).Load()
	require.NoError(t, err)

	resolved, err := Resolve(layer, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, units.Metric, resolved.Units)
}

func TestStore_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".weatherrc")
	require.NoError(t, os.WriteFile(path, []byte(`{"units": `), 0600))

	_, err := NewStore(path, nil).Load()
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "file", cfgErr.Field)
	assert.Contains(t, err.Error(), path)
}

func TestStore_LoadWrongType(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".weatherrc")
	require.NoError(t, os.WriteFile(path, []byte(`{"units": 3}`), 0600))

	_, err := NewStore(path, nil).Load()
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
}

func TestStore_SaveRoundTrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), ".weatherrc"), nil)
	want := Settings{APIKey: "secret", Units: units.Metric, Time: units.Military, Date: units.Weekday}

	require.NoError(t, s.Save(want))

	layer, err := s.Load()
	require.NoError(t, err)
	got, err := Resolve(layer, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_Init(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), ".weatherrc"), nil)

	require.NoError(t, s.Init())
	assert.True(t, s.Exists())

	err := s.Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom-weatherrc")
	assert.Equal(t, "/tmp/custom-weatherrc", DefaultPath())

	home := t.TempDir()
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	assert.Equal(t, filepath.Join(home, ".weatherrc"), DefaultPath())
}
