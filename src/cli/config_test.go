package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackwink/weather/src/settings"
)

func TestConfigPath(t *testing.T) {
	path := isolate(t)

	out, err := runCommand(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	out, err = runCommand(t, "config", "path", "--config", "/tmp/other")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other\n", out)
}

func TestConfigShow(t *testing.T) {
	path := isolate(t)
	writeConfig(t, path, `{"api_key": "KEY", "metric": true}`)
	t.Setenv(settings.EnvTime, "military")

	out, err := runCommand(t, "config", "show")
	require.NoError(t, err)
	assert.Equal(t, "api_key: KEY\ndate: date\ntime: military\nunits: metric\n", out)
}

func TestConfigGet(t *testing.T) {
	path := isolate(t)
	writeConfig(t, path, `{"api_key": "KEY", "date": "weekday"}`)

	tests := map[string]string{
		"api_key": "KEY",
		"date":    "weekday",
		"time":    "civilian",
		"units":   "english",
	}
	for key, want := range tests {
		t.Run(key, func(t *testing.T) {
			out, err := runCommand(t, "config", "get", key)
			require.NoError(t, err)
			assert.Equal(t, want+"\n", out)
		})
	}

	_, err := runCommand(t, "config", "get", "colour")
	assert.Equal(t, ExitUsageError, ExitCode(err))

	_, err = runCommand(t, "config", "get")
	assert.Equal(t, ExitUsageError, ExitCode(err))
}

func TestConfigSet(t *testing.T) {
	path := isolate(t)

	_, err := runCommand(t, "config", "set", "units", "metric")
	require.NoError(t, err)
	_, err = runCommand(t, "config", "set", "api_key", "SECRET")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"api_key\": \"SECRET\",\n    \"date\": \"date\",\n    \"time\": \"civilian\",\n    \"units\": \"metric\"\n}\n", string(data))
}

func TestConfigSet_ReplacesLegacyMetric(t *testing.T) {
	path := isolate(t)
	writeConfig(t, path, `{"api_key": "KEY", "metric": true}`)

	_, err := runCommand(t, "config", "set", "time", "military")
	require.NoError(t, err)

	out, err := runCommand(t, "config", "get", "units")
	require.NoError(t, err)
	assert.Equal(t, "metric\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"metric":`)
}

func TestConfigSet_Invalid(t *testing.T) {
	path := isolate(t)
	writeConfig(t, path, `{"api_key": "KEY"}`)

	_, err := runCommand(t, "config", "set", "units", "bogus")
	var cfgErr *settings.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ExitConfigError, ExitCode(err))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"api_key": "KEY"}`, string(data))

	_, err = runCommand(t, "config", "set", "colour", "red")
	assert.Equal(t, ExitUsageError, ExitCode(err))
}

func TestConfigInit(t *testing.T) {
	path := isolate(t)

	out, err := runCommand(t, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, "Created "+path+"\n", out)

	_, err = runCommand(t, "config", "init")
	assert.Equal(t, ExitConfigError, ExitCode(err))
	assert.Contains(t, err.Error(), "already exists")
}
