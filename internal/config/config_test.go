package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// unsetAfter removes keys that godotenv may have set during a test.
func unsetAfter(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if _, ok := os.LookupEnv(k); ok {
			t.Fatalf("%s must not be set when running this test", k)
		}
	}
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, 400, cfg.SurfaceSize)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvLogFormat, " json ")
	t.Setenv(EnvSurfaceSize, "256")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, Config{LogLevel: "debug", LogFormat: "json", SurfaceSize: 256}, cfg)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad level", EnvLogLevel, "chatty"},
		{"bad format", EnvLogFormat, "xml"},
		{"non-numeric size", EnvSurfaceSize, "big"},
		{"zero size", EnvSurfaceSize, "0"},
		{"negative size", EnvSurfaceSize, "-400"},
		{"size above limit", EnvSurfaceSize, "1000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			require.Error(t, err)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	unsetAfter(t, EnvLogLevel, EnvSurfaceSize)

	path := filepath.Join(t.TempDir(), "palette.env")
	content := EnvLogLevel + "=warn\n" + EnvSurfaceSize + "=128\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(EnvFile, path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, 128, cfg.SurfaceSize)
	require.Equal(t, path, cfg.LoadedEnvFile)
}

func TestLoad_NoDotEnv(t *testing.T) {
	t.Setenv(EnvFile, "")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	require.Empty(t, cfg.LoadedEnvFile)
	require.Equal(t, Default().SurfaceSize, cfg.SurfaceSize)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	unsetAfter(t, EnvSurfaceSize)

	path := filepath.Join(t.TempDir(), "palette.env")
	require.NoError(t, os.WriteFile(path, []byte(EnvLogLevel+"=warn\n"+EnvSurfaceSize+"=64\n"), 0o600))
	t.Setenv(EnvFile, path)
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "error", cfg.LogLevel)
	require.Equal(t, 64, cfg.SurfaceSize)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv(EnvFile, filepath.Join(t.TempDir(), "missing.env"))

	_, err := Load()
	require.Error(t, err)
}
