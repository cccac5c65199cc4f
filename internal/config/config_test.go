package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nao1215/switrs"
	"github.com/nao1215/switrs/domain/record"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func mapLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, switrs.DefaultOutputFile, cfg.OutputFile)
	assert.Equal(t, "strict", cfg.ParseError)
	assert.Equal(t, switrs.DefaultChunkSize, cfg.ChunkSize)
	assert.Equal(t, switrs.DefaultMetricsJob, cfg.Metrics.Job)
	assert.Empty(t, cfg.Metrics.PushURL)
	assert.False(t, cfg.Manifest)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("yaml overrides defaults", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "switrs.yaml", `output_file: /tmp/ca.sqlite3
parse_error: replace
chunk_size: 500
log_level: debug
manifest: true
metrics:
  push_url: http://localhost:9091
only: [parties]
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/ca.sqlite3", cfg.OutputFile)
		assert.Equal(t, "replace", cfg.ParseError)
		assert.Equal(t, 500, cfg.ChunkSize)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.Manifest)
		assert.Equal(t, "http://localhost:9091", cfg.Metrics.PushURL)
		assert.Equal(t, switrs.DefaultMetricsJob, cfg.Metrics.Job, "unset keys keep their default")
		assert.Equal(t, []string{"parties"}, cfg.Only)
	})

	t.Run("empty file returns defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := Load(writeFile(t, "empty.yaml", ""))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()

		_, err := Load(writeFile(t, "bad.yaml", "chunk_sise: 10\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chunk_sise")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Parallel()

	t.Run("every variable", func(t *testing.T) {
		t.Parallel()

		cfg := Default()
		err := cfg.ApplyEnv(mapLookup(map[string]string{
			EnvOutputFile:     "env.sqlite3",
			EnvParseError:     "ignore",
			EnvChunkSize:      " 42 ",
			EnvLogLevel:       "warn",
			EnvManifest:       "true",
			EnvMetricsPushURL: "http://gateway:9091",
			EnvMetricsJob:     "nightly",
			EnvOnly:           "parties, ,victims",
		}))
		require.NoError(t, err)
		assert.Equal(t, &Config{
			OutputFile: "env.sqlite3",
			ParseError: "ignore",
			ChunkSize:  42,
			LogLevel:   "warn",
			Manifest:   true,
			Metrics:    Metrics{PushURL: "http://gateway:9091", Job: "nightly"},
			Only:       []string{"parties", "victims"},
		}, cfg)
	})

	t.Run("unset variables keep values", func(t *testing.T) {
		t.Parallel()

		cfg := Default()
		require.NoError(t, cfg.ApplyEnv(mapLookup(nil)))
		assert.Equal(t, Default(), cfg)
	})

	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "chunk size is not a number", env: map[string]string{EnvChunkSize: "many"}, want: EnvChunkSize},
		{name: "manifest is not a bool", env: map[string]string{EnvManifest: "sometimes"}, want: EnvManifest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Default().ApplyEnv(mapLookup(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.OutputFile = " "
	cfg.ParseError = "loose"
	cfg.ChunkSize = 0
	cfg.Only = []string{"vehicles"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output_file must not be empty")
	assert.ErrorIs(t, err, switrs.ErrInvalidParseErrorMode)
	assert.Contains(t, err.Error(), "chunk_size must be at least 1, got 0")
	assert.Contains(t, err.Error(), `unknown record kind "vehicles"`)
}

func TestConfig_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		only []string
		want []record.Kind
	}{
		{name: "empty selects every record type", only: nil, want: record.Kinds()},
		{name: "single", only: []string{"victims"}, want: []record.Kind{record.KindVictim}},
		{
			name: "load order and duplicates",
			only: []string{"Victim", "collision", "collisions"},
			want: []record.Kind{record.KindCollision, record.KindVictim},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			cfg.Only = tt.only
			kinds, err := cfg.Kinds()
			require.NoError(t, err)
			assert.Equal(t, tt.want, kinds)
		})
	}

	cfg := Default()
	cfg.Only = []string{"party", "vehicle"}
	_, err := cfg.Kinds()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid only")
}

func TestConfig_ParseErrorMode(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.ParseError = "Replace"
	mode, err := cfg.ParseErrorMode()
	require.NoError(t, err)
	assert.Equal(t, switrs.ParseErrorReplace, mode)
}

// LoadEnvFile writes to the process environment, so this test is not parallel.
func TestLoadEnvFile(t *testing.T) {
	const key = "SWITRS_CONFIG_TEST_OUTPUT"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	t.Run("missing file is not an error", func(t *testing.T) {
		loaded, err := LoadEnvFile(filepath.Join(t.TempDir(), ".env"))
		require.NoError(t, err)
		assert.False(t, loaded)
	})

	t.Run("empty path", func(t *testing.T) {
		loaded, err := LoadEnvFile("")
		require.NoError(t, err)
		assert.False(t, loaded)
	})

	t.Run("variables are exported", func(t *testing.T) {
		loaded, err := LoadEnvFile(writeFile(t, ".env", key+"=from-dotenv.sqlite3\n"))
		require.NoError(t, err)
		assert.True(t, loaded)
		assert.Equal(t, "from-dotenv.sqlite3", os.Getenv(key))
	})

	t.Run("existing variables win", func(t *testing.T) {
		t.Setenv(key, "from-shell.sqlite3")

		loaded, err := LoadEnvFile(writeFile(t, ".env", key+"=from-dotenv.sqlite3\n"))
		require.NoError(t, err)
		assert.True(t, loaded)
		assert.Equal(t, "from-shell.sqlite3", os.Getenv(key))
	})
}
