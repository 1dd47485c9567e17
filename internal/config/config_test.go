package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", FileName))
	require.NoError(t, err)

	root, err := filepath.Abs("testdata")
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, filepath.Join(root, "app.cbor"), cfg.ImagePath())
	assert.Equal(t, []string{
		filepath.Join(root, "first.yaml"),
		filepath.Join(root, "nested", "second.xml"),
		"/abs/third.yaml",
	}, cfg.OverrideFiles())
	assert.Equal(t, []string{"./models/..."}, cfg.Semantic.Packages)
	assert.Equal(t, 2, cfg.Run.Jobs)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing image", "[overrides]\nfiles = []\n", "missing [metadata].image"},
		{"blank image", "[metadata]\nimage = \"  \"\n", "missing [metadata].image"},
		{"unknown key", "[metadata]\nimage = \"a.cbor\"\ncolour = 1\n", "unknown keys: metadata.colour"},
		{"bad level", "[metadata]\nimage = \"a.cbor\"\n[log]\nlevel = \"loud\"\n", "unknown log level"},
		{"negative jobs", "[metadata]\nimage = \"a.cbor\"\n[run]\njobs = -1\n", "must not be negative"},
		{"bad toml", "[metadata\n", "failed to parse TOML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFind(t *testing.T) {
	path := writeConfig(t, "[metadata]\nimage = \"a.cbor\"\n")
	nested := filepath.Join(filepath.Dir(path), "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, path, found)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}

	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
