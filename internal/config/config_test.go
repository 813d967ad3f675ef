package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "sqlite", c.StorageDriver)
	assert.Equal(t, "workproof.db", c.DatabaseDSN)
	assert.Equal(t, ".", c.DataDir)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"testbin"}
	t.Cleanup(func() { os.Args = origArgs })

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "sqlite", cfg.StorageDriver)
	assert.Equal(t, "workproof.db", cfg.DatabaseDSN)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"testbin", "-s", "postgres", "-d", "postgres://localhost/wp"}
	t.Cleanup(func() { os.Args = origArgs })

	cfg := LoadConfig()

	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.Equal(t, "postgres://localhost/wp", cfg.DatabaseDSN)
	assert.Equal(t, ".", cfg.DataDir, "untouched fields keep defaults")
}

func TestLoadConfig_JsonThenFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"database_dsn":"from.json","data_dir":"/photos"}`), 0o600))

	origArgs := os.Args
	os.Args = []string{"testbin", "-c", path, "-d", "from-flag.db"}
	t.Cleanup(func() { os.Args = origArgs })

	cfg := LoadConfig()

	assert.Equal(t, "from-flag.db", cfg.DatabaseDSN, "flags win over JSON")
	assert.Equal(t, "/photos", cfg.DataDir, "JSON wins over defaults")
	assert.Equal(t, "sqlite", cfg.StorageDriver)
}
