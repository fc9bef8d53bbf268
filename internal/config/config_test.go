package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoad(t *testing.T) {
	t.Run("no config file returns defaults", func(t *testing.T) {
		chdir(t, t.TempDir())

		cfg, err := NewLoader().Load("")
		require.NoError(t, err)

		assert.Equal(t, DefaultCustomersFile, cfg.CustomersFile)
		assert.Equal(t, DefaultPurchasesFile, cfg.PurchasesFile)
		assert.Equal(t, DefaultExportFile, cfg.ExportFile)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
		assert.Equal(t, DefaultColor, cfg.Color)
		assert.True(t, cfg.AutoAccount)
	})

	t.Run("partial .carworld.yaml merges with defaults", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)

		content := `customers-file: data/people.txt
auto-account: false
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".carworld.yaml"), []byte(content), 0644))

		cfg, err := NewLoader().Load("")
		require.NoError(t, err)

		assert.Equal(t, "data/people.txt", cfg.CustomersFile)
		assert.False(t, cfg.AutoAccount)
		assert.Equal(t, DefaultPurchasesFile, cfg.PurchasesFile)
	})

	t.Run("explicit config path is read", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, t.TempDir())

		path := filepath.Join(dir, "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("export-file: report.txt\nlog-level: DEBUG\n"), 0644))

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, "report.txt", cfg.ExportFile)
		assert.Equal(t, "DEBUG", cfg.LogLevel)
	})

	t.Run("explicit config path must exist", func(t *testing.T) {
		_, err := NewLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not read config")
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".carworld.yaml"), []byte("purchases-file: file.txt\n"), 0644))
		t.Setenv("CARWORLD_PURCHASES_FILE", "env.txt")

		cfg, err := NewLoader().Load("")
		require.NoError(t, err)
		assert.Equal(t, "env.txt", cfg.PurchasesFile)
	})

	t.Run("invalid color is rejected", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".carworld.yaml"), []byte("color: rainbow\n"), 0644))

		_, err := NewLoader().Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "color")
	})

	t.Run("blank file name is rejected", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".carworld.yaml"), []byte("export-file: \"\"\n"), 0644))

		_, err := NewLoader().Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "export-file")
	})
}
