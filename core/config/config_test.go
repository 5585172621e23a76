package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "abi_gki_aarch64.xml", cfg.Kmi.WhitelistPath)
	assert.Equal(t, "Module.symvers", cfg.Kmi.SymversPath)
	assert.Equal(t, []string{"elf-function-symbols", "elf-variable-symbols"}, cfg.Kmi.Categories)
	assert.False(t, cfg.Kmi.StrictDuplicates)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("KMI_SYMVERS_PATH", "out/Module.symvers")
	t.Setenv("KMI_CATEGORIES", "elf-function-symbols")
	t.Setenv("KMI_STRICT_DUPLICATES", "true")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "out/Module.symvers", cfg.Kmi.SymversPath)
	assert.Equal(t, []string{"elf-function-symbols"}, cfg.Kmi.Categories)
	assert.True(t, cfg.Kmi.StrictDuplicates)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("KMI_WHITELIST_PATH=android/abi_gki_aarch64.xml\n"), 0644)
	require.NoError(t, err)
	t.Cleanup(func() { os.Unsetenv("KMI_WHITELIST_PATH") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "android/abi_gki_aarch64.xml", cfg.Kmi.WhitelistPath)
}
