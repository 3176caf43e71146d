package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/tix", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "tix"), got)
	})
}

func TestResolveConfigDir(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("/tmp/flag-config")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-config", got)
	})

	t.Run("env wins when flag empty", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-config", got)
	})
}

func TestResolveDataDir(t *testing.T) {
	t.Run("flag wins over everything", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/tmp/env-data")
		got, err := ResolveDataDir("/tmp/flag-data", "/tmp/config-data")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-data", got)
	})

	t.Run("config value wins over env", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/tmp/env-data")
		got, err := ResolveDataDir("", "/tmp/config-data")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/config-data", got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/tmp/env-data")
		got, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-data", got)
	})

	t.Run("defaults to CWD-relative directory", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		cwd, err := os.Getwd()
		require.NoError(t, err)

		got, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, DefaultDataDirName), got)
	})
}
