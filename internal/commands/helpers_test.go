package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillkit/quill/internal/config"
)

// chdir mirrors t.Chdir (Go 1.24+), which is unavailable on this toolchain.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestRenderPromptVerbatimWhenPiped(t *testing.T) {
	// under `go test` stdout is not a terminal, so no styling is applied
	cfg := config.Default()

	assert.Equal(t, "How many? ", renderPrompt(cfg, "How many? "))
	assert.Equal(t, "(8080)", renderHint(cfg, "(8080)"))
	assert.Equal(t, "", renderPrompt(cfg, ""))
}

func TestLoadThemeFallsBackOnBadConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("color: [a, b"), 0644))

	cfg := loadTheme()
	assert.Equal(t, config.Default(), cfg)
}

func TestLineWithDefault(t *testing.T) {
	cfg := config.Default()

	t.Run("typed answer wins", func(t *testing.T) {
		out := withConsole(t, "alice\n", func() {
			got, err := lineWithDefault(cfg, "Name?", "bob")
			require.NoError(t, err)
			assert.Equal(t, "alice", got)
		})
		assert.Equal(t, "Name? (bob): ", out)
	})

	t.Run("empty answer takes default", func(t *testing.T) {
		withConsole(t, "\n", func() {
			got, err := lineWithDefault(cfg, "Name?", "bob")
			require.NoError(t, err)
			assert.Equal(t, "bob", got)
		})
	})
}
