package internal

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "brew.env")
	assert.NilError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestConfigFileArgs(t *testing.T) {
	path := writeConfig(t, "# Brew settings\nBREW_FORMAT=rgb\nBREW_COLORS=\"256\"\n")

	args, err := ConfigFileArgs(path)
	assert.NilError(t, err)
	assert.DeepEqual(t, args, []string{"--colors=256", "--format=rgb"})
}

func TestConfigFileUnknownKeys(t *testing.T) {
	logs := collectLogs(t)
	path := writeConfig(t, "BREW_PALETTE=Blues\nBREW_FORMAT=hex\n")

	args, err := ConfigFileArgs(path)
	assert.NilError(t, err)
	assert.DeepEqual(t, args, []string{"--format=hex"})
	assert.Assert(t, len(logs.String()) > 0)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := ConfigFileArgs(filepath.Join(t.TempDir(), "does-not-exist.env"))
	assert.ErrorContains(t, err, "does-not-exist.env")
}
