package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestHelpListsRunFlags(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "skip-install")
	assert.Contains(t, out, "skip-addons")
	assert.Contains(t, out, "dry-run")
}

func TestInitConfigToStdout(t *testing.T) {
	out, err := execute(t, "init-config")
	require.NoError(t, err)

	assert.Contains(t, out, "[installer]")
	assert.Contains(t, out, "# workbenches =")
}

func TestInitConfigWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fcsetup.toml")

	_, err := execute(t, "init-config", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[installer]")

	// Refuses to clobber an existing file
	_, err = execute(t, "init-config", path)
	require.Error(t, err)
}
