package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codesweep/codesweep/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".codesweep.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# codesweep configuration")
	assert.Contains(t, string(data), "skip_rules")
	assert.Contains(t, string(data), "exclude_dirs")
	assert.Contains(t, string(data), "line_length")
}

func TestInitCmd_StarterConfigChangesNothing(t *testing.T) {
	// The generated file is all comments: loading it must equal the zero
	// config, so init never alters scan behavior by itself.
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	require.NoError(t, root.Execute())

	writeFile(t, tmpDir, "a.py", "x = 1 \n")
	out, err := runRoot(t, tmpDir, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, "python/trailing-whitespace")
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".codesweep.yaml"), []byte("existing"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".codesweep.yaml"), []byte("old"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--force"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".codesweep.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# codesweep configuration")
	assert.NotEqual(t, "old", string(data))
}
