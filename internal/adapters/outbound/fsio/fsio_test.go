package fsio_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/codesweep/codesweep/internal/adapters/outbound/fsio"
	"github.com/codesweep/codesweep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspace_ReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o644))

	ws := fsio.New()
	content, err := ws.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", content)
}

func TestWorkspace_ReadText_Missing(t *testing.T) {
	ws := fsio.New()
	_, err := ws.ReadText(filepath.Join(t.TempDir(), "nope.py"))

	var access *domain.FileAccessError
	require.True(t, errors.As(err, &access))
	assert.Equal(t, "read", access.Op)
}

func TestWorkspace_ReadText_RejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bin.py")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x41}, 0o644))

	ws := fsio.New()
	_, err := ws.ReadText(path)

	var access *domain.FileAccessError
	require.True(t, errors.As(err, &access))
	assert.Equal(t, "decode", access.Op)
	assert.Contains(t, access.Error(), "UTF-8")
}

func TestWorkspace_WriteTextAtomic_ReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.py")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

	ws := fsio.New()
	require.NoError(t, ws.WriteTextAtomic(path, "new\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestWorkspace_WriteTextAtomic_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.py")

	ws := fsio.New()
	require.NoError(t, ws.WriteTextAtomic(path, "x = 1\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWorkspace_WriteTextAtomic_PreservesMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.sh")
	require.NoError(t, os.WriteFile(path, []byte("echo hi\n"), 0o755))

	ws := fsio.New()
	require.NoError(t, ws.WriteTextAtomic(path, "#!/bin/bash\necho hi\n"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestWorkspace_WriteTextAtomic_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.py")

	ws := fsio.New()
	require.NoError(t, ws.WriteTextAtomic(path, "x = 1\n"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.py", entries[0].Name())
}

func TestWorkspace_WriteTextAtomic_MissingDirectory(t *testing.T) {
	ws := fsio.New()
	err := ws.WriteTextAtomic(filepath.Join(t.TempDir(), "no-such-dir", "a.py"), "x\n")

	var access *domain.FileAccessError
	require.True(t, errors.As(err, &access))
	assert.Equal(t, "write", access.Op)
}
