package discovery_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/codesweep/codesweep/internal/adapters/outbound/discovery"
	"github.com/codesweep/codesweep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestWalker_Discover_FiltersByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.py", "x = 1\n")
	writeFile(t, root, "b.js", "let x;\n")
	writeFile(t, root, "notes.txt", "hello\n")
	writeFile(t, root, "sub/c.py", "y = 2\n")

	w := discovery.New()
	files, err := w.Discover(root, []string{".py"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a.py"),
		filepath.Join(root, "sub", "c.py"),
	}, files)
}

func TestWalker_Discover_SortsResults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "z.py", "")
	writeFile(t, root, "a.py", "")
	writeFile(t, root, "m/k.py", "")

	w := discovery.New()
	files, err := w.Discover(root, []string{".py"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a.py"),
		filepath.Join(root, "m", "k.py"),
		filepath.Join(root, "z.py"),
	}, files)
}

func TestWalker_Discover_SkipsBuiltinDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.py", "")
	writeFile(t, root, ".git/hook.py", "")
	writeFile(t, root, "node_modules/pkg/index.js", "")
	writeFile(t, root, "vendor/lib.go", "")
	writeFile(t, root, ".venv/site.py", "")
	writeFile(t, root, "dist/out.js", "")
	writeFile(t, root, "build/gen.py", "")
	writeFile(t, root, "__pycache__/keep.cpython-312.py", "")

	w := discovery.New()
	files, err := w.Discover(root, []string{".py", ".js", ".go"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "keep.py")}, files)
}

func TestWalker_Discover_CustomExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", "")
	writeFile(t, root, "generated/schema.py", "")
	writeFile(t, root, "fixtures/data.py", "")

	w := discovery.New()
	// Trailing slashes are tolerated for convenience.
	files, err := w.Discover(root, []string{".py"}, []string{"generated", "fixtures/"})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "main.py")}, files)
}

func TestWalker_Discover_MissingRoot(t *testing.T) {
	w := discovery.New()
	_, err := w.Discover(filepath.Join(t.TempDir(), "nope"), []string{".py"}, nil)

	var notFound *domain.PathNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Contains(t, notFound.Error(), "nope")
}

func TestWalker_Discover_FileTarget(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "single.py", "x = 1\n")

	w := discovery.New()
	files, err := w.Discover(path, []string{".py"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestWalker_Discover_FileTargetWrongExtension(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "single.txt", "hello\n")

	w := discovery.New()
	files, err := w.Discover(path, []string{".py"}, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestWalker_Discover_RootNamedLikeExclusion(t *testing.T) {
	// An explicitly targeted directory is scanned even when its own name
	// is on the skip list.
	parent := t.TempDir()
	root := filepath.Join(parent, "build")
	writeFile(t, parent, "build/a.py", "")

	w := discovery.New()
	files, err := w.Discover(root, []string{".py"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.py")}, files)
}

func TestWalker_Discover_ExtensionMatchIsCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.MD", "# hi\n")

	w := discovery.New()
	files, err := w.Discover(root, []string{".md"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "README.MD")}, files)
}

func TestWalker_Discover_NoMatches(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "")

	w := discovery.New()
	files, err := w.Discover(root, []string{".py"}, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}
