package fsio

import (
	"errors"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/codesweep/codesweep/internal/domain"
)

const defaultMode = 0o644

var errNotUTF8 = errors.New("content is not valid UTF-8")

// Workspace implements domain.WorkspaceIO on the local filesystem.
type Workspace struct{}

func New() *Workspace {
	return &Workspace{}
}

// ReadText reads path and returns its content. Files that are not valid
// UTF-8 are rejected so rules never operate on binary data.
func (ws *Workspace) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &domain.FileAccessError{Path: path, Op: "read", Err: err}
	}
	if !utf8.Valid(data) {
		return "", &domain.FileAccessError{Path: path, Op: "decode", Err: errNotUTF8}
	}
	return string(data), nil
}

// WriteTextAtomic replaces path with content. The content is written to a
// temporary sibling first and moved into place with a rename, so readers
// never observe a half-written file. The original file mode is preserved
// when the file already exists.
func (ws *Workspace) WriteTextAtomic(path, content string) error {
	mode := os.FileMode(defaultMode)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".codesweep-*")
	if err != nil {
		return &domain.FileAccessError{Path: path, Op: "write", Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return &domain.FileAccessError{Path: path, Op: "write", Err: err}
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return &domain.FileAccessError{Path: path, Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &domain.FileAccessError{Path: path, Op: "write", Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &domain.FileAccessError{Path: path, Op: "write", Err: err}
	}
	return nil
}
