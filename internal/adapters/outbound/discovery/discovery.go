package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/codesweep/codesweep/internal/domain"
)

// Directory names that are never worth scanning.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	".venv":        true,
	"dist":         true,
	"build":        true,
	"__pycache__":  true,
}

// Walker implements domain.FileDiscoverer by walking the filesystem.
type Walker struct{}

func New() *Walker {
	return &Walker{}
}

// Discover returns every regular file under root whose extension is in
// extensions, sorted lexicographically. Paths are reported as seen from
// root, so a relative target yields relative results. A root that is itself
// a file is returned as-is when its extension matches; directory exclusions
// only apply while walking.
func (w *Walker) Discover(root string, extensions, excludeDirs []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &domain.PathNotFoundError{Path: root}
		}
		return nil, &domain.FileAccessError{Path: root, Op: "stat", Err: err}
	}

	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[ext] = true
	}

	if !info.IsDir() {
		if allowed[strings.ToLower(filepath.Ext(root))] {
			return []string{root}, nil
		}
		return nil, nil
	}

	// Merge extra excludes with built-in skip dirs.
	extraSkip := make(map[string]bool, len(excludeDirs))
	for _, name := range excludeDirs {
		extraSkip[strings.TrimSuffix(name, "/")] = true
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// The root itself is never skipped, even when its name
			// matches an exclusion.
			if path != root && (skipDirs[d.Name()] || extraSkip[d.Name()]) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if allowed[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
