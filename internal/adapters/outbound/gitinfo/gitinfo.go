package gitinfo

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// Inspector implements domain.RepoInspector using go-git.
type Inspector struct{}

func New() *Inspector {
	return &Inspector{}
}

// CommitHash returns the abbreviated HEAD commit for the repository
// containing path. ok is false when path is not inside a git work tree or
// the repository has no commits yet.
func (g *Inspector) CommitHash(path string) (string, bool) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		path = filepath.Dir(path)
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}
	head, err := repo.Head()
	if err != nil {
		return "", false
	}
	return head.Hash().String()[:7], true
}
