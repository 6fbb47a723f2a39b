package domain

// FileDiscoverer walks a target and returns the candidate file paths, sorted
// lexicographically. A missing root yields *PathNotFoundError. A root that
// is itself a file is returned as the single candidate when its extension is
// allowed; directory exclusions do not apply to an explicit file target.
// excludeDirs are directory names skipped in addition to the built-in set.
type FileDiscoverer interface {
	Discover(root string, extensions, excludeDirs []string) ([]string, error)
}

// WorkspaceIO reads and rewrites workspace files. ReadText rejects content
// that is not valid UTF-8. WriteTextAtomic replaces the file via a temporary
// sibling and rename, preserving the original file mode, so a crash never
// leaves a half-written file behind.
type WorkspaceIO interface {
	ReadText(path string) (string, error)
	WriteTextAtomic(path, content string) error
}

// ConfigLoader loads the optional project configuration for a target. The
// config file is looked up in the target directory, or in the parent
// directory when the target is a file. An absent config file is not an
// error: it yields the zero value.
type ConfigLoader interface {
	Load(target string) (ProjectConfig, error)
}

// RepoInspector resolves version-control metadata for a path. CommitHash
// reports ok=false when the path is not inside a git work tree.
type RepoInspector interface {
	CommitHash(path string) (hash string, ok bool)
}
