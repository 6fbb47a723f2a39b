package domain

import "fmt"

// ConfigurationError reports an invalid session configuration: mutually
// exclusive modes, an empty target, a malformed extension list. It is fatal
// and raised before any filesystem access.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// PathNotFoundError reports a discovery root that does not exist.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path not found: %s", e.Path)
}

// FileAccessError reports a per-file read, decode or write failure. It never
// aborts a session; the file is recorded as failed and processing continues.
type FileAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileAccessError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s failed", e.Op, e.Path)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }
