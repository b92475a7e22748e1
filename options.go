package subpaths

import "github.com/taigrr/subpaths/pathmatch"

// NoDepthLimit disables the recursion depth ceiling.
const NoDepthLimit = -1

// EntryType classifies a filesystem entry encountered during traversal.
type EntryType string

const (
	// TypeFile is a regular file (or anything that is neither a directory
	// nor a symlink).
	TypeFile EntryType = "file"
	// TypeDirectory is a directory.
	TypeDirectory EntryType = "directory"
	// TypeSymlink is a symbolic link. A symlink is never simultaneously
	// classified as a file or directory, even if its target is one.
	TypeSymlink EntryType = "symlink"
)

// EntryDetails describes one entry as seen by a user filter.
type EntryDetails struct {
	// Type is the entry classification.
	Type EntryType `json:"type"`
	// Hidden reports whether the entry's base name starts with a dot.
	Hidden bool `json:"hidden"`
	// RealPath is the entry's own absolute path for non-symlinks, and the
	// resolved target path for symlinks.
	RealPath string `json:"realPath"`
}

// FilterFunc is a user-supplied per-entry predicate. Returning false excludes
// the entry from the output without stopping descent into it. Returning an
// error aborts the whole traversal.
type FilterFunc func(path string, details EntryDetails) (bool, error)

// Options configures one traversal. Build from DefaultOptions and flip the
// fields you need; the zero value excludes every entry type.
type Options struct {
	// Directories includes directories in the output. Directories excluded
	// here are still descended into.
	Directories bool
	// Files includes regular files in the output.
	Files bool
	// Symlinks includes symlinks in the output. Symlinks excluded here are
	// never dereferenced.
	Symlinks bool
	// Hidden includes dot-entries in the output. Hidden directories excluded
	// here are still descended into.
	Hidden bool
	// FollowSymlinks traverses a symlink's target instead of listing the
	// link itself. Followed symlinks are reported under their resolved path.
	FollowSymlinks bool
	// DedupeSymlinkContents collapses duplicate paths in the final result,
	// guarding against a followed symlink reaching paths already listed
	// another way.
	DedupeSymlinkContents bool
	// MaxDepth is the recursion depth ceiling. Depth 0 is the start
	// directory's direct children; NoDepthLimit disables the ceiling.
	MaxDepth int
	// ReturnRelative rewrites results relative to the start path. Exclude,
	// Include and Filter then also see relative paths.
	ReturnRelative bool
	// Exclude drops matching paths from the output and prunes descent into
	// them, unless Include also matches.
	Exclude []pathmatch.Pattern
	// Include overrides Exclude for paths matching both.
	Include []pathmatch.Pattern
	// Filter is a final per-entry veto. Nil accepts everything. It is called
	// once per entry that survives every other gate and never prunes descent.
	Filter FilterFunc
}

// DefaultOptions returns the default traversal configuration: every entry
// type and hidden entries included, symlinks listed but not followed, no
// depth ceiling, absolute results.
func DefaultOptions() Options {
	return Options{
		Directories: true,
		Files:       true,
		Symlinks:    true,
		Hidden:      true,
		MaxDepth:    NoDepthLimit,
	}
}
