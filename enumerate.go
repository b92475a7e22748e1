package subpaths

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/taigrr/subpaths/pathmatch"
)

// walkContext is threaded through recursive calls. root is fixed at the
// top-level call; depth grows by exactly one per descent.
type walkContext struct {
	depth  int
	cached fs.FileInfo // lstat result for the current path, if already taken
	root   string
}

// decision is the two-axis outcome of the per-entry gates: whether the entry
// itself appears in the output, and whether traversal descends into it.
type decision struct {
	emit    bool
	descend bool
}

// enumerate lists matching descendants of path. Failures to read path or its
// metadata are not errors: the branch contributes nothing. The only error an
// enumeration can return comes from a user filter.
func enumerate(path string, opts *Options, wctx walkContext) ([]string, error) {
	if opts.MaxDepth >= 0 && wctx.depth > opts.MaxDepth {
		return nil, nil
	}

	info := wctx.cached
	if info == nil {
		var err error
		info, err = os.Lstat(path)
		if err != nil {
			return nil, nil
		}
	}
	if !info.IsDir() {
		return nil, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, nil
	}

	// One goroutine per child; slots keep results in listing order so output
	// stays deterministic regardless of completion order.
	results := make([][]string, len(entries))
	errs := make([]error, len(entries))

	var wg sync.WaitGroup
	for i, entry := range entries {
		wg.Go(func() {
			results[i], errs[i] = processEntry(path, entry.Name(), opts, wctx)
		})
	}
	wg.Wait()

	var paths []string
	for i := range entries {
		if errs[i] != nil {
			return nil, errs[i]
		}
		paths = append(paths, results[i]...)
	}

	return paths, nil
}

// processEntry classifies one child, applies the gates, and returns the
// entry's own emission (if any) followed by its descendants.
func processEntry(dir, name string, opts *Options, wctx walkContext) ([]string, error) {
	absPath := filepath.Join(dir, name)

	info, err := os.Lstat(absPath)
	if err != nil {
		return nil, nil
	}

	entryType := TypeFile
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		entryType = TypeSymlink
	case info.IsDir():
		entryType = TypeDirectory
	}
	hidden := strings.HasPrefix(name, ".")

	d := decision{
		emit:    true,
		descend: entryType == TypeDirectory || (entryType == TypeSymlink && opts.FollowSymlinks),
	}

	// Type and visibility gates decide output membership only, with one
	// exception: a symlink excluded here is never dereferenced either.
	switch entryType {
	case TypeDirectory:
		if !opts.Directories {
			d.emit = false
		}
	case TypeSymlink:
		if !opts.Symlinks {
			d.emit = false
			d.descend = false
		}
	case TypeFile:
		if !opts.Files {
			d.emit = false
		}
	}
	if hidden && !opts.Hidden {
		d.emit = false
	}

	if !d.emit && !d.descend {
		return nil, nil
	}

	// Exclude/Include and Filter match against the same path form the caller
	// gets back, so rules authored for relative paths keep working.
	candidate := absPath
	if opts.ReturnRelative {
		rel, err := filepath.Rel(wctx.root, absPath)
		if err != nil {
			return nil, nil
		}
		candidate = rel
	}

	// Pattern gate: exclusion prunes the whole subtree unless overridden by
	// an include match.
	if pathmatch.Matches(candidate, opts.Exclude) && !pathmatch.Matches(candidate, opts.Include) {
		return nil, nil
	}

	realPath := absPath
	if entryType == TypeSymlink {
		realPath, err = filepath.EvalSymlinks(absPath)
		if err != nil {
			// Broken link.
			return nil, nil
		}
	}

	if d.emit && opts.Filter != nil {
		ok, err := opts.Filter(candidate, EntryDetails{
			Type:     entryType,
			Hidden:   hidden,
			RealPath: realPath,
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			d.emit = false
		}
	}

	var paths []string
	if d.emit {
		if entryType == TypeSymlink && opts.FollowSymlinks {
			// A followed symlink is listed under its resolved identity.
			paths = append(paths, realPath)
		} else {
			paths = append(paths, absPath)
		}
	}

	if d.descend {
		target := absPath
		var cached fs.FileInfo
		if entryType == TypeSymlink {
			target = realPath
		} else {
			cached = info
		}

		sub, err := enumerate(target, opts, walkContext{
			depth:  wctx.depth + 1,
			cached: cached,
			root:   wctx.root,
		})
		if err != nil {
			return nil, err
		}
		paths = append(paths, sub...)
	}

	return paths, nil
}
