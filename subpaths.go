// Package subpaths enumerates every filesystem entry reachable from a
// starting directory, subject to type filters, visibility filters, depth
// limits, symlink policy, and user-supplied inclusion/exclusion rules.
package subpaths

import (
	"fmt"
	"path/filepath"
)

// List returns the descendant paths of startPath that pass the configured
// gates. A nil opts means DefaultOptions. Results are absolute unless
// Options.ReturnRelative is set.
//
// Unreadable directories, vanished entries, and broken symlinks contribute
// nothing; the only error List returns comes from the start path itself being
// unresolvable or from a user filter, in which case no partial results are
// returned.
func List(startPath string, opts *Options) ([]string, error) {
	options := DefaultOptions()
	if opts != nil {
		options = *opts
	}

	root, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("resolve start path: %w", err)
	}

	paths, err := enumerate(root, &options, walkContext{root: root})
	if err != nil {
		return nil, err
	}

	if options.DedupeSymlinkContents {
		paths = dedupe(paths)
	}

	if options.ReturnRelative {
		relative := make([]string, 0, len(paths))
		for _, p := range paths {
			rel, err := filepath.Rel(root, p)
			if err != nil {
				return nil, fmt.Errorf("relativize %s: %w", p, err)
			}
			relative = append(relative, rel)
		}
		paths = relative
	}

	return paths, nil
}

// dedupe collapses duplicate paths, keeping first occurrences in order.
func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	unique := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}
