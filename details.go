package subpaths

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Inspect classifies a single path the way the enumerator classifies entries
// it encounters: symlinks are reported as symlinks regardless of their
// target, and RealPath carries the resolved target for symlinks.
func Inspect(path string) (EntryDetails, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return EntryDetails{}, fmt.Errorf("resolve path: %w", err)
	}

	info, err := os.Lstat(absPath)
	if err != nil {
		return EntryDetails{}, fmt.Errorf("stat %s: %w", path, err)
	}

	entryType := TypeFile
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		entryType = TypeSymlink
	case info.IsDir():
		entryType = TypeDirectory
	}

	realPath := absPath
	if entryType == TypeSymlink {
		realPath, err = filepath.EvalSymlinks(absPath)
		if err != nil {
			return EntryDetails{}, fmt.Errorf("resolve symlink %s: %w", path, err)
		}
	}

	return EntryDetails{
		Type:     entryType,
		Hidden:   strings.HasPrefix(filepath.Base(absPath), "."),
		RealPath: realPath,
	}, nil
}
