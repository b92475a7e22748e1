// Package scope confines server-facing path inputs to a root directory.
package scope

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Scope resolves root-relative paths and rejects escapes above the root.
type Scope struct {
	root string
}

// New creates a Scope rooted at rootDir.
func New(rootDir string) (*Scope, error) {
	absPath, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	return &Scope{root: absPath}, nil
}

// Root returns the absolute root directory.
func (s *Scope) Root() string {
	return s.root
}

// Resolve turns a root-relative path into an absolute path inside the scope.
func (s *Scope) Resolve(relativePath string) (string, error) {
	relativePath = strings.TrimSpace(relativePath)
	relativePath = strings.TrimPrefix(relativePath, "/")
	if relativePath == "." {
		relativePath = ""
	}

	fullPath := filepath.Join(s.root, relativePath)
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", err
	}

	relPath, err := filepath.Rel(s.root, absPath)
	if err != nil {
		return "", err
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}

// Rel rewrites an absolute path back to root-relative form. Paths outside the
// scope (a followed symlink target, for instance) are returned unchanged.
func (s *Scope) Rel(absPath string) string {
	relPath, err := filepath.Rel(s.root, absPath)
	if err != nil {
		return absPath
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return absPath
	}
	return relPath
}
