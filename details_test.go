package subpaths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInspect(t *testing.T) {
	root := setupTree(t)

	t.Run("file", func(t *testing.T) {
		details, err := Inspect(filepath.Join(root, "a.txt"))
		if err != nil {
			t.Fatalf("Inspect() error = %v", err)
		}
		if details.Type != TypeFile {
			t.Errorf("Type = %q, want %q", details.Type, TypeFile)
		}
		if details.Hidden {
			t.Error("Hidden = true, want false")
		}
	})

	t.Run("hidden file", func(t *testing.T) {
		details, err := Inspect(filepath.Join(root, ".b"))
		if err != nil {
			t.Fatalf("Inspect() error = %v", err)
		}
		if !details.Hidden {
			t.Error("Hidden = false, want true")
		}
	})

	t.Run("directory", func(t *testing.T) {
		details, err := Inspect(filepath.Join(root, "sub"))
		if err != nil {
			t.Fatalf("Inspect() error = %v", err)
		}
		if details.Type != TypeDirectory {
			t.Errorf("Type = %q, want %q", details.Type, TypeDirectory)
		}
	})

	t.Run("symlink resolves real path", func(t *testing.T) {
		link := filepath.Join(root, "link")
		if err := os.Symlink(filepath.Join(root, "sub"), link); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}

		details, err := Inspect(link)
		if err != nil {
			t.Fatalf("Inspect() error = %v", err)
		}
		if details.Type != TypeSymlink {
			t.Errorf("Type = %q, want %q", details.Type, TypeSymlink)
		}

		want, err := filepath.EvalSymlinks(filepath.Join(root, "sub"))
		if err != nil {
			t.Fatalf("EvalSymlinks() error = %v", err)
		}
		if details.RealPath != want {
			t.Errorf("RealPath = %q, want %q", details.RealPath, want)
		}
	})

	t.Run("missing path errors", func(t *testing.T) {
		if _, err := Inspect(filepath.Join(root, "absent")); err == nil {
			t.Error("Inspect() error = nil, want error")
		}
	})
}
