package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/seqren/internal/apperr"
	"github.com/starford/seqren/internal/models"
	"github.com/starford/seqren/internal/testutil"
)

func tempDir(t *testing.T, files map[string]string) (*FS, string) {
	t.Helper()
	dir := testutil.Dir(t, files)
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return fs, dir
}

func TestMove(t *testing.T) {
	s, dir := tempDir(t, map[string]string{"old.txt": "data"})
	if err := s.Move("old.txt", "new.txt"); err != nil {
		t.Fatalf("Move: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "new.txt"))
	if err != nil {
		t.Fatalf("read after move: %v", err)
	}
	if string(got) != "data" {
		t.Errorf("content = %q", got)
	}
	if ok, _ := s.Exists("old.txt"); ok {
		t.Error("old name should be free")
	}
}

func TestMoveMissingSource(t *testing.T) {
	s, _ := tempDir(t, nil)
	err := s.Move("ghost.txt", "x.txt")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Move error = %v, want ErrNotExist", err)
	}
}

func TestExists(t *testing.T) {
	s, dir := tempDir(t, map[string]string{"a.txt": "a"})
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "dangling")); err != nil {
		t.Fatal(err)
	}

	cases := map[string]bool{
		"a.txt":    true,
		"sub":      true,
		"dangling": true,
		"b.txt":    false,
	}
	for name, want := range cases {
		got, err := s.Exists(name)
		if err != nil {
			t.Fatalf("Exists(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("Exists(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestList(t *testing.T) {
	s, dir := tempDir(t, map[string]string{"b.txt": "bb", "a.txt": "a"})
	_ = os.Mkdir(filepath.Join(dir, "sub"), 0o755)
	_ = os.Symlink(filepath.Join(dir, "a.txt"), filepath.Join(dir, "link"))

	items, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("len = %d, want 4", len(items))
	}
	want := []struct {
		name string
		kind models.EntryKind
	}{
		{"a.txt", models.KindRegular},
		{"b.txt", models.KindRegular},
		{"link", models.KindSymlink},
		{"sub", models.KindDir},
	}
	for i, w := range want {
		if items[i].Name != w.name || items[i].Kind != w.kind {
			t.Errorf("items[%d] = %s/%s, want %s/%s", i, items[i].Name, items[i].Kind, w.name, w.kind)
		}
	}
	if !items[2].TargetRegular {
		t.Error("link should resolve to a regular file")
	}
	if items[1].Size != 2 {
		t.Errorf("b.txt size = %d", items[1].Size)
	}
}

func TestOpen(t *testing.T) {
	s, _ := tempDir(t, map[string]string{"a.txt": "hello"})
	rc, err := s.Open("a.txt")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	b, _ := io.ReadAll(rc)
	if string(b) != "hello" {
		t.Errorf("content = %q", b)
	}
}

func TestInvalidNamesRejected(t *testing.T) {
	s, _ := tempDir(t, map[string]string{"a.txt": "a"})

	cases := []string{"", ".", "..", "../escape.txt", "sub/a.txt", "/etc/passwd"}
	for _, name := range cases {
		if _, err := s.Exists(name); !errors.Is(err, apperr.ErrInvalidName) {
			t.Errorf("Exists(%q) error = %v, want ErrInvalidName", name, err)
		}
		if err := s.Move("a.txt", name); !errors.Is(err, apperr.ErrInvalidName) {
			t.Errorf("Move to %q error = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestNewFS_NonExistentDir(t *testing.T) {
	_, err := NewFS(filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, apperr.ErrDirectoryNotFound) {
		t.Errorf("error = %v, want ErrDirectoryNotFound", err)
	}
}

func TestNewFS_FileNotDir(t *testing.T) {
	dir := testutil.Dir(t, map[string]string{"f": "x"})
	_, err := NewFS(filepath.Join(dir, "f"))
	if !errors.Is(err, apperr.ErrDirectoryNotFound) {
		t.Errorf("error = %v, want ErrDirectoryNotFound", err)
	}
}

func TestNewFS_Empty(t *testing.T) {
	if _, err := NewFS(""); !errors.Is(err, apperr.ErrDirectoryNotFound) {
		t.Errorf("error = %v, want ErrDirectoryNotFound", err)
	}
}
