// internal/storage/object/localfs_test.go
package object

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalFS_ImplementsStore(t *testing.T) {
	var _ Store = (*LocalFS)(nil)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNewLocalFS_MissingDir(t *testing.T) {
	if _, err := NewLocalFS(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing base path")
	}
}

func TestNewLocalFS_NotADir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.csv", "x")
	if _, err := NewLocalFS(filepath.Join(dir, "file.csv")); err == nil {
		t.Error("expected error when base path is a file")
	}
}

func TestLocalFS_Read(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data/movies.csv", "Release Year,Genre\n")

	fs, err := NewLocalFS(dir)
	if err != nil {
		t.Fatalf("NewLocalFS: %v", err)
	}

	got, err := fs.Read(context.Background(), "data/movies.csv")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "Release Year,Genre\n" {
		t.Errorf("unexpected content %q", got)
	}
}

func TestLocalFS_ReadAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	writeFile(t, other, "abs.csv", "abs")

	fs, _ := NewLocalFS(dir)
	got, err := fs.Read(context.Background(), filepath.Join(other, "abs.csv"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "abs" {
		t.Errorf("unexpected content %q", got)
	}
}

func TestLocalFS_ReadCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "a")
	fs, _ := NewLocalFS(dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := fs.Read(ctx, "a.csv"); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestLocalFS_Exists(t *testing.T) {
	dir := t.TempDir()
	fs, _ := NewLocalFS(dir)
	ctx := context.Background()

	exists, _ := fs.Exists(ctx, "nonexistent.csv")
	if exists {
		t.Error("expected false for nonexistent file")
	}

	writeFile(t, dir, "exists.csv", "data")
	exists, _ = fs.Exists(ctx, "exists.csv")
	if !exists {
		t.Error("expected true for existing file")
	}
}

func TestLocalFS_List(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "datasets/2024/b.csv", "b")
	writeFile(t, dir, "datasets/2024/a.csv", "a")
	writeFile(t, dir, "other/c.csv", "c")

	fs, _ := NewLocalFS(dir)

	paths, err := fs.List(context.Background(), "datasets")
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d: %v", len(paths), paths)
	}
	if paths[0] != "datasets/2024/a.csv" || paths[1] != "datasets/2024/b.csv" {
		t.Errorf("unexpected paths %v", paths)
	}
}

func TestLocalFS_ListMissingPrefix(t *testing.T) {
	fs, _ := NewLocalFS(t.TempDir())

	paths, err := fs.List(context.Background(), "nothing-here")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no paths, got %v", paths)
	}
}
