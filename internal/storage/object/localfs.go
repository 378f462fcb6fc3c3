// internal/storage/object/localfs.go
package object

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LocalFS implements Store for a directory on the local filesystem
type LocalFS struct {
	basePath string
}

// NewLocalFS creates a LocalFS rooted at basePath. The directory must exist.
func NewLocalFS(basePath string) (*LocalFS, error) {
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("opening base path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("base path %s is not a directory", basePath)
	}
	return &LocalFS{basePath: basePath}, nil
}

func (l *LocalFS) fullPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.basePath, path)
}

func (l *LocalFS) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(l.fullPath(path))
}

func (l *LocalFS) List(ctx context.Context, prefix string) ([]string, error) {
	var paths []string
	searchPath := l.fullPath(prefix)

	err := filepath.Walk(searchPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !info.IsDir() {
			relPath, _ := filepath.Rel(l.basePath, path)
			paths = append(paths, filepath.ToSlash(relPath))
		}
		return nil
	})

	if os.IsNotExist(err) {
		return []string{}, nil
	}
	sort.Strings(paths)
	return paths, err
}

func (l *LocalFS) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(l.fullPath(path))
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}
