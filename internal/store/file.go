package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// FileStore keeps each document in its own file under a directory.
type FileStore struct {
	dir string
}

// OpenFile returns a FileStore rooted at dir, creating it if needed.
func OpenFile(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Close implements io.Closer for symmetry with Store.
func (f *FileStore) Close() error {
	return nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, unsafeKeyChars.ReplaceAllString(key, "_")+".json")
}

// Get returns the document stored under key.
func (f *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return data, err
}

// Put atomically replaces the document stored under key.
func (f *FileStore) Put(_ context.Context, key string, value []byte) error {
	tmpFile, err := os.CreateTemp(f.dir, "doc-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()
	if _, err := tmpFile.Write(value); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close document: %w", err)
	}
	if err := os.Rename(tmpPath, f.path(key)); err != nil {
		return fmt.Errorf("failed to replace document: %w", err)
	}
	return nil
}

// Delete removes the document stored under key.
func (f *FileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
