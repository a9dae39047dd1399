// Package storage provides durable blob storage for uploaded documents.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage persists document blobs under opaque references.
type Storage interface {
	// Save writes content under ref, overwriting any existing blob.
	Save(ref string, content []byte) error
}

// MakeRef builds a storage reference namespaced by employee id and document
// type so uploads from different employees cannot collide on filename.
func MakeRef(employeeID, documentType, filename string) string {
	return fmt.Sprintf("%s_%s_%s", employeeID, documentType, filepath.Base(filename))
}

// LocalStorage stores blobs as files under a root directory.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{root: root}, nil
}

func (s *LocalStorage) Save(ref string, content []byte) error {
	if strings.Contains(ref, "..") || strings.ContainsRune(ref, os.PathSeparator) {
		return fmt.Errorf("invalid storage reference %q", ref)
	}
	path := filepath.Join(s.root, ref)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write blob: %w", err)
	}
	return nil
}
