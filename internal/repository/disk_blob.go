package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/filehaven/filehaven/internal/domain"
	"github.com/oklog/ulid/v2"
)

// DiskBlobStore implements domain.BlobStore on the local filesystem.
// Blobs live as flat files under a configured root directory, one file
// per generated identifier. The root is created lazily on first write.
type DiskBlobStore struct {
	root string
}

// NewDiskBlobStore creates a disk blob store rooted at root
func NewDiskBlobStore(root string) *DiskBlobStore {
	return &DiskBlobStore{
		root: root,
	}
}

// Write persists data under a freshly generated identifier and returns it.
// Identifiers are generated per call, so concurrent writes cannot collide.
func (s *DiskBlobStore) Write(ctx context.Context, data []byte) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("failed to create blob root: %w", err)
	}

	ref := ulid.Make().String()
	path := filepath.Join(s.root, ref)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	return ref, nil
}

// Read returns the bytes stored under ref
func (s *DiskBlobStore) Read(ctx context.Context, ref string) ([]byte, error) {
	// Refs are generated by Write; anything path-like is not ours
	if ref == "" || strings.ContainsAny(ref, "/\\") {
		return nil, domain.ErrNotFound
	}

	data, err := os.ReadFile(filepath.Join(s.root, ref))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read blob: %w", err)
	}
	return data, nil
}
