package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filehaven/filehaven/internal/domain"
)

func TestDiskBlobRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewDiskBlobStore(t.TempDir())

	payload := []byte("Hello, World!")
	ref, err := store.Write(ctx, payload)
	require.NoError(t, err)
	require.NotEmpty(t, ref)

	got, err := store.Read(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDiskBlobRootCreatedLazily(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "nested", "blobs")
	store := NewDiskBlobStore(root)

	_, err := os.Stat(root)
	require.True(t, os.IsNotExist(err), "root should not exist before first write")

	ref, err := store.Write(ctx, []byte("x"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, ref))
	assert.NoError(t, err)
}

func TestDiskBlobRefsAreUnique(t *testing.T) {
	ctx := context.Background()
	store := NewDiskBlobStore(t.TempDir())

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref, err := store.Write(ctx, []byte("same payload"))
		require.NoError(t, err)
		require.False(t, seen[ref], "duplicate ref %s", ref)
		seen[ref] = true
	}
}

func TestDiskBlobReadMissing(t *testing.T) {
	ctx := context.Background()
	store := NewDiskBlobStore(t.TempDir())

	_, err := store.Read(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDiskBlobReadRejectsPaths(t *testing.T) {
	ctx := context.Background()
	store := NewDiskBlobStore(t.TempDir())

	for _, ref := range []string{"", "../etc/passwd", `..\foo`} {
		_, err := store.Read(ctx, ref)
		assert.ErrorIs(t, err, domain.ErrNotFound, "ref %q", ref)
	}
}
