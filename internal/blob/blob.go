// Package blob is the content-addressed artifact store. Bytes are staged,
// hashed and only promoted under their digest once fully written, so a reader
// never observes a partial artifact.
package blob

import (
	"context"
	"fmt"
	"io"

	"keel/internal/registry"
)

type BackendType string

const (
	Local BackendType = "local"
	MinDB BackendType = "mindb"
)

type Store interface {
	// Stage streams r into temporary storage, hashing and counting bytes.
	// Returns registry.ErrTooLarge once more than maxSize bytes arrive.
	Stage(ctx context.Context, r io.Reader, maxSize int64) (Staged, error)

	// Open streams an artifact by digest. Returns the reader and byte size,
	// or registry.ErrNotFound.
	Open(ctx context.Context, digest string) (io.ReadCloser, int64, error)

	Exists(ctx context.Context, digest string) (bool, error)

	Close() error
}

// Staged is a fully received upload that has not been made visible yet.
type Staged interface {
	Digest() string
	Size() int64

	// Commit promotes the staged bytes under their digest. Committing a
	// digest that already exists is a no-op success.
	Commit(ctx context.Context) error

	// Discard drops the staged bytes. Safe to call after Commit.
	Discard() error
}

// Put stages r, verifies the declared digest against the computed one and
// commits. On mismatch nothing becomes visible.
func Put(ctx context.Context, s Store, r io.Reader, declaredDigest string, maxSize int64) (string, int64, error) {
	staged, err := s.Stage(ctx, r, maxSize)
	if err != nil {
		return "", 0, err
	}
	if declaredDigest != "" && staged.Digest() != declaredDigest {
		_ = staged.Discard()
		return "", 0, fmt.Errorf("declared sha256 does not match uploaded bytes: %w", registry.ErrDigestMismatch)
	}
	if err := staged.Commit(ctx); err != nil {
		_ = staged.Discard()
		return "", 0, err
	}
	return staged.Digest(), staged.Size(), nil
}

type backendFn func(string) (Store, error)

var factory = make(map[BackendType]backendFn)

func register(bt BackendType, fn backendFn) {
	if _, ok := factory[bt]; ok {
		return
	}
	factory[bt] = fn
}

// Create builds a blob store backend rooted at path.
func Create(bt BackendType, path string) (Store, error) {
	if fn, ok := factory[bt]; ok {
		return fn(path)
	}
	return nil, fmt.Errorf("unsupported blob backend: %s", bt)
}
