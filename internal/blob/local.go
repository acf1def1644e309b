package blob

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"keel/internal/registry"
)

func init() {
	register(Local, NewLocalStore)
}

// LocalStore keeps artifacts on the filesystem under
// <base>/<digest[:2]>/<digest>. Uploads land in <base>/staging first and are
// renamed into place, so visibility is atomic on any POSIX filesystem.
type LocalStore struct {
	basePath    string
	stagingPath string
}

func NewLocalStore(basePath string) (Store, error) {
	stagingPath := filepath.Join(basePath, "staging")
	if err := os.MkdirAll(stagingPath, 0755); err != nil {
		return nil, err
	}
	return &LocalStore{
		basePath:    basePath,
		stagingPath: stagingPath,
	}, nil
}

func (l *LocalStore) artifactPath(digest string) string {
	return filepath.Join(l.basePath, digest[:2], digest)
}

func (l *LocalStore) Stage(ctx context.Context, r io.Reader, maxSize int64) (Staged, error) {
	f, err := os.CreateTemp(l.stagingPath, "upload-*")
	if err != nil {
		return nil, err
	}

	h := sha256.New()
	// Read one byte past the limit so a payload of exactly maxSize passes.
	n, err := io.Copy(io.MultiWriter(f, h), io.LimitReader(r, maxSize+1))
	if err == nil && n > maxSize {
		err = registry.ErrTooLarge
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return nil, err
	}

	return &localStaged{
		store:  l,
		path:   f.Name(),
		digest: hex.EncodeToString(h.Sum(nil)),
		size:   n,
	}, nil
}

func (l *LocalStore) Open(ctx context.Context, digest string) (io.ReadCloser, int64, error) {
	f, err := os.Open(l.artifactPath(digest))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("artifact %s: %w", digest, registry.ErrNotFound)
		}
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}

func (l *LocalStore) Exists(ctx context.Context, digest string) (bool, error) {
	_, err := os.Stat(l.artifactPath(digest))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (l *LocalStore) Close() error {
	return nil
}

type localStaged struct {
	store  *LocalStore
	path   string
	digest string
	size   int64
}

func (s *localStaged) Digest() string { return s.digest }
func (s *localStaged) Size() int64    { return s.size }

func (s *localStaged) Commit(ctx context.Context) error {
	target := s.store.artifactPath(s.digest)

	if _, err := os.Stat(target); err == nil {
		// Identical content already stored.
		return s.Discard()
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	return os.Rename(s.path, target)
}

func (s *localStaged) Discard() error {
	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
