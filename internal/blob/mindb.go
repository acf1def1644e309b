package blob

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/elastic-io/mindb"

	"keel/internal/registry"
)

func init() {
	register(MinDB, NewMinDBStore)
}

const mindbBucket = "artifacts"

// MinDBStore keeps artifacts as objects in an embedded mindb bucket, keyed by
// digest. Uploads are buffered in memory before commit since mindb objects
// are written whole.
type MinDBStore struct {
	db     *mindb.DB
	bucket string
}

func NewMinDBStore(dbPath string) (Store, error) {
	db, err := mindb.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open mindb at %s: %w", dbPath, err)
	}

	exists, err := db.BucketExists(mindbBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := db.CreateBucket(mindbBucket); err != nil {
			return nil, err
		}
	}

	return &MinDBStore{db: db, bucket: mindbBucket}, nil
}

func objectKey(digest string) string {
	return "sha256/" + digest
}

func (m *MinDBStore) Stage(ctx context.Context, r io.Reader, maxSize int64) (Staged, error) {
	h := sha256.New()
	var buf bytes.Buffer
	n, err := io.Copy(io.MultiWriter(&buf, h), io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if n > maxSize {
		return nil, registry.ErrTooLarge
	}

	return &mindbStaged{
		store:  m,
		data:   buf.Bytes(),
		digest: hex.EncodeToString(h.Sum(nil)),
	}, nil
}

func (m *MinDBStore) Open(ctx context.Context, digest string) (io.ReadCloser, int64, error) {
	obj, err := m.db.GetObject(m.bucket, objectKey(digest))
	if err != nil {
		return nil, 0, fmt.Errorf("artifact %s: %w", digest, registry.ErrNotFound)
	}
	return io.NopCloser(bytes.NewReader(obj.Data)), obj.Size, nil
}

func (m *MinDBStore) Exists(ctx context.Context, digest string) (bool, error) {
	if _, err := m.db.GetObject(m.bucket, objectKey(digest)); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *MinDBStore) Close() error {
	return m.db.Close()
}

type mindbStaged struct {
	store  *MinDBStore
	data   []byte
	digest string
}

func (s *mindbStaged) Digest() string { return s.digest }
func (s *mindbStaged) Size() int64    { return int64(len(s.data)) }

func (s *mindbStaged) Commit(ctx context.Context) error {
	exists, err := s.store.Exists(ctx, s.digest)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return s.store.db.PutObject(s.store.bucket, &mindb.ObjectData{
		Key:         objectKey(s.digest),
		Data:        s.data,
		Size:        int64(len(s.data)),
		ContentType: "application/octet-stream",
		Metadata: map[string]string{
			"upload-time": time.Now().UTC().Format(time.RFC3339),
		},
		LastModified: time.Now(),
	})
}

func (s *mindbStaged) Discard() error {
	s.data = nil
	return nil
}
