package blob

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"testing"

	"keel/internal/registry"
)

func setupLocalStore(t *testing.T) Store {
	tempDir, err := os.MkdirTemp("", "blobstore-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := NewLocalStore(tempDir)
	if err != nil {
		t.Fatalf("Failed to create local store: %v", err)
	}
	return store
}

func TestStageAndCommit(t *testing.T) {
	store := setupLocalStore(t)
	ctx := context.Background()

	content := []byte("component bytes")
	sum := sha256.Sum256(content)
	wantDigest := hex.EncodeToString(sum[:])

	staged, err := store.Stage(ctx, bytes.NewReader(content), 1024)
	if err != nil {
		t.Fatalf("Failed to stage: %v", err)
	}
	if staged.Digest() != wantDigest {
		t.Errorf("Digest = %s, want %s", staged.Digest(), wantDigest)
	}
	if staged.Size() != int64(len(content)) {
		t.Errorf("Size = %d, want %d", staged.Size(), len(content))
	}

	// Nothing is visible before commit.
	if exists, _ := store.Exists(ctx, wantDigest); exists {
		t.Error("Artifact visible before commit")
	}

	if err := staged.Commit(ctx); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}

	rc, size, err := store.Open(ctx, wantDigest)
	if err != nil {
		t.Fatalf("Failed to open committed artifact: %v", err)
	}
	defer rc.Close()

	if size != int64(len(content)) {
		t.Errorf("Open size = %d, want %d", size, len(content))
	}
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("Failed to read artifact: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("Artifact content doesn't match: got %q, want %q", got, content)
	}
}

func TestStageTooLarge(t *testing.T) {
	store := setupLocalStore(t)

	content := bytes.Repeat([]byte("x"), 100)
	_, err := store.Stage(context.Background(), bytes.NewReader(content), 99)
	if !errors.Is(err, registry.ErrTooLarge) {
		t.Fatalf("Stage over limit = %v, want ErrTooLarge", err)
	}
}

func TestStageExactLimit(t *testing.T) {
	store := setupLocalStore(t)

	content := bytes.Repeat([]byte("x"), 100)
	staged, err := store.Stage(context.Background(), bytes.NewReader(content), 100)
	if err != nil {
		t.Fatalf("Stage at exact limit failed: %v", err)
	}
	_ = staged.Discard()
}

func TestCommitIdempotent(t *testing.T) {
	store := setupLocalStore(t)
	ctx := context.Background()

	content := []byte("same bytes twice")
	for i := 0; i < 2; i++ {
		staged, err := store.Stage(ctx, bytes.NewReader(content), 1024)
		if err != nil {
			t.Fatalf("Failed to stage: %v", err)
		}
		if err := staged.Commit(ctx); err != nil {
			t.Fatalf("Commit %d failed: %v", i, err)
		}
	}
}

func TestPutDigestMismatch(t *testing.T) {
	store := setupLocalStore(t)
	ctx := context.Background()

	content := []byte("actual bytes")
	wrong := "0000000000000000000000000000000000000000000000000000000000000000"

	_, _, err := Put(ctx, store, bytes.NewReader(content), wrong, 1024)
	if !errors.Is(err, registry.ErrDigestMismatch) {
		t.Fatalf("Put with wrong digest = %v, want ErrDigestMismatch", err)
	}

	// The mismatched upload must not become visible.
	sum := sha256.Sum256(content)
	if exists, _ := store.Exists(ctx, hex.EncodeToString(sum[:])); exists {
		t.Error("Mismatched upload became visible")
	}
}

func TestPutWithoutDeclaredDigest(t *testing.T) {
	store := setupLocalStore(t)
	ctx := context.Background()

	content := []byte("undeclared digest")
	sum := sha256.Sum256(content)
	wantDigest := hex.EncodeToString(sum[:])

	digest, size, err := Put(ctx, store, bytes.NewReader(content), "", 1024)
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if digest != wantDigest {
		t.Errorf("Put digest = %s, want %s", digest, wantDigest)
	}
	if size != int64(len(content)) {
		t.Errorf("Put size = %d, want %d", size, len(content))
	}
}

func TestOpenMissing(t *testing.T) {
	store := setupLocalStore(t)

	missing := "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	_, _, err := store.Open(context.Background(), missing)
	if !errors.Is(err, registry.ErrNotFound) {
		t.Fatalf("Open missing digest = %v, want ErrNotFound", err)
	}
}

func TestDiscard(t *testing.T) {
	store := setupLocalStore(t)
	ctx := context.Background()

	staged, err := store.Stage(ctx, bytes.NewReader([]byte("throwaway")), 1024)
	if err != nil {
		t.Fatalf("Failed to stage: %v", err)
	}
	if err := staged.Discard(); err != nil {
		t.Fatalf("Discard failed: %v", err)
	}
	if exists, _ := store.Exists(ctx, staged.Digest()); exists {
		t.Error("Discarded upload became visible")
	}
}
