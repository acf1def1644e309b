package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keel/internal/auth"
	"keel/internal/registry"
)

func newTestStore(t *testing.T) *Store {
	st, err := Open(filepath.Join(t.TempDir(), "registry.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func publishReq(name, version, scope string) *PublishRequest {
	return &PublishRequest{
		Name:        name,
		Namespace:   "run",
		Version:     version,
		Description: "a test component",
		License:     "Apache-2.0",
		Sha256:      "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		Size:        42,
		Scope:       scope,
	}
}

func TestCreateAndGetVersion(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	meta, err := st.CreateVersion(ctx, publishReq("run:example", "1.0.0", "run"))
	require.NoError(t, err)
	assert.Equal(t, "run:example", meta.Name)
	assert.Equal(t, "1.0.0", meta.Version)
	assert.NotZero(t, meta.PublishedAt)

	got, err := st.GetVersion(ctx, "run:example", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, meta.Sha256, got.Sha256)
	assert.Equal(t, int64(42), got.Size)
	assert.Equal(t, "Apache-2.0", got.License)
	assert.Equal(t, int64(0), got.Downloads)
}

func TestGetVersionNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.GetVersion(context.Background(), "run:example", "1.0.0")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestDuplicateVersionConflict(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.CreateVersion(ctx, publishReq("run:example", "1.0.0", "run"))
	require.NoError(t, err)

	_, err = st.CreateVersion(ctx, publishReq("run:example", "1.0.0", "run"))
	assert.ErrorIs(t, err, registry.ErrConflict)

	// The first publish is untouched.
	got, err := st.GetVersion(ctx, "run:example", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Size)
}

func TestNamespaceOwnership(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// First publish claims the namespace for scope "run".
	_, err := st.CreateVersion(ctx, publishReq("run:first", "1.0.0", "run"))
	require.NoError(t, err)

	// A different scope cannot publish into it, not even a new package.
	req := publishReq("run:second", "1.0.0", "other")
	_, err = st.CreateVersion(ctx, req)
	assert.ErrorIs(t, err, registry.ErrForbidden)

	_, err = st.GetVersion(ctx, "run:second", "1.0.0")
	assert.ErrorIs(t, err, registry.ErrNotFound)

	// The admin scope bypasses ownership.
	_, err = st.CreateVersion(ctx, publishReq("run:second", "1.0.0", auth.AdminScope))
	require.NoError(t, err)
}

func TestAdminFirstPublishBindsNamespaceToItself(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.CreateVersion(ctx, publishReq("run:example", "1.0.0", auth.AdminScope))
	require.NoError(t, err)

	// The namespace token keeps working after an admin bootstrap.
	_, err = st.CreateVersion(ctx, publishReq("run:example", "1.1.0", "run"))
	require.NoError(t, err)
}

func TestListVersionsSemverOrder(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, v := range []string{"1.0.0", "0.9.0", "1.10.0", "1.0.0-alpha", "1.2.0"} {
		_, err := st.CreateVersion(ctx, publishReq("run:example", v, "run"))
		require.NoError(t, err)
	}

	versions, err := st.ListVersions(ctx, "run:example")
	require.NoError(t, err)
	assert.Equal(t, []string{"0.9.0", "1.0.0-alpha", "1.0.0", "1.2.0", "1.10.0"}, versions)
}

func TestListVersionsUnknownPackage(t *testing.T) {
	st := newTestStore(t)

	_, err := st.ListVersions(context.Background(), "run:missing")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestListPackages(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	names, err := st.ListPackages(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = st.CreateVersion(ctx, publishReq("run:beta", "1.0.0", "run"))
	require.NoError(t, err)
	_, err = st.CreateVersion(ctx, publishReq("run:alpha", "1.0.0", "run"))
	require.NoError(t, err)

	names, err = st.ListPackages(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"run:alpha", "run:beta"}, names)
}

func TestSearch(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, v := range []string{"1.0.0", "2.0.0"} {
		_, err := st.CreateVersion(ctx, publishReq("run:http-client", v, "run"))
		require.NoError(t, err)
	}
	_, err := st.CreateVersion(ctx, publishReq("run:http-server", "0.1.0", "run"))
	require.NoError(t, err)
	_, err = st.CreateVersion(ctx, publishReq("run:unrelated", "1.0.0", "run"))
	require.NoError(t, err)

	resp, total, err := st.Search(ctx, "http", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, resp, 2)

	// One entry per package carrying its highest version.
	assert.Equal(t, "run:http-client", resp[0].Name)
	assert.Equal(t, "2.0.0", resp[0].Version)
	assert.Equal(t, "run:http-server", resp[1].Name)
}

func TestSearchExactNameFirst(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.CreateVersion(ctx, publishReq("run:a-cache", "1.0.0", "run"))
	require.NoError(t, err)
	_, err = st.CreateVersion(ctx, publishReq("run:cache", "1.0.0", "run"))
	require.NoError(t, err)

	resp, _, err := st.Search(ctx, "run:cache", 10, 0)
	require.NoError(t, err)
	require.NotEmpty(t, resp)
	assert.Equal(t, "run:cache", resp[0].Name)
}

func TestSearchPaging(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := st.CreateVersion(ctx, publishReq(fmt.Sprintf("run:pkg-%d", i), "1.0.0", "run"))
		require.NoError(t, err)
	}

	resp, total, err := st.Search(ctx, "pkg", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, resp, 2)
	assert.Equal(t, "run:pkg-2", resp[0].Name)

	resp, total, err = st.Search(ctx, "pkg", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, resp)
}

func TestRecordDownloadAndStats(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.CreateVersion(ctx, publishReq("run:example", "1.0.0", "run"))
	require.NoError(t, err)
	_, err = st.CreateVersion(ctx, publishReq("run:example", "1.1.0", "run"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, st.RecordDownload(ctx, "run:example", "1.0.0"))
	}

	got, err := st.GetVersion(ctx, "run:example", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Downloads)

	stats, err := st.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.PackageCount)
	assert.Equal(t, int64(2), stats.VersionCount)
	assert.Equal(t, int64(84), stats.TotalBytes)
	assert.Equal(t, int64(3), stats.DownloadCount)
}

func TestConcurrentNamespaceClaim(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// Two scopes race to claim a fresh namespace; exactly one may bind it,
	// the other must be rejected with nothing written.
	for round := 0; round < 10; round++ {
		namespace := fmt.Sprintf("ns%d", round)

		var wg sync.WaitGroup
		results := make(chan error, 2)
		for _, scope := range []string{"alice", "bob"} {
			wg.Add(1)
			go func(scope string) {
				defer wg.Done()
				req := publishReq(namespace+":"+scope+"-pkg", "1.0.0", scope)
				req.Namespace = namespace
				_, err := st.CreateVersion(ctx, req)
				results <- err
			}(scope)
		}
		wg.Wait()
		close(results)

		var successes, forbidden int
		for err := range results {
			switch {
			case err == nil:
				successes++
			case errors.Is(err, registry.ErrForbidden):
				forbidden++
			default:
				t.Fatalf("round %d: unexpected error: %v", round, err)
			}
		}
		assert.Equal(t, 1, successes, "round %d", round)
		assert.Equal(t, 1, forbidden, "round %d", round)
	}
}

func TestConcurrentPublishSameVersion(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.CreateVersion(ctx, publishReq("run:example", "1.0.0", "run"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, registry.ErrConflict):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
}
