// Package service ties the metadata store and the blob store together into
// the registry's operations. Handlers stay thin; the ordering rules live
// here.
package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"keel/internal/blob"
	"keel/internal/log"
	"keel/internal/registry"
	"keel/internal/store"
	"keel/internal/types"
	"keel/internal/utils"
)

type RegistryService struct {
	store     *store.Store
	blobs     blob.Store
	baseURL   string
	maxUpload int64
}

func New(st *store.Store, blobs blob.Store, baseURL string, maxUpload int64) *RegistryService {
	return &RegistryService{
		store:     st,
		blobs:     blobs,
		baseURL:   baseURL,
		maxUpload: maxUpload,
	}
}

// PublishInput is one publish request. Artifact is consumed exactly once.
// Scope is the caller's already-authenticated credential scope.
type PublishInput struct {
	Name        string
	Version     string
	Description string
	License     string
	Sha256      string
	Scope       string
	Artifact    io.Reader
}

// Publish validates the request, stores the artifact bytes and records the
// version.
func (s *RegistryService) Publish(ctx context.Context, in *PublishInput) (*types.VersionMeta, error) {
	staged, err := s.Stage(ctx, in.Artifact)
	if err != nil {
		return nil, err
	}
	return s.PublishStaged(ctx, in, staged)
}

// Stage streams artifact bytes into blob staging under the configured upload
// cap. Nothing becomes visible until PublishStaged commits.
func (s *RegistryService) Stage(ctx context.Context, r io.Reader) (blob.Staged, error) {
	return s.blobs.Stage(ctx, r, s.maxUpload)
}

// PublishStaged validates in, verifies the declared digest against the staged
// bytes and makes the version visible. The staged blob is consumed either
// way: committed on success, discarded on every failure. The blob commits
// before the metadata row, so a failed metadata insert leaves at worst an
// orphaned blob, never a version without bytes.
func (s *RegistryService) PublishStaged(ctx context.Context, in *PublishInput, staged blob.Staged) (*types.VersionMeta, error) {
	meta, err := s.publishStaged(ctx, in, staged)
	if err != nil {
		_ = staged.Discard()
		return nil, err
	}
	return meta, nil
}

func (s *RegistryService) publishStaged(ctx context.Context, in *PublishInput, staged blob.Staged) (*types.VersionMeta, error) {
	if !utils.IsValidPackageName(in.Name) {
		return nil, fmt.Errorf("invalid package name %q: %w", in.Name, registry.ErrInvalid)
	}
	if !utils.IsValidVersion(in.Version) {
		return nil, fmt.Errorf("invalid version %q: %w", in.Version, registry.ErrInvalid)
	}
	if in.Sha256 != "" && !utils.IsValidDigest(in.Sha256) {
		return nil, fmt.Errorf("invalid sha256 %q: %w", in.Sha256, registry.ErrInvalid)
	}
	namespace, ok := utils.Namespace(in.Name)
	if !ok {
		return nil, fmt.Errorf("invalid package name %q: %w", in.Name, registry.ErrInvalid)
	}

	if in.Sha256 != "" && in.Sha256 != staged.Digest() {
		return nil, fmt.Errorf("declared sha256 does not match uploaded bytes: %w", registry.ErrDigestMismatch)
	}
	if err := staged.Commit(ctx); err != nil {
		return nil, err
	}

	meta, err := s.store.CreateVersion(ctx, &store.PublishRequest{
		Name:        in.Name,
		Namespace:   namespace,
		Version:     in.Version,
		Description: in.Description,
		License:     in.License,
		Sha256:      staged.Digest(),
		Size:        staged.Size(),
		Scope:       in.Scope,
	})
	if err != nil {
		return nil, err
	}
	meta.DownloadURL = s.downloadURL(meta.Name, meta.Version)
	return meta, nil
}

// OpenArtifact streams the bytes of one published version and bumps its
// download counter in the background.
func (s *RegistryService) OpenArtifact(ctx context.Context, name, version string) (io.ReadCloser, *types.VersionMeta, error) {
	meta, err := s.store.GetVersion(ctx, name, version)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err := s.blobs.Open(ctx, meta.Sha256)
	if err != nil {
		return nil, nil, err
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.store.RecordDownload(ctx, name, version); err != nil {
			log.Logger.Warnf("record download for %s@%s: %v", name, version, err)
		}
	}()

	meta.DownloadURL = s.downloadURL(name, version)
	return rc, meta, nil
}

func (s *RegistryService) GetVersion(ctx context.Context, name, version string) (*types.VersionMeta, error) {
	meta, err := s.store.GetVersion(ctx, name, version)
	if err != nil {
		return nil, err
	}
	meta.DownloadURL = s.downloadURL(name, version)
	return meta, nil
}

func (s *RegistryService) ListVersions(ctx context.Context, name string) (*types.VersionList, error) {
	versions, err := s.store.ListVersions(ctx, name)
	if err != nil {
		return nil, err
	}
	return &types.VersionList{Name: name, Versions: versions}, nil
}

func (s *RegistryService) ListPackages(ctx context.Context) (*types.PackageList, error) {
	names, err := s.store.ListPackages(ctx)
	if err != nil {
		return nil, err
	}
	return &types.PackageList{Packages: names}, nil
}

func (s *RegistryService) Search(ctx context.Context, query string, limit, offset int) (*types.SearchResponse, error) {
	results, total, err := s.store.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].DownloadURL = s.downloadURL(results[i].Name, results[i].Version)
	}
	return &types.SearchResponse{Packages: results, Total: total}, nil
}

func (s *RegistryService) Stats(ctx context.Context) (*types.Stats, error) {
	return s.store.Stats(ctx)
}

func (s *RegistryService) downloadURL(name, version string) string {
	return fmt.Sprintf("%s/packages/%s/%s/artifact.wasm", s.baseURL, name, version)
}
