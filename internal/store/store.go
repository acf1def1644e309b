// Package store is the sqlite-backed metadata store. It owns the invariants
// the registry cannot give up: a published version is immutable, and a
// namespace belongs to whichever scope published into it first.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	_ "modernc.org/sqlite"

	"keel/internal/auth"
	"keel/internal/registry"
	"keel/internal/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS namespaces (
	namespace  TEXT PRIMARY KEY,
	scope      TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS packages (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL UNIQUE,
	namespace   TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	license     TEXT NOT NULL DEFAULT '',
	created_at  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS versions (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	package_id   INTEGER NOT NULL REFERENCES packages(id),
	version      TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	license      TEXT NOT NULL DEFAULT '',
	size         INTEGER NOT NULL,
	sha256       TEXT NOT NULL,
	published_at INTEGER NOT NULL,
	UNIQUE(package_id, version)
);
CREATE TABLE IF NOT EXISTS downloads (
	package_id INTEGER NOT NULL,
	version    TEXT NOT NULL,
	count      INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY(package_id, version)
);
CREATE INDEX IF NOT EXISTS idx_packages_namespace ON packages(namespace);
CREATE INDEX IF NOT EXISTS idx_versions_package ON versions(package_id);
`

type Store struct {
	db *sql.DB
}

// Open opens or creates the metadata database at path and applies the schema.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer; more connections just queue on the lock.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// PublishRequest carries the metadata of one version publish. Scope is the
// resolved credential scope of the caller.
type PublishRequest struct {
	Name        string
	Namespace   string
	Version     string
	Description string
	License     string
	Sha256      string
	Size        int64
	Scope       string
}

func isBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// CreateVersion records a new version in a single transaction. The namespace
// binding, package upsert and version insert all commit or fail together.
// Retries once when sqlite reports a busy writer.
func (s *Store) CreateVersion(ctx context.Context, req *PublishRequest) (*types.VersionMeta, error) {
	meta, err := s.createVersion(ctx, req)
	if isBusy(err) {
		meta, err = s.createVersion(ctx, req)
	}
	return meta, err
}

func (s *Store) createVersion(ctx context.Context, req *PublishRequest) (*types.VersionMeta, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now().Unix()

	// First publish into a namespace claims it for the caller's scope. An
	// admin publish binds the namespace to itself so its own token still
	// works afterwards.
	bindScope := req.Scope
	if bindScope == auth.AdminScope {
		bindScope = req.Namespace
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO namespaces (namespace, scope, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(namespace) DO NOTHING`,
		req.Namespace, bindScope, now); err != nil {
		return nil, err
	}

	var ownerScope string
	if err := tx.QueryRowContext(ctx,
		`SELECT scope FROM namespaces WHERE namespace = ?`,
		req.Namespace).Scan(&ownerScope); err != nil {
		return nil, err
	}
	if req.Scope != auth.AdminScope && req.Scope != ownerScope {
		return nil, fmt.Errorf("namespace %s is owned by another scope: %w",
			req.Namespace, registry.ErrForbidden)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO packages (name, namespace, description, license, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			description = excluded.description,
			license     = excluded.license`,
		req.Name, req.Namespace, req.Description, req.License, now); err != nil {
		return nil, err
	}

	var packageID int64
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM packages WHERE name = ?`, req.Name).Scan(&packageID); err != nil {
		return nil, err
	}

	// The UNIQUE(package_id, version) constraint is the serialization point
	// for concurrent publishes of the same version.
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO versions (package_id, version, description, license, size, sha256, published_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		packageID, req.Version, req.Description, req.License, req.Size, req.Sha256, now); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("version %s of %s already published: %w",
				req.Version, req.Name, registry.ErrConflict)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &types.VersionMeta{
		Name:        req.Name,
		Version:     req.Version,
		Description: req.Description,
		License:     req.License,
		Size:        req.Size,
		Sha256:      req.Sha256,
		PublishedAt: now,
	}, nil
}

// GetVersion returns the metadata of one published version.
func (s *Store) GetVersion(ctx context.Context, name, version string) (*types.VersionMeta, error) {
	meta := &types.VersionMeta{Name: name, Version: version}
	err := s.db.QueryRowContext(ctx,
		`SELECT v.description, v.license, v.size, v.sha256, v.published_at,
			COALESCE(d.count, 0)
		 FROM versions v
		 JOIN packages p ON p.id = v.package_id
		 LEFT JOIN downloads d ON d.package_id = v.package_id AND d.version = v.version
		 WHERE p.name = ? AND v.version = ?`,
		name, version).Scan(
		&meta.Description, &meta.License, &meta.Size, &meta.Sha256,
		&meta.PublishedAt, &meta.Downloads)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%s@%s: %w", name, version, registry.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return meta, nil
}

// ListVersions returns every published version of a package in ascending
// semver order.
func (s *Store) ListVersions(ctx context.Context, name string) ([]string, error) {
	var packageID int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM packages WHERE name = ?`, name).Scan(&packageID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("package %s: %w", name, registry.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT version FROM versions WHERE package_id = ?`, packageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parsed semver.Collection
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		v, err := semver.StrictNewVersion(raw)
		if err != nil {
			return nil, fmt.Errorf("stored version %q of %s: %w", raw, name, err)
		}
		parsed = append(parsed, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Sort(parsed)
	versions := make([]string, len(parsed))
	for i, v := range parsed {
		versions[i] = v.Original()
	}
	return versions, nil
}

// ListPackages returns all package names, sorted.
func (s *Store) ListPackages(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM packages ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Search matches packages by name or description substring and returns one
// entry per package carrying its highest version. Exact name matches sort
// first, the rest alphabetically. Total counts matches before paging.
func (s *Store) Search(ctx context.Context, query string, limit, offset int) ([]types.VersionMeta, int, error) {
	pattern := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.name, v.version, v.description, v.license, v.size, v.sha256,
			v.published_at, COALESCE(d.count, 0)
		 FROM packages p
		 JOIN versions v ON v.package_id = p.id
		 LEFT JOIN downloads d ON d.package_id = v.package_id AND d.version = v.version
		 WHERE p.name LIKE ? OR p.description LIKE ?`,
		pattern, pattern)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	best := make(map[string]types.VersionMeta)
	for rows.Next() {
		var meta types.VersionMeta
		if err := rows.Scan(&meta.Name, &meta.Version, &meta.Description,
			&meta.License, &meta.Size, &meta.Sha256, &meta.PublishedAt,
			&meta.Downloads); err != nil {
			return nil, 0, err
		}
		cur, ok := best[meta.Name]
		if !ok || higherVersion(meta.Version, cur.Version) {
			best[meta.Name] = meta
		}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	results := make([]types.VersionMeta, 0, len(best))
	for _, meta := range best {
		results = append(results, meta)
	}
	sort.Slice(results, func(i, j int) bool {
		ei, ej := results[i].Name == query, results[j].Name == query
		if ei != ej {
			return ei
		}
		return results[i].Name < results[j].Name
	})

	total := len(results)
	if offset >= total {
		return []types.VersionMeta{}, total, nil
	}
	results = results[offset:]
	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results, total, nil
}

func higherVersion(a, b string) bool {
	va, err := semver.StrictNewVersion(a)
	if err != nil {
		return false
	}
	vb, err := semver.StrictNewVersion(b)
	if err != nil {
		return true
	}
	return va.GreaterThan(vb)
}

// RecordDownload bumps the download counter for one version. Callers treat
// this as best effort.
func (s *Store) RecordDownload(ctx context.Context, name, version string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO downloads (package_id, version, count)
		 SELECT p.id, ?, 1 FROM packages p WHERE p.name = ?
		 ON CONFLICT(package_id, version) DO UPDATE SET count = count + 1`,
		version, name)
	return err
}

// Stats returns registry-wide aggregates.
func (s *Store) Stats(ctx context.Context) (*types.Stats, error) {
	stats := &types.Stats{}
	err := s.db.QueryRowContext(ctx,
		`SELECT
			(SELECT COUNT(*) FROM packages),
			(SELECT COUNT(*) FROM versions),
			(SELECT COALESCE(SUM(size), 0) FROM versions),
			(SELECT COALESCE(SUM(count), 0) FROM downloads)`).Scan(
		&stats.PackageCount, &stats.VersionCount, &stats.TotalBytes,
		&stats.DownloadCount)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
