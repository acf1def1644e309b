package types

import (
	"io"

	"keel/internal/utils"
)

//go:generate easyjson -all types.go
type Status struct {
	Server  string `json:"server"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (r *Status) WriteTo(w io.Writer) (int64, error) { return utils.WriteTo(r, w) }

//go:generate easyjson -all types.go
type VersionMeta struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	License     string `json:"license"`
	Size        int64  `json:"size"`
	Sha256      string `json:"sha256"`
	DownloadURL string `json:"download_url"`
	PublishedAt int64  `json:"published_at"`
	Downloads   int64  `json:"downloads"`
}

func (r *VersionMeta) WriteTo(w io.Writer) (int64, error) { return utils.WriteTo(r, w) }

//go:generate easyjson -all types.go
type VersionList struct {
	Name     string   `json:"name"`
	Versions []string `json:"versions"`
}

func (r *VersionList) WriteTo(w io.Writer) (int64, error) { return utils.WriteTo(r, w) }

//go:generate easyjson -all types.go
type PackageList struct {
	Packages []string `json:"packages"`
}

func (r *PackageList) WriteTo(w io.Writer) (int64, error) { return utils.WriteTo(r, w) }

//go:generate easyjson -all types.go
type SearchResponse struct {
	Packages []VersionMeta `json:"packages"`
	Total    int           `json:"total"`
}

func (r *SearchResponse) WriteTo(w io.Writer) (int64, error) { return utils.WriteTo(r, w) }

//go:generate easyjson -all types.go
type Stats struct {
	PackageCount  int64 `json:"package_count"`
	VersionCount  int64 `json:"version_count"`
	TotalBytes    int64 `json:"total_bytes"`
	DownloadCount int64 `json:"download_count"`
}

func (r *Stats) WriteTo(w io.Writer) (int64, error) { return utils.WriteTo(r, w) }

//go:generate easyjson -all types.go
type Metrics struct {
	Requests    Requests    `json:"requests"`
	Performance Performance `json:"performance"`
	Memory      Memory      `json:"memory"`
}

func (r *Metrics) WriteTo(w io.Writer) (int64, error) { return utils.WriteTo(r, w) }

//go:generate easyjson -all types.go
type Requests struct {
	Total       int64 `json:"total"`
	Publishes   int64 `json:"publishes"`
	Downloads   int64 `json:"downloads"`
	Errors      int64 `json:"errors"`
	RateLimited int64 `json:"rate_limited"`
	Active      int64 `json:"active"`
}

//go:generate easyjson -all types.go
type Performance struct {
	ResponseTimeMs int64 `json:"response_time_ms"`
	Goroutines     int   `json:"goroutines"`
}

//go:generate easyjson -all types.go
type Memory struct {
	AllocMB  uint64 `json:"alloc_mb"`
	SysMB    uint64 `json:"sys_mb"`
	GCCycles uint32 `json:"gc_cycles"`
}
