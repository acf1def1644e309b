package api

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"

	"keel/internal/auth"
	"keel/internal/blob"
	"keel/internal/config"
	"keel/internal/log"
	"keel/internal/metrics"
	"keel/internal/middleware"
	"keel/internal/ratelimit"
	"keel/internal/registry"
	"keel/internal/service"
	"keel/internal/types"
	"keel/internal/utils"
)

// Metadata fields in a publish form are capped; only the artifact part may
// be large.
const maxFieldSize = 4096

type API struct {
	svc    *service.RegistryService
	auth   *auth.Authorizer
	config *config.Config
}

func NewAPI(svc *service.RegistryService, authorizer *auth.Authorizer, config *config.Config) *API {
	return &API{
		svc:    svc,
		auth:   authorizer,
		config: config,
	}
}

func SetupRouter(h *API, limiter *ratelimit.Limiter) fasthttp.RequestHandler {
	// Package names may contain slashes (run:example/hello), so the name
	// capture is greedy and the version is pinned to the last segment.
	patterns := map[string]*regexp.Regexp{
		"versions": regexp.MustCompile(`^/api/v1/packages/(.+)/versions$`),
		"meta":     regexp.MustCompile(`^/api/v1/packages/(.+)/([^/]+)$`),
		"artifact": regexp.MustCompile(`^/packages/(.+)/([^/]+)/artifact\.wasm$`),
	}

	return middleware.CORSMiddleware(
		middleware.LoggingMiddleware(
			middleware.MetricsMiddleware(
				middleware.RateLimitMiddleware(limiter,
					func(ctx *fasthttp.RequestCtx) {
						path := string(ctx.Path())
						method := string(ctx.Method())

						switch {
						case method == "GET" && path == "/":
							h.Root(ctx)
							return
						case method == "GET" && path == "/health":
							h.Health(ctx)
							return
						case method == "GET" && path == "/metrics":
							h.Metrics(ctx)
							return
						case method == "GET" && path == "/packages":
							h.ListPackages(ctx)
							return
						case method == "POST" && path == "/api/v1/packages":
							h.Publish(ctx)
							return
						case method == "GET" && path == "/api/v1/stats":
							h.Stats(ctx)
							return
						case method == "GET" && path == "/api/v1/search":
							h.Search(ctx)
							return
						}

						if method == "GET" {
							if m := patterns["versions"].FindStringSubmatch(path); m != nil {
								h.ListVersions(ctx, m[1])
								return
							}
							if m := patterns["artifact"].FindStringSubmatch(path); m != nil {
								h.DownloadArtifact(ctx, m[1], m[2])
								return
							}
							if m := patterns["meta"].FindStringSubmatch(path); m != nil {
								h.GetVersion(ctx, m[1], m[2])
								return
							}
						}

						ctx.Error("Not Found", fasthttp.StatusNotFound)
					},
				),
			),
		),
	)
}

func (h *API) sendJSONResponse(ctx *fasthttp.RequestCtx, data io.WriterTo, statusCode int) {
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.SetStatusCode(statusCode)

	if _, err := data.WriteTo(ctx); err != nil {
		log.Logger.Debugf("Failed to encode JSON response: %v", err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"status":"error","message":"Internal server error"}`)
	}
}

func (h *API) sendJSONError(ctx *fasthttp.RequestCtx, message string, statusCode int) {
	response := types.Status{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	}

	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.SetStatusCode(statusCode)

	if _, err := response.WriteTo(ctx); err != nil {
		log.Logger.Debugf("Failed to encode JSON error response: %v", err)
		ctx.SetBodyString(fmt.Sprintf(`{"status":"error","message":"%s"}`, message))
	}
}

// sendError maps a service error to its HTTP status.
func (h *API) sendError(ctx *fasthttp.RequestCtx, err error) {
	status := registry.HTTPStatus(err)
	if status == fasthttp.StatusInternalServerError {
		log.Logger.Errorf("internal error on %s %s: %v", ctx.Method(), ctx.Path(), err)
		h.sendJSONError(ctx, "Internal server error", status)
		return
	}
	h.sendJSONError(ctx, err.Error(), status)
}

func bearerToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func readField(part *multipart.Part) (string, error) {
	data, err := io.ReadAll(io.LimitReader(part, maxFieldSize))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Publish handles POST /api/v1/packages. The multipart body is consumed as a
// stream: name and version must precede the artifact part so the request can
// be authorized before any artifact bytes are read, and the artifact itself
// flows straight into blob staging without buffering the whole upload. The
// remaining parts are read to the end before anything commits, so a sha256
// field arriving after the artifact still gates the publish.
func (h *API) Publish(ctx *fasthttp.RequestCtx) {
	boundary := string(ctx.Request.Header.MultipartFormBoundary())
	if boundary == "" {
		h.sendJSONError(ctx, "Expected multipart/form-data", fasthttp.StatusBadRequest)
		return
	}

	var body io.Reader
	if ctx.Request.IsBodyStream() {
		body = ctx.RequestBodyStream()
	} else {
		body = bytes.NewReader(ctx.PostBody())
	}
	reader := multipart.NewReader(body, boundary)

	in := &service.PublishInput{}
	var staged blob.Staged
	discard := func() {
		if staged != nil {
			_ = staged.Discard()
		}
	}

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			discard()
			h.sendJSONError(ctx, "Malformed multipart body", fasthttp.StatusBadRequest)
			return
		}

		switch part.FormName() {
		case "name":
			if staged != nil {
				discard()
				h.sendJSONError(ctx, "Fields name and version must precede the artifact part", fasthttp.StatusBadRequest)
				return
			}
			in.Name, err = readField(part)
		case "version":
			if staged != nil {
				discard()
				h.sendJSONError(ctx, "Fields name and version must precede the artifact part", fasthttp.StatusBadRequest)
				return
			}
			in.Version, err = readField(part)
		case "description":
			in.Description, err = readField(part)
		case "license":
			in.License, err = readField(part)
		case "sha256":
			in.Sha256, err = readField(part)
		case "component", "artifact":
			if staged != nil {
				discard()
				h.sendJSONError(ctx, "Duplicate artifact part", fasthttp.StatusBadRequest)
				return
			}
			var ok bool
			if staged, ok = h.stageArtifact(ctx, in, part); !ok {
				return
			}
		}
		if err != nil {
			discard()
			h.sendJSONError(ctx, "Malformed multipart body", fasthttp.StatusBadRequest)
			return
		}
	}

	if staged == nil {
		h.sendJSONError(ctx, "Artifact part is required", fasthttp.StatusBadRequest)
		return
	}

	meta, err := h.svc.PublishStaged(ctx, in, staged)
	if err != nil {
		h.sendError(ctx, err)
		return
	}

	log.Logger.Infof("published %s@%s (%d bytes, sha256 %s)",
		meta.Name, meta.Version, meta.Size, meta.Sha256)
	h.sendJSONResponse(ctx, meta, fasthttp.StatusCreated)
}

// stageArtifact authorizes the publish and streams the artifact part into
// blob staging. On failure the response has already been written and the
// second return is false.
func (h *API) stageArtifact(ctx *fasthttp.RequestCtx, in *service.PublishInput, part *multipart.Part) (blob.Staged, bool) {
	if in.Name == "" || in.Version == "" {
		h.sendJSONError(ctx, "Fields name and version must precede the artifact part", fasthttp.StatusBadRequest)
		return nil, false
	}

	namespace, ok := utils.Namespace(in.Name)
	if !ok {
		h.sendJSONError(ctx, fmt.Sprintf("Invalid package name: %s", in.Name), fasthttp.StatusBadRequest)
		return nil, false
	}

	scope, err := h.auth.Authorize(bearerToken(ctx), namespace)
	if err != nil {
		h.sendError(ctx, err)
		return nil, false
	}
	in.Scope = scope

	staged, err := h.svc.Stage(ctx, part)
	if err != nil {
		h.sendError(ctx, err)
		return nil, false
	}
	return staged, true
}

func (h *API) ListVersions(ctx *fasthttp.RequestCtx, name string) {
	list, err := h.svc.ListVersions(ctx, name)
	if err != nil {
		h.sendError(ctx, err)
		return
	}
	h.sendJSONResponse(ctx, list, fasthttp.StatusOK)
}

func (h *API) GetVersion(ctx *fasthttp.RequestCtx, name, version string) {
	meta, err := h.svc.GetVersion(ctx, name, version)
	if err != nil {
		h.sendError(ctx, err)
		return
	}
	h.sendJSONResponse(ctx, meta, fasthttp.StatusOK)
}

func (h *API) DownloadArtifact(ctx *fasthttp.RequestCtx, name, version string) {
	rc, meta, err := h.svc.OpenArtifact(ctx, name, version)
	if err != nil {
		h.sendError(ctx, err)
		return
	}

	replacer := strings.NewReplacer(":", "_", "/", "_")
	filename := replacer.Replace(name) + "_" + version + ".wasm"
	ctx.Response.Header.Set("Content-Type", "application/wasm")
	ctx.Response.Header.Set("X-Checksum-Sha256", meta.Sha256)
	ctx.Response.Header.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.SetBodyStream(rc, bodySize(meta.Size))
}

// bodySize narrows an artifact size for SetBodyStream. Sizes beyond the
// platform int range fall back to -1, which streams without a declared
// length instead of truncating on 32-bit builds.
func bodySize(n int64) int {
	if n > math.MaxInt {
		return -1
	}
	return int(n)
}

func (h *API) Search(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	query := string(args.Peek("q"))

	limit := 20
	if v, err := strconv.Atoi(string(args.Peek("limit"))); err == nil && v > 0 {
		limit = v
	}
	if limit > 100 {
		limit = 100
	}
	offset := 0
	if v, err := strconv.Atoi(string(args.Peek("offset"))); err == nil && v > 0 {
		offset = v
	}

	resp, err := h.svc.Search(ctx, query, limit, offset)
	if err != nil {
		h.sendError(ctx, err)
		return
	}
	h.sendJSONResponse(ctx, resp, fasthttp.StatusOK)
}

func (h *API) Stats(ctx *fasthttp.RequestCtx) {
	stats, err := h.svc.Stats(ctx)
	if err != nil {
		h.sendError(ctx, err)
		return
	}
	h.sendJSONResponse(ctx, stats, fasthttp.StatusOK)
}

func (h *API) ListPackages(ctx *fasthttp.RequestCtx) {
	list, err := h.svc.ListPackages(ctx)
	if err != nil {
		h.sendError(ctx, err)
		return
	}
	h.sendJSONResponse(ctx, list, fasthttp.StatusOK)
}

func (h *API) Health(ctx *fasthttp.RequestCtx) {
	response := &types.Status{
		Server: "keel",
		Status: "healthy",
	}

	h.sendJSONResponse(ctx, response, fasthttp.StatusOK)
}

func (h *API) Metrics(ctx *fasthttp.RequestCtx) {
	m := metrics.GetMetrics()

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	response := &types.Metrics{
		Requests: types.Requests{
			Total:       m.RequestCount,
			Publishes:   m.PublishCount,
			Downloads:   m.DownloadCount,
			Errors:      m.ErrorCount,
			RateLimited: m.RateLimited,
			Active:      m.ActiveRequests,
		},
		Performance: types.Performance{
			ResponseTimeMs: m.ResponseTime,
			Goroutines:     runtime.NumGoroutine(),
		},
		Memory: types.Memory{
			AllocMB:  ms.Alloc / 1024 / 1024,
			SysMB:    ms.Sys / 1024 / 1024,
			GCCycles: ms.NumGC,
		},
	}

	h.sendJSONResponse(ctx, response, fasthttp.StatusOK)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>keel component registry</title></head>
<body>
<h1>keel component registry</h1>
<p>Immutable, content-addressed component registry.</p>
<ul>
<li><code>POST /api/v1/packages</code> - publish a version (multipart, bearer token)</li>
<li><code>GET /api/v1/packages/{name}/versions</code> - list versions</li>
<li><code>GET /api/v1/packages/{name}/{version}</code> - version metadata</li>
<li><code>GET /packages/{name}/{version}/artifact.wasm</code> - download artifact</li>
<li><code>GET /api/v1/search?q=</code> - search packages</li>
<li><code>GET /api/v1/stats</code> - registry statistics</li>
<li><code>GET /health</code> - health probe</li>
</ul>
</body>
</html>`

func (h *API) Root(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.Set("Content-Type", "text/html; charset=utf-8")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString(indexHTML)
}
