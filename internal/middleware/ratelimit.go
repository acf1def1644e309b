package middleware

import (
	"strings"

	"github.com/valyala/fasthttp"

	"keel/internal/metrics"
	"keel/internal/ratelimit"
)

// RateLimitMiddleware buckets requests per client IP. Publishes draw from a
// tighter bucket than reads. Health probes are never limited.
func RateLimitMiddleware(limiter *ratelimit.Limiter, next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		if path == "/health" {
			next(ctx)
			return
		}

		class := ratelimit.Read
		if string(ctx.Method()) == "POST" && strings.HasPrefix(path, "/api/v1/packages") {
			class = ratelimit.Publish
		}

		if !limiter.Allow(ctx.RemoteIP().String(), class) {
			metrics.IncrementRateLimited()
			ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
			ctx.SetStatusCode(fasthttp.StatusTooManyRequests)
			ctx.SetBodyString(`{"status":"error","message":"rate limit exceeded","code":429}`)
			return
		}

		next(ctx)
	}
}
