package middleware

import (
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"keel/internal/metrics"
)

func MetricsMiddleware(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		metrics.IncrementRequests()
		metrics.IncrementActiveRequests()

		defer func() {
			metrics.DecrementActiveRequests()
			metrics.RecordResponseTime(time.Since(start))
		}()

		next(ctx)

		path := string(ctx.Path())
		method := string(ctx.Method())
		if method == "POST" && strings.HasPrefix(path, "/api/v1/packages") {
			metrics.IncrementPublishes()
		} else if strings.HasSuffix(path, "/artifact.wasm") {
			metrics.IncrementDownloads()
		}

		if ctx.Response.StatusCode() >= 400 {
			metrics.IncrementErrors()
		}
	}
}
