// Package registry defines the error taxonomy shared by the metadata store,
// the artifact store, the auth module and the HTTP layer. Every failure a
// client can observe maps onto exactly one of these sentinels.
package registry

import (
	"errors"

	"github.com/valyala/fasthttp"
)

var (
	// ErrInvalid marks malformed input: package name, version or digest.
	ErrInvalid = errors.New("invalid request")

	// ErrUnauthorized marks a missing or unknown credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden marks a credential whose scope does not cover the
	// target namespace.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound marks an unknown package, version or artifact.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a publish of an already existing (package, version)
	// pair. Versions are immutable, the conflict is permanent.
	ErrConflict = errors.New("version already exists")

	// ErrTooLarge marks a payload exceeding the configured upload limit.
	ErrTooLarge = errors.New("payload too large")

	// ErrDigestMismatch marks a declared sha256 that does not match the
	// uploaded bytes.
	ErrDigestMismatch = errors.New("digest mismatch")

	// ErrRateLimited marks a request rejected by the rate limiter.
	ErrRateLimited = errors.New("rate limited")
)

// HTTPStatus maps an error to its response status. Unrecognized errors are
// storage failures and surface as 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalid):
		return fasthttp.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return fasthttp.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fasthttp.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fasthttp.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fasthttp.StatusConflict
	case errors.Is(err, ErrTooLarge):
		return fasthttp.StatusRequestEntityTooLarge
	case errors.Is(err, ErrDigestMismatch):
		return fasthttp.StatusUnprocessableEntity
	case errors.Is(err, ErrRateLimited):
		return fasthttp.StatusTooManyRequests
	default:
		return fasthttp.StatusInternalServerError
	}
}
