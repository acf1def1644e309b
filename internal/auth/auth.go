// Package auth resolves bearer tokens to publish scopes. The token set is
// fixed at startup; the registry never mints or rotates credentials itself.
package auth

import (
	"fmt"

	"keel/internal/config"
	"keel/internal/registry"
)

// AdminScope authorizes publishing to every namespace.
const AdminScope = "*"

type Authorizer struct {
	scopes map[string]string // token -> scope
}

func New(cfg config.AuthConfig) *Authorizer {
	scopes := make(map[string]string, len(cfg.Tokens)+1)
	for namespace, token := range cfg.Tokens {
		scopes[token] = namespace
	}
	// Admin last so it wins if the same secret was also listed per-namespace.
	if cfg.AdminToken != "" {
		scopes[cfg.AdminToken] = AdminScope
	}
	return &Authorizer{scopes: scopes}
}

// Scope returns the scope bound to token.
func (a *Authorizer) Scope(token string) (string, error) {
	if token == "" {
		return "", registry.ErrUnauthorized
	}
	scope, ok := a.scopes[token]
	if !ok {
		return "", registry.ErrUnauthorized
	}
	return scope, nil
}

// Authorize checks that token may publish into namespace. Admin tokens
// authorize any namespace, namespace tokens only their own.
func (a *Authorizer) Authorize(token, namespace string) (string, error) {
	scope, err := a.Scope(token)
	if err != nil {
		return "", err
	}
	if scope != AdminScope && scope != namespace {
		return "", fmt.Errorf("token not scoped for namespace %s: %w", namespace, registry.ErrForbidden)
	}
	return scope, nil
}
