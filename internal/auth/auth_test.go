package auth

import (
	"errors"
	"testing"

	"keel/internal/config"
	"keel/internal/registry"
)

func newTestAuthorizer() *Authorizer {
	return New(config.AuthConfig{
		AdminToken: "root-token",
		Tokens: map[string]string{
			"run":  "run-token",
			"acme": "acme-token",
		},
	})
}

func TestAuthorizeOwnNamespace(t *testing.T) {
	a := newTestAuthorizer()

	scope, err := a.Authorize("run-token", "run")
	if err != nil {
		t.Fatalf("Authorize own namespace failed: %v", err)
	}
	if scope != "run" {
		t.Errorf("scope = %q, want run", scope)
	}
}

func TestAuthorizeForeignNamespace(t *testing.T) {
	a := newTestAuthorizer()

	_, err := a.Authorize("run-token", "acme")
	if !errors.Is(err, registry.ErrForbidden) {
		t.Fatalf("Authorize foreign namespace = %v, want ErrForbidden", err)
	}
}

func TestAuthorizeAdminAnyNamespace(t *testing.T) {
	a := newTestAuthorizer()

	for _, ns := range []string{"run", "acme", "brand-new"} {
		scope, err := a.Authorize("root-token", ns)
		if err != nil {
			t.Fatalf("Admin authorize for %s failed: %v", ns, err)
		}
		if scope != AdminScope {
			t.Errorf("admin scope = %q, want %q", scope, AdminScope)
		}
	}
}

func TestAuthorizeUnknownToken(t *testing.T) {
	a := newTestAuthorizer()

	_, err := a.Authorize("bogus", "run")
	if !errors.Is(err, registry.ErrUnauthorized) {
		t.Fatalf("Authorize unknown token = %v, want ErrUnauthorized", err)
	}
}

func TestAuthorizeEmptyToken(t *testing.T) {
	a := newTestAuthorizer()

	_, err := a.Authorize("", "run")
	if !errors.Is(err, registry.ErrUnauthorized) {
		t.Fatalf("Authorize empty token = %v, want ErrUnauthorized", err)
	}
}

func TestNoAdminConfigured(t *testing.T) {
	a := New(config.AuthConfig{
		Tokens: map[string]string{"run": "run-token"},
	})

	if _, err := a.Scope(""); !errors.Is(err, registry.ErrUnauthorized) {
		t.Fatalf("empty token without admin = %v, want ErrUnauthorized", err)
	}
	if _, err := a.Authorize("run-token", "run"); err != nil {
		t.Fatalf("namespace token should still work: %v", err)
	}
}
