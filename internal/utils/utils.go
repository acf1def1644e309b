package utils

import (
	"encoding/json"
	"io"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	namespaceRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	segmentRegex   = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	digestRegex    = regexp.MustCompile(`^[a-f0-9]{64}$`)
)

// Version strings that alias a moving target. Publishing under one of these
// would break immutability, they are rejected outright.
var mutableTags = map[string]bool{
	"latest": true,
	"dev":    true,
	"stable": true,
}

// IsValidPackageName reports whether name has the form namespace:name. The
// name part may be slash-separated (run:example/hello); segments carry
// letters, digits, dots, hyphens and underscores, with dot-only segments
// rejected.
func IsValidPackageName(name string) bool {
	if len(name) == 0 || len(name) > 256 {
		return false
	}

	namespace, pkg, ok := strings.Cut(name, ":")
	if !ok || strings.Contains(pkg, ":") {
		return false
	}
	if len(namespace) == 0 || len(namespace) > 64 || !namespaceRegex.MatchString(namespace) {
		return false
	}
	if pkg == "" {
		return false
	}

	for _, segment := range strings.Split(pkg, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return false
		}
		if len(segment) > 64 || !segmentRegex.MatchString(segment) {
			return false
		}
	}

	return true
}

// Namespace extracts the namespace part of namespace:name. The boolean is
// false when the name is malformed.
func Namespace(name string) (string, bool) {
	if !IsValidPackageName(name) {
		return "", false
	}
	namespace, _, _ := strings.Cut(name, ":")
	return namespace, true
}

// IsValidVersion reports whether v is a strict semantic version and not a
// mutable tag alias.
func IsValidVersion(v string) bool {
	if mutableTags[v] {
		return false
	}
	_, err := semver.StrictNewVersion(v)
	return err == nil
}

// IsValidDigest reports whether d is a lowercase hex sha256 digest.
func IsValidDigest(d string) bool {
	return digestRegex.MatchString(d)
}

func WriteTo(m json.Marshaler, w io.Writer) (int64, error) {
	b, err := m.MarshalJSON()
	if err != nil {
		return -1, err
	}
	n, err := w.Write(b)
	if err != nil {
		return int64(n), err
	}
	return int64(n), nil
}
