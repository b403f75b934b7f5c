// Package validation checks and normalizes user-supplied image references,
// resource names and build contexts before they reach the engine.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Repository path validation per the distribution spec:
// lowercase alphanumerics separated by ".", "_", "__" or "-", nested with "/".
var repoPathRegex = regexp.MustCompile(`^[a-z0-9]+(?:(?:[._]|__|-+)[a-z0-9]+)*(?:/[a-z0-9]+(?:(?:[._]|__|-+)[a-z0-9]+)*)*$`)

// Tags start with an alphanumeric or underscore and are at most 128 characters.
var tagRegex = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9._-]{0,127}$`)

var digestRegex = regexp.MustCompile(`^sha256:[a-f0-9]{64}$`)

// ParseImageReference parses an image reference into name and tag/digest.
// Supports formats:
//   - image:tag (default tag is "latest")
//   - image@sha256:... (digest)
//   - image (defaults to "latest")
//   - registry.example.com:5000/image:tag
func ParseImageReference(imageRef string) (string, string) {
	if idx := strings.Index(imageRef, "@"); idx != -1 {
		return imageRef[:idx], imageRef[idx+1:]
	}

	// A colon before the last slash belongs to a registry port.
	lastSlash := strings.LastIndex(imageRef, "/")
	if idx := strings.LastIndex(imageRef, ":"); idx > lastSlash {
		return imageRef[:idx], imageRef[idx+1:]
	}

	return imageRef, "latest"
}

// SplitRegistry separates the registry host from a repository name.
// The first path component is a registry when it contains "." or ":" or is "localhost".
func SplitRegistry(name string) (string, string) {
	first, rest, found := strings.Cut(name, "/")
	if !found {
		return "", name
	}
	if strings.ContainsAny(first, ".:") || first == "localhost" {
		return first, rest
	}
	return "", name
}

// QualifyReference rewrites ref so that it points at registry, replacing any
// registry already present. An empty registry returns ref unchanged.
func QualifyReference(registry, ref string) string {
	registry = strings.TrimSuffix(strings.TrimSpace(registry), "/")
	if registry == "" {
		return ref
	}
	name, tag := ParseImageReference(ref)
	_, path := SplitRegistry(name)
	sep := ":"
	if strings.HasPrefix(tag, "sha256:") {
		sep = "@"
	}
	return registry + "/" + path + sep + tag
}

// ValidateImageReference checks that ref is a well-formed image reference.
func ValidateImageReference(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return fmt.Errorf("image reference cannot be empty")
	}
	if strings.Contains(ref, "..") {
		return fmt.Errorf("image reference %q contains path traversal sequence", ref)
	}

	name, tag := ParseImageReference(ref)
	_, path := SplitRegistry(name)
	if !repoPathRegex.MatchString(path) {
		return fmt.Errorf("invalid repository name %q: must contain only lowercase letters, digits, and separators (., _, -)", path)
	}
	if strings.Contains(ref, "@") {
		if !digestRegex.MatchString(tag) {
			return fmt.Errorf("invalid digest %q", tag)
		}
		return nil
	}
	if !tagRegex.MatchString(tag) {
		return fmt.Errorf("invalid tag %q", tag)
	}
	return nil
}
