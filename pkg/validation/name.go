package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Container, network and volume names accepted by the engine.
var resourceNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// MaxResourceNameLength is the maximum length accepted for a resource name.
const MaxResourceNameLength = 128

// ValidateResourceName validates a container, network or volume name.
func ValidateResourceName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > MaxResourceNameLength {
		return fmt.Errorf("name too long: %d chars (max %d)", len(name), MaxResourceNameLength)
	}
	if !resourceNameRegex.MatchString(name) {
		return fmt.Errorf("invalid name %q: must start with a letter or digit and contain only letters, digits, '_', '.' or '-'", name)
	}
	return nil
}

// ValidateBuildContext checks that dir is an existing directory and returns
// its cleaned absolute path.
func ValidateBuildContext(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", fmt.Errorf("build context cannot be empty")
	}
	if strings.ContainsRune(dir, 0) {
		return "", fmt.Errorf("build context contains null byte")
	}

	abs, err := filepath.Abs(filepath.Clean(dir))
	if err != nil {
		return "", fmt.Errorf("resolve build context %q: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("build context %q: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("build context %q is not a directory", dir)
	}
	return abs, nil
}
