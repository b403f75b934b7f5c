package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResourceName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "web", false},
		{"with separators", "c2-network_v1.0", false},
		{"empty", "", true},
		{"leading dash", "-web", true},
		{"slash", "a/b", true},
		{"space", "a b", true},
		{"too long", strings.Repeat("a", MaxResourceNameLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResourceName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBuildContext(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Dockerfile")
	require.NoError(t, os.WriteFile(file, []byte("FROM scratch\n"), 0o600))

	got, err := ValidateBuildContext(dir + "/./")
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	_, err = ValidateBuildContext(file)
	assert.ErrorContains(t, err, "not a directory")

	_, err = ValidateBuildContext(filepath.Join(dir, "missing"))
	assert.Error(t, err)

	_, err = ValidateBuildContext("  ")
	assert.Error(t, err)
}
