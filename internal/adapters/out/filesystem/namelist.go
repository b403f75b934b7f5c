// Package filesystem implements the file-backed output ports.
package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/zerowrap"
	"gopkg.in/yaml.v3"
)

// NameListStore persists a list of names as a JSON array, or as a YAML
// sequence when the file extension is .yaml or .yml.
type NameListStore struct {
	log zerowrap.Logger
}

// NewNameListStore creates a new file-backed name list store.
func NewNameListStore(log zerowrap.Logger) *NameListStore {
	return &NameListStore{log: log}
}

// Save writes names to path atomically.
func (s *NameListStore) Save(_ context.Context, path string, names []string) error {
	path = expandTilde(path)
	if names == nil {
		names = []string{}
	}

	data, err := encodeNames(path, names)
	if err != nil {
		return fmt.Errorf("failed to encode name list: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp state file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to finalize state file: %w", err)
	}

	s.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "filesystem").
		Str(zerowrap.FieldPath, path).
		Int(zerowrap.FieldCount, len(names)).
		Msg("name list saved")
	return nil
}

// Load reads the names stored at path.
func (s *NameListStore) Load(_ context.Context, path string) ([]string, error) {
	path = expandTilde(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	names, err := decodeNames(path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode state file %s: %w", path, err)
	}

	s.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "filesystem").
		Str(zerowrap.FieldPath, path).
		Int(zerowrap.FieldCount, len(names)).
		Msg("name list loaded")
	return names, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func encodeNames(path string, names []string) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(names)
	}
	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func decodeNames(path string, data []byte) ([]string, error) {
	var names []string
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &names); err != nil {
			return nil, err
		}
	} else if err := json.Unmarshal(data, &names); err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// expandTilde replaces a leading "~/" with the user's home directory.
func expandTilde(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path[2:])
	}
	return path
}
