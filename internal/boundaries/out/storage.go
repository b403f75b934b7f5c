package out

import "context"

// NameListStore persists an ordered list of names.
type NameListStore interface {
	// Save writes names to path, replacing any previous content.
	Save(ctx context.Context, path string, names []string) error

	// Load reads the names stored at path.
	Load(ctx context.Context, path string) ([]string, error)
}
