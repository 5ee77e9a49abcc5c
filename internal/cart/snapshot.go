package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Snapshot persists the serialized cart between sessions.
type Snapshot interface {
	// Load restores the previously saved items. A missing snapshot returns
	// (nil, nil); a corrupt one returns an error.
	Load() ([]Item, error)

	// Save writes the full item list, replacing any previous snapshot.
	Save(items []Item) error
}

// fileSnapshot stores the cart as a JSON-encoded item array at a fixed path.
type fileSnapshot struct {
	path string
}

// NewFileSnapshot creates a snapshot store backed by the given file.
func NewFileSnapshot(path string) Snapshot {
	return &fileSnapshot{path: path}
}

// Load reads and decodes the snapshot file.
func (s *fileSnapshot) Load() ([]Item, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart snapshot %s: %w", s.path, err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot %s: %w", s.path, err)
	}

	return items, nil
}

// Save writes the snapshot via a temp file and rename, so a crash mid-write
// never leaves a truncated snapshot behind.
func (s *fileSnapshot) Save(items []Item) error {
	if items == nil {
		items = []Item{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart snapshot: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace cart snapshot: %w", err)
	}

	return nil
}

// MemorySnapshot is an in-process snapshot store, used by tests and as the
// no-persistence default.
type MemorySnapshot struct {
	items []Item
}

// Load returns the last saved items.
func (s *MemorySnapshot) Load() ([]Item, error) {
	return s.items, nil
}

// Save replaces the held items.
func (s *MemorySnapshot) Save(items []Item) error {
	s.items = make([]Item, len(items))
	copy(s.items, items)
	return nil
}
