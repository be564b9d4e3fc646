package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type jsonDocument struct {
	Version int                        `json:"version"`
	Records map[string]json.RawMessage `json:"records"`
}

// JSONStore keeps all records in a single JSON document rewritten whole on
// every Put.
type JSONStore struct {
	path string
	doc  *jsonDocument
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &jsonDocument{
		Version: 1,
		Records: make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'mindease init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &jsonDocument{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.doc.Records == nil {
		s.doc.Records = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) ([]byte, bool, error) {
	if s.doc == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}

	raw, ok := s.doc.Records[key]
	if !ok {
		return nil, false, nil
	}

	return []byte(raw), true, nil
}

func (s *JSONStore) Put(key string, value []byte) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.Records[key] = json.RawMessage(value)
	return s.save()
}

// ConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple mindease processes against the same path at the same
//     time is not supported and may lead to lost updates.
func (s *JSONStore) ConfigPath() string {
	return s.path
}
