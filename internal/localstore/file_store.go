package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps every slot in one JSON object on disk.
type FileStore struct {
	path  string
	mu    sync.RWMutex
	slots map[string]json.RawMessage
}

func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		path = "./autoservice_snapshots.json"
	}

	store := &FileStore{
		path:  path,
		slots: map[string]json.RawMessage{},
	}
	if err := store.load(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read snapshot file: %w", err)
	}

	if len(content) == 0 {
		return nil
	}

	if err := json.Unmarshal(content, &s.slots); err != nil {
		return fmt.Errorf("decode snapshot file: %w", err)
	}
	if s.slots == nil {
		s.slots = map[string]json.RawMessage{}
	}
	return nil
}

func (s *FileStore) Load(_ context.Context, key string, v interface{}) (bool, error) {
	s.mu.RLock()
	raw, ok := s.slots[key]
	s.mu.RUnlock()

	if !ok || len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode snapshot %q: %w", key, err)
	}
	return true, nil
}

func (s *FileStore) Save(_ context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode snapshot %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.slots[key]
	s.slots[key] = raw
	if err := s.persistLocked(); err != nil {
		if existed {
			s.slots[key] = previous
		} else {
			delete(s.slots, key)
		}
		return err
	}
	return nil
}

func (s *FileStore) persistLocked() error {
	content, err := json.MarshalIndent(s.slots, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshots-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot file: %w", err)
	}
	return nil
}
