package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"ezforum-cli/types"

	"github.com/pkg/errors"
)

// FileStore persists string keys as a single JSON object on disk. Every
// mutation rewrites the whole file; concurrent processes are last-writer-wins.
type FileStore struct {
	path string
	mu   sync.Mutex
}

var _ types.KeyValueStore = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return ""
	}
	return values[key]
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.write(values)
}

func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.write(values)
}

func (s *FileStore) load() (map[string]string, error) {
	bytes, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, errors.Wrapf(err, "error reading %s", filepath.Base(s.path))
	}

	values := map[string]string{}
	if len(bytes) == 0 {
		return values, nil
	}

	err = json.Unmarshal(bytes, &values)
	if err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling %s", filepath.Base(s.path))
	}
	return values, nil
}

func (s *FileStore) write(values map[string]string) error {
	bytes, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "error marshalling store")
	}

	err = os.MkdirAll(filepath.Dir(s.path), 0700)
	if err != nil {
		return errors.Wrap(err, "error creating store dir")
	}

	err = os.WriteFile(s.path, bytes, 0600)
	if err != nil {
		return errors.Wrapf(err, "error writing %s", filepath.Base(s.path))
	}
	return nil
}

// MemoryStore keeps the session in process memory only.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ types.KeyValueStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
