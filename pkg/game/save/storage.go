package save

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage is the blob backend the store writes through. Keys are flat names;
// backends decide how they map to real locations.
type Storage interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
}

// FileStorage keeps each key as a JSON file inside one directory
type FileStorage struct {
	dir string
}

// NewFileStorage creates a file-backed storage rooted at dir. The directory
// is created lazily on first write.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStorage) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *FileStorage) Write(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0o644)
}

func (s *FileStorage) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStorage is an in-process backend used by tests and by sessions that
// opt out of persistence. WriteErr, when set, is returned by every Write to
// exercise failure handling.
type MemoryStorage struct {
	blobs    map[string][]byte
	WriteErr error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: make(map[string][]byte)}
}

func (s *MemoryStorage) Read(key string) ([]byte, error) {
	data, ok := s.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStorage) Write(key string, data []byte) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	s.blobs[key] = stored
	return nil
}

func (s *MemoryStorage) Delete(key string) error {
	delete(s.blobs, key)
	return nil
}
