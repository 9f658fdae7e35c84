package domain

import (
	"errors"
	"os"
)

// Store is the persistence collaborator for the order log. The log is read
// and written as one whole blob under a single well-known key, there is no
// partial access. Read returns (nil, nil) when nothing was stored yet.
type Store interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Read() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	return data, err
}

func (s *FileStore) Write(data []byte) error {
	return os.WriteFile(s.Path, data, 0644)
}

type MemoryStore struct {
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Read() ([]byte, error) {
	return s.data, nil
}

func (s *MemoryStore) Write(data []byte) error {
	s.data = append([]byte(nil), data...)
	return nil
}
