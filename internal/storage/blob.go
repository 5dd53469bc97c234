// Package storage handles uploaded media: validation, transcoding and
// persistence of post images and avatars.
package storage

import (
	"os"
	"path/filepath"
)

// BlobStore persists named blobs. The local implementation writes to a
// directory on disk; the interface keeps handlers testable.
type BlobStore interface {
	Put(name string, data []byte) error
	Get(name string) ([]byte, error)
	Remove(name string) error
	Path(name string) string
}

type localBlobStore struct {
	root string
}

// NewLocalBlobStore returns a BlobStore rooted at dir, creating it if
// needed.
func NewLocalBlobStore(dir string) (BlobStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}
	return &localBlobStore{root: dir}, nil
}

func (s *localBlobStore) Put(name string, data []byte) error {
	path := s.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func (s *localBlobStore) Get(name string) ([]byte, error) {
	// #nosec G304: name is generated server-side, never caller-controlled
	return os.ReadFile(s.Path(name))
}

func (s *localBlobStore) Remove(name string) error {
	return os.Remove(s.Path(name))
}

func (s *localBlobStore) Path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}
