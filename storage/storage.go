// Package storage is the blob store behind uploaded images and the
// GET /storage/:filename route.
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("storage: not found")

type Store interface {
	Put(name string, data []byte) error
	Get(name string) ([]byte, error)
}

// Disk stores blobs as flat files under Root.
type Disk struct {
	Root string
}

func NewDisk(root string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Disk{Root: root}, nil
}

// clean strips any path components so a request cannot escape Root.
func (d *Disk) clean(name string) string {
	return filepath.Join(d.Root, filepath.Base(strings.TrimSpace(name)))
}

func (d *Disk) Put(name string, data []byte) error {
	return os.WriteFile(d.clean(name), data, 0o644)
}

func (d *Disk) Get(name string) ([]byte, error) {
	data, err := os.ReadFile(d.clean(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// Memory keeps blobs in a map; used by tests.
type Memory struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{blobs: map[string][]byte{}}
}

func (m *Memory) Put(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[name] = data
	return nil
}

func (m *Memory) Get(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[name]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}
