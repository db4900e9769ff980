package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// MemoryStorage keeps objects in process memory. It is meant for local
// development and tests.
type MemoryStorage struct {
	mu        sync.RWMutex
	objects   map[string]memoryObject
	publicURL string
}

type memoryObject struct {
	data        []byte
	contentType string
}

func NewMemoryStorage(publicURL string) *MemoryStorage {
	return &MemoryStorage{
		objects:   make(map[string]memoryObject),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (s *MemoryStorage) Put(ctx context.Context, key string, body io.ReadSeeker, _ int64, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek back to start: %w", err)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read file content: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; ok {
		return fmt.Errorf("%s: %w", key, ErrObjectExists)
	}
	s.objects[key] = memoryObject{data: data, contentType: contentType}
	return nil
}

func (s *MemoryStorage) List(ctx context.Context, prefix string) ([]Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	objects := []Object{}
	for key, obj := range s.objects {
		if strings.HasPrefix(key, prefix) {
			objects = append(objects, Object{Key: key, ContentType: obj.contentType, Size: int64(len(obj.data))})
		}
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

func (s *MemoryStorage) PublicURL(key string) string {
	return s.publicURL + "/" + escapeKey(key)
}

// Get returns a stored object's bytes.
func (s *MemoryStorage) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	if !ok {
		return nil, false
	}
	return bytes.Clone(obj.data), true
}
