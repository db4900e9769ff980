package storage

import (
	"fmt"

	internalConfig "github.com/sefazor/ourwedding-backend/internal/config"
)

// MediaPrefix is where the API serves in-memory photos.
const MediaPrefix = "/media"

// NewObjectStorage picks the photo store named by PHOTO_STORE.
func NewObjectStorage(cfg *internalConfig.Config) (ObjectStorage, error) {
	switch cfg.PhotoStore {
	case internalConfig.StoreR2:
		return NewR2Storage(cfg)
	case internalConfig.StoreMemory, "":
		return NewMemoryStorage(fmt.Sprintf("http://localhost:%s%s", cfg.Port, MediaPrefix)), nil
	default:
		return nil, fmt.Errorf("unknown photo store %q", cfg.PhotoStore)
	}
}
