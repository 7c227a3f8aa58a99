package repositories

import (
	"context"
	"sync"

	"tripforge/internal/selection"
)

// selectionMemoryRepository holds selection payloads in process memory.
// Used when SELECTION_BACKEND=memory (local development without Postgres
// or Redis) and as the test double for the selection service. Payloads go
// through the same codec as the durable backends.
type selectionMemoryRepository struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewSelectionMemoryRepository() SelectionRepository {
	return &selectionMemoryRepository{data: make(map[string]string)}
}

func (r *selectionMemoryRepository) Save(ctx context.Context, userKey string, items []selection.Item) error {
	payload, err := encodeItems(items)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.data[userKey] = payload
	r.mu.Unlock()
	return nil
}

func (r *selectionMemoryRepository) Load(ctx context.Context, userKey string) ([]selection.Item, error) {
	r.mu.RLock()
	payload := r.data[userKey]
	r.mu.RUnlock()
	return decodeItems(payload), nil
}
