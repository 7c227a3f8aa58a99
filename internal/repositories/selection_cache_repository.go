package repositories

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"tripforge/internal/selection"
)

// selectionCacheRepository keeps selection records in Redis, selected with
// SELECTION_BACKEND=redis. Records never expire: the selection set is the
// user's planned trip, not a cache entry.
type selectionCacheRepository struct {
	client *redis.Client
}

func NewSelectionCacheRepository(client *redis.Client) SelectionRepository {
	return &selectionCacheRepository{client: client}
}

func selectionKey(userKey string) string {
	return "selection:" + userKey
}

func (r *selectionCacheRepository) Save(ctx context.Context, userKey string, items []selection.Item) error {
	payload, err := encodeItems(items)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, selectionKey(userKey), payload, 0).Err()
}

func (r *selectionCacheRepository) Load(ctx context.Context, userKey string) ([]selection.Item, error) {
	payload, err := r.client.Get(ctx, selectionKey(userKey)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeItems(payload), nil
}
