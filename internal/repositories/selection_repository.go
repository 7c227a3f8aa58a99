package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripforge/internal/models/db_models"
	"tripforge/internal/selection"
)

// SelectionRepository mirrors a user's selection set to durable storage.
// Save overwrites the prior value (last write wins per user key); Load
// returns an empty collection for unknown keys.
type SelectionRepository interface {
	Save(ctx context.Context, userKey string, items []selection.Item) error
	Load(ctx context.Context, userKey string) ([]selection.Item, error)
}

// encodeItems and decodeItems are the shared payload codec for every
// backend. decodeItems never fails: an unparsable payload is treated as
// empty so a corrupt record can't take down session start.
func encodeItems(items []selection.Item) (string, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeItems(payload string) []selection.Item {
	if payload == "" {
		return nil
	}
	var items []selection.Item
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		log.Printf("Discarding unparsable selection payload: %v", err)
		return nil
	}
	return items
}

type selectionRepository struct {
	db *gorm.DB
}

func NewSelectionRepository(db *gorm.DB) SelectionRepository {
	return &selectionRepository{db: db}
}

func (r *selectionRepository) Save(ctx context.Context, userKey string, items []selection.Item) error {
	payload, err := encodeItems(items)
	if err != nil {
		return err
	}

	record := db_models.UserSelection{
		UserKey: userKey,
		Items:   payload,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
		}).
		Create(&record).Error
}

func (r *selectionRepository) Load(ctx context.Context, userKey string) ([]selection.Item, error) {
	var record db_models.UserSelection
	err := r.db.WithContext(ctx).
		Where("user_key = ?", userKey).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeItems(record.Items), nil
}
