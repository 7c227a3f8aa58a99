package db_models

import "time"

// UserSelection is the persisted form of a user's current selection set,
// one row per user key, last write wins. Items holds the JSON-encoded
// item collection in insertion order.
type UserSelection struct {
	UserKey   string `gorm:"primaryKey"`
	Items     string `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}
