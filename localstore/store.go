package localstore

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Slot is one string-keyed storage slot. The cart persists its serialized
// line array under a single slot; nothing here knows about cart shapes.
type Slot struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

// Store is the local persistent slot store backed by an embedded sqlite file.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the slot database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate local store: %w", err)
	}
	return &Store{db: db}, nil
}

// GetItem returns the value stored under key, with ok=false on a missing key.
func (s *Store) GetItem(key string) (string, bool, error) {
	var slot Slot
	err := s.db.First(&slot, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return slot.Value, true, nil
}

// SetItem writes value under key, replacing any previous value.
func (s *Store) SetItem(key, value string) error {
	slot := Slot{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&slot).Error
}

// RemoveItem deletes the slot under key; missing keys are not an error.
func (s *Store) RemoveItem(key string) error {
	return s.db.Delete(&Slot{}, "key = ?", key).Error
}
