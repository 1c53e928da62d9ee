package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/feral-file/ff-nft-issuer/internal/store/schema"
)

// CursorStore defines the interface for storing and retrieving relay cursors
type CursorStore interface {
	// GetRelayCursor retrieves the last journal cursor published by a relay consumer
	GetRelayCursor(ctx context.Context, consumer string) (uint64, error)
	// SetRelayCursor stores the last journal cursor published by a relay consumer
	SetRelayCursor(ctx context.Context, consumer string, cursor uint64) error
}

type cursorStore struct {
	db *gorm.DB
}

// NewCursorStore creates a new cursor store
func NewCursorStore(db *gorm.DB) CursorStore {
	return &cursorStore{db: db}
}

// relayCursorKey returns the key_value_store key of a relay consumer
func relayCursorKey(consumer string) string {
	return fmt.Sprintf("relay_cursor:%s", consumer)
}

// GetRelayCursor retrieves the last journal cursor published by a relay consumer
func (s *cursorStore) GetRelayCursor(ctx context.Context, consumer string) (uint64, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", relayCursorKey(consumer)).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil // Nothing published yet
		}
		return 0, fmt.Errorf("failed to get relay cursor: %w", err)
	}

	cursor, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse relay cursor: %w", err)
	}

	return cursor, nil
}

// SetRelayCursor stores the last journal cursor published by a relay consumer
func (s *cursorStore) SetRelayCursor(ctx context.Context, consumer string, cursor uint64) error {
	kv := schema.KeyValueStore{
		Key:   relayCursorKey(consumer),
		Value: strconv.FormatUint(cursor, 10),
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set relay cursor: %w", err)
	}

	return nil
}
