package store

import (
	"context"
	"fmt"

	"github.com/pathakanu/rewardsHub/internal/model"
	"gorm.io/gorm"
)

// Settings manages notification preference toggles.
type Settings struct {
	db *gorm.DB
}

// NewSettings returns a settings store.
func NewSettings(db *gorm.DB) *Settings {
	return &Settings{db: db}
}

// List returns every setting in display order.
func (s *Settings) List(ctx context.Context) ([]model.NotificationSetting, error) {
	var settings []model.NotificationSetting
	if err := s.db.WithContext(ctx).Order("position ASC").Find(&settings).Error; err != nil {
		return nil, wrap("list notification settings", err)
	}
	return settings, nil
}

// Set changes one setting and returns it.
func (s *Settings) Set(ctx context.Context, key string, enabled bool) (model.NotificationSetting, error) {
	if key == "" {
		return model.NotificationSetting{}, fmt.Errorf("set notification setting: %w", ErrNotFound)
	}
	var setting model.NotificationSetting
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&model.NotificationSetting{Key: key}).First(&setting).Error; err != nil {
			return err
		}
		setting.Enabled = enabled
		return tx.Model(&setting).Update("enabled", enabled).Error
	})
	if err != nil {
		return model.NotificationSetting{}, wrap(fmt.Sprintf("set notification setting %q", key), err)
	}
	return setting, nil
}
