package app

import (
	"errors"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/openpos/posledger/internal/domain"
)

// GetSettingsStringValue retrieves a string configuration value
func (a *Application) GetSettingsStringValue(category, key string) string {
	var cfg domain.SysConfig
	err := a.gormDB.Where("type = ? AND name = ?", category, key).First(&cfg).Error
	if err != nil {
		return ""
	}
	return cfg.Value
}

// GetSettingsInt64Value retrieves an int64 configuration value
func (a *Application) GetSettingsInt64Value(category, key string) int64 {
	return cast.ToInt64(a.GetSettingsStringValue(category, key))
}

// GetSettingsBoolValue retrieves a boolean configuration value
func (a *Application) GetSettingsBoolValue(category, key string) bool {
	return cast.ToBool(a.GetSettingsStringValue(category, key))
}

// SaveSetting upserts a configuration value.
func (a *Application) SaveSetting(category, key, value string) error {
	var cfg domain.SysConfig
	err := a.gormDB.Where("type = ? AND name = ?", category, key).First(&cfg).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return a.gormDB.Create(&domain.SysConfig{
			Type:      category,
			Name:      key,
			Value:     value,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}).Error
	case err != nil:
		return err
	}

	if err := a.gormDB.Model(&domain.SysConfig{}).
		Where("type = ? AND name = ?", category, key).
		Updates(map[string]interface{}{"value": value, "updated_at": time.Now()}).Error; err != nil {
		return err
	}
	zap.L().Info("setting updated", zap.String("category", category), zap.String("key", key))
	return nil
}
