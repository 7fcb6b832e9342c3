package app

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/openpos/posledger/config"
	"github.com/openpos/posledger/internal/domain"
)

func newTestApp(t *testing.T) *Application {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	a := NewApplication(&config.AppConfig{})
	a.OverrideDB(db)
	require.NoError(t, a.MigrateDB(false))

	a.idNode, err = snowflake.NewNode(1)
	require.NoError(t, err)
	return a
}

func TestSettingsRoundTrip(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t, "", a.GetSettingsStringValue("ledger", "low_stock_threshold"))

	require.NoError(t, a.SaveSetting("ledger", "low_stock_threshold", "15"))
	assert.EqualValues(t, 15, a.GetSettingsInt64Value("ledger", "low_stock_threshold"))

	// Saving again must update in place, not duplicate.
	require.NoError(t, a.SaveSetting("ledger", "low_stock_threshold", "20"))
	assert.EqualValues(t, 20, a.GetSettingsInt64Value("ledger", "low_stock_threshold"))

	var count int64
	a.DB().Model(&domain.SysConfig{}).Where("type = ? AND name = ?", "ledger", "low_stock_threshold").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCheckSettingsSeedsDefaultsOnce(t *testing.T) {
	a := newTestApp(t)

	a.checkSettings()
	assert.EqualValues(t, 10, a.GetSettingsInt64Value("ledger", "low_stock_threshold"))

	// Operator overrides survive a restart.
	require.NoError(t, a.SaveSetting("ledger", "low_stock_threshold", "5"))
	a.checkSettings()
	assert.EqualValues(t, 5, a.GetSettingsInt64Value("ledger", "low_stock_threshold"))
}

func TestCheckDemoProductsGatedByConfig(t *testing.T) {
	a := newTestApp(t)

	a.checkDemoProducts()
	var count int64
	a.DB().Model(&domain.Product{}).Count(&count)
	assert.EqualValues(t, 0, count)

	a.appConfig.System.SeedDemoData = true
	a.checkDemoProducts()
	a.DB().Model(&domain.Product{}).Count(&count)
	assert.NotZero(t, count)

	// Seeding is idempotent across restarts.
	before := count
	a.checkDemoProducts()
	a.DB().Model(&domain.Product{}).Count(&count)
	assert.Equal(t, before, count)
}
