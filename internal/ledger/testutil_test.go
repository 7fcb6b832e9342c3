package ledger_test

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/openpos/posledger/internal/domain"
	"github.com/openpos/posledger/internal/ledger"
)

// newTestDB opens an isolated in-memory database. The connection pool is
// pinned to one connection so every session sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrator().AutoMigrate(domain.Tables...))
	return db
}

type fixedSettings struct {
	threshold int64
}

func (s fixedSettings) GetSettingsInt64Value(category, name string) int64 {
	if category == "ledger" && name == "low_stock_threshold" {
		return s.threshold
	}
	return 0
}

func newTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return ledger.New(newTestDB(t), node, nil, fixedSettings{threshold: 10})
}
