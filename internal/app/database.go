package app

import (
	"fmt"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/openpos/posledger/config"
)

// getDatabase opens the configured database. Postgres is the production
// target; sqlite keeps single-node and development deployments simple.
func getDatabase(cfg config.DBConfig, workdir string) (*gorm.DB, error) {
	level := gormlogger.Silent
	if cfg.Debug {
		level = gormlogger.Info
	}
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(level)}

	switch cfg.Type {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			cfg.Host, cfg.Port, cfg.User, cfg.Passwd, cfg.Name)
		return gorm.Open(postgres.Open(dsn), gormCfg)
	case "sqlite":
		file := filepath.Join(workdir, cfg.Name+".db")
		return gorm.Open(sqlite.Open(file), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
}
