package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "posledger", cfg.System.Appid)
	assert.Equal(t, 8090, cfg.Web.Port)
	assert.Equal(t, "postgres", cfg.Database.Type)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("POSD_DB_TYPE", "sqlite")
	t.Setenv("POSD_WEB_PORT", "9000")
	t.Setenv("POSD_SEED_DEMO_DATA", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, 9000, cfg.Web.Port)
	assert.True(t, cfg.System.SeedDemoData)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := &AppConfig{
		System:   SysConfig{NodeID: 1},
		Web:      WebConfig{Port: 8090},
		Database: DBConfig{Type: "postgres"},
	}
	require.NoError(t, cfg.Validate())

	cfg.Web.Port = 0
	assert.Error(t, cfg.Validate())
	cfg.Web.Port = 8090

	cfg.Database.Type = "mysql"
	assert.Error(t, cfg.Validate())
	cfg.Database.Type = "sqlite"

	cfg.System.NodeID = 4096
	assert.Error(t, cfg.Validate())
}
