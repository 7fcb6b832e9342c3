package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig is the full application configuration surface.
type AppConfig struct {
	System   SysConfig `json:"system"`
	Web      WebConfig `json:"web"`
	Database DBConfig  `json:"database"`
	Logger   LogConfig `json:"logger"`
}

type SysConfig struct {
	Appid    string `json:"appid"`
	Location string `json:"location"`
	Workdir  string `json:"workdir"`
	// NodeID seeds the snowflake id generator; give every instance
	// behind a load balancer a distinct value.
	NodeID int64 `json:"node_id"`
	// SeedDemoData inserts a handful of demo products on first start.
	SeedDemoData bool `json:"seed_demo_data"`
}

type WebConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type DBConfig struct {
	Type   string `json:"type"`
	Host   string `json:"host"`
	Port   int    `json:"port"`
	Name   string `json:"name"`
	User   string `json:"user"`
	Passwd string `json:"passwd"`
	Debug  bool   `json:"debug"`
}

type LogConfig struct {
	Mode       string `json:"mode"`
	FileEnable bool   `json:"file_enable"`
	Filename   string `json:"filename"`
}

// Load reads environment variables (optionally from the provided file)
// and materializes an AppConfig.
func Load(envFile string) (*AppConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes
		// from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &AppConfig{
		System: SysConfig{
			Appid:        envString("POSD_APPID", "posledger"),
			Location:     envString("POSD_LOCATION", "UTC"),
			Workdir:      envString("POSD_WORKDIR", "/var/posledger"),
			NodeID:       envInt64("POSD_NODE_ID", 1),
			SeedDemoData: envBool("POSD_SEED_DEMO_DATA", false),
		},
		Web: WebConfig{
			Host: envString("POSD_WEB_HOST", "0.0.0.0"),
			Port: int(envInt64("POSD_WEB_PORT", 8090)),
		},
		Database: DBConfig{
			Type:   envString("POSD_DB_TYPE", "postgres"),
			Host:   envString("POSD_DB_HOST", "127.0.0.1"),
			Port:   int(envInt64("POSD_DB_PORT", 5432)),
			Name:   envString("POSD_DB_NAME", "posledger"),
			User:   envString("POSD_DB_USER", "postgres"),
			Passwd: envString("POSD_DB_PASSWD", ""),
			Debug:  envBool("POSD_DB_DEBUG", false),
		},
		Logger: LogConfig{
			Mode:       envString("POSD_LOG_MODE", "development"),
			FileEnable: envBool("POSD_LOG_FILE_ENABLE", false),
			Filename:   envString("POSD_LOG_FILENAME", "/var/posledger/posledger.log"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *AppConfig) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Web.Port <= 0 || c.Web.Port > 65535 {
		return fmt.Errorf("POSD_WEB_PORT out of range: %d", c.Web.Port)
	}
	switch c.Database.Type {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported POSD_DB_TYPE: %s", c.Database.Type)
	}
	if c.System.NodeID < 0 || c.System.NodeID > 1023 {
		return fmt.Errorf("POSD_NODE_ID must fit a snowflake node (0-1023), got %d", c.System.NodeID)
	}
	return nil
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
