// Package config loads service configuration from the environment and
// opens the configured storage driver.
package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Afzal-gif888/campus-cafe-mate/storage"
)

type Config struct {
	Port          string
	GinMode       string
	StorageDriver string
	DataDir       string
	SQLitePath    string
	MySQLDSN      string
	RedisAddr     string
	AdminUsername string
	AdminPassword string
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		GinMode:       os.Getenv("GIN_MODE"),
		StorageDriver: getenv("STORAGE_DRIVER", "file"),
		DataDir:       getenv("DATA_DIR", "data"),
		SQLitePath:    getenv("SQLITE_PATH", "cafe.db"),
		MySQLDSN:      os.Getenv("MYSQL_DSN"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "CBIT23"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// InitStorage opens the blob store named by STORAGE_DRIVER.
func InitStorage(cfg Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "memory":
		return storage.NewMemory(), nil
	case "file":
		return storage.NewFile(cfg.DataDir)
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("opening sqlite: %w", err)
		}
		return storage.NewGorm(db)
	case "mysql":
		db, err := gorm.Open(mysql.Open(cfg.MySQLDSN), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("opening mysql: %w", err)
		}
		return storage.NewGorm(db)
	case "redis":
		return storage.NewRedis(cfg.RedisAddr)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
