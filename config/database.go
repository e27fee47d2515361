package config

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectDB opens the session database for the postgres and sqlite drivers.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.SessionDriver {
	case DriverPostgres:
		dialector = postgres.Open(cfg.DBURL)
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DBURL)
	default:
		return nil, fmt.Errorf("session driver %q has no sql database", cfg.SessionDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.SessionDriver == DriverSQLite {
		// one writer at a time
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}
	return db, nil
}

func ConnectRedis(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
}
