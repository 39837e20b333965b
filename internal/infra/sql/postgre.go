package sql

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	maxRetries  = 5
	passwordEnv = "ENTITY_CONFIG_SERVER_DATABASE_PASSWORD"
)

var retryDelay = 2 * time.Second

type PostgresOptions struct {
	DSN           string
	Timeout       time.Duration
	AutoMigration bool
}

// NewPosgreORM connects through the pgx driver. The password may be kept
// out of the DSN and supplied through ENTITY_CONFIG_SERVER_DATABASE_PASSWORD.
func NewPosgreORM(opts PostgresOptions) (*DB, error) {
	dsn := opts.DSN
	if pass, ok := os.LookupEnv(passwordEnv); ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	var (
		gormDB *gorm.DB
		err    error
	)
	for try := 0; try < maxRetries; try++ {
		gormDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			break
		}
		slog.Warn("connecting to postgres", slog.Int("try", try+1), slog.String("error", err.Error()))
		time.Sleep(retryDelay)
	}
	if err != nil {
		return nil, fmt.Errorf("impossible to connect to database after %d retries: %w", maxRetries, err)
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: opts.AutoMigration,
		timeout:              opts.Timeout,
	}, nil
}
