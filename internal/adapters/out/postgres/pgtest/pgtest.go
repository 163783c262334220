// Package pgtest opens throwaway databases with the parcelhub schema for
// tests: an in-memory SQLite database for fast unit tests and a PostgreSQL
// container for integration suites.
package pgtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"parcelhub/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists the schema tables in truncation order.
const Tables = "parcels, riders, users, payments, tracking_events, withdrawals"

// NewSQLite creates a migrated in-memory SQLite database private to t.
// The pool holds a single connection, so an open transaction blocks every
// other statement on the same handle.
func NewSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), postgres.NewConfig(zap.NewNop(), logger.Silent, false))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err = postgres.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// Container is a running PostgreSQL test server with a migrated schema.
type Container struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
}

// StartPostgres runs postgres:15-alpine and migrates the schema.
func StartPostgres(ctx context.Context) (*Container, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), postgres.NewConfig(zap.NewNop(), logger.Silent, false))
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = postgres.Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Container{Container: container, DB: db}, nil
}

// Truncate empties every table.
func (c *Container) Truncate() error {
	return c.DB.Exec("TRUNCATE TABLE " + Tables).Error
}

// Terminate stops the container.
func (c *Container) Terminate(ctx context.Context) error {
	if c == nil || c.Container == nil {
		return nil
	}
	return c.Container.Terminate(ctx)
}
