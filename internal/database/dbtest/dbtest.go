// Package dbtest starts throwaway PostgreSQL instances for integration tests.
// Import it from _test files only.
package dbtest

import (
	"context"
	"fmt"
	"time"

	"github.com/a2sh3r/bono/internal/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// StartPostgres starts a disposable PostgreSQL container, applies the
// migrations and returns its DSN together with a terminate function.
// Integration tests use it from TestMain.
func StartPostgres(ctx context.Context) (string, func(), error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("bono_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_pass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return "", nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	terminate := func() {
		_ = testcontainers.TerminateContainer(container)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		return "", nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	var migrateErr error
	for i := 0; i < 5; i++ {
		if migrateErr = database.RunMigrations(dsn); migrateErr == nil {
			break
		}
		time.Sleep(time.Duration(100*(1<<uint(i))) * time.Millisecond)
	}
	if migrateErr != nil {
		terminate()
		return "", nil, migrateErr
	}

	return dsn, terminate, nil
}
