//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/bagdasarian/group-service/internal/db"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Создаём контейнер Postgres через testcontainers
	postgresContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:17.7"),
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Подключаемся через pgx-драйвер поверх database/sql
	dbConn, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, dbConn.Ping())

	// Накатываем goose-миграции
	require.NoError(t, db.RunMigrations(dbConn))

	t.Cleanup(func() {
		dbConn.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return dbConn
}

// createTestUser вставляет пользователя напрямую, минуя auth-сервис
func createTestUser(t *testing.T, dbConn *sql.DB, email, username string) int {
	var id int
	err := dbConn.QueryRow(
		`INSERT INTO users (email, username, password_hash) VALUES ($1, $2, 'x') RETURNING id`,
		email, username,
	).Scan(&id)
	require.NoError(t, err)
	return id
}
