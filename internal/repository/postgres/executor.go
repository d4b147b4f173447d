package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// DBExecutor - общий интерфейс *sql.DB и *sql.Tx, чтобы репозитории
// работали и вне, и внутри транзакции
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// execTx выполняет fn внутри транзакции: commit при успехе, rollback
// при любой ошибке. Соединение освобождается на всех путях выхода.
func execTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
