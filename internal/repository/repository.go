package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/a2sh3r/bono/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// inTx runs fn in a read-committed transaction and commits when fn returns nil.
func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// pgError extracts the SQLSTATE code and constraint name from errors
// produced by either the pgx stdlib driver or lib/pq.
func pgError(err error) (code, constraint string, ok bool) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code, pgxErr.ConstraintName, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}
	return "", "", false
}

func isUniqueViolation(err error) (string, bool) {
	code, constraint, ok := pgError(err)
	return constraint, ok && code == codeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	code, _, ok := pgError(err)
	return ok && code == codeForeignKeyViolation
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Log.Error("failed to close rows", zap.Error(err))
	}
}
