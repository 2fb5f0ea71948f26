package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

// store holds what every postgres repository shares: the pool and a logger.
// All reads and writes go through withConn so a pooled connection is released
// on every return path.
type store struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func newStore(db *pgxpool.Pool, logger *slog.Logger, name string) store {
	if logger == nil {
		logger = slog.Default()
	}

	return store{
		db:     db,
		logger: logger.With("repository", name),
	}
}

// fail logs err and wraps it into a DataAccessError.
func (s store) fail(op string, err error, args ...any) error {
	s.logger.Error("can't "+op, append([]any{"error", err}, args...)...)
	return domain.NewDataAccessError(op, err)
}

func withConn(ctx context.Context, db *pgxpool.Pool, fn func(conn *pgxpool.Conn) error) error {
	conn, err := db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	return fn(conn)
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	return withConn(ctx, db, func(conn *pgxpool.Conn) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return err
		}

		err = fn(tx)
		if err == nil {
			return tx.Commit(ctx)
		}

		rollbackErr := tx.Rollback(ctx)
		if rollbackErr != nil {
			return errors.Join(err, rollbackErr)
		}

		return err
	})
}

func (s store) exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	var affected int64

	err := withConn(ctx, s.db, func(conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, query, args...)
		if err != nil {
			return err
		}

		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, s.fail(op, err)
	}

	return affected, nil
}

// collect runs query and maps every row with scan. It never returns a nil slice.
func collect[T any](ctx context.Context, s store, op, query string, scan pgx.RowToFunc[T], args ...any) ([]T, error) {
	var result []T

	err := withConn(ctx, s.db, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}

		result, err = pgx.CollectRows(rows, scan)
		return err
	})
	if err != nil {
		return nil, s.fail(op, err)
	}

	if result == nil {
		result = []T{}
	}

	return result, nil
}

// collectOne maps the single row of query. No row yields domain.ErrRecordNotFound.
func collectOne[T any](ctx context.Context, s store, op, query string, scan pgx.RowToFunc[T], args ...any) (*T, error) {
	var result T

	err := withConn(ctx, s.db, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}

		result, err = pgx.CollectExactlyOneRow(rows, scan)
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, s.fail(op, err)
	}

	return &result, nil
}
