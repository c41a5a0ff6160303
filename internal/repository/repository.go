// Package repository stores record collections in Postgres. Each record is a
// JSONB row keyed by (resource, id); the row position keeps storage order.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/metrics"
	"github.com/atinyakov/catfeed/internal/models"
	"github.com/atinyakov/catfeed/internal/storage"
)

const createTable = `
	CREATE TABLE IF NOT EXISTS cat_records (
		resource TEXT NOT NULL,
		id BIGINT NOT NULL,
		position INTEGER NOT NULL,
		body JSONB NOT NULL,
		PRIMARY KEY (resource, id)
	);`

// InitDB opens the pgx connection pool and creates the records table.
func InitDB(dsn string, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	logger.Info("Database connected and table ready.")
	return db, nil
}

// PostgresCollection is a storage.Collection backed by the cat_records table.
type PostgresCollection[T models.Record] struct {
	db       *sql.DB
	resource string
	logger   *zap.Logger
}

func NewPostgresCollection[T models.Record](db *sql.DB, resource string, logger *zap.Logger) *PostgresCollection[T] {
	return &PostgresCollection[T]{
		db:       db,
		resource: resource,
		logger:   logger.With(zap.String("resource", resource)),
	}
}

func (r *PostgresCollection[T]) Load(ctx context.Context) []T {
	records, err := r.read(ctx, r.db)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(r.resource, "load").Inc()
		r.logger.Warn("cannot read collection, treating as empty", zap.Error(err))
		return make([]T, 0)
	}
	return records
}

// Update holds a transaction-scoped advisory lock on the resource, so
// concurrent writers from any process are serialized.
func (r *PostgresCollection[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return r.writeErr(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1));", r.resource); err != nil {
		return r.writeErr(err)
	}

	current, err := r.read(ctx, tx)
	if err != nil {
		return r.writeErr(err)
	}

	records, err := fn(current)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM cat_records WHERE resource = $1;", r.resource); err != nil {
		return r.writeErr(err)
	}

	for i, rec := range records {
		body, err := json.Marshal(rec)
		if err != nil {
			return r.writeErr(err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO cat_records(resource, id, position, body) VALUES ($1, $2, $3, $4);",
			r.resource, rec.RecordID(), i, body,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return fmt.Errorf("%w: %s id %d", storage.ErrConflict, r.resource, rec.RecordID())
			}
			return r.writeErr(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return r.writeErr(err)
	}
	return nil
}

func (r *PostgresCollection[T]) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *PostgresCollection[T]) read(ctx context.Context, q querier) ([]T, error) {
	rows, err := q.QueryContext(ctx, "SELECT body FROM cat_records WHERE resource = $1 ORDER BY position;", r.resource)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}

		var rec T
		if err := json.Unmarshal(body, &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresCollection[T]) writeErr(err error) error {
	metrics.StoreErrors.WithLabelValues(r.resource, "save").Inc()
	r.logger.Error("cannot write collection", zap.Error(err))
	return fmt.Errorf("%w: %v", storage.ErrWrite, err)
}
