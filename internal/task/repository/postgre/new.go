package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"chat-task-scheduler/internal/task/repository"
	"chat-task-scheduler/pkg/log"
)

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates a PostgreSQL-backed Repository and makes sure the tasks table exists.
func New(ctx context.Context, pool *pgxpool.Pool, l log.Logger) (repository.Repository, error) {
	if pool == nil {
		panic("task/repository/postgre: pool is required")
	}
	if err := initSchema(ctx, pool); err != nil {
		return nil, err
	}
	return &implRepository{pool: pool, l: l}, nil
}

// Connect opens a pool for dsn. maxConns <= 0 keeps the pgx default.
func Connect(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			duration_minutes INTEGER NOT NULL CHECK (duration_minutes > 0),
			priority TEXT NOT NULL,
			due_date DATE NULL,
			kind TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_user_created ON tasks (user_id, created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init task schema failed on %q: %w", stmt, err)
		}
	}
	return nil
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
