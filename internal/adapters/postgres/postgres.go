// Package postgres implements ports.Store on a pgx connection pool.
//
// The same repository code runs against the pool and against an open
// transaction: a Store carries a querier that is either the pool or a
// pgx.Tx, and RunInTransaction hands the callback a tx-backed view.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodcourt/internal/core/ports"
)

// querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements ports.Store.
type Store struct {
	pool *pgxpool.Pool
	q    querier
}

var _ ports.Store = (*Store)(nil)

// Connect opens a pooled connection to databaseURL, retrying a few times
// so the service survives starting before Postgres is ready.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse config: %w", err)
	}
	cfg.MaxConns = 25
	cfg.MinConns = 5
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute

	const maxRetries = 5
	var pool *pgxpool.Pool
	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.NewWithConfig(ctx, cfg)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = pool.Ping(pingCtx)
			cancel()
			if err == nil {
				break
			}
			pool.Close()
		}

		if i < maxRetries-1 {
			wait := time.Duration(i+1) * 2 * time.Second
			slog.Error("postgres connection failed, retrying", "wait", wait, "error", err)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: connect after %d attempts: %w", maxRetries, err)
	}

	return &Store{pool: pool, q: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// ApplySchema creates the tables if they do not exist. Idempotent.
func (s *Store) ApplySchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: apply schema: %w", err)
	}
	return nil
}

func (s *Store) Restaurants() ports.RestaurantRepository { return &restaurantRepo{q: s.q} }
func (s *Store) Categories() ports.CategoryRepository    { return &categoryRepo{q: s.q} }
func (s *Store) Menus() ports.MenuRepository             { return &menuRepo{q: s.q} }
func (s *Store) Users() ports.UserRepository             { return &userRepo{q: s.q} }
func (s *Store) Orders() ports.OrderRepository           { return &orderRepo{q: s.q} }

// RunInTransaction runs fn against a transactional view of the store.
// Any error from fn rolls everything back. Not reentrant: the view
// passed to fn must not start another transaction.
func (s *Store) RunInTransaction(ctx context.Context, fn func(tx ports.Store) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&Store{pool: s.pool, q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}
