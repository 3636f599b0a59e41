package journal

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS invocations (
	id          UUID PRIMARY KEY,
	handler     TEXT NOT NULL,
	request     JSONB,
	response    JSONB,
	error       TEXT NOT NULL DEFAULT '',
	started_at  TIMESTAMPTZ NOT NULL,
	duration_ms BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS invocations_handler_started ON invocations (handler, started_at DESC)`

// Postgres keeps the journal in a shared PostgreSQL database.
type Postgres struct {
	pool *pgxpool.Pool
}

// OpenPostgres creates a pgx pool and ensures the journal table exists.
func OpenPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("journal: parse postgres url: %w", err)
	}
	config.MaxConns = 4
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("journal: create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("journal: ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("journal: init schema: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Record(ctx context.Context, e Entry) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO invocations (id, handler, request, response, error, started_at, duration_ms)
		 VALUES ($1, $2, $3::jsonb, $4::jsonb, $5, $6, $7)`,
		e.ID, e.Handler, nullable(e.Request), nullable(e.Response), e.Error,
		e.StartedAt, e.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("journal: insert: %w", err)
	}
	return nil
}

func (p *Postgres) Recent(ctx context.Context, handler string, limit int) ([]Entry, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id::text, handler, request::text, response::text, error, started_at, duration_ms
		 FROM invocations WHERE $1 = '' OR handler = $1
		 ORDER BY started_at DESC LIMIT $2`,
		handler, ClampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("journal: query: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e         Entry
			req, resp *string
			ms        int64
		)
		if err := rows.Scan(&e.ID, &e.Handler, &req, &resp, &e.Error, &e.StartedAt, &ms); err != nil {
			return nil, fmt.Errorf("journal: scan: %w", err)
		}
		e.Request = rawOrNil(req)
		e.Response = rawOrNil(resp)
		e.StartedAt = e.StartedAt.UTC()
		e.Duration = msDuration(ms)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
