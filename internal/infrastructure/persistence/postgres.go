package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// PostgresGateway stores one jsonb document per aggregate in a single
// table. The load-all/save-all contract maps to three rows; SaveAll
// upserts them inside one transaction so a crash never persists a
// half-applied multi-store mutation.
type PostgresGateway struct {
	pool *pgxpool.Pool
}

// PostgresConfig carries the connection parameters for the gateway.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

func (c PostgresConfig) dsn() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode,
	)
}

// NewPostgresGateway connects, pings and ensures the schema exists.
func NewPostgresGateway(ctx context.Context, cfg PostgresConfig) (*PostgresGateway, error) {
	pool, err := pgxpool.New(ctx, cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	g := &PostgresGateway{pool: pool}
	if err := g.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info().Str("database", cfg.Database).Msg("connected to postgres storage")
	return g, nil
}

func (g *PostgresGateway) ensureSchema(ctx context.Context) error {
	_, err := g.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS aggregates (
			name       text PRIMARY KEY,
			document   jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("ensure aggregates table: %w", err)
	}
	return nil
}

// LoadAll reads every aggregate row. No rows means first run.
func (g *PostgresGateway) LoadAll(ctx context.Context) (*Snapshot, error) {
	rows, err := g.pool.Query(ctx, `SELECT name, document FROM aggregates`)
	if err != nil {
		return nil, fmt.Errorf("read aggregates: %w", err)
	}
	defer rows.Close()

	snapshot := &Snapshot{Connections: map[string][]string{}}
	found := false

	for rows.Next() {
		var name string
		var document []byte
		if err := rows.Scan(&name, &document); err != nil {
			return nil, fmt.Errorf("scan aggregate row: %w", err)
		}

		var dest any
		switch name {
		case DocUsers:
			dest = &snapshot.Users
		case DocConnections:
			dest = &snapshot.Connections
		case DocPosts:
			dest = &snapshot.Posts
		default:
			continue
		}
		if err := json.Unmarshal(document, dest); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", name, err)
		}
		found = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read aggregates: %w", err)
	}

	if !found {
		return nil, ErrNoData
	}
	return snapshot, nil
}

// SaveAll upserts the three documents in one transaction.
func (g *PostgresGateway) SaveAll(ctx context.Context, snapshot *Snapshot) error {
	docs := map[string]any{
		DocUsers:       snapshot.Users,
		DocConnections: snapshot.Connections,
		DocPosts:       snapshot.Posts,
	}

	tx, err := g.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for doc, src := range docs {
		data, err := json.Marshal(src)
		if err != nil {
			return fmt.Errorf("encode %s document: %w", doc, err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO aggregates (name, document, updated_at)
			VALUES ($1, $2, now())
			ON CONFLICT (name) DO UPDATE
			SET document = EXCLUDED.document, updated_at = now()`,
			doc, data)
		if err != nil {
			return fmt.Errorf("write %s document: %w", doc, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save tx: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (g *PostgresGateway) Close() error {
	g.pool.Close()
	return nil
}
