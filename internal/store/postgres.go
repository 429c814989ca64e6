package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/udyamlabs/finhealth-cli/internal/model"
	"github.com/udyamlabs/finhealth-cli/internal/report"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock satisfies
// it for tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresWithPool wraps an existing pool, used in tests.
func NewPostgresWithPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	industry   TEXT NOT NULL,
	dataset    JSONB NOT NULL,
	assessment JSONB,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_sessions_industry ON sessions(industry);
CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) CreateSession(ctx context.Context, industry model.Industry, dataset *model.RecordSet) (*Session, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	datasetJSON, err := json.Marshal(dataset)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal dataset")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO sessions (id, industry, dataset, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		id, string(industry), datasetJSON, now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert session")
	}

	return &Session{
		ID:        id,
		Industry:  industry,
		Dataset:   dataset,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *PostgresStore) GetSession(ctx context.Context, id string) (*Session, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, industry, dataset, assessment, created_at, updated_at FROM sessions WHERE id = $1`,
		id,
	)
	return scanPgSession(row)
}

func (s *PostgresStore) UpdateAssessment(ctx context.Context, id string, assessment *report.Assessment) error {
	assessmentJSON, err := json.Marshal(assessment)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal assessment")
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE sessions SET assessment = $1, updated_at = $2 WHERE id = $3`,
		assessmentJSON, time.Now().UTC(), id,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update assessment %s", id)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("session not found: %s", id)
	}
	return nil
}

func (s *PostgresStore) ListSessions(ctx context.Context, filter SessionFilter) ([]Session, error) {
	query := `SELECT id, industry, dataset, assessment, created_at, updated_at FROM sessions WHERE 1=1`
	var args []any
	arg := 0

	if filter.Industry != "" {
		arg++
		query += ` AND industry = $` + strconv.Itoa(arg)
		args = append(args, string(filter.Industry))
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	arg++
	query += ` LIMIT $` + strconv.Itoa(arg)
	args = append(args, limit)
	if filter.Offset > 0 {
		arg++
		query += ` OFFSET $` + strconv.Itoa(arg)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list sessions")
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanPgSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *sess)
	}
	return sessions, eris.Wrap(rows.Err(), "postgres: iterate sessions")
}

func (s *PostgresStore) DeleteSession(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete session %s", id)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("session not found: %s", id)
	}
	return nil
}

func scanPgSession(row pgx.Row) (*Session, error) {
	var sess Session
	var industry string
	var datasetJSON []byte
	var assessmentJSON []byte

	err := row.Scan(&sess.ID, &industry, &datasetJSON, &assessmentJSON, &sess.CreatedAt, &sess.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, eris.New("session not found")
	}
	if err != nil {
		return nil, eris.Wrap(err, "scan session")
	}

	sess.Industry = model.Industry(industry)
	if err := json.Unmarshal(datasetJSON, &sess.Dataset); err != nil {
		return nil, eris.Wrap(err, "unmarshal dataset")
	}
	if len(assessmentJSON) > 0 {
		if err := json.Unmarshal(assessmentJSON, &sess.Assessment); err != nil {
			return nil, eris.Wrap(err, "unmarshal assessment")
		}
	}
	return &sess, nil
}
