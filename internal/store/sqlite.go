package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/udyamlabs/finhealth-cli/internal/model"
	"github.com/udyamlabs/finhealth-cli/internal/report"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	industry   TEXT NOT NULL,
	dataset    TEXT NOT NULL,
	assessment TEXT,
	created_at DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_sessions_industry ON sessions(industry);
CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateSession(ctx context.Context, industry model.Industry, dataset *model.RecordSet) (*Session, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	datasetJSON, err := json.Marshal(dataset)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal dataset")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, industry, dataset, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, string(industry), string(datasetJSON), now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert session")
	}

	return &Session{
		ID:        id,
		Industry:  industry,
		Dataset:   dataset,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, industry, dataset, assessment, created_at, updated_at FROM sessions WHERE id = ?`,
		id,
	)
	return scanSession(row)
}

func (s *SQLiteStore) UpdateAssessment(ctx context.Context, id string, assessment *report.Assessment) error {
	assessmentJSON, err := json.Marshal(assessment)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal assessment")
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET assessment = ?, updated_at = ? WHERE id = ?`,
		string(assessmentJSON), time.Now().UTC(), id,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update assessment %s", id)
	}
	return checkRowsAffected(res, "session", id)
}

func (s *SQLiteStore) ListSessions(ctx context.Context, filter SessionFilter) ([]Session, error) {
	query := `SELECT id, industry, dataset, assessment, created_at, updated_at FROM sessions WHERE 1=1`
	var args []any

	if filter.Industry != "" {
		query += ` AND industry = ?`
		args = append(args, string(filter.Industry))
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list sessions")
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *sess)
	}
	return sessions, eris.Wrap(rows.Err(), "sqlite: iterate sessions")
}

func (s *SQLiteStore) DeleteSession(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete session %s", id)
	}
	return checkRowsAffected(res, "session", id)
}

// helpers

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Errorf("%s not found: %s", entity, id)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanSession(row scannable) (*Session, error) {
	var sess Session
	var industry, datasetJSON string
	var assessmentJSON sql.NullString

	err := row.Scan(&sess.ID, &industry, &datasetJSON, &assessmentJSON, &sess.CreatedAt, &sess.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.New("session not found")
	}
	if err != nil {
		return nil, eris.Wrap(err, "scan session")
	}

	sess.Industry = model.Industry(industry)
	if err := json.Unmarshal([]byte(datasetJSON), &sess.Dataset); err != nil {
		return nil, eris.Wrap(err, "unmarshal dataset")
	}
	if assessmentJSON.Valid && assessmentJSON.String != "" {
		if err := json.Unmarshal([]byte(assessmentJSON.String), &sess.Assessment); err != nil {
			return nil, eris.Wrap(err, "unmarshal assessment")
		}
	}
	return &sess, nil
}
