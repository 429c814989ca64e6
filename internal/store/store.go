// Package store persists assessment sessions. Two backends are
// provided: SQLite for single-machine use and PostgreSQL for shared
// deployments. Dataset and assessment payloads are stored as JSON.
package store

import (
	"context"
	"time"

	"github.com/udyamlabs/finhealth-cli/internal/model"
	"github.com/udyamlabs/finhealth-cli/internal/report"
)

// Session is one uploaded dataset with its computed assessment.
type Session struct {
	ID         string             `json:"id"`
	Industry   model.Industry     `json:"industry"`
	Dataset    *model.RecordSet   `json:"dataset"`
	Assessment *report.Assessment `json:"assessment,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// SessionFilter specifies criteria for listing sessions.
type SessionFilter struct {
	Industry model.Industry `json:"industry,omitempty"`
	Limit    int            `json:"limit,omitempty"`
	Offset   int            `json:"offset,omitempty"`
}

// Store defines the persistence interface for assessment sessions.
type Store interface {
	CreateSession(ctx context.Context, industry model.Industry, dataset *model.RecordSet) (*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
	UpdateAssessment(ctx context.Context, id string, assessment *report.Assessment) error
	ListSessions(ctx context.Context, filter SessionFilter) ([]Session, error)
	DeleteSession(ctx context.Context, id string) error

	Migrate(ctx context.Context) error
	Close() error
}
