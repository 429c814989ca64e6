package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udyamlabs/finhealth-cli/internal/dataset"
	"github.com/udyamlabs/finhealth-cli/internal/model"
	"github.com/udyamlabs/finhealth-cli/internal/report"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func testDataset() *model.RecordSet {
	return dataset.FromRows(
		[]string{"Date", "Revenue", "Expense"},
		[][]string{
			{"2024-01-01", "100000", "70000"},
			{"2024-02-01", "110000", "72000"},
			{"2024-03-01", "120000", "75000"},
		},
	)
}

func TestSQLiteSessionRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateSession(ctx, model.IndustryRetail, testDataset())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := s.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, model.IndustryRetail, got.Industry)
	require.NotNil(t, got.Dataset)
	assert.Equal(t, 3, got.Dataset.Len())
	assert.Nil(t, got.Assessment)
}

func TestSQLiteUpdateAssessment(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateSession(ctx, model.IndustryServices, testDataset())
	require.NoError(t, err)

	a, err := report.Build(ctx, testDataset(), model.IndustryServices, report.Options{})
	require.NoError(t, err)
	require.NoError(t, s.UpdateAssessment(ctx, created.ID, a))

	got, err := s.GetSession(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Assessment)
	assert.Equal(t, 55, got.Assessment.HealthScore)
}

func TestSQLiteUpdateAssessmentMissingSession(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	err := s.UpdateAssessment(context.Background(), "no-such-id", &report.Assessment{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteGetSessionMissing(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	_, err := s.GetSession(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session not found")
}

func TestSQLiteListSessions(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateSession(ctx, model.IndustryRetail, testDataset())
	require.NoError(t, err)
	_, err = s.CreateSession(ctx, model.IndustryServices, testDataset())
	require.NoError(t, err)
	_, err = s.CreateSession(ctx, model.IndustryRetail, testDataset())
	require.NoError(t, err)

	all, err := s.ListSessions(ctx, SessionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	retail, err := s.ListSessions(ctx, SessionFilter{Industry: model.IndustryRetail})
	require.NoError(t, err)
	assert.Len(t, retail, 2)

	limited, err := s.ListSessions(ctx, SessionFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSQLiteDeleteSession(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateSession(ctx, model.IndustryRetail, testDataset())
	require.NoError(t, err)

	require.NoError(t, s.DeleteSession(ctx, created.ID))

	_, err = s.GetSession(ctx, created.ID)
	require.Error(t, err)

	err = s.DeleteSession(ctx, created.ID)
	require.Error(t, err)
}
