package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

func TestGSTCompliance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		revenue  float64
		industry model.Industry
		required bool
	}{
		{"above general threshold", 4_000_001, model.IndustryServices, true},
		{"retail above lower threshold", 2_000_001, model.IndustryRetail, true},
		{"services between thresholds", 2_000_001, model.IndustryServices, false},
		{"below both thresholds", 1_500_000, model.IndustryRetail, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reqs := GSTCompliance(tt.revenue, tt.industry)
			assert.Equal(t, tt.required, reqs.Required)
			assert.Len(t, reqs.Requirements, 5)
			assert.Len(t, reqs.Penalties, 3)
		})
	}
}

func TestRBICompliance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		entityType string
		revenue    float64
		wantReqs   int
	}{
		{"private limited small", "Private Limited", 1_000_000, 4},
		{"private limited large", "Private Limited", 20_000_000, 7},
		{"proprietorship small", "Proprietorship", 1_000_000, 0},
		{"proprietorship large", "Proprietorship", 20_000_000, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reqs := RBICompliance(tt.entityType, tt.revenue)
			assert.Equal(t, tt.entityType, reqs.EntityType)
			assert.Len(t, reqs.Requirements, tt.wantReqs)
		})
	}
}

func TestIFCCompliance(t *testing.T) {
	t.Parallel()

	reqs := IFCCompliance("Proprietorship")
	assert.Equal(t, "Proprietorship", reqs.EntityType)
	require.Len(t, reqs.Requirements, 4)
	assert.Contains(t, reqs.Requirements[3], "Section 44AB")

	// The checklist is the same regardless of entity type.
	assert.Equal(t, reqs.Requirements, IFCCompliance("Private Limited").Requirements)
}
