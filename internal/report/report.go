// Package report assembles the full financial assessment from the
// individual analysis packages. Build is the single entry point used by
// both the CLI and the HTTP server.
package report

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/udyamlabs/finhealth-cli/internal/advisor"
	"github.com/udyamlabs/finhealth-cli/internal/costopt"
	"github.com/udyamlabs/finhealth-cli/internal/credit"
	"github.com/udyamlabs/finhealth-cli/internal/forecast"
	"github.com/udyamlabs/finhealth-cli/internal/metrics"
	"github.com/udyamlabs/finhealth-cli/internal/model"
	"github.com/udyamlabs/finhealth-cli/internal/products"
	"github.com/udyamlabs/finhealth-cli/internal/scorer"
	"github.com/udyamlabs/finhealth-cli/internal/tax"
	"github.com/udyamlabs/finhealth-cli/internal/validate"
	"github.com/udyamlabs/finhealth-cli/internal/workingcap"
)

// fallbackGrowthPct is assumed for scenario projection when the dataset
// is too short to establish a revenue trend.
const fallbackGrowthPct = 10.0

// Options tune assessment assembly.
type Options struct {
	ForecastPeriods int
	ForecastMethod  forecast.Method
	Narrator        *advisor.Narrator
}

// Assessment is the complete output of a self-assessment run.
type Assessment struct {
	Industry        model.Industry       `json:"industry"`
	Validation      validate.Report      `json:"validation"`
	Metrics         model.Metrics        `json:"metrics"`
	HealthScore     int                  `json:"health_score"`
	Components      map[string]float64   `json:"score_components"`
	Tax             tax.Report           `json:"tax"`
	Deductions      tax.DeductionReport  `json:"deductions"`
	WorkingCapital  workingcap.Report    `json:"working_capital"`
	WCProducts      []workingcap.Product `json:"working_capital_products"`
	Cost            costopt.Report       `json:"cost"`
	Credit          credit.Report        `json:"credit"`
	Trends          forecast.TrendReport `json:"trends"`
	RevenueForecast forecast.Result      `json:"revenue_forecast"`
	Scenarios       forecast.ScenarioSet `json:"scenarios"`
	Products        products.Set         `json:"products"`
	Advice          []string             `json:"advice"`
	Narrative       string               `json:"narrative,omitempty"`
}

// Build validates and sanitizes the dataset, computes metrics and the
// health score, then fans the advisory panels out on an errgroup. The
// input record set is not mutated and repeated calls with the same
// input produce the same assessment, narrative aside.
func Build(ctx context.Context, rs *model.RecordSet, industry model.Industry, opts Options) (*Assessment, error) {
	if opts.ForecastPeriods <= 0 {
		opts.ForecastPeriods = 12
	}
	if opts.ForecastMethod == "" {
		opts.ForecastMethod = forecast.MethodLinear
	}

	validation := validate.Run(rs)
	if !validation.Valid {
		return nil, eris.Errorf("report: dataset failed validation: %v", validation.Errors)
	}

	clean := validate.Sanitize(rs)

	m, err := metrics.Compute(clean)
	if err != nil {
		return nil, eris.Wrap(err, "report: compute metrics")
	}

	score := scorer.Health(m)
	zap.L().Info("assessment scored",
		zap.Int("health_score", score),
		zap.Float64("revenue", m.Revenue),
		zap.String("industry", string(industry)))

	// The advisory modules were originally fed the expense-ratio share
	// of revenue rather than summed expenses. Kept for parity.
	expenses := m.ExpenseRatioPct * m.Revenue / 100

	a := &Assessment{
		Industry:    industry,
		Validation:  validation,
		Metrics:     m,
		HealthScore: score,
		Components:  scorer.Components(m),
	}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Tax = tax.Check(m, m.Revenue, expenses, industry)
		a.Deductions = tax.Deductions(industry, m.Revenue, expenses)
		return nil
	})
	g.Go(func() error {
		a.WorkingCapital = workingcap.Analyze(clean, m.Revenue, expenses)
		a.WCProducts = workingcap.SuggestProducts(a.WorkingCapital, m.Revenue)
		return nil
	})
	g.Go(func() error {
		a.Cost = costopt.Analyze(clean, m.Revenue, expenses, industry)
		return nil
	})
	g.Go(func() error {
		a.Credit = credit.Assess(m, float64(score), industry, m.Revenue)
		return nil
	})
	g.Go(func() error {
		a.Trends = forecast.Trends(clean)
		a.RevenueForecast = forecast.Series(clean.Values(model.ColRevenue), opts.ForecastPeriods, opts.ForecastMethod)
		growth := fallbackGrowthPct
		if a.Trends.Revenue != nil {
			growth = a.Trends.Revenue.GrowthRatePct
		}
		a.Scenarios = forecast.Scenarios(m.Revenue, growth, m.ExpenseRatioPct, opts.ForecastPeriods)
		return nil
	})
	g.Go(func() error {
		wc := 0.0
		if m.HasWorkingCapital {
			wc = m.WorkingCapital
		}
		a.Products = products.Recommend(float64(score), m.Revenue, wc)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.Advice = advisor.Advice(m)
	if opts.Narrator != nil {
		narrative, err := opts.Narrator.Narrate(ctx, m, a.Advice)
		if err != nil {
			zap.L().Warn("assessment narrative unavailable", zap.Error(err))
		}
		a.Narrative = narrative
	}

	return a, nil
}
