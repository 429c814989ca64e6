package main

import (
	"github.com/spf13/cobra"

	"github.com/udyamlabs/finhealth-cli/internal/forecast"
	"github.com/udyamlabs/finhealth-cli/internal/metrics"
	"github.com/udyamlabs/finhealth-cli/internal/model"
	"github.com/udyamlabs/finhealth-cli/internal/validate"
)

var (
	forecastInput   string
	forecastSheet   string
	forecastFormat  string
	forecastMethod  string
	forecastPeriods int
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Forecast revenue and project growth scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := loadDataset(forecastInput, forecastSheet)
		if err != nil {
			return err
		}
		clean := validate.Sanitize(rs)

		m, err := metrics.Compute(clean)
		if err != nil {
			return err
		}

		periods := forecastPeriods
		if periods <= 0 {
			periods = cfg.Forecast.Periods
		}
		method := forecastMethod
		if method == "" {
			method = cfg.Forecast.Method
		}

		trends := forecast.Trends(clean)
		growth := 10.0
		if trends.Revenue != nil {
			growth = trends.Revenue.GrowthRatePct
		}

		out := struct {
			Trends    forecast.TrendReport `json:"trends" yaml:"trends"`
			Revenue   forecast.Result      `json:"revenue_forecast" yaml:"revenue_forecast"`
			Expense   forecast.Result      `json:"expense_forecast" yaml:"expense_forecast"`
			Scenarios forecast.ScenarioSet `json:"scenarios" yaml:"scenarios"`
		}{
			Trends:    trends,
			Revenue:   forecast.Series(clean.Values(model.ColRevenue), periods, forecast.Method(method)),
			Expense:   forecast.Series(clean.Values(model.ColExpense), periods, forecast.Method(method)),
			Scenarios: forecast.Scenarios(m.Revenue, growth, m.ExpenseRatioPct, periods),
		}

		return writeOutput(cmd.OutOrStdout(), out, forecastFormat)
	},
}

func init() {
	forecastCmd.Flags().StringVarP(&forecastInput, "input", "i", "", "path to CSV or XLSX dataset (required)")
	forecastCmd.Flags().StringVar(&forecastSheet, "sheet", "", "XLSX sheet name (default first sheet)")
	forecastCmd.Flags().StringVarP(&forecastFormat, "format", "f", "json", "output format: json or yaml")
	forecastCmd.Flags().StringVar(&forecastMethod, "method", "", "forecast method: linear, exponential or moving_average")
	forecastCmd.Flags().IntVar(&forecastPeriods, "periods", 0, "number of future periods (default from config)")
	forecastCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(forecastCmd)
}
