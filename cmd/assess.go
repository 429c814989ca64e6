package main

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/udyamlabs/finhealth-cli/internal/advisor"
	"github.com/udyamlabs/finhealth-cli/internal/dataset"
	"github.com/udyamlabs/finhealth-cli/internal/forecast"
	"github.com/udyamlabs/finhealth-cli/internal/model"
	"github.com/udyamlabs/finhealth-cli/internal/report"
)

var (
	assessInput     string
	assessSheet     string
	assessIndustry  string
	assessFormat    string
	assessNarrative bool
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run the full financial health assessment on a dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		industry, err := model.ParseIndustry(assessIndustry)
		if err != nil {
			return err
		}

		rs, err := loadDataset(assessInput, assessSheet)
		if err != nil {
			return err
		}

		opts := report.Options{
			ForecastPeriods: cfg.Forecast.Periods,
			ForecastMethod:  forecast.Method(cfg.Forecast.Method),
		}
		if assessNarrative {
			opts.Narrator = advisor.NewNarrator(cfg.Advisor.Key, cfg.Advisor.Model)
			if opts.Narrator == nil {
				zap.L().Warn("no advisor API key configured, narrative skipped")
			}
		}

		assessment, err := report.Build(cmd.Context(), rs, industry, opts)
		if err != nil {
			return err
		}

		return writeOutput(cmd.OutOrStdout(), assessment, assessFormat)
	},
}

func init() {
	assessCmd.Flags().StringVarP(&assessInput, "input", "i", "", "path to CSV or XLSX dataset (required)")
	assessCmd.Flags().StringVar(&assessSheet, "sheet", "", "XLSX sheet name (default first sheet)")
	assessCmd.Flags().StringVar(&assessIndustry, "industry", "Services", "industry sector")
	assessCmd.Flags().StringVarP(&assessFormat, "format", "f", "json", "output format: json or yaml")
	assessCmd.Flags().BoolVar(&assessNarrative, "narrative", false, "generate a prose narrative via the Anthropic API")
	assessCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(assessCmd)
}

// loadDataset picks the reader from the file extension.
func loadDataset(path, sheet string) (*model.RecordSet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return dataset.LoadCSV(path)
	case ".xlsx":
		return dataset.LoadXLSX(path, sheet)
	default:
		return nil, eris.Errorf("unsupported dataset format: %s", path)
	}
}

// writeOutput renders v as JSON or YAML.
func writeOutput(w io.Writer, v any, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return eris.Wrap(err, "marshal yaml")
		}
		_, err = w.Write(data)
		return eris.Wrap(err, "write output")
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(v), "encode json")
	default:
		return eris.Errorf("unknown output format: %s", format)
	}
}
