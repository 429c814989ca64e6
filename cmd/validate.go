package main

import (
	"github.com/spf13/cobra"

	"github.com/udyamlabs/finhealth-cli/internal/validate"
)

var (
	validateInput  string
	validateSheet  string
	validateFormat string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a dataset and report data quality issues",
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := loadDataset(validateInput, validateSheet)
		if err != nil {
			return err
		}

		out := struct {
			Validation validate.Report        `json:"validation" yaml:"validation"`
			Quality    validate.QualityReport `json:"quality" yaml:"quality"`
			Outliers   validate.OutlierReport `json:"outliers" yaml:"outliers"`
		}{
			Validation: validate.Run(rs),
			Quality:    validate.Quality(rs),
			Outliers:   validate.Outliers(rs),
		}

		return writeOutput(cmd.OutOrStdout(), out, validateFormat)
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "path to CSV or XLSX dataset (required)")
	validateCmd.Flags().StringVar(&validateSheet, "sheet", "", "XLSX sheet name (default first sheet)")
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "json", "output format: json or yaml")
	validateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(validateCmd)
}
