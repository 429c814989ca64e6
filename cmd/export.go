package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/udyamlabs/finhealth-cli/internal/forecast"
	"github.com/udyamlabs/finhealth-cli/internal/model"
	"github.com/udyamlabs/finhealth-cli/internal/report"
)

var (
	exportInput    string
	exportSheet    string
	exportIndustry string
	exportOut      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run an assessment and export it to a file",
	Long:  "Runs the full assessment and writes it to the output path. The format follows the output extension: .json, .yaml or .xlsx.",
	RunE: func(cmd *cobra.Command, args []string) error {
		industry, err := model.ParseIndustry(exportIndustry)
		if err != nil {
			return err
		}

		rs, err := loadDataset(exportInput, exportSheet)
		if err != nil {
			return err
		}

		assessment, err := report.Build(cmd.Context(), rs, industry, report.Options{
			ForecastPeriods: cfg.Forecast.Periods,
			ForecastMethod:  forecast.Method(cfg.Forecast.Method),
		})
		if err != nil {
			return err
		}

		ext := strings.ToLower(filepath.Ext(exportOut))
		switch ext {
		case ".json", ".yaml", ".yml":
			f, err := os.Create(exportOut)
			if err != nil {
				return eris.Wrapf(err, "create %s", exportOut)
			}
			defer f.Close()
			format := "json"
			if ext != ".json" {
				format = "yaml"
			}
			if err := writeOutput(f, assessment, format); err != nil {
				return err
			}
		case ".xlsx":
			if err := exportXLSX(assessment, exportOut); err != nil {
				return err
			}
		default:
			return eris.Errorf("unsupported export format: %s", exportOut)
		}

		zap.L().Info("assessment exported", zap.String("path", exportOut))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "", "path to CSV or XLSX dataset (required)")
	exportCmd.Flags().StringVar(&exportSheet, "sheet", "", "XLSX sheet name (default first sheet)")
	exportCmd.Flags().StringVar(&exportIndustry, "industry", "Services", "industry sector")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path: .json, .yaml or .xlsx (required)")
	exportCmd.MarkFlagRequired("input")
	exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

// exportXLSX writes a summary workbook with one sheet per panel.
func exportXLSX(a *report.Assessment, path string) error {
	wb := xlsx.NewFile()

	summary, err := wb.AddSheet("Summary")
	if err != nil {
		return eris.Wrap(err, "add summary sheet")
	}
	for _, line := range a.Summary(cfg.Locale.Language) {
		addKV(summary, line.Label, line.Value)
	}

	advice, err := wb.AddSheet("Advice")
	if err != nil {
		return eris.Wrap(err, "add advice sheet")
	}
	for _, line := range a.Advice {
		row := advice.AddRow()
		row.AddCell().SetString(line)
	}

	scenarios, err := wb.AddSheet("Scenarios")
	if err != nil {
		return eris.Wrap(err, "add scenarios sheet")
	}
	header := scenarios.AddRow()
	for _, h := range []string{"Month", "Base Revenue", "Base Profit", "Optimistic Revenue", "Pessimistic Revenue"} {
		header.AddCell().SetString(h)
	}
	for i, p := range a.Scenarios.Base {
		row := scenarios.AddRow()
		row.AddCell().SetInt(p.Month)
		row.AddCell().SetFloat(p.Revenue)
		row.AddCell().SetFloat(p.Profit)
		row.AddCell().SetFloat(a.Scenarios.Optimistic[i].Revenue)
		row.AddCell().SetFloat(a.Scenarios.Pessimistic[i].Revenue)
	}

	return eris.Wrapf(wb.Save(path), "save %s", path)
}

func addKV(sheet *xlsx.Sheet, key, value string) {
	row := sheet.AddRow()
	row.AddCell().SetString(key)
	row.AddCell().SetString(value)
}
