package main

import (
	"github.com/spf13/cobra"

	"github.com/udyamlabs/finhealth-cli/internal/i18n"
)

var (
	guidanceLang   string
	guidanceFormat string
)

var guidanceCmd = &cobra.Command{
	Use:   "guidance",
	Short: "Print security and compliance guidance for the business",
	Long:  "Prints localized data-security and tax-compliance guidance. Supported languages are en, hi and ta; anything else falls back to English.",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang := guidanceLang
		if lang == "" {
			lang = cfg.Locale.Language
		}

		out := struct {
			Language   string   `json:"language" yaml:"language"`
			Security   []string `json:"security" yaml:"security"`
			Compliance []string `json:"compliance" yaml:"compliance"`
		}{
			Language:   i18n.Match(lang).String(),
			Security:   i18n.SecurityGuidance(lang),
			Compliance: i18n.ComplianceGuidance(lang),
		}

		return writeOutput(cmd.OutOrStdout(), out, guidanceFormat)
	},
}

func init() {
	guidanceCmd.Flags().StringVar(&guidanceLang, "lang", "", "guidance language (default from config)")
	guidanceCmd.Flags().StringVarP(&guidanceFormat, "format", "f", "json", "output format: json or yaml")
	rootCmd.AddCommand(guidanceCmd)
}
