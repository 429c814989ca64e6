package validate

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/udyamlabs/finhealth-cli/internal/model"
)

// ProfileReport is the outcome of validating a business profile form.
type ProfileReport struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// BusinessProfile validates the user-entered business details. PAN is
// optional; when present it must be well-formed.
func BusinessProfile(name, industry string, revenue float64, pan string) ProfileReport {
	report := ProfileReport{Valid: true}

	if len(strings.TrimSpace(name)) < 2 {
		report.Errors = append(report.Errors, "business name must be at least 2 characters")
		report.Valid = false
	}

	if _, err := model.ParseIndustry(industry); err != nil {
		var names []string
		for _, ind := range model.Industries() {
			names = append(names, string(ind))
		}
		report.Errors = append(report.Errors,
			fmt.Sprintf("industry must be one of: %s", strings.Join(names, ", ")))
		report.Valid = false
	}

	if revenue <= 0 {
		report.Errors = append(report.Errors, "revenue must be greater than 0")
		report.Valid = false
	}

	if pan != "" && !ValidPAN(pan) {
		report.Errors = append(report.Errors, "invalid PAN format")
		report.Valid = false
	}

	return report
}

// ValidPAN checks the PAN layout AAAPL1234C: five letters, four digits,
// one letter.
func ValidPAN(pan string) bool {
	if len(pan) != 10 {
		return false
	}
	for _, r := range pan[:5] {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	for _, r := range pan[5:9] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return unicode.IsLetter(rune(pan[9]))
}

// ValidGSTIN checks the 15-character GST number layout: a two-digit state
// code followed by a PAN.
func ValidGSTIN(gst string) bool {
	if len(gst) != 15 {
		return false
	}
	for _, r := range gst[:2] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return ValidPAN(gst[2:12])
}
