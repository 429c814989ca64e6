package server

import (
	"net/http"

	"github.com/udyamlabs/finhealth-cli/internal/i18n"
)

// handleSecurityGuidance returns data-security best practices in the
// requested language. The lang query parameter overrides the server's
// configured locale.
func (s *Server) handleSecurityGuidance(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = s.language
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"language": i18n.Match(lang).String(),
		"guidance": i18n.SecurityGuidance(lang),
	})
}

// handleComplianceGuidance returns localized tax and accounting
// compliance recommendations.
func (s *Server) handleComplianceGuidance(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = s.language
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"language": i18n.Match(lang).String(),
		"guidance": i18n.ComplianceGuidance(lang),
	})
}
