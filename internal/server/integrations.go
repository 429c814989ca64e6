package server

import "net/http"

// Demo integrations. These return canned data so the product surface
// can be exercised without live bank or GSTN connectivity.

type gstMonth struct {
	Month   string  `json:"month"`
	GSTPaid float64 `json:"gst_paid"`
}

var demoGSTSummary = []gstMonth{
	{Month: "Jan", GSTPaid: 1800},
	{Month: "Feb", GSTPaid: 2100},
	{Month: "Mar", GSTPaid: 2400},
}

func (s *Server) handleBankConnect(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "connected",
		"mode":    "demo",
		"message": "Bank connected successfully. Transactions synced.",
	})
}

func (s *Server) handleGSTImport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "imported",
		"mode":    "demo",
		"summary": demoGSTSummary,
	})
}
