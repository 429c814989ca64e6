package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/udyamlabs/finhealth-cli/internal/dataset"
	"github.com/udyamlabs/finhealth-cli/internal/model"
	"github.com/udyamlabs/finhealth-cli/internal/report"
	"github.com/udyamlabs/finhealth-cli/internal/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCreateSession accepts a CSV dataset in the request body, runs
// the full assessment and persists both.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	industry, err := model.ParseIndustry(r.URL.Query().Get("industry"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown industry")
		return
	}

	rs, err := dataset.ReadCSV(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid CSV body")
		return
	}

	assessment, err := report.Build(r.Context(), rs, industry, s.opts)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	sess, err := s.store.CreateSession(r.Context(), industry, rs)
	if err != nil {
		zap.L().Error("create session failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not create session")
		return
	}
	if err := s.store.UpdateAssessment(r.Context(), sess.ID, assessment); err != nil {
		zap.L().Error("store assessment failed", zap.String("session", sess.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not store assessment")
		return
	}
	sess.Assessment = assessment

	writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.DeleteSession(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	filter := store.SessionFilter{
		Industry: model.Industry(r.URL.Query().Get("industry")),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	sessions, err := s.store.ListSessions(r.Context(), filter)
	if err != nil {
		zap.L().Error("list sessions failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not list sessions")
		return
	}
	if sessions == nil {
		sessions = []store.Session{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

// panel builds a handler serving one view of a stored assessment.
func (s *Server) panel(view func(*report.Assessment) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.loadSession(w, r)
		if !ok {
			return
		}
		if sess.Assessment == nil {
			writeError(w, http.StatusNotFound, "assessment not computed")
			return
		}
		writeJSON(w, http.StatusOK, view(sess.Assessment))
	}
}

func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	id := chi.URLParam(r, "id")
	sess, err := s.store.GetSession(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return sess, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
