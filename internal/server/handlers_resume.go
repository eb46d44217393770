package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/scoring"
	"github.com/jonathan/resume-studio/internal/server/middleware"
	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

// maxResumeBody caps resume uploads; resumes are small documents.
const maxResumeBody = 1 << 20

// session resolves the caller's editing session from the request context.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*store.Store, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	session, err := s.sessions.Get(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load session")
		return nil, false
	}
	return session, true
}

// handleGetResume returns the current resume snapshot.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, session.Current())
}

// handlePutResume replaces the whole resume. The body is validated against
// the resume schema before it touches the session.
func (s *Server) handlePutResume(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxResumeBody))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := schemas.ValidateResumeDocument(body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var resume types.Resume
	if err := json.Unmarshal(body, &resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume document")
		return
	}

	current := session.Replace(&resume)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume": current,
		"scores": scoring.Signals(current),
	})
}

// handleGetScores returns the live quality signals for the current snapshot.
func (s *Server) handleGetScores(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, scoring.Signals(session.Current()))
}

// handleSaveResume persists the current snapshot with its scores, replacing
// any previous save.
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	session, err := s.sessions.Get(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load session")
		return
	}

	resume := session.Current()
	scores := scoring.Signals(resume)
	if err := s.db.SaveSnapshot(r.Context(), userID, resume, scores); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"saved":  true,
		"scores": scores,
	})
}

// handleAnalyze runs the full analysis against the current snapshot. The
// request context cancels the run when the client disconnects.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), session.Current())
	if err != nil {
		if r.Context().Err() != nil {
			// Client went away; nothing useful to write.
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
