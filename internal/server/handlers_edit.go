package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/resume-studio/internal/scoring"
	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

// Section and bullet edits share small request bodies.
type sectionRequest struct {
	Name string `json:"name"`
}

type bulletRequest struct {
	Text string `json:"text"`
}

type moveRequest struct {
	Direction string `json:"direction"` // "up" or "down"
}

// decodeEditBody reads and unmarshals an edit request body, writing a 400 on
// failure.
func (s *Server) decodeEditBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxResumeBody))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// editResponse writes the post-edit snapshot with its live scores, the same
// shape PUT /resume returns.
func (s *Server) editResponse(w http.ResponseWriter, current *types.Resume) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume": current,
		"scores": scoring.Signals(current),
	})
}

// handlePatchPersonalInfo applies a partial update to the contact fields.
func (s *Server) handlePatchPersonalInfo(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var patch store.PersonalInfoPatch
	if !s.decodeEditBody(w, r, &patch) {
		return
	}

	current := session.Apply(func(cur *types.Resume) *types.Resume {
		return store.UpdatePersonalInfo(cur, patch)
	})
	s.editResponse(w, current)
}

// handlePatchSettings applies a partial update to the typography settings.
func (s *Server) handlePatchSettings(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var patch store.SettingsPatch
	if !s.decodeEditBody(w, r, &patch) {
		return
	}

	if patch.FontSize != nil && *patch.FontSize < 1 {
		s.errorResponse(w, http.StatusBadRequest, "font_size must be at least 1")
		return
	}
	if patch.Spacing != nil && *patch.Spacing <= 0 {
		s.errorResponse(w, http.StatusBadRequest, "spacing must be positive")
		return
	}

	current := session.Apply(func(cur *types.Resume) *types.Resume {
		return store.UpdateSettings(cur, patch)
	})
	s.editResponse(w, current)
}

// handleAddSection appends a new empty section.
func (s *Server) handleAddSection(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var req sectionRequest
	if !s.decodeEditBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	current := session.Apply(func(cur *types.Resume) *types.Resume {
		return store.AddSection(cur, req.Name)
	})
	s.editResponse(w, current)
}

// handleRenameSection changes a section's display name. Unknown section IDs
// are a no-op, mirroring the reducer semantics.
func (s *Server) handleRenameSection(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var req sectionRequest
	if !s.decodeEditBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	sectionID := r.PathValue("sectionID")
	current := session.Apply(func(cur *types.Resume) *types.Resume {
		return store.RenameSection(cur, sectionID, req.Name)
	})
	s.editResponse(w, current)
}

// handleDeleteSection removes a section and its bullets.
func (s *Server) handleDeleteSection(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	sectionID := r.PathValue("sectionID")
	current := session.Apply(func(cur *types.Resume) *types.Resume {
		return store.DeleteSection(cur, sectionID)
	})
	s.editResponse(w, current)
}

// handleMoveSection reorders a section one position up or down. Boundary
// moves are no-ops.
func (s *Server) handleMoveSection(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var req moveRequest
	if !s.decodeEditBody(w, r, &req) {
		return
	}

	sectionID := r.PathValue("sectionID")
	var current *types.Resume
	switch req.Direction {
	case "up":
		current = session.Apply(func(cur *types.Resume) *types.Resume {
			return store.MoveSectionUp(cur, sectionID)
		})
	case "down":
		current = session.Apply(func(cur *types.Resume) *types.Resume {
			return store.MoveSectionDown(cur, sectionID)
		})
	default:
		s.errorResponse(w, http.StatusBadRequest, "direction must be \"up\" or \"down\"")
		return
	}
	s.editResponse(w, current)
}

// handleAddBullet appends a bullet to a section.
func (s *Server) handleAddBullet(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var req bulletRequest
	if !s.decodeEditBody(w, r, &req) {
		return
	}
	if req.Text == "" {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	sectionID := r.PathValue("sectionID")
	current := session.Apply(func(cur *types.Resume) *types.Resume {
		return store.AddBullet(cur, sectionID, req.Text)
	})
	s.editResponse(w, current)
}

// handleUpdateBullet replaces the text of one bullet.
func (s *Server) handleUpdateBullet(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var req bulletRequest
	if !s.decodeEditBody(w, r, &req) {
		return
	}
	if req.Text == "" {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	sectionID := r.PathValue("sectionID")
	bulletID := r.PathValue("bulletID")
	current := session.Apply(func(cur *types.Resume) *types.Resume {
		return store.UpdateBullet(cur, sectionID, bulletID, req.Text)
	})
	s.editResponse(w, current)
}

// handleDeleteBullet removes one bullet from its section.
func (s *Server) handleDeleteBullet(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	sectionID := r.PathValue("sectionID")
	bulletID := r.PathValue("bulletID")
	current := session.Apply(func(cur *types.Resume) *types.Resume {
		return store.DeleteBullet(cur, sectionID, bulletID)
	})
	s.editResponse(w, current)
}
