package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/server/middleware"
	"github.com/jonathan/resume-studio/internal/types"
)

// premiumCategories are the template families reserved for paying accounts.
// The gate lives only here; rendering and scoring never consult it.
var premiumCategories = map[types.TemplateCategory]bool{
	types.CategoryExecutive: true,
	types.CategoryCreative:  true,
}

// handleExport renders the current snapshot and prints it to PDF.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	templateID, dark := renderParams(r)
	// Unknown IDs recover to the default template rather than erroring, so
	// the download filename and premium gate see the resolved id.
	descriptor, known := rendering.Descriptor(templateID)
	if !known {
		templateID = rendering.DefaultTemplateID
		descriptor, _ = rendering.Descriptor(templateID)
	}

	if premiumCategories[descriptor.Category] {
		// Premium state is read fresh so a webhook upgrade applies without
		// a new login.
		user, err := s.db.GetUser(r.Context(), userID)
		if err != nil || user == nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to load account")
			return
		}
		if !user.Premium {
			gateErr := &ErrPremiumRequired{TemplateID: templateID}
			s.errorResponse(w, HTTPStatus(gateErr), gateErr.Error())
			return
		}
	}

	session, err := s.sessions.Get(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load session")
		return
	}

	resume := session.Current()
	html, err := rendering.Render(resume, templateID, dark)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render resume")
		return
	}

	pdf, err := s.exporter.ExportPDF(r.Context(), html)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to export PDF")
		return
	}

	filename := export.Filename(resume.PersonalInfo.Name, templateID)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		return
	}
}
