package server

import (
	"net/http"

	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/types"
)

// renderParams extracts the template/theme query parameters shared by the
// render, outline and export endpoints.
func renderParams(r *http.Request) (templateID string, dark bool) {
	templateID = r.URL.Query().Get("template")
	if templateID == "" {
		templateID = rendering.DefaultTemplateID
	}
	dark = r.URL.Query().Get("theme") == "dark"
	return templateID, dark
}

// handleListTemplates returns the template catalog, optionally filtered by
// category.
func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	category := types.TemplateCategory(r.URL.Query().Get("category"))
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates": rendering.Catalog(category),
	})
}

// handleRender returns the rendered HTML document for the current snapshot.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	templateID, dark := renderParams(r)
	html, err := rendering.Render(session.Current(), templateID, dark)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render resume")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		return
	}
}

// handleOutline returns the structural projection of the rendered document.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	templateID, dark := renderParams(r)
	html, err := rendering.Render(session.Current(), templateID, dark)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render resume")
		return
	}

	outline, err := rendering.Outline(html)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build outline")
		return
	}

	s.jsonResponse(w, http.StatusOK, outline)
}
