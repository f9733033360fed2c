package server

import (
	"net/http"
	"strings"

	"github.com/bobmcallan/vibeterms/internal/common"
	"github.com/bobmcallan/vibeterms/internal/models"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/categories", s.handleCategories)

	// Terms
	mux.HandleFunc("/api/terms/generate", s.handleTermGenerate)
	mux.HandleFunc("/api/terms/", s.routeTerms)
	mux.HandleFunc("/api/terms", s.handleTermList)

	// Catalog
	mux.HandleFunc("/api/catalog/reset", s.handleCatalogReset)

	// Settings
	mux.HandleFunc("/api/settings/api-key", s.handleAPIKey)
}

// routeTerms dispatches /api/terms/{id} and /api/terms/{id}/explain.
func (s *Server) routeTerms(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/terms/")
	if path == "" {
		s.handleTermList(w, r)
		return
	}

	parts := strings.SplitN(path, "/", 2)
	id := parts[0]
	subpath := ""
	if len(parts) > 1 {
		subpath = parts[1]
	}

	switch subpath {
	case "":
		s.handleTerm(w, r, id)
	case "explain":
		s.handleTermExplain(w, r, id)
	default:
		WriteError(w, http.StatusNotFound, "Not found")
	}
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
		"full":    common.GetFullVersion(),
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"all":        models.CategoryAll,
		"categories": models.Categories(),
	})
}
