package server

import (
	"net/http"
	"strings"

	"github.com/bobmcallan/vibeterms/internal/app"
	"github.com/bobmcallan/vibeterms/internal/models"
)

// termListResponse is the body of GET /api/terms.
type termListResponse struct {
	Terms []models.Term `json:"terms"`
	Total int           `json:"total"`
}

// handleTermList handles GET /api/terms?category=&q=.
func (s *Server) handleTermList(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	category := models.Category(strings.TrimSpace(r.URL.Query().Get("category")))
	if category != "" && category != models.CategoryAll && !category.Valid() {
		WriteErrorWithCode(w, http.StatusBadRequest, "Unknown category: "+string(category), "invalid_category")
		return
	}
	query := r.URL.Query().Get("q")

	terms := s.app.Catalog.Search(category, query)
	if terms == nil {
		terms = []models.Term{}
	}
	WriteJSON(w, http.StatusOK, termListResponse{Terms: terms, Total: len(terms)})
}

// handleTerm handles GET and DELETE /api/terms/{id}.
func (s *Server) handleTerm(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		term, ok := s.app.Catalog.Get(id)
		if !ok {
			WriteError(w, http.StatusNotFound, "Term not found: "+id)
			return
		}
		WriteJSON(w, http.StatusOK, term)

	case http.MethodDelete:
		s.app.Catalog.DeleteTerm(r.Context(), id)
		s.logger.Info().Str("id", id).Msg("Term deleted")
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"deleted": id,
			"total":   len(s.app.Catalog.AllTerms()),
		})

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodDelete)
	}
}

// handleTermGenerate handles POST /api/terms/generate {keyword}.
func (s *Server) handleTermGenerate(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Keyword string `json:"keyword"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	keyword := strings.TrimSpace(req.Keyword)
	if keyword == "" {
		WriteErrorWithCode(w, http.StatusBadRequest, "keyword is required", "missing_keyword")
		return
	}

	if !s.app.Tutor.HasCredential(s.app.UserKey(r.Context())) {
		WriteErrorWithCode(w, http.StatusPreconditionFailed,
			app.GenerateFailureMessage(models.FailureNoCredential), string(models.FailureNoCredential))
		return
	}

	if !s.generateLimits.Allow() {
		w.Header().Set("Retry-After", "60")
		WriteErrorWithCode(w, http.StatusTooManyRequests, "Too many generation requests, try again shortly", "rate_limited")
		return
	}

	res := s.app.GenerateTerm(r.Context(), keyword)
	if !res.OK() {
		status := http.StatusBadGateway
		if res.Failure == models.FailureNoCredential {
			status = http.StatusPreconditionFailed
		}
		WriteErrorWithCode(w, status, app.GenerateFailureMessage(res.Failure), string(res.Failure))
		return
	}

	WriteJSON(w, http.StatusCreated, res.Term)
}

// explainResponse is the body of POST /api/terms/{id}/explain.
type explainResponse struct {
	Text    string         `json:"text"`
	OK      bool           `json:"ok"`
	Failure models.Failure `json:"failure,omitempty"`
}

// handleTermExplain handles POST /api/terms/{id}/explain {question?}.
// A known term always gets 200 with displayable text.
func (s *Server) handleTermExplain(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Question string `json:"question"`
	}
	if !DecodeOptionalJSON(w, r, &req) {
		return
	}

	res, found := s.app.ExplainTerm(r.Context(), id, req.Question)
	if !found {
		WriteError(w, http.StatusNotFound, "Term not found: "+id)
		return
	}

	WriteJSON(w, http.StatusOK, explainResponse{Text: res.Text, OK: res.OK(), Failure: res.Failure})
}

// handleCatalogReset handles POST /api/catalog/reset.
func (s *Server) handleCatalogReset(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	s.app.Catalog.Reset(r.Context())
	s.logger.Info().Msg("Catalog reset")
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"state": s.app.Catalog.State(),
		"total": len(s.app.Catalog.AllTerms()),
	})
}
