package server

import (
	"net/http"
)

// apiKeyResponse reports the saved key without revealing it.
type apiKeyResponse struct {
	Configured    bool   `json:"configured"`
	Masked        string `json:"masked,omitempty"`
	EnvConfigured bool   `json:"env_configured"`
}

// handleAPIKey handles GET/PUT/DELETE /api/settings/api-key.
func (s *Server) handleAPIKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		// handled below

	case http.MethodPut:
		var req struct {
			APIKey string `json:"api_key"`
		}
		if !DecodeJSON(w, r, &req) {
			return
		}
		if err := s.app.Settings.SetAPIKey(ctx, req.APIKey); err != nil {
			s.logger.Error().Err(err).Msg("Failed to save API key")
			WriteError(w, http.StatusInternalServerError, "Failed to save API key")
			return
		}

	case http.MethodDelete:
		if err := s.app.Settings.SetAPIKey(ctx, ""); err != nil {
			s.logger.Error().Err(err).Msg("Failed to clear API key")
			WriteError(w, http.StatusInternalServerError, "Failed to clear API key")
			return
		}

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
		return
	}

	masked := s.app.Settings.Masked(ctx)
	WriteJSON(w, http.StatusOK, apiKeyResponse{
		Configured:    masked != "",
		Masked:        masked,
		EnvConfigured: s.app.Tutor.HasCredential(""),
	})
}
