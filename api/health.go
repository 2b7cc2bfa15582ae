package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pbtc21/token-health/core"
	"github.com/pbtc21/token-health/types"
	"github.com/pbtc21/token-health/utils"
)

// GetHealth serves the protected health report for a token. The payment
// gateway has already admitted the request by the time this runs.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	tokenAddress := chi.URLParam(r, "tokenAddress")
	cacheKey := "health:" + tokenAddress

	// Serve a stored report when one is still fresh
	if data, ok := s.cache.Get(r.Context(), cacheKey); ok {
		var report types.HealthReport
		if err := json.Unmarshal(data, &report); err == nil {
			report.Cached = true
			writeJSON(w, http.StatusOK, report)
			return
		}
		// A corrupt cache entry is treated as a miss
	}

	// Compute a fresh report
	report, err := core.CalculateHealthScore(r.Context(), s.provider, tokenAddress)
	if err != nil {
		writeJSON(w, utils.StatusOf(err, http.StatusInternalServerError), map[string]string{
			"error": "Failed to analyze token: " + err.Error(),
		})
		return
	}

	// Store the report best effort before serving it
	if data, err := json.Marshal(report); err == nil {
		s.cache.Set(r.Context(), cacheKey, data, s.cacheTTL())
	}

	writeJSON(w, http.StatusOK, report)
}
