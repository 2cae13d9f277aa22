package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Rrens/focusbot/internal/api/response"
	"github.com/Rrens/focusbot/internal/llm"
)

// Version is reported by the API info endpoint
const Version = "1.1.0"

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck returns a liveness response with the server time
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]any{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}

// APIInfo returns the API banner
func APIInfo(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"message": "FocusBot API is live",
		"version": Version,
	})
}

// ReadyCheck returns readiness status including database connectivity
func ReadyCheck(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			response.Error(w, http.StatusServiceUnavailable, "database not ready")
			return
		}

		response.OK(w, map[string]string{
			"status": "ready",
		})
	}
}

// ListLLMProviders returns registered LLM providers
func ListLLMProviders(router *llm.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]any{
			"providers":        router.GetProvidersInfo(),
			"default_provider": router.DefaultProvider(),
		})
	}
}
