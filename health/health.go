// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package health

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

type AgentCounter interface {
	Len() int
}

type agentCounts struct {
	Arbitrators int `json:"arbitrators"`
	Mediators   int `json:"mediators"`
}

// NewHandler returns handler serving /health that returns ok on invocation and
// /agents that returns the number of currently known dispute agents.
func NewHandler(arbitrators, mediators AgentCounter) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/agents", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(agentCounts{
			Arbitrators: arbitrators.Len(),
			Mediators:   mediators.Len(),
		})
	})
	return mux
}

// StartHealthEndpoint starts /health and /agents endpoints on provided port
func StartHealthEndpoint(port uint16, arbitrators, mediators AgentCounter) {
	log.Info().Msgf("started /health endpoint on port %d", port)
	err := http.ListenAndServe(fmt.Sprintf(":%d", port), NewHandler(arbitrators, mediators))
	log.Err(err).Msg("health endpoint stopped")
}
