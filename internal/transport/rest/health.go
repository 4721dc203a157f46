package rest

import (
	"context"
	"net/http"
	"slices"
	"time"
)

const pingTimeout = 3 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	journal    Pinger
	components map[string]Pinger
	version    string
}

// NewHealthHandler creates a HealthHandler. journal decides readiness;
// components are the individual journal stores reported by /health.
func NewHealthHandler(journal Pinger, components map[string]Pinger, version string) *HealthHandler {
	return &HealthHandler{journal: journal, components: components, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 while at least one journal store answers.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.journal.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports every journal store with its ping latency. The status is
// "degraded" when a store is down but the journal still works.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.components))
	anyDown := false

	names := make([]string, 0, len(h.components))
	for name := range h.components {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		start := time.Now()
		if err := h.components[name].Ping(ctx); err != nil {
			components[name] = CompStatus{Status: "down"}
			anyDown = true
			continue
		}
		components[name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	status, code := "ok", http.StatusOK
	switch {
	case h.journal.Ping(ctx) != nil:
		status, code = "down", http.StatusServiceUnavailable
	case anyDown:
		status = "degraded"
	}

	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
