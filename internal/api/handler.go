package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/eugenenazirov/scanner-map/internal/settings"
	"github.com/eugenenazirov/scanner-map/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

const maxClassifyBodyBytes = 16 << 10

// Handler wires the settings store into HTTP handlers.
type Handler struct {
	storage storage.Storage

	clock func() time.Time
	ready func() bool
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithReadiness sets the probe reported by /api/ready.
func WithReadiness(ready func() bool) HandlerOption {
	return func(h *Handler) {
		h.ready = ready
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		storage: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
		ready: func() bool { return true },
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	})
}

func (h *Handler) handleReady(w http.ResponseWriter, _ *http.Request) {
	if !h.ready() {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:    "starting",
			Timestamp: h.clock(),
		})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ready",
		Timestamp: h.clock(),
	})
}

func (h *Handler) handleAppConfig(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, h.storage.Snapshot())
}

func (h *Handler) handleProviders(w http.ResponseWriter, _ *http.Request) {
	geo := h.storage.Snapshot().Geocoding
	active, _ := geo.ResolveProvider()
	writeJSON(w, http.StatusOK, providersResponse{
		Preferred: geo.PreferredProvider,
		Active:    active,
		Available: geo.AvailableProviders(),
	})
}

func (h *Handler) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxClassifyBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if req.Talkgroup == "" && req.AudioPath == "" {
		writeError(w, http.StatusBadRequest, "Invalid request", "talkgroup or audioPath is required",
			"Send the talkgroup name, the audio file path, or both")
		return
	}

	category := h.storage.Snapshot().MarkerClassification.Classify(req.Talkgroup, req.AudioPath)
	writeJSON(w, http.StatusOK, classifyResponse{
		Category: category,
		Icon:     settings.IconFor(category),
	})
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type classifyRequest struct {
	Talkgroup string `json:"talkgroup"`
	AudioPath string `json:"audioPath"`
}

type classifyResponse struct {
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

type providersResponse struct {
	Preferred string   `json:"preferred"`
	Active    string   `json:"active"`
	Available []string `json:"available"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}
