// Package http exposes the bridge over a plain HTTP command endpoint,
// plus health and Prometheus metrics routes.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	unityforge "github.com/kuroyasouiti/unityforge"
	"github.com/kuroyasouiti/unityforge/pkg/command"
)

// envelope is the request body of POST /command.
type envelope struct {
	Category string          `json:"category"`
	Params   command.Payload `json:"params"`
}

// NewHandler builds the chi router for the bridge.
func NewHandler(bridge *unityforge.Bridge, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"version":   unityforge.Version,
			"compiling": bridge.Compilation().IsCompiling(),
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/categories", func(w http.ResponseWriter, _ *http.Request) {
		out := make(map[string][]string)
		for _, c := range bridge.Categories() {
			out[c] = bridge.Handler(c).Operations()
		}
		writeJSON(w, http.StatusOK, out)
	})

	r.Get("/journal", func(w http.ResponseWriter, req *http.Request) {
		entries, err := bridge.Journal().Recent(req.Context(), 50)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, command.NewError(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, entries)
	})

	r.Post("/command", func(w http.ResponseWriter, req *http.Request) {
		var env envelope
		if err := json.NewDecoder(req.Body).Decode(&env); err != nil {
			writeJSON(w, http.StatusBadRequest, command.NewError("invalid JSON body: "+err.Error()))
			return
		}
		if env.Category == "" {
			writeJSON(w, http.StatusBadRequest, command.NewError("missing category"))
			return
		}
		result := bridge.Dispatch(req.Context(), env.Category, env.Params)
		status := http.StatusOK
		if success, _ := result["success"].(bool); !success {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, result)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
