// Package demoserver is a small local HTTP server for trying out the client:
// httpbin-flavored endpoints that echo the request back as JSON, serve plain
// text, or answer with an arbitrary status code.
package demoserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/raysh454/yobu/internal/logging"
)

// DemoServer is the fixture server. It has no state beyond its config.
type DemoServer struct {
	cfg    Config
	router chi.Router
	logger logging.Logger
}

// NewDemoServer creates a new demo server instance.
func NewDemoServer(cfg Config, logger logging.Logger) *DemoServer {
	if logger == nil {
		logger = logging.NewStderrLogger("demoserver")
	}

	s := &DemoServer{
		cfg:    cfg,
		router: chi.NewRouter(),
		logger: logger,
	}
	s.routes()
	return s
}

func (s *DemoServer) routes() {
	r := s.router

	r.Use(s.logMiddleware)

	r.Get("/get", s.handleGet)
	r.Post("/post", s.handlePost)
	r.Get("/headers", s.handleHeaders)
	r.Get("/status/{code}", s.handleStatus)
	r.Get("/text", s.handleText)
	r.Get("/slow", s.handleSlow)
}

// Handler exposes the router for tests and embedding.
func (s *DemoServer) Handler() http.Handler {
	return s.router
}

// Start starts the demo server and blocks.
func (s *DemoServer) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.logger.Info("demo server listening", logging.Field{Key: "addr", Value: addr})
	return http.ListenAndServe(addr, s.router)
}

func (s *DemoServer) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("request",
			logging.Field{Key: "method", Value: r.Method},
			logging.Field{Key: "path", Value: r.URL.Path},
			logging.Field{Key: "remote", Value: r.RemoteAddr})
		next.ServeHTTP(w, r)
	})
}

// handleGet echoes the request line back as JSON.
func (s *DemoServer) handleGet(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"url":     r.URL.String(),
		"args":    r.URL.Query(),
		"headers": r.Header,
	})
}

// handlePost echoes a JSON request body back. Non-JSON bodies get a 400,
// which makes the endpoint handy for checking what the client actually sent.
func (s *DemoServer) handlePost(w http.ResponseWriter, r *http.Request) {
	var body any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": fmt.Sprintf("invalid json body: %v", err),
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"url":     r.URL.String(),
		"json":    body,
		"headers": r.Header,
	})
}

func (s *DemoServer) handleHeaders(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"headers": r.Header,
	})
}

// handleStatus answers with the status code named in the path.
func (s *DemoServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "code")
	code, err := strconv.Atoi(raw)
	if err != nil || code < 100 || code > 599 {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": fmt.Sprintf("invalid status code %q", raw),
		})
		return
	}
	w.WriteHeader(code)
}

func (s *DemoServer) handleText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "hello from the yobu demo server")
}

// handleSlow answers after a delay, for poking at client timeouts.
func (s *DemoServer) handleSlow(w http.ResponseWriter, r *http.Request) {
	select {
	case <-time.After(2 * time.Second):
	case <-r.Context().Done():
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"slept": "2s",
	})
}

func (s *DemoServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("writing json response", logging.Field{Key: "error", Value: err.Error()})
	}
}
