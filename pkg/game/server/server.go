// Package server exposes game sessions over a JSON HTTP API. Every session is isolated:
// it owns its board, random source and clock, and its commands are serialized.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"treasurehunt/pkg/game/gameplay"
	"treasurehunt/pkg/game/leaderboard"
	"treasurehunt/pkg/game/messages"
	"treasurehunt/pkg/game/state"
)

// Error types reported in APIError.Type
const (
	ErrTypeInvalidParams = "invalid_params"
	ErrTypeNotFound      = "not_found"
	ErrTypeRejected      = "rejected"
	ErrTypeInternal      = "internal_error"
)

// RequestTimeout bounds the handling time of one request
const RequestTimeout = 30 * time.Second

// APIError is the body of every error response
type APIError struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e APIError) Error() string {
	return e.Message
}

// Server handles HTTP requests
type Server struct {
	board     *leaderboard.Board
	sessions  *Registry
	logger    *log.Logger
	startTime time.Time

	// Now is the time source of new sessions; nil uses the wall clock.
	Now func() time.Time
}

// NewServer creates a new API server. A nil logger logs to stdout.
func NewServer(board *leaderboard.Board, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(os.Stdout, "[API] ", log.LstdFlags|log.Lshortfile)
	}
	return &Server{
		board:     board,
		sessions:  NewRegistry(),
		logger:    logger,
		startTime: time.Now(),
	}
}

// Sessions returns the session registry
func (s *Server) Sessions() *Registry {
	return s.sessions
}

// Routes sets up the HTTP routes with proper middleware
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.LoggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(RequestTimeout))
	r.Use(s.CORSMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/leaderboard", s.handleLeaderboard)

		r.Post("/sessions", s.handleCreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.session(s.handleGetSession))
			r.Delete("/", s.handleDeleteSession)
			r.Post("/move", s.session(s.handleMove))
			r.Post("/restart", s.session(s.handleRestart))
			r.Post("/pause", s.session(s.handlePause))
			r.Post("/difficulty", s.session(s.handleDifficulty))
			r.Post("/score", s.session(s.handleScore))
		})
	})

	return r
}

// ListenAndServe serves the API on addr until the listener fails
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Printf("listening on %s", addr)
	return srv.ListenAndServe()
}

// sessionHandler is a handler that runs with the session's lock held
type sessionHandler func(w http.ResponseWriter, r *http.Request, id string, gs *state.GameSession)

// session resolves the {id} URL parameter and serializes access to the session
func (s *Server) session(h sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		e, ok := s.sessions.get(id)
		if !ok {
			s.writeError(w, r, http.StatusNotFound, ErrTypeNotFound, "session not found")
			return
		}

		e.mu.Lock()
		defer e.mu.Unlock()
		h(w, r, id, e.session)
	}
}

// view is the snapshot served to clients, with message markup removed
func view(gs *state.GameSession) gameplay.Snapshot {
	snap := gameplay.TakeSnapshot(gs)
	for i, msg := range snap.Messages {
		snap.Messages[i] = messages.Strip(msg)
	}
	return snap
}

// decodeBody decodes an optional JSON request body into dst
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// writeJSON writes a JSON response with proper headers
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("encode response: %v", err)
	}
}

// writeError writes a structured error response
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, errType, message string) {
	s.writeJSON(w, status, APIError{
		Type:      errType,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// writeInternal logs err and writes a 500 response
func (s *Server) writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Printf("request_failed path=%s request_id=%s error=%v", r.URL.Path, middleware.GetReqID(r.Context()), err)
	s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, err.Error())
}
