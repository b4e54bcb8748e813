package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/gameplay"
	"treasurehunt/pkg/game/generator"
	"treasurehunt/pkg/game/leaderboard"
	"treasurehunt/pkg/game/rules"
	"treasurehunt/pkg/game/state"
)

// createSessionRequest is the body of POST /api/v1/sessions. Every field is optional.
type createSessionRequest struct {
	Difficulty string `json:"difficulty"`
	Seed       *int64 `json:"seed"`
	Level      int    `json:"level"`
	Rows       int    `json:"rows"`
	Cols       int    `json:"cols"`
	// Visibility names a field-of-view shape: square, plus or diamond.
	Visibility string `json:"visibility"`
}

type moveRequest struct {
	Direction string `json:"direction"`
}

type difficultyRequest struct {
	Difficulty string `json:"difficulty"`
}

type scoreRequest struct {
	Name string `json:"name"`
}

// sessionResponse is returned by every session endpoint
type sessionResponse struct {
	ID       string            `json:"id"`
	Result   any               `json:"result,omitempty"`
	Snapshot gameplay.Snapshot `json:"snapshot"`
}

type pauseResult struct {
	Paused bool `json:"paused"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Sessions int    `json:"sessions"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Uptime:   time.Since(s.startTime).Truncate(time.Second).String(),
		Sessions: s.sessions.Len(),
	})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries := s.board.Load(r.Context())
	if entries == nil {
		entries = []leaderboard.Entry{}
	}
	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidParams, "invalid JSON body")
		return
	}

	opts := gameplay.Options{
		Difficulty: rules.Normal,
		Seed:       time.Now().UnixNano(),
		Level:      req.Level,
		Rows:       req.Rows,
		Cols:       req.Cols,
		Now:        s.Now,
	}
	if req.Difficulty != "" {
		d, ok := rules.ParseDifficulty(req.Difficulty)
		if !ok {
			s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidParams, "unknown difficulty: "+req.Difficulty)
			return
		}
		opts.Difficulty = d
	}
	if req.Seed != nil {
		opts.Seed = *req.Seed
	}
	if req.Visibility != "" {
		shape, err := world.ParseShape(req.Visibility)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidParams, err.Error())
			return
		}
		opts.Shape = &shape
	}

	gs, err := gameplay.NewSession(opts)
	if err != nil {
		var cfgErr *generator.ConfigError
		if errors.As(err, &cfgErr) {
			s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidParams, cfgErr.Error())
			return
		}
		s.writeInternal(w, r, err)
		return
	}

	id := s.sessions.Add(gs)
	s.logger.Printf("session_created id=%s difficulty=%s seed=%d", id, gs.Difficulty, gs.Seed)
	s.writeJSON(w, http.StatusCreated, sessionResponse{ID: id, Snapshot: view(gs)})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request, id string, gs *state.GameSession) {
	if _, err := gameplay.Poll(gs); err != nil {
		s.writeInternal(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sessionResponse{ID: id, Snapshot: view(gs)})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.sessions.Remove(id) {
		s.writeError(w, r, http.StatusNotFound, ErrTypeNotFound, "session not found")
		return
	}
	s.logger.Printf("session_deleted id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request, id string, gs *state.GameSession) {
	var req moveRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidParams, "invalid JSON body")
		return
	}
	dir, ok := world.ParseDirection(req.Direction)
	if !ok {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidParams, "unknown direction: "+req.Direction)
		return
	}

	res, err := gameplay.Move(gs, dir)
	if err != nil {
		s.writeInternal(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sessionResponse{ID: id, Result: res, Snapshot: view(gs)})
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request, id string, gs *state.GameSession) {
	var req difficultyRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidParams, "invalid JSON body")
		return
	}
	if req.Difficulty != "" {
		s.changeDifficulty(w, r, id, gs, req.Difficulty)
		return
	}

	if err := gameplay.Restart(gs, nil); err != nil {
		s.writeInternal(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sessionResponse{ID: id, Snapshot: view(gs)})
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request, id string, gs *state.GameSession) {
	paused, err := gameplay.TogglePause(gs)
	if err != nil {
		s.writeInternal(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sessionResponse{ID: id, Result: pauseResult{Paused: paused}, Snapshot: view(gs)})
}

func (s *Server) handleDifficulty(w http.ResponseWriter, r *http.Request, id string, gs *state.GameSession) {
	var req difficultyRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidParams, "invalid JSON body")
		return
	}
	s.changeDifficulty(w, r, id, gs, req.Difficulty)
}

// changeDifficulty restarts gs on the named preset; unknown names leave it untouched
func (s *Server) changeDifficulty(w http.ResponseWriter, r *http.Request, id string, gs *state.GameSession, value string) {
	ok, err := gameplay.ChangeDifficulty(gs, value)
	if err != nil {
		s.writeInternal(w, r, err)
		return
	}
	if !ok {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidParams, "unknown difficulty: "+value)
		return
	}
	s.writeJSON(w, http.StatusOK, sessionResponse{ID: id, Snapshot: view(gs)})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request, id string, gs *state.GameSession) {
	var req scoreRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidParams, "invalid JSON body")
		return
	}

	res := gameplay.SubmitScore(r.Context(), gs, s.board, req.Name)
	status := http.StatusOK
	if res.Status == gameplay.SubmitRejected {
		status = http.StatusUnprocessableEntity
	}
	s.writeJSON(w, status, sessionResponse{ID: id, Result: res, Snapshot: view(gs)})
}
