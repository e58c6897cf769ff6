// Package http exposes the advisory orchestrator as a JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MaxiJeziFlexi/finapp-advisor/internal/decisiontree"
	"github.com/MaxiJeziFlexi/finapp-advisor/internal/logging"
	"github.com/MaxiJeziFlexi/finapp-advisor/internal/orchestrator"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/domain"
	"github.com/MaxiJeziFlexi/finapp-advisor/pkg/ports"
)

// Server wires the orchestrator and stores into HTTP handlers.
type Server struct {
	orch   *orchestrator.Orchestrator
	store  ports.Store
	logger *slog.Logger

	metricsHandler http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsHandler mounts a /metrics endpoint.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metricsHandler = h
	}
}

// NewHandler builds the routed HTTP handler.
func NewHandler(orch *orchestrator.Orchestrator, store ports.Store, opts ...Option) http.Handler {
	s := &Server{
		orch:   orch,
		store:  store,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	if s.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", s.metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", s.chat)
		r.Post("/decision-tree", s.decisionTree)
		r.Post("/decision-tree/options", s.treeOptions)
		r.Post("/decision-tree/report", s.treeReport)
		r.Get("/profile/{userID}", s.profile)
	})
	return r
}

type chatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// chat handles one conversation turn.
func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var body chatRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.UserID == "" {
		s.writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	turn, err := s.orch.HandleMessage(r.Context(), body.UserID, body.Message)
	if err != nil {
		s.logger.Error("chat turn failed", "user_id", body.UserID, "err", err)
		s.writeError(w, http.StatusInternalServerError, "failed to process message")
		return
	}
	s.writeJSON(w, http.StatusOK, turn)
}

type treeStepRequest struct {
	UserID string `json:"user_id"`
	NodeID string `json:"node_id"`
	Answer string `json:"answer"`
}

// decisionTree processes one tree step directly against the session's
// tree state, bypassing message routing. Used by structured UIs.
func (s *Server) decisionTree(w http.ResponseWriter, r *http.Request) {
	var body treeStepRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.UserID == "" {
		s.writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	var result *decisiontree.StepResult
	err := s.orch.Sessions().WithLock(r.Context(), body.UserID, func(ctx context.Context) error {
		sess, err := s.orch.Sessions().Store().Load(ctx, body.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrSessionNotFound) {
				sess = domain.NewSession(body.UserID)
			} else {
				return err
			}
		}
		if sess.Tree == nil {
			sess.Tree = domain.NewTreeSession()
		}
		sess.Stage = domain.StageTree
		result = s.orch.Tree().ProcessStep(sess.Tree, body.NodeID, body.Answer)
		if result.Node.Type == domain.NodeRecommendation {
			sess.Stage = domain.StageFreeform
		}
		return s.orch.Sessions().Store().Save(ctx, body.UserID, sess)
	})
	if err != nil {
		s.logger.Error("tree step failed", "user_id", body.UserID, "err", err)
		s.writeError(w, http.StatusInternalServerError, "failed to process step")
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

type treeOptionsRequest struct {
	Step int                      `json:"step"`
	Path []decisiontree.PathEntry `json:"decision_path"`
}

func (s *Server) treeOptions(w http.ResponseWriter, r *http.Request) {
	var body treeOptionsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	options := s.orch.Tree().OptionsForStep(body.Step, body.Path)
	s.writeJSON(w, http.StatusOK, map[string]any{"options": options})
}

type treeReportRequest struct {
	UserID string                   `json:"user_id"`
	Path   []decisiontree.PathEntry `json:"decision_path"`
}

func (s *Server) treeReport(w http.ResponseWriter, r *http.Request) {
	var body treeReportRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var data *domain.ProfileData
	if body.UserID != "" {
		loaded, err := s.store.LoadProfile(r.Context(), body.UserID)
		if err == nil {
			data = loaded
		} else if !errors.Is(err, domain.ErrProfileNotFound) {
			s.logger.Warn("profile lookup failed for report", "user_id", body.UserID, "err", err)
		}
	}

	report := s.orch.Tree().Report(body.Path, data)
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	data, err := s.store.LoadProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			s.writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		s.logger.Error("profile lookup failed", "user_id", userID, "err", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	s.writeJSON(w, http.StatusOK, data)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
