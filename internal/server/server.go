// Package server exposes the advisor services over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"career-advisor/internal/common/audit"
	"career-advisor/internal/common/config"
	apperrors "career-advisor/internal/common/errors"
	"career-advisor/internal/common/logger"
	"career-advisor/internal/models"
	careeradvice "career-advisor/internal/services/career-advice"
	chatadvisor "career-advisor/internal/services/chat-advisor"
)

// CareerAdvisor produces recommendations for a profile.
type CareerAdvisor interface {
	Recommend(ctx context.Context, profile *models.StudentProfile) (*careeradvice.Output, error)
}

// ChatAdvisor answers one chat turn.
type ChatAdvisor interface {
	Reply(ctx context.Context, req *chatadvisor.Request) (*chatadvisor.Output, error)
}

// ReadinessCheck is an optional dependency reported by /ready.
type ReadinessCheck interface {
	Name() string
	Ping(ctx context.Context) error
}

// Deps are the collaborators the routes call into. Recorder and Checks are
// optional.
type Deps struct {
	CareerAdvice CareerAdvisor
	ChatAdvisor  ChatAdvisor
	Recorder     audit.Recorder
	Checks       []ReadinessCheck
}

type Server struct {
	cfg        config.ServerConfig
	deps       Deps
	errHandler *apperrors.ErrorHandler
	logger     logger.Logger
	httpServer *http.Server
}

func New(cfg config.ServerConfig, deps Deps, log logger.Logger) *Server {
	if deps.Recorder == nil {
		deps.Recorder = audit.NopRecorder{}
	}
	s := &Server{
		cfg:        cfg,
		deps:       deps,
		errHandler: apperrors.NewErrorHandler(log),
		logger:     log.With(map[string]interface{}{"component": "http"}),
	}
	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  config.GetDuration(cfg.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.WriteTimeout),
	}
	return s
}

// Handler returns the full middleware chain around the routes.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.routes()
	h = s.limitBody(h)
	h = s.recoverPanics(h)
	h = s.cors(h)
	h = s.instrument(h)
	h = s.accessLog(h)
	h = s.requestID(h)
	return h
}

// Start serves until Shutdown is called. It returns nil on a clean shutdown.
func (s *Server) Start() error {
	s.logger.Info("advisor API listening", map[string]interface{}{"addr": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// record writes the usage event after the response has been sent.
func (s *Server) record(r *http.Request, endpoint, source, warning string, started time.Time) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), 2*time.Second)
	defer cancel()

	err := s.deps.Recorder.Record(ctx, audit.Event{
		Endpoint:  endpoint,
		Source:    source,
		Warning:   warning,
		Duration:  time.Since(started),
		RequestID: RequestIDFromContext(r.Context()),
	})
	if err != nil {
		logger.FromContext(r.Context(), s.logger).Warn("usage event not recorded", map[string]interface{}{
			"endpoint": endpoint,
			"error":    err,
		})
	}
}
