package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	apperrors "career-advisor/internal/common/errors"
	careeradvice "career-advisor/internal/services/career-advice"
	chatadvisor "career-advisor/internal/services/chat-advisor"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	routeCareerAdvice = "/api/career-advice"
	routeChatAdvisor  = "/api/chat-advisor"
	routeHealth       = "/health"
	routeReady        = "/ready"
	routeMetrics      = "/metrics"
)

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+routeCareerAdvice, s.handleCareerAdvice)
	mux.HandleFunc("POST "+routeChatAdvisor, s.handleChatAdvisor)
	mux.HandleFunc("GET "+routeHealth, s.handleHealth)
	mux.HandleFunc("GET "+routeReady, s.handleReady)
	mux.Handle("GET "+routeMetrics, promhttp.Handler())
	return mux
}

// routeLabel bounds metric label cardinality to the known routes.
func routeLabel(path string) string {
	switch path {
	case routeCareerAdvice, routeChatAdvisor, routeHealth, routeReady, routeMetrics:
		return path
	default:
		return "other"
	}
}

func (s *Server) readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, apperrors.NewRequestTooLargeError(maxErr.Limit)
		}
		return nil, apperrors.NewInvalidRequestError(err.Error())
	}
	return body, nil
}

func (s *Server) handleCareerAdvice(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	body, err := s.readBody(r)
	if err != nil {
		s.errHandler.HandleHTTPError(w, r, err)
		return
	}

	profile, err := careeradvice.DecodeProfile(body)
	if err != nil {
		s.errHandler.HandleHTTPError(w, r, err)
		return
	}

	out, err := s.deps.CareerAdvice.Recommend(r.Context(), profile)
	if err != nil {
		s.errHandler.HandleHTTPError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, careeradvice.NewResponse(out))
	s.record(r, careeradvice.ServiceName, out.Source, out.Warning, started)
}

func (s *Server) handleChatAdvisor(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	body, err := s.readBody(r)
	if err != nil {
		s.errHandler.HandleHTTPError(w, r, err)
		return
	}

	req, err := chatadvisor.DecodeRequest(body)
	if err != nil {
		s.errHandler.HandleHTTPError(w, r, err)
		return
	}

	out, err := s.deps.ChatAdvisor.Reply(r.Context(), req)
	if err != nil {
		s.errHandler.HandleHTTPError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chatadvisor.NewResponse(out))
	s.record(r, chatadvisor.ServiceName, out.Source, out.Warning, started)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]string, len(s.deps.Checks))
	for _, c := range s.deps.Checks {
		if err := c.Ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			checks[c.Name()] = err.Error()
			continue
		}
		checks[c.Name()] = "ok"
	}

	state := "ready"
	if status != http.StatusOK {
		state = "not ready"
	}
	writeJSON(w, status, map[string]interface{}{
		"status": state,
		"checks": checks,
		"time":   time.Now().Format(time.RFC3339),
	})
}
