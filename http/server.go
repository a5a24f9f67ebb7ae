package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/headlines"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ShutdownTimeout is how long Serve waits for in-flight requests after
// its context is canceled.
const ShutdownTimeout = 5 * time.Second

// Server serves digests as JSON over HTTP.
type Server struct {
	router *chi.Mux
	logger *slog.Logger

	// Digester produces the digest for each request.
	Digester headlines.Digester

	// Source is digested when the request does not name one.
	Source string

	// KeywordLimit is used when the request has no limit parameter.
	KeywordLimit int

	// AllowSource lets requests pick the page with ?source=.
	AllowSource bool
}

// NewServer returns a Server with routes registered. A nil logger
// discards server logs.
func NewServer(digester headlines.Digester, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		router:       chi.NewRouter(),
		logger:       logger,
		Digester:     digester,
		Source:       headlines.DefaultSource,
		KeywordLimit: headlines.DefaultKeywordLimit,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/api/digest", s.handleDigest)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server started", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	s.logger.Info("server stopping")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleDigest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := s.KeywordLimit
	if v := query.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, http.StatusBadRequest, headlines.Errorf(headlines.EINVALID, "limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	source := s.Source
	if v := query.Get("source"); v != "" {
		if !s.AllowSource {
			s.writeError(w, r, http.StatusBadRequest, headlines.Errorf(headlines.EINVALID, "source parameter is not allowed"))
			return
		}
		source = v
	}

	d, err := s.Digester.Digest(r.Context(), source, limit)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	s.writeJSON(w, http.StatusOK, d)
}

// errorResponse is the body returned for failed requests.
type errorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	msg := headlines.ErrorMessage(err)
	if headlines.ErrorCode(err) == headlines.EINTERNAL {
		msg = err.Error()
	}
	s.logger.Error("request failed",
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"status", status,
		"err", err,
	)
	s.writeJSON(w, status, errorResponse{Error: true, Message: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}
