// Package server serves the commenting UI and the JSON endpoint that relays
// requests to the inference backend.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/valpere/codecomment/internal/generator"
	"github.com/valpere/codecomment/internal/language"
)

//go:embed templates/*
var templatesFS embed.FS

// Server is the HTTP front end. It holds no per-request state.
type Server struct {
	addr            string
	gen             generator.Generator
	logger          *zap.Logger
	tmpl            *template.Template
	shutdownTimeout time.Duration
}

// NewServer creates a server that answers on addr and delegates generation
// to gen. A nil logger disables logging.
func NewServer(addr string, gen generator.Generator, logger *zap.Logger) (*Server, error) {
	if gen == nil {
		return nil, errors.New("generator is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Server{
		addr:            addr,
		gen:             gen,
		logger:          logger,
		tmpl:            tmpl,
		shutdownTimeout: 10 * time.Second,
	}, nil
}

// SetShutdownTimeout bounds how long in-flight requests may run after the
// serve context is cancelled. Zero waits for them indefinitely.
func (s *Server) SetShutdownTimeout(d time.Duration) {
	s.shutdownTimeout = d
}

// Handler returns the routed handler with request ids and access logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /api/code-comment", s.handleComment)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return s.requestID(s.accessLog(mux))
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          zap.NewStdLog(s.logger),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.logger.Info("Server started", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")

	shutdownCtx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, s.shutdownTimeout)
		defer cancel()
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		srv.Close()
		<-errCh
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// pageData feeds templates/index.html.
type pageData struct {
	Title     string
	Languages []language.Language
	Default   string
	Accept    string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:     "Code Comment Generator",
		Languages: language.All(),
		Default:   language.Default,
		Accept:    language.AcceptList(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("Template error", zap.Error(err), zap.String("request_id", RequestIDFrom(r.Context())))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
