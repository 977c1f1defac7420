// Package docs serves the InitGen documentation site: the landing page with
// install commands, a quick start, the stack list and a live downloads chart.
package docs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/PankajKumardev/initgen/internal/downloads"
	"github.com/PankajKumardev/initgen/internal/stack"
)

const shutdownTimeout = 5 * time.Second

// StatsSource provides download statistics. *downloads.Client satisfies it.
type StatsSource interface {
	Fetch(ctx context.Context) *downloads.Stats
}

// Server is the documentation HTTP server.
type Server struct {
	catalog *stack.Catalog
	stats   StatsSource
	logger  *zap.Logger
	router  *mux.Router
}

// NewServer wires the routes. A nil logger discards logs.
func NewServer(catalog *stack.Catalog, stats StatsSource, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{catalog: catalog, stats: stats, logger: logger}

	router := mux.NewRouter()
	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	router.HandleFunc("/api/downloads", s.handleDownloadsJSON).Methods(http.MethodGet)
	router.HandleFunc("/downloads.svg", s.handleDownloadsSVG).Methods(http.MethodGet)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router = router
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. ready, if non-nil, receives the bound address.
func (s *Server) ListenAndServe(ctx context.Context, addr string, ready func(net.Addr)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("docs: listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln, ready)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, ready func(net.Addr)) error {
	server := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownErr <- server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("docs server listening", zap.String("addr", ln.Addr().String()))
	if ready != nil {
		ready(ln.Addr())
	}
	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-shutdownErr
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	stats := s.stats.Fetch(r.Context())

	var buf bytes.Buffer
	if err := RenderPage(&buf, s.catalog.All(), stats); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	_, _ = buf.WriteTo(w)
}

type downloadsResponse struct {
	*downloads.Stats
	WeeklyFormatted  string          `json:"weeklyFormatted"`
	MonthlyFormatted string          `json:"monthlyFormatted"`
	Message          string          `json:"message"`
	Overlay          string          `json:"overlay,omitempty"`
	Chart            downloads.Chart `json:"chart"`
}

func (s *Server) handleDownloadsJSON(w http.ResponseWriter, r *http.Request) {
	stats := s.stats.Fetch(r.Context())
	resp := downloadsResponse{
		Stats:            stats,
		WeeklyFormatted:  downloads.FormatCount(stats.Weekly),
		MonthlyFormatted: downloads.FormatCount(stats.Monthly),
		Message:          stats.Message(),
		Overlay:          stats.Overlay(),
		Chart:            downloads.NewChart(stats),
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		s.logger.Warn("encode downloads response", zap.Error(err))
	}
}

func (s *Server) handleDownloadsSVG(w http.ResponseWriter, r *http.Request) {
	stats := s.stats.Fetch(r.Context())

	var buf bytes.Buffer
	if err := downloads.WriteSVG(&buf, stats); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	_, _ = buf.WriteTo(w)
}

func (s *Server) writeError(w http.ResponseWriter, code int, err error) {
	http.Error(w, err.Error(), code)
	s.logger.Error("docs request failed", zap.Error(err))
}
