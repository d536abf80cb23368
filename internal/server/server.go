package server

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"GoogChfTracker/internal/model"
)

// DataProvider is what the handlers need from the dashboard service.
type DataProvider interface {
	Dataset(ctx context.Context, tf model.Timeframe) (*model.AlignedDataset, error)
	Quote(ctx context.Context) (*model.Quote, error)
	FreezePeriods() []model.FreezePeriod
}

// Server serves the dashboard page, its JSON API, and the live quote stream.
type Server struct {
	addr      string
	staticDir string
	provider  DataProvider
	hub       *Hub
	srv       *http.Server
}

// NewServer creates a new Server.
func NewServer(addr, staticDir string, provider DataProvider, hub *Hub) *Server {
	return &Server{
		addr:      addr,
		staticDir: staticDir,
		provider:  provider,
		hub:       hub,
	}
}

// Start listens and serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/dataset", s.handleDataset)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /ws", s.hub.HandleWS)
	mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))

	s.srv = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] http shutdown: %v", err)
		}
	}()

	log.Printf("[INFO] http server listening on %s", s.addr)
	err = s.srv.Serve(ln)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
