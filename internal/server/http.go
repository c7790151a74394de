package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	_ "net/http/pprof" // Profiling
	"time"

	"github.com/damn090909-boop/Simple-Game/internal/domain"
	"github.com/damn090909-boop/Simple-Game/internal/engine"
	"github.com/damn090909-boop/Simple-Game/internal/infrastructure/storage"
	"github.com/damn090909-boop/Simple-Game/internal/network"
	"github.com/damn090909-boop/Simple-Game/internal/pkg/idgen"
	"github.com/damn090909-boop/Simple-Game/internal/version"
	"github.com/damn090909-boop/Simple-Game/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Runner    *engine.Runner
	Hub       *network.Hub
	Snapshots *storage.SnapshotService // nil disables /debug/snapshot
	Port      string

	clientIDs idgen.Generator
}

func New(runner *engine.Runner, hub *network.Hub, snapshots *storage.SnapshotService, port string) *Server {
	return &Server{
		Runner:    runner,
		Hub:       hub,
		Snapshots: snapshots,
		Port:      port,
		clientIDs: idgen.NewUUID("client"),
	}
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))
	mux.Handle("/debug/pprof/", http.DefaultServeMux)

	debugHandler := NewDebugHandler(s.Runner, s.Snapshots)
	debugHandler.RegisterRoutes(mux)

	return mux
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infof("Simple Game debug server running on :%s", s.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Log.Info("debug server stopped")
	return nil
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS upgrades the connection and starts the client pumps.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("websocket upgrade failed")
		return
	}

	// ?map= watches one map instead of following the player
	watch := domain.MapID(r.URL.Query().Get("map"))
	client := NewClient(s.Runner, s.Hub, conn, s.clientIDs.Generate(), watch)

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Log.WithError(err).Debug("health write failed")
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Info()); err != nil {
		logger.Log.WithError(err).Debug("version write failed")
	}
}
