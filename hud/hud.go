// Package hud publishes the simulation's UI read hooks to external overlays over a websocket feed
package hud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/lixenwraith/zenith/engine"
	"github.com/lixenwraith/zenith/status"
)

// Path is the feed endpoint
const Path = "/hud"

// StatsPath serves a one-shot JSON copy of the telemetry counters
const StatsPath = "/stats"

const writeTimeout = time.Second

// Source supplies frame snapshots; *engine.GameContext satisfies it
type Source interface {
	Snapshot() engine.Snapshot
}

// StatsSource is optionally implemented by a Source to enable StatsPath
type StatsSource interface {
	Stats() status.Stats
}

// Server streams JSON snapshots to every connected client at a fixed interval
// It only reads the simulation through Source
type Server struct {
	source   Source
	interval time.Duration
	clients  atomic.Int64
	sent     atomic.Int64
}

// NewServer creates a feed publishing a snapshot every interval
func NewServer(src Source, interval time.Duration) *Server {
	return &Server{source: src, interval: interval}
}

// Handler returns the HTTP handler serving the feed at Path
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, s.serveFeed)
	if stats, ok := s.source.(StatsSource); ok {
		mux.HandleFunc(StatsPath, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(stats.Stats()); err != nil {
				log.Printf("hud stats: %v", err)
			}
		})
	}
	return mux
}

// Clients returns the number of connected subscribers
func (s *Server) Clients() int64 {
	return s.clients.Load()
}

// Sent returns the total snapshots written across all clients
func (s *Server) Sent() int64 {
	return s.sent.Load()
}

// ListenAndServe runs the feed on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("hud listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve runs the feed on ln until ctx is cancelled; a clean shutdown returns nil
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	log.Printf("hud feed listening on %s%s", ln.Addr(), Path)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("hud serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("hud shutdown: %w", err)
	}
	return nil
}

func (s *Server) serveFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Overlays are local tools served from arbitrary origins
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Printf("hud accept: %v", err)
		return
	}
	defer conn.CloseNow()

	s.clients.Add(1)
	defer s.clients.Add(-1)

	// The feed is write-only; CloseRead handles control frames and cancels on client close
	ctx := conn.CloseRead(r.Context())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.publish(ctx, conn); err != nil {
			if websocket.CloseStatus(err) == -1 && ctx.Err() == nil {
				log.Printf("hud write: %v", err)
			}
			return
		}
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusGoingAway, "feed closed")
			return
		case <-ticker.C:
		}
	}
}

func (s *Server) publish(ctx context.Context, conn *websocket.Conn) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := wsjson.Write(ctx, conn, s.source.Snapshot()); err != nil {
		return err
	}
	s.sent.Add(1)
	return nil
}
