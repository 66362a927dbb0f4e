package spectate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const shutdownTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// observers are read-only, any page may embed the feed
	CheckOrigin: func(*http.Request) bool { return true },
}

// NewRouter builds the spectator HTTP routes:
//
//	GET /spectate  websocket feed, one JSON event per text frame
//	GET /recent    last events as a JSON array
//	GET /healthz   liveness
func NewRouter(h *Hub) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/spectate", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade has already replied to the client
			slog.Debug("spectator upgrade failed", "remote", c.ClientIP(), "error", err)
			return
		}
		h.serve(conn)
	})
	r.GET("/recent", func(c *gin.Context) {
		c.JSON(http.StatusOK, h.Recent())
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "clients": h.Clients()})
	})
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("spectator request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// Server serves the spectator feed.
type Server struct {
	hub  *Hub
	addr string

	ready chan net.Addr
}

// NewServer creates a server for hub listening on addr.
func NewServer(hub *Hub, addr string) *Server {
	return &Server{hub: hub, addr: addr, ready: make(chan net.Addr, 1)}
}

// Ready delivers the bound address once the listener is up.
func (s *Server) Ready() <-chan net.Addr { return s.ready }

// Run serves until ctx is cancelled, then shuts down and disconnects observers.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}
	s.ready <- ln.Addr()

	srv := &http.Server{
		Handler:           NewRouter(s.hub),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("spectator feed listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving spectators: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down spectator feed: %w", err)
	}
	slog.Info("spectator feed stopped")
	return nil
}
