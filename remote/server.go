package remote

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Viewers are read-only, so cross-origin pages may connect.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Server exposes the frame broadcaster over HTTP at /ws.
type Server struct {
	hub    *Hub
	srv    *http.Server
	logger *slog.Logger
}

// NewServer builds a server listening on addr.
func NewServer(addr string, hub *Hub, logger *slog.Logger) *Server {
	mux := http.NewServeMux()
	s := &Server{hub: hub, logger: logger}
	mux.HandleFunc("/ws", s.handleWS)
	s.srv = &http.Server{Addr: addr, Handler: mux}
	return s
}

// Start runs the hub and HTTP listener on background goroutines.
func (s *Server) Start(ctx context.Context) {
	go s.hub.Run(ctx)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("remote server stopped", "error", err)
		}
	}()
}

// Shutdown stops accepting viewers and closes the listener.
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = s.srv.Shutdown(ctx)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	client := NewClient(s.hub, conn)
	client.Register()
	go client.WritePump()
	go client.ReadPump()
}
