// Package server streams simulation snapshots to websocket clients. The
// core never renders; an external renderer subscribes here and draws
// whatever the simulation reports.
package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/justinjohnso-itp/lane-courier/internal/core"
)

// Server fans simulation snapshots out to subscribed clients. Broadcast is
// called from the simulation goroutine; each client gets its own writer
// goroutine fed by a bounded channel, and a client that cannot keep up
// loses frames rather than stalling the simulation.
type Server struct {
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte

	// Latest normalized input from any client. Discrete actions are edge
	// events: they accumulate until the simulation polls them.
	inMu     sync.Mutex
	steering float64
	pending  map[core.Action]bool
}

// clientMessage is the input protocol: clients send an already-normalized
// steering axis and named edge actions. How the client produced them
// (keyboard, serial encoder bridge) is its own business.
type clientMessage struct {
	Steering *float64 `json:"steering,omitempty"`
	Actions  []string `json:"actions,omitempty"`
}

// New creates a snapshot server.
func New(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*websocket.Conn]chan []byte),
		pending: make(map[core.Action]bool),
	}
}

// Handler upgrades an HTTP request to a snapshot subscription.
func (s *Server) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	ch := make(chan []byte, 8)
	s.mu.Lock()
	s.clients[conn] = ch
	s.mu.Unlock()
	s.logger.Info("viewer connected", "remote", conn.RemoteAddr())

	go s.writeLoop(conn, ch)
	go s.readLoop(conn)
}

func (s *Server) writeLoop(conn *websocket.Conn, ch chan []byte) {
	for data := range ch {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			s.drop(conn)
			return
		}
	}
	conn.Close()
}

// readLoop consumes client input messages until the connection closes.
// Malformed messages are discarded, not fatal.
func (s *Server) readLoop(conn *websocket.Conn) {
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			s.drop(conn)
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.logger.Warn("discarding malformed input message", "error", err)
			continue
		}
		s.applyInput(msg)
	}
}

func (s *Server) applyInput(msg clientMessage) {
	s.inMu.Lock()
	defer s.inMu.Unlock()
	if msg.Steering != nil {
		s.steering = core.ClampF(*msg.Steering, -1, 1)
	}
	for _, name := range msg.Actions {
		if action, ok := core.ParseAction(name); ok {
			s.pending[action] = true
		}
	}
}

// PollInput returns the current input frame for one simulation tick:
// the latest steering axis plus every edge action received since the last
// poll. The simulation goroutine is the only caller.
func (s *Server) PollInput() core.InputFrame {
	s.inMu.Lock()
	defer s.inMu.Unlock()

	in := core.NewInputFrame()
	in.Steering = s.steering
	for action := range s.pending {
		in.Set(action)
		delete(s.pending, action)
	}
	return in
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	ch, ok := s.clients[conn]
	if ok {
		delete(s.clients, conn)
		close(ch)
	}
	s.mu.Unlock()
	if ok {
		conn.Close()
		s.logger.Info("viewer disconnected", "remote", conn.RemoteAddr())
	}
}

// Broadcast marshals the snapshot once and offers it to every client.
// Slow clients skip frames.
func (s *Server) Broadcast(snap core.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		s.logger.Error("cannot marshal snapshot", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.clients {
		select {
		case ch <- data:
		default:
		}
	}
}

// Close disconnects every client.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn, ch := range s.clients {
		delete(s.clients, conn)
		close(ch)
	}
}

// ClientCount returns the number of connected viewers.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
