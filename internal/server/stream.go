package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamRequest is one evaluation request sent over the socket.
type StreamRequest struct {
	Cards []string `json:"cards"`
	Wild  bool     `json:"wild"`
}

type StreamError struct {
	Error string `json:"error"`
}

// ClientConnection wraps a websocket connection
type ClientConnection struct {
	Conn      *websocket.Conn
	SessionID string
	mu        sync.Mutex
}

var (
	clients   = make(map[string]*ClientConnection)
	clientsMu sync.RWMutex
)

func (c *ClientConnection) send(v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, _ := json.Marshal(v)
	if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("[WS] Error sending to %s: %v", c.SessionID, err)
	}
}

// StreamHandler handles WebSocket connections: each text message is a
// StreamRequest, each reply an EvalResponse or a StreamError.
func StreamHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	sessionID := getSessionID(w, r)
	log.Printf("[WS] Client connected: %s", sessionID)

	client := &ClientConnection{
		Conn:      conn,
		SessionID: sessionID,
	}

	clientsMu.Lock()
	clients[sessionID] = client
	clientsMu.Unlock()

	defer func() {
		clientsMu.Lock()
		delete(clients, sessionID)
		clientsMu.Unlock()
		conn.Close()
		log.Printf("[WS] Client disconnected: %s", sessionID)
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var req StreamRequest
		if err := json.Unmarshal(message, &req); err != nil {
			client.send(StreamError{Error: "bad request"})
			continue
		}
		if len(req.Cards) != 7 {
			client.send(StreamError{Error: "exactly 7 card tokens required"})
			continue
		}

		resp, err := evaluate(req.Cards, req.Wild)
		if err != nil {
			client.send(StreamError{Error: err.Error()})
			continue
		}

		mu.Lock()
		history[sessionID] = append(history[sessionID], EvalRecord{EvalResponse: *resp, Wild: req.Wild})
		mu.Unlock()

		client.send(resp)
	}
}
