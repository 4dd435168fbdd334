package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"innovest/pkg/logger"
)

// Client is one authenticated WebSocket connection.
type Client struct {
	ProfileID string
	Conn      *websocket.Conn
	Send      chan []byte

	// OnMessage handles inbound frames; OnClose runs once when the read side
	// ends, before the client is unregistered.
	OnMessage func(data []byte)
	OnClose   func()
}

// Manager tracks active connections keyed by profile id. One connection per
// profile: a reconnect replaces the previous registration.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop until the context ends.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				if prev, ok := m.clients[client.ProfileID]; ok && prev != client {
					close(prev.Send)
				}
				m.clients[client.ProfileID] = client
				m.mutex.Unlock()
				logger.Info("WebSocket client registered: %s", client.ProfileID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if current, ok := m.clients[client.ProfileID]; ok && current == client {
					delete(m.clients, client.ProfileID)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Info("WebSocket client unregistered: %s", client.ProfileID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToUser delivers a frame to the profile's connection if one is active.
// A full send buffer drops the frame rather than blocking the caller.
func (m *Manager) SendToUser(profileID string, message []byte) {
	m.mutex.RLock()
	client, ok := m.clients[profileID]
	m.mutex.RUnlock()

	if !ok {
		return
	}

	select {
	case client.Send <- message:
	default:
		logger.Warn("Dropping frame for %s: send buffer full", profileID)
	}
}

// ReadPump reads frames from the connection and dispatches them until the
// connection closes.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		if c.OnClose != nil {
			c.OnClose()
		}
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("WebSocket read error for %s: %v", c.ProfileID, err)
			}
			break
		}

		if c.OnMessage != nil {
			c.OnMessage(message)
		}
	}
}

// WritePump sends frames queued on Send to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Error("WebSocket write error for %s: %v", c.ProfileID, err)
			return
		}
	}
}
