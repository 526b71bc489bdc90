package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"shopsphere/internal/domain/entity"
	"shopsphere/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Client is one authenticated WebSocket connection.
type Client struct {
	UserID string
	Role   entity.Role
	Conn   *websocket.Conn
	Send   chan []byte

	manager *Manager
}

// Manager tracks connected clients and the transient per-room subscription
// registry. Persisted history stays authoritative; this registry only routes
// live events.
type Manager struct {
	clients    map[string]*Client
	rooms      map[string]map[string]*Client
	clientRoom map[string]string

	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex

	chatService ChatService
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		rooms:      make(map[string]map[string]*Client),
		clientRoom: make(map[string]string),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// SetChatService wires the chat service after construction; the service in
// turn holds the manager for broadcasting.
func (m *Manager) SetChatService(service ChatService) {
	m.chatService = service
}

func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.register:
				m.addClient(client)
			case client := <-m.unregister:
				m.removeClient(client)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (m *Manager) Register(client *Client) {
	m.register <- client
}

func (m *Manager) Unregister(client *Client) {
	m.unregister <- client
}

func (m *Manager) addClient(client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.clients[client.UserID]; ok && existing != client {
		m.detachLocked(existing)
		close(existing.Send)
	}
	m.clients[client.UserID] = client
	logger.Info("WebSocket client connected: %s (%s)", client.UserID, client.Role)
}

func (m *Manager) removeClient(client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if current, ok := m.clients[client.UserID]; !ok || current != client {
		return
	}
	m.detachLocked(client)
	delete(m.clients, client.UserID)
	close(client.Send)
	logger.Info("WebSocket client disconnected: %s", client.UserID)
}

func (m *Manager) detachLocked(client *Client) {
	if roomID, ok := m.clientRoom[client.UserID]; ok {
		if members, ok := m.rooms[roomID]; ok {
			delete(members, client.UserID)
			if len(members) == 0 {
				delete(m.rooms, roomID)
			}
		}
		delete(m.clientRoom, client.UserID)
	}
}

// JoinRoom subscribes the client to a room's live events. A client holds at
// most one subscription; joining a new room leaves the previous one.
func (m *Manager) JoinRoom(client *Client, roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.detachLocked(client)
	if m.rooms[roomID] == nil {
		m.rooms[roomID] = make(map[string]*Client)
	}
	m.rooms[roomID][client.UserID] = client
	m.clientRoom[client.UserID] = roomID
}

func (m *Manager) LeaveRoom(client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.detachLocked(client)
}

// BroadcastToRoom sends an event to every live subscriber of the room.
func (m *Manager) BroadcastToRoom(roomID, eventType string, data interface{}) {
	payload, err := marshalEvent(eventType, data)
	if err != nil {
		logger.Error("Failed to marshal %s event: %v", eventType, err)
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, client := range m.rooms[roomID] {
		m.sendLocked(client, payload)
	}
}

// SendToUser sends an event to one connected user, if present.
func (m *Manager) SendToUser(userID, eventType string, data interface{}) {
	payload, err := marshalEvent(eventType, data)
	if err != nil {
		logger.Error("Failed to marshal %s event: %v", eventType, err)
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if client, ok := m.clients[userID]; ok {
		m.sendLocked(client, payload)
	}
}

func (m *Manager) sendLocked(client *Client, payload []byte) {
	select {
	case client.Send <- payload:
	default:
		logger.Warn("Dropping event for slow client %s", client.UserID)
	}
}

func marshalEvent(eventType string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Event{Type: eventType, Data: raw})
}

func (c *Client) ReadPump() {
	defer func() {
		c.manager.Unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read error for %s: %v", c.UserID, err)
			}
			return
		}
		c.manager.handleEvent(c, raw)
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// NewClient binds a connection to the manager.
func (m *Manager) NewClient(userID string, role entity.Role, conn *websocket.Conn) *Client {
	return &Client{
		UserID:  userID,
		Role:    role,
		Conn:    conn,
		Send:    make(chan []byte, 64),
		manager: m,
	}
}
