package websocket

import (
	"context"
	"encoding/json"
	"time"

	"shopsphere/internal/domain/entity"
	"shopsphere/pkg/errors"
	"shopsphere/pkg/logger"
)

const (
	EventJoinChat       = "joinChat"
	EventLeaveChat      = "leaveChat"
	EventSendMessage    = "sendMessage"
	EventReceiveMessage = "receiveMessage"
	EventMessageFailed  = "messageFailed"
)

const eventTimeout = 10 * time.Second

// Event is the wire envelope for both directions.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type joinPayload struct {
	ChatID string `json:"chatId"`
}

type sendMessagePayload struct {
	ChatID     string      `json:"chatId"`
	SenderID   string      `json:"senderId"`
	SenderRole entity.Role `json:"senderRole"`
	Text       string      `json:"text"`
}

type failurePayload struct {
	ChatID string `json:"chatId,omitempty"`
	Reason string `json:"reason"`
}

// ChatService is the slice of chat behavior the relay needs. Declared here so
// the usecase can depend on the Manager without an import cycle.
type ChatService interface {
	// AuthorizeRoomAccess verifies the room exists and the user participates.
	AuthorizeRoomAccess(ctx context.Context, chatRoomID, userID string) error
	// SendLiveMessage persists the message, updates the room's denormalized
	// fields and unread counter, then broadcasts to live subscribers.
	SendLiveMessage(ctx context.Context, chatRoomID, senderID string, senderRole entity.Role, text string) error
}

func (m *Manager) handleEvent(client *Client, raw []byte) {
	var event Event
	if err := json.Unmarshal(raw, &event); err != nil {
		m.failClient(client, "", "Malformed event")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	switch event.Type {
	case EventJoinChat:
		m.handleJoin(ctx, client, event.Data)
	case EventLeaveChat:
		m.LeaveRoom(client)
	case EventSendMessage:
		m.handleSendMessage(ctx, client, event.Data)
	default:
		m.failClient(client, "", "Unknown event type: "+event.Type)
	}
}

func (m *Manager) handleJoin(ctx context.Context, client *Client, data json.RawMessage) {
	var payload joinPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.ChatID == "" {
		m.failClient(client, "", "joinChat requires a chatId")
		return
	}

	if m.chatService == nil {
		m.failClient(client, payload.ChatID, "Chat service unavailable")
		return
	}
	if err := m.chatService.AuthorizeRoomAccess(ctx, payload.ChatID, client.UserID); err != nil {
		m.failClient(client, payload.ChatID, failureReason(err))
		return
	}

	m.JoinRoom(client, payload.ChatID)
}

func (m *Manager) handleSendMessage(ctx context.Context, client *Client, data json.RawMessage) {
	var payload sendMessagePayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.ChatID == "" {
		m.failClient(client, "", "sendMessage requires a chatId")
		return
	}

	// The connection's token is the authority on sender identity.
	if payload.SenderID != "" && payload.SenderID != client.UserID {
		m.failClient(client, payload.ChatID, "Sender does not match authenticated user")
		return
	}
	if payload.SenderRole != "" && payload.SenderRole != client.Role {
		m.failClient(client, payload.ChatID, "Sender role does not match authenticated user")
		return
	}

	if m.chatService == nil {
		m.failClient(client, payload.ChatID, "Chat service unavailable")
		return
	}
	if err := m.chatService.SendLiveMessage(ctx, payload.ChatID, client.UserID, client.Role, payload.Text); err != nil {
		m.failClient(client, payload.ChatID, failureReason(err))
	}
}

func (m *Manager) failClient(client *Client, chatID, reason string) {
	logger.Warn("WebSocket event failed for %s: %s", client.UserID, reason)
	m.SendToUser(client.UserID, EventMessageFailed, failurePayload{ChatID: chatID, Reason: reason})
}

func failureReason(err error) string {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr.Message
	}
	return "Internal error"
}
