package websocket

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsphere/internal/domain/entity"
	"shopsphere/pkg/errors"
)

type fakeChatService struct {
	authorizeErr error
	sendErr      error
	sentTexts    []string
}

func (s *fakeChatService) AuthorizeRoomAccess(_ context.Context, _, _ string) error {
	return s.authorizeErr
}

func (s *fakeChatService) SendLiveMessage(_ context.Context, _, _ string, _ entity.Role, text string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sentTexts = append(s.sentTexts, text)
	return nil
}

func newTestClient(m *Manager, userID string, role entity.Role) *Client {
	client := m.NewClient(userID, role, nil)
	m.addClient(client)
	return client
}

func receiveEvent(t *testing.T, client *Client) Event {
	t.Helper()
	select {
	case raw := <-client.Send:
		var event Event
		require.NoError(t, json.Unmarshal(raw, &event))
		return event
	default:
		t.Fatal("expected an event, channel was empty")
		return Event{}
	}
}

func TestJoinRoomReplacesPreviousSubscription(t *testing.T) {
	m := NewManager()
	client := newTestClient(m, "buyer-1", entity.RoleBuyer)

	m.JoinRoom(client, "room-a")
	m.JoinRoom(client, "room-b")

	m.BroadcastToRoom("room-a", EventReceiveMessage, map[string]string{"text": "old room"})
	assert.Empty(t, client.Send)

	m.BroadcastToRoom("room-b", EventReceiveMessage, map[string]string{"text": "new room"})
	event := receiveEvent(t, client)
	assert.Equal(t, EventReceiveMessage, event.Type)
}

func TestBroadcastToRoomReachesAllSubscribers(t *testing.T) {
	m := NewManager()
	buyer := newTestClient(m, "buyer-1", entity.RoleBuyer)
	seller := newTestClient(m, "seller-1", entity.RoleSeller)
	outsider := newTestClient(m, "buyer-2", entity.RoleBuyer)

	m.JoinRoom(buyer, "room-a")
	m.JoinRoom(seller, "room-a")

	m.BroadcastToRoom("room-a", EventReceiveMessage, map[string]string{"text": "hello"})

	assert.Equal(t, EventReceiveMessage, receiveEvent(t, buyer).Type)
	assert.Equal(t, EventReceiveMessage, receiveEvent(t, seller).Type)
	assert.Empty(t, outsider.Send)
}

func TestLeaveRoomStopsDelivery(t *testing.T) {
	m := NewManager()
	client := newTestClient(m, "buyer-1", entity.RoleBuyer)

	m.JoinRoom(client, "room-a")
	m.LeaveRoom(client)

	m.BroadcastToRoom("room-a", EventReceiveMessage, map[string]string{"text": "gone"})
	assert.Empty(t, client.Send)
}

func TestHandleSendMessageDispatchesToService(t *testing.T) {
	m := NewManager()
	service := &fakeChatService{}
	m.SetChatService(service)
	client := newTestClient(m, "buyer-1", entity.RoleBuyer)

	m.handleEvent(client, []byte(`{"type":"sendMessage","data":{"chatId":"room-a","text":"hello"}}`))

	require.Len(t, service.sentTexts, 1)
	assert.Equal(t, "hello", service.sentTexts[0])
}

func TestHandleSendMessageRejectsSpoofedSender(t *testing.T) {
	m := NewManager()
	service := &fakeChatService{}
	m.SetChatService(service)
	client := newTestClient(m, "buyer-1", entity.RoleBuyer)

	m.handleEvent(client, []byte(`{"type":"sendMessage","data":{"chatId":"room-a","senderId":"buyer-2","text":"hello"}}`))

	assert.Empty(t, service.sentTexts)
	event := receiveEvent(t, client)
	assert.Equal(t, EventMessageFailed, event.Type)
}

func TestHandleSendMessageFailureNotifiesSenderOnly(t *testing.T) {
	m := NewManager()
	service := &fakeChatService{sendErr: errors.Forbidden("You are not a participant of this chat", nil)}
	m.SetChatService(service)
	sender := newTestClient(m, "buyer-1", entity.RoleBuyer)
	other := newTestClient(m, "seller-1", entity.RoleSeller)
	m.JoinRoom(other, "room-a")

	m.handleEvent(sender, []byte(`{"type":"sendMessage","data":{"chatId":"room-a","text":"hello"}}`))

	event := receiveEvent(t, sender)
	assert.Equal(t, EventMessageFailed, event.Type)

	var failure failurePayload
	require.NoError(t, json.Unmarshal(event.Data, &failure))
	assert.Equal(t, "You are not a participant of this chat", failure.Reason)

	assert.Empty(t, other.Send)
}

func TestHandleJoinRequiresAuthorization(t *testing.T) {
	m := NewManager()
	service := &fakeChatService{authorizeErr: errors.Forbidden("You are not a participant of this chat", nil)}
	m.SetChatService(service)
	client := newTestClient(m, "buyer-1", entity.RoleBuyer)

	m.handleEvent(client, []byte(`{"type":"joinChat","data":{"chatId":"room-a"}}`))

	event := receiveEvent(t, client)
	assert.Equal(t, EventMessageFailed, event.Type)

	// The refused client never got subscribed.
	m.BroadcastToRoom("room-a", EventReceiveMessage, map[string]string{"text": "hi"})
	assert.Empty(t, client.Send)
}

func TestUnknownEventType(t *testing.T) {
	m := NewManager()
	client := newTestClient(m, "buyer-1", entity.RoleBuyer)

	m.handleEvent(client, []byte(`{"type":"typing"}`))

	event := receiveEvent(t, client)
	assert.Equal(t, EventMessageFailed, event.Type)
}
