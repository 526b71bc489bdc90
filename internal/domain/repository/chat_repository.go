package repository

import (
	"context"

	"shopsphere/internal/domain/entity"
)

type ChatRepository interface {
	CreateRoom(ctx context.Context, room *entity.ChatRoom) error
	GetRoom(ctx context.Context, id string) (*entity.ChatRoom, error)
	GetRoomByPairKey(ctx context.Context, pairKey string) (*entity.ChatRoom, error)
	ListRoomsByUser(ctx context.Context, userID string) ([]*entity.ChatRoom, error)
	UpdateRoom(ctx context.Context, room *entity.ChatRoom) error

	// RecordMessage persists the message and applies the room's denormalized
	// last-message fields plus the recipient side's unread increment in one
	// atomic write, so concurrent sends from both sides never lose an
	// increment to a read-modify-write race.
	RecordMessage(ctx context.Context, message *entity.Message, recipientRole entity.Role) error
	// ListMessages returns the room history ordered by CreatedAt ascending.
	ListMessages(ctx context.Context, chatRoomID string) ([]*entity.Message, error)
}
