package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"shopsphere/internal/domain/entity"
	"shopsphere/internal/domain/repository"
	"shopsphere/pkg/errors"
)

const (
	chatRoomsCollection = "chatRooms"
	messagesCollection  = "messages"
)

type FirestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &FirestoreChatRepository{client: client}
}

func (r *FirestoreChatRepository) CreateRoom(ctx context.Context, room *entity.ChatRoom) error {
	_, err := r.client.Collection(chatRoomsCollection).Doc(room.ID).Set(ctx, room)
	if err != nil {
		return errors.Internal("Failed to create chat room", err)
	}
	return nil
}

func (r *FirestoreChatRepository) GetRoom(ctx context.Context, id string) (*entity.ChatRoom, error) {
	doc, err := r.client.Collection(chatRoomsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Chat room", err)
		}
		return nil, errors.Internal("Failed to get chat room", err)
	}

	var room entity.ChatRoom
	if err := doc.DataTo(&room); err != nil {
		return nil, errors.Internal("Failed to parse chat room data", err)
	}
	return &room, nil
}

func (r *FirestoreChatRepository) GetRoomByPairKey(ctx context.Context, pairKey string) (*entity.ChatRoom, error) {
	iter := r.client.Collection(chatRoomsCollection).Where("pairKey", "==", pairKey).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Chat room", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query chat rooms", err)
	}

	var room entity.ChatRoom
	if err := doc.DataTo(&room); err != nil {
		return nil, errors.Internal("Failed to parse chat room data", err)
	}
	return &room, nil
}

func (r *FirestoreChatRepository) ListRoomsByUser(ctx context.Context, userID string) ([]*entity.ChatRoom, error) {
	iter := r.client.Collection(chatRoomsCollection).
		Where("participants", "array-contains", userID).
		OrderBy("updatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var rooms []*entity.ChatRoom
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list chat rooms", err)
		}

		var room entity.ChatRoom
		if err := doc.DataTo(&room); err != nil {
			return nil, errors.Internal("Failed to parse chat room data", err)
		}
		rooms = append(rooms, &room)
	}
	return rooms, nil
}

func (r *FirestoreChatRepository) UpdateRoom(ctx context.Context, room *entity.ChatRoom) error {
	_, err := r.client.Collection(chatRoomsCollection).Doc(room.ID).Set(ctx, room)
	if err != nil {
		return errors.Internal("Failed to update chat room", err)
	}
	return nil
}

func (r *FirestoreChatRepository) RecordMessage(ctx context.Context, message *entity.Message, recipientRole entity.Role) error {
	counterField := "buyerUnreadCount"
	if recipientRole == entity.RoleSeller {
		counterField = "sellerUnreadCount"
	}

	messageRef := r.client.Collection(messagesCollection).Doc(message.ID)
	roomRef := r.client.Collection(chatRoomsCollection).Doc(message.ChatRoomID)

	// Field-path updates with a server-side increment keep two concurrent
	// sends from clobbering each other's counter bump.
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(messageRef, message); err != nil {
			return err
		}
		return tx.Update(roomRef, []firestore.Update{
			{Path: "lastMessageText", Value: message.Text},
			{Path: "lastMessageSender", Value: message.SenderID},
			{Path: "lastMessageAt", Value: message.CreatedAt},
			{Path: counterField, Value: firestore.Increment(1)},
			{Path: "updatedAt", Value: message.CreatedAt},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Chat room", err)
		}
		return errors.Internal("Failed to record message", err)
	}
	return nil
}

func (r *FirestoreChatRepository) ListMessages(ctx context.Context, chatRoomID string) ([]*entity.Message, error) {
	iter := r.client.Collection(messagesCollection).
		Where("chatRoomId", "==", chatRoomID).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var messages []*entity.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}
	return messages, nil
}
