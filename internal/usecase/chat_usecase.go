package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"shopsphere/internal/domain/entity"
	"shopsphere/internal/domain/repository"
	"shopsphere/internal/infrastructure/ratelimit"
	"shopsphere/internal/infrastructure/websocket"
	"shopsphere/pkg/errors"
	"shopsphere/pkg/logger"
)

// Broadcaster is the live-relay surface the chat flow needs.
type Broadcaster interface {
	BroadcastToRoom(roomID, eventType string, data interface{})
}

type ChatUseCase struct {
	chats    repository.ChatRepository
	accounts repository.AccountRepository
	products repository.ProductRepository
	limiter  *ratelimit.RateLimiter
	live     Broadcaster
}

func NewChatUseCase(
	chats repository.ChatRepository,
	accounts repository.AccountRepository,
	products repository.ProductRepository,
	limiter *ratelimit.RateLimiter,
	live Broadcaster,
) *ChatUseCase {
	return &ChatUseCase{
		chats:    chats,
		accounts: accounts,
		products: products,
		limiter:  limiter,
		live:     live,
	}
}

type InitiateChatInput struct {
	ParticipantID string `json:"participantId" validate:"required"`
	ProductID     string `json:"productId"`
}

// ChatRoomView is a room annotated for the caller's chat list.
type ChatRoomView struct {
	*entity.ChatRoom
	OtherParticipantName string `json:"otherParticipantName"`
	ProductName          string `json:"productName,omitempty"`
	UnreadCount          int    `json:"unreadCount"`
}

// InitiateChat resolves or creates the single room for the buyer-seller
// pair. The caller's role decides which side they occupy; the other
// participant must exist but sellers need not be approved to chat. Returns
// whether a new room was created.
func (uc *ChatUseCase) InitiateChat(ctx context.Context, callerID string, callerRole entity.Role, input InitiateChatInput) (*entity.ChatRoom, bool, error) {
	if input.ParticipantID == callerID {
		return nil, false, errors.BadRequest("You cannot start a chat with yourself", nil)
	}

	var buyerID, sellerID string
	switch callerRole {
	case entity.RoleBuyer:
		if _, err := uc.accounts.GetSeller(ctx, input.ParticipantID); err != nil {
			return nil, false, err
		}
		buyerID, sellerID = callerID, input.ParticipantID
	case entity.RoleSeller:
		if _, err := uc.accounts.GetBuyer(ctx, input.ParticipantID); err != nil {
			return nil, false, err
		}
		buyerID, sellerID = input.ParticipantID, callerID
	default:
		return nil, false, errors.Forbidden("Only buyers and sellers can chat", nil)
	}

	pairKey := entity.PairKey(buyerID, sellerID)
	if room, err := uc.chats.GetRoomByPairKey(ctx, pairKey); err == nil {
		return room, false, nil
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, false, err
	}

	if allowed, wait := uc.limiter.Allow(callerID, ratelimit.ActionInitiateChat); !allowed {
		return nil, false, errors.TooManyRequests("Too many new conversations, retry in " + wait.Round(time.Second).String())
	}

	now := time.Now()
	room := &entity.ChatRoom{
		ID:           uuid.New().String(),
		Participants: entity.SortedPair(buyerID, sellerID),
		PairKey:      pairKey,
		BuyerID:      buyerID,
		SellerID:     sellerID,
		ProductID:    input.ProductID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.chats.CreateRoom(ctx, room); err != nil {
		return nil, false, err
	}

	logger.Info("Chat room created: %s (%s)", room.ID, pairKey)
	return room, true, nil
}

// ListChats returns the caller's rooms, newest activity first, each annotated
// with the other participant's display name, the product name, and the
// caller-side unread counter. Vanished identities get a placeholder name.
func (uc *ChatUseCase) ListChats(ctx context.Context, callerID string) ([]*ChatRoomView, error) {
	rooms, err := uc.chats.ListRoomsByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	views := make([]*ChatRoomView, 0, len(rooms))
	for _, room := range rooms {
		view := &ChatRoomView{ChatRoom: room}

		otherID, otherRole := room.SellerID, entity.RoleSeller
		callerRole := entity.RoleBuyer
		if callerID == room.SellerID {
			otherID, otherRole = room.BuyerID, entity.RoleBuyer
			callerRole = entity.RoleSeller
		}
		view.UnreadCount = room.UnreadFor(callerRole)

		if account, err := uc.accounts.Resolve(ctx, otherID, otherRole); err == nil {
			view.OtherParticipantName = account.DisplayName
		} else if errors.Is(err, "NOT_FOUND") {
			view.OtherParticipantName = "Deleted " + titleRole(otherRole)
		} else {
			return nil, err
		}

		if room.ProductID != "" {
			if product, err := uc.products.GetByID(ctx, room.ProductID); err == nil {
				view.ProductName = product.Name
			} else if !errors.Is(err, "NOT_FOUND") {
				return nil, err
			}
		}

		views = append(views, view)
	}
	return views, nil
}

// GetMessages returns the room history in ascending timestamp order.
// Non-participants are refused.
func (uc *ChatUseCase) GetMessages(ctx context.Context, callerID, chatRoomID string) ([]*entity.Message, error) {
	if err := uc.AuthorizeRoomAccess(ctx, chatRoomID, callerID); err != nil {
		return nil, err
	}
	return uc.chats.ListMessages(ctx, chatRoomID)
}

// MarkRead zeroes the caller's own unread counter and reports whether
// anything was actually unread.
func (uc *ChatUseCase) MarkRead(ctx context.Context, callerID, chatRoomID string) (bool, error) {
	room, err := uc.chats.GetRoom(ctx, chatRoomID)
	if err != nil {
		return false, err
	}
	if !room.HasParticipant(callerID) {
		return false, errors.Forbidden("You are not a participant of this chat", nil)
	}

	if callerID == room.SellerID {
		if room.SellerUnreadCount == 0 {
			return false, nil
		}
		room.SellerUnreadCount = 0
	} else {
		if room.BuyerUnreadCount == 0 {
			return false, nil
		}
		room.BuyerUnreadCount = 0
	}

	room.UpdatedAt = time.Now()
	if err := uc.chats.UpdateRoom(ctx, room); err != nil {
		return false, err
	}
	return true, nil
}

// AuthorizeRoomAccess verifies the room exists and the user participates.
func (uc *ChatUseCase) AuthorizeRoomAccess(ctx context.Context, chatRoomID, userID string) error {
	room, err := uc.chats.GetRoom(ctx, chatRoomID)
	if err != nil {
		return err
	}
	if !room.HasParticipant(userID) {
		return errors.Forbidden("You are not a participant of this chat", nil)
	}
	return nil
}

// SendLiveMessage persists the message together with the room's denormalized
// last-message fields and the recipient side's unread increment in one atomic
// repository write, and only then broadcasts to live subscribers. A failed
// persist never reaches the room.
func (uc *ChatUseCase) SendLiveMessage(ctx context.Context, chatRoomID, senderID string, senderRole entity.Role, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.Validation([]string{"text is required"})
	}

	room, err := uc.chats.GetRoom(ctx, chatRoomID)
	if err != nil {
		return err
	}
	if !room.HasParticipant(senderID) {
		return errors.Forbidden("You are not a participant of this chat", nil)
	}

	recipientRole := entity.RoleSeller
	expectedRole := entity.RoleBuyer
	if senderID == room.SellerID {
		recipientRole = entity.RoleBuyer
		expectedRole = entity.RoleSeller
	}
	if senderRole != expectedRole {
		return errors.Forbidden("Sender role does not match chat participation", nil)
	}

	if allowed, wait := uc.limiter.Allow(senderID, ratelimit.ActionSendMessage); !allowed {
		return errors.TooManyRequests("Sending too fast, retry in " + wait.Round(time.Second).String())
	}

	message := &entity.Message{
		ID:         uuid.New().String(),
		ChatRoomID: chatRoomID,
		SenderID:   senderID,
		SenderRole: senderRole,
		Text:       text,
		CreatedAt:  time.Now(),
	}

	if err := uc.chats.RecordMessage(ctx, message, recipientRole); err != nil {
		return err
	}

	if uc.live != nil {
		uc.live.BroadcastToRoom(chatRoomID, websocket.EventReceiveMessage, message)
	}
	return nil
}

func titleRole(role entity.Role) string {
	switch role {
	case entity.RoleSeller:
		return "Seller"
	case entity.RoleBuyer:
		return "Buyer"
	default:
		return "User"
	}
}
