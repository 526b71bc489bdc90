package entity

import (
	"sort"
	"time"
)

// ChatRoom is the single conversation between one buyer and one seller.
// Participants is the lexicographically sorted pair; PairKey is its join and
// the uniqueness handle for the room.
type ChatRoom struct {
	ID                string    `firestore:"id" json:"id"`
	Participants      []string  `firestore:"participants" json:"participants"`
	PairKey           string    `firestore:"pairKey" json:"-"`
	BuyerID           string    `firestore:"buyerId" json:"buyerId"`
	SellerID          string    `firestore:"sellerId" json:"sellerId"`
	ProductID         string    `firestore:"productId,omitempty" json:"productId,omitempty"`
	LastMessageText   string    `firestore:"lastMessageText" json:"lastMessageText"`
	LastMessageSender string    `firestore:"lastMessageSender" json:"lastMessageSender"`
	LastMessageAt     time.Time `firestore:"lastMessageAt" json:"lastMessageAt"`
	BuyerUnreadCount  int       `firestore:"buyerUnreadCount" json:"buyerUnreadCount"`
	SellerUnreadCount int       `firestore:"sellerUnreadCount" json:"sellerUnreadCount"`
	CreatedAt         time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// PairKey canonicalizes an unordered participant pair so both id orders
// resolve to the same room.
func PairKey(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return ids[0] + "_" + ids[1]
}

// SortedPair returns the two ids in canonical order.
func SortedPair(a, b string) []string {
	ids := []string{a, b}
	sort.Strings(ids)
	return ids
}

func (r *ChatRoom) HasParticipant(userID string) bool {
	for _, p := range r.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// UnreadFor returns the counter owned by the given role's side.
func (r *ChatRoom) UnreadFor(role Role) int {
	if role == RoleSeller {
		return r.SellerUnreadCount
	}
	return r.BuyerUnreadCount
}
