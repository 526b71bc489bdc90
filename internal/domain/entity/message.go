package entity

import "time"

// Message is an immutable chat entry; history ordering is by CreatedAt.
type Message struct {
	ID         string    `firestore:"id" json:"id"`
	ChatRoomID string    `firestore:"chatRoomId" json:"chatRoomId"`
	SenderID   string    `firestore:"senderId" json:"senderId"`
	SenderRole Role      `firestore:"senderRole" json:"senderRole"`
	Text       string    `firestore:"text" json:"text"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
}
