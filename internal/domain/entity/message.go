package entity

import "time"

// Message is a single text item inside a conversation. ReadAt stays nil until
// the non-sender participant opens the conversation; the sender never sets it.
// Messages are never edited or deleted.
type Message struct {
	ID             string     `json:"id" firestore:"id"`
	ConversationID string     `json:"conversation_id" firestore:"conversationId"`
	SenderID       string     `json:"sender_id" firestore:"senderId"`
	Content        string     `json:"content" firestore:"content"`
	CreatedAt      time.Time  `json:"created_at" firestore:"createdAt"`
	ReadAt         *time.Time `json:"read_at,omitempty" firestore:"readAt"`
}
