package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// BroadcastReceiver marks a message addressed to all students. An empty
// receiver_id means the same thing in older documents.
const BroadcastReceiver = "all"

// Message is an in-app message from an admin to one student or to all.
type Message struct {
	ID         string
	Title      string
	Content    string
	SenderID   string
	ReceiverID string
	IsRead     bool
	CreatedAt  time.Time
}

// NewMessageFromDoc builds a Message from a stored document.
func NewMessageFromDoc(doc bson.M) *Message {
	return &Message{
		ID:         docID(doc),
		Title:      getString(doc, "title"),
		Content:    getString(doc, "content"),
		SenderID:   getString(doc, "sender_id"),
		ReceiverID: getString(doc, "receiver_id"),
		IsRead:     getBool(doc, "is_read"),
		CreatedAt:  getTime(doc, "created_at"),
	}
}

// Doc serializes the message back to its stored mapping.
func (m *Message) Doc() bson.M {
	return bson.M{
		"title":       m.Title,
		"content":     m.Content,
		"sender_id":   m.SenderID,
		"receiver_id": m.ReceiverID,
		"is_read":     m.IsRead,
		"created_at":  m.CreatedAt,
	}
}

// IsBroadcast reports whether the message targets all students.
func (m *Message) IsBroadcast() bool {
	return m.ReceiverID == "" || m.ReceiverID == BroadcastReceiver
}

// Notification is a row in a user's in-app notification feed.
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	Category  string
	IsRead    bool
	CreatedAt time.Time
}

// NewNotificationFromDoc builds a Notification from a stored document.
func NewNotificationFromDoc(doc bson.M) *Notification {
	return &Notification{
		ID:        docID(doc),
		UserID:    getString(doc, "user_id"),
		Title:     getString(doc, "title"),
		Content:   getString(doc, "content"),
		Category:  getString(doc, "category"),
		IsRead:    getBool(doc, "is_read"),
		CreatedAt: getTime(doc, "created_at"),
	}
}

// Doc serializes the notification back to its stored mapping.
func (n *Notification) Doc() bson.M {
	return bson.M{
		"user_id":    n.UserID,
		"title":      n.Title,
		"content":    n.Content,
		"category":   n.Category,
		"is_read":    n.IsRead,
		"created_at": n.CreatedAt,
	}
}
