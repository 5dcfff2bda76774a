package dto

import (
	"time"

	"github.com/dishaportal/disha-backend/internal/app/models"
)

// SendMessageRequest sends a message to one student, or to all when
// receiverId is omitted
type SendMessageRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content" binding:"required"`
	ReceiverID string `json:"receiverId"`
}

// MessageResponse represents an in-app message
type MessageResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title,omitempty"`
	Content     string    `json:"content"`
	SenderID    string    `json:"senderId,omitempty"`
	ReceiverID  string    `json:"receiverId,omitempty"`
	IsBroadcast bool      `json:"isBroadcast"`
	IsRead      bool      `json:"isRead"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToMessageResponse maps a message model to its response form
func ToMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		Title:       m.Title,
		Content:     m.Content,
		SenderID:    m.SenderID,
		ReceiverID:  m.ReceiverID,
		IsBroadcast: m.IsBroadcast(),
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
}

// ToMessageResponses maps a slice of messages
func ToMessageResponses(messages []*models.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, ToMessageResponse(m))
	}
	return out
}

// NotificationResponse represents a notification feed row
type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToNotificationResponse maps a notification model to its response form
func ToNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Category:  n.Category,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationResponses maps a slice of notifications
func ToNotificationResponses(notifications []*models.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, ToNotificationResponse(n))
	}
	return out
}

// ContactFormRequest represents a public contact submission
type ContactFormRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}
