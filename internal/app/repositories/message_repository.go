package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dishaportal/disha-backend/internal/app/models"
)

const (
	messagesCollection      = "messages"
	notificationsCollection = "notifications"
)

// MessageRepository handles the 'messages' and 'notifications' collections.
type MessageRepository struct {
	store *Store
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(store *Store) *MessageRepository {
	return &MessageRepository{store: store}
}

// Create inserts a message and returns the new id.
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) (string, error) {
	return r.store.insertOne(ctx, messagesCollection, message.Doc())
}

// ListForUser returns direct messages for a user plus broadcasts, newest
// first.
func (r *MessageRepository) ListForUser(ctx context.Context, userID string) ([]*models.Message, error) {
	filter := bson.M{"$or": []bson.M{
		{"receiver_id": userID},
		{"receiver_id": models.BroadcastReceiver},
		{"receiver_id": ""},
		{"receiver_id": nil},
	}}
	docs, err := r.store.findAll(ctx, messagesCollection, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	messages := make([]*models.Message, 0, len(docs))
	for _, doc := range docs {
		messages = append(messages, models.NewMessageFromDoc(doc))
	}
	return messages, nil
}

// MarkRead flags a message as read.
func (r *MessageRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	return r.store.updateByID(ctx, messagesCollection, id, bson.M{"is_read": true})
}

// CreateNotification inserts a notification feed row.
func (r *MessageRepository) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	return r.store.insertOne(ctx, notificationsCollection, notification.Doc())
}

// ListNotifications returns a user's notification feed, newest first.
func (r *MessageRepository) ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error) {
	docs, err := r.store.findAll(ctx, notificationsCollection, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	notifications := make([]*models.Notification, 0, len(docs))
	for _, doc := range docs {
		notifications = append(notifications, models.NewNotificationFromDoc(doc))
	}
	return notifications, nil
}

// MarkNotificationRead flags a notification as read.
func (r *MessageRepository) MarkNotificationRead(ctx context.Context, id string) (bool, error) {
	return r.store.updateByID(ctx, notificationsCollection, id, bson.M{"is_read": true})
}
