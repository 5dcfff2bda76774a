package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
)

// MessageService handles admin-to-student messages and the notification feed.
type MessageService interface {
	SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*models.Message, error)
	ListMessages(ctx context.Context, userID string) ([]*models.Message, error)
	MarkMessageRead(ctx context.Context, id string) error
	Notify(ctx context.Context, userID, title, content, category string) error
	ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	SubmitContactForm(ctx context.Context, input ContactFormInput) error
}

// SendMessageInput carries a message. An empty ReceiverID broadcasts to all
// students.
type SendMessageInput struct {
	Title      string
	Content    string
	ReceiverID string
}

// ContactFormInput carries a public contact form submission.
type ContactFormInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type messageServiceImpl struct {
	messageRepo MessageRepo
	userRepo    UserRepo
	logger      zerolog.Logger
}

// NewMessageService creates a new message service instance.
func NewMessageService(messageRepo MessageRepo, userRepo UserRepo, logger zerolog.Logger) MessageService {
	return &messageServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// SendMessage stores a message for one student or, with an empty receiver,
// for all of them.
func (s *messageServiceImpl) SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*models.Message, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.NewValidationError("message content is required")
	}

	receiverID := input.ReceiverID
	if receiverID == "" {
		receiverID = models.BroadcastReceiver
	} else {
		receiver, err := s.userRepo.GetByID(ctx, receiverID)
		if err != nil {
			return nil, fmt.Errorf("error loading receiver: %w", err)
		}
		if receiver == nil {
			return nil, apperrors.ErrUserNotFound
		}
	}

	message := &models.Message{
		Title:      input.Title,
		Content:    input.Content,
		SenderID:   senderID,
		ReceiverID: receiverID,
		CreatedAt:  time.Now().UTC(),
	}
	id, err := s.messageRepo.Create(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("error creating message: %w", err)
	}
	message.ID = id
	s.logger.Info().Str("messageID", id).Bool("broadcast", message.IsBroadcast()).Msg("Message sent")
	return message, nil
}

// ListMessages returns messages addressed to the user, broadcasts included.
func (s *messageServiceImpl) ListMessages(ctx context.Context, userID string) ([]*models.Message, error) {
	return s.messageRepo.ListForUser(ctx, userID)
}

// MarkMessageRead flags a message as read.
func (s *messageServiceImpl) MarkMessageRead(ctx context.Context, id string) error {
	updated, err := s.messageRepo.MarkRead(ctx, id)
	if err != nil {
		return fmt.Errorf("error marking message read: %w", err)
	}
	if !updated {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// Notify drops a row into a user's notification feed. Failures are the
// caller's to decide on; the toli lifecycle treats them as best-effort.
func (s *messageServiceImpl) Notify(ctx context.Context, userID, title, content, category string) error {
	notification := &models.Notification{
		UserID:    userID,
		Title:     title,
		Content:   content,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.messageRepo.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

// ListNotifications returns the user's notification feed, newest first.
func (s *messageServiceImpl) ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error) {
	return s.messageRepo.ListNotifications(ctx, userID)
}

// MarkNotificationRead flags a notification as read.
func (s *messageServiceImpl) MarkNotificationRead(ctx context.Context, id string) error {
	updated, err := s.messageRepo.MarkNotificationRead(ctx, id)
	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}
	if !updated {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// SubmitContactForm records a public contact submission as a message for the
// admins. There is no outbound mail; admins read these in their inbox.
func (s *messageServiceImpl) SubmitContactForm(ctx context.Context, input ContactFormInput) error {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Message) == "" {
		return apperrors.NewValidationError("email and message are required")
	}

	admins, err := s.userRepo.List(ctx, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("error loading admins: %w", err)
	}
	title := input.Subject
	if title == "" {
		title = "Contact form submission"
	}
	content := fmt.Sprintf("From: %s <%s>\n\n%s", input.Name, input.Email, input.Message)
	for _, admin := range admins {
		message := &models.Message{
			Title:      title,
			Content:    content,
			SenderID:   "",
			ReceiverID: admin.ID,
			CreatedAt:  time.Now().UTC(),
		}
		if _, err := s.messageRepo.Create(ctx, message); err != nil {
			return fmt.Errorf("error storing contact message: %w", err)
		}
	}
	return nil
}
