package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
)

func newMessageFixture() (*fakeMessageRepo, *fakeUserRepo, MessageService) {
	msgRepo := newFakeMessageRepo()
	userRepo := newFakeUserRepo()
	return msgRepo, userRepo, NewMessageService(msgRepo, userRepo, zerolog.Nop())
}

func TestSendDirectMessage(t *testing.T) {
	_, userRepo, svc := newMessageFixture()
	student := addStudent(userRepo, "S1", "Asha")

	message, err := svc.SendMessage(context.Background(), "admin-1", SendMessageInput{
		Title:      "Location assigned",
		Content:    "Your toli has been assigned to Indore.",
		ReceiverID: student.ID,
	})
	require.NoError(t, err)
	assert.False(t, message.IsBroadcast())
	assert.Equal(t, student.ID, message.ReceiverID)
}

func TestSendMessageUnknownReceiver(t *testing.T) {
	_, _, svc := newMessageFixture()
	_, err := svc.SendMessage(context.Background(), "admin-1", SendMessageInput{
		Content:    "hello",
		ReceiverID: "missing",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestBroadcastVisibleToEveryStudent(t *testing.T) {
	_, userRepo, svc := newMessageFixture()
	asha := addStudent(userRepo, "S1", "Asha")
	ravi := addStudent(userRepo, "S2", "Ravi")

	broadcast, err := svc.SendMessage(context.Background(), "admin-1", SendMessageInput{
		Title:   "Camp dates",
		Content: "The camp runs 10-17 October.",
	})
	require.NoError(t, err)
	assert.True(t, broadcast.IsBroadcast())

	_, err = svc.SendMessage(context.Background(), "admin-1", SendMessageInput{
		Content:    "Only for Asha",
		ReceiverID: asha.ID,
	})
	require.NoError(t, err)

	forAsha, err := svc.ListMessages(context.Background(), asha.ID)
	require.NoError(t, err)
	assert.Len(t, forAsha, 2)

	forRavi, err := svc.ListMessages(context.Background(), ravi.ID)
	require.NoError(t, err)
	require.Len(t, forRavi, 1)
	assert.Equal(t, broadcast.ID, forRavi[0].ID)
}

func TestMarkMessageRead(t *testing.T) {
	msgRepo, userRepo, svc := newMessageFixture()
	student := addStudent(userRepo, "S1", "Asha")
	message, err := svc.SendMessage(context.Background(), "admin-1", SendMessageInput{
		Content:    "hello",
		ReceiverID: student.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkMessageRead(context.Background(), message.ID))
	assert.True(t, msgRepo.messages[0].IsRead)

	assert.ErrorIs(t, svc.MarkMessageRead(context.Background(), "missing"), apperrors.ErrResourceNotFound)
}

func TestNotificationFeed(t *testing.T) {
	_, userRepo, svc := newMessageFixture()
	student := addStudent(userRepo, "S1", "Asha")

	require.NoError(t, svc.Notify(context.Background(), student.ID, "Toli approved", "Your toli is approved.", "toli"))
	require.NoError(t, svc.Notify(context.Background(), "someone-else", "Other", "not yours", "toli"))

	feed, err := svc.ListNotifications(context.Background(), student.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "Toli approved", feed[0].Title)

	require.NoError(t, svc.MarkNotificationRead(context.Background(), feed[0].ID))
	assert.ErrorIs(t, svc.MarkNotificationRead(context.Background(), "missing"), apperrors.ErrResourceNotFound)
}

func TestContactFormFansOutToAdmins(t *testing.T) {
	msgRepo, userRepo, svc := newMessageFixture()
	adminA := userRepo.add(&models.User{Name: "Admin A", Email: "a@disha.local", Role: models.RoleAdmin})
	adminB := userRepo.add(&models.User{Name: "Admin B", Email: "b@disha.local", Role: models.RoleAdmin})
	addStudent(userRepo, "S1", "Asha")

	err := svc.SubmitContactForm(context.Background(), ContactFormInput{
		Name:    "Visitor",
		Email:   "visitor@example.org",
		Subject: "Volunteering",
		Message: "How can I join a drive?",
	})
	require.NoError(t, err)

	require.Len(t, msgRepo.messages, 2)
	receivers := []string{msgRepo.messages[0].ReceiverID, msgRepo.messages[1].ReceiverID}
	assert.ElementsMatch(t, []string{adminA.ID, adminB.ID}, receivers)
	assert.Contains(t, msgRepo.messages[0].Content, "visitor@example.org")
	assert.Equal(t, "Volunteering", msgRepo.messages[0].Title)
}

func TestContactFormValidation(t *testing.T) {
	_, _, svc := newMessageFixture()
	err := svc.SubmitContactForm(context.Background(), ContactFormInput{Name: "Visitor"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
