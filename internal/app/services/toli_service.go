package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
)

// ToliService defines the team lifecycle operations.
type ToliService interface {
	CreateToli(ctx context.Context, leaderUserID string, input CreateToliInput) (*models.Toli, error)
	GetToli(ctx context.Context, id string) (*models.Toli, error)
	ListTolis(ctx context.Context, status models.ToliStatus) ([]*models.Toli, error)
	UpdateStatus(ctx context.Context, id string, to models.ToliStatus) (*models.Toli, error)
	AssignLocation(ctx context.Context, id string, input AssignLocationInput) (*models.Toli, error)
	AssignLeader(ctx context.Context, id, scholarNo string) (*models.Toli, error)
	AddMember(ctx context.Context, id, scholarNo string) (*models.Toli, error)
	RemoveMember(ctx context.Context, id, scholarNo string) (*models.Toli, error)
	DeleteToli(ctx context.Context, id string) error
}

// CreateToliInput carries the toli creation form. MemberScholarNos are the
// additional members beyond the initiating leader.
type CreateToliInput struct {
	Name             string
	ToliNo           string
	SessionYear      string
	MemberScholarNos []string
}

// AssignLocationInput finalizes an approved toli.
type AssignLocationInput struct {
	City               string
	State              string
	CoordinatorName    string
	CoordinatorContact string
}

type toliServiceImpl struct {
	toliRepo ToliRepo
	userRepo UserRepo
	msgRepo  MessageRepo
	logger   zerolog.Logger
}

// NewToliService creates a new toli service instance.
func NewToliService(toliRepo ToliRepo, userRepo UserRepo, msgRepo MessageRepo, logger zerolog.Logger) ToliService {
	return &toliServiceImpl{
		toliRepo: toliRepo,
		userRepo: userRepo,
		msgRepo:  msgRepo,
		logger:   logger,
	}
}

func memberSnapshot(number int, user *models.User, isLeader bool) models.ToliMember {
	return models.ToliMember{
		MemberNumber: number,
		ScholarNo:    user.ScholarNo,
		Name:         user.Name,
		Course:       user.Course,
		DOB:          user.DOB,
		Contact:      user.Contact,
		Email:        user.Email,
		IsLeader:     isLeader,
	}
}

// CreateToli creates a pending toli with the initiating student embedded as
// leader. Every additional member must exist and be unassigned; on success
// each member's toli back-reference is set. The member back-reference writes
// and the toli insert are a manual double-write: if any half fails, the
// already-committed half is rolled back so the failure looks atomic.
func (s *toliServiceImpl) CreateToli(ctx context.Context, leaderUserID string, input CreateToliInput) (*models.Toli, error) {
	if strings.TrimSpace(input.ToliNo) == "" {
		return nil, apperrors.NewValidationError("toli number is required")
	}

	leader, err := s.userRepo.GetByID(ctx, leaderUserID)
	if err != nil {
		return nil, fmt.Errorf("error loading leader: %w", err)
	}
	if leader == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if leader.ToliID != "" {
		return nil, apperrors.NewValidationError("you are already in a toli")
	}

	members := []models.ToliMember{memberSnapshot(1, leader, true)}
	memberUsers := []*models.User{leader}

	for i, scholarNo := range input.MemberScholarNos {
		scholarNo = strings.TrimSpace(scholarNo)
		if scholarNo == "" {
			continue
		}
		if scholarNo == leader.ScholarNo {
			return nil, apperrors.NewValidationError("you cannot add yourself as a member, you are automatically the leader")
		}
		user, err := s.userRepo.GetByScholarNo(ctx, scholarNo)
		if err != nil {
			return nil, fmt.Errorf("error looking up member: %w", err)
		}
		if user == nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("student with scholar number %s not found", scholarNo))
		}
		if user.ToliID != "" {
			return nil, apperrors.NewValidationError(fmt.Sprintf("student %s is already in another toli", scholarNo))
		}
		members = append(members, memberSnapshot(i+2, user, false))
		memberUsers = append(memberUsers, user)
	}

	if len(members) < models.MinToliMembers {
		return nil, apperrors.ErrToliTooSmall
	}
	if len(members) > models.MaxToliMembers {
		return nil, apperrors.ErrToliFull
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = fmt.Sprintf("Toli %s", input.ToliNo)
	}

	toli := &models.Toli{
		Name:        name,
		ToliNo:      input.ToliNo,
		Members:     members,
		LeaderID:    leader.ID,
		Status:      models.ToliStatusPending,
		SessionYear: input.SessionYear,
		CreatedBy:   leader.ID,
		CreatedAt:   time.Now().UTC(),
	}

	toliID, err := s.toliRepo.Create(ctx, toli)
	if err != nil {
		return nil, fmt.Errorf("error creating toli: %w", err)
	}
	toli.ID = toliID

	// Second half of the double-write: set every member's back-reference.
	// On failure, undo the set references and the toli itself.
	assigned := []string{}
	for _, user := range memberUsers {
		if _, err := s.userRepo.SetToliID(ctx, user.ID, toliID); err != nil {
			s.rollbackCreate(ctx, toliID, assigned)
			return nil, fmt.Errorf("error assigning member %s: %w", user.ScholarNo, err)
		}
		assigned = append(assigned, user.ID)
	}

	s.logger.Info().Str("toliNo", toli.ToliNo).Int("members", len(members)).Msg("Toli created, pending approval")
	return toli, nil
}

func (s *toliServiceImpl) rollbackCreate(ctx context.Context, toliID string, assignedUserIDs []string) {
	for _, userID := range assignedUserIDs {
		if _, err := s.userRepo.SetToliID(ctx, userID, ""); err != nil {
			s.logger.Error().Err(err).Str("userID", userID).Msg("Rollback: failed to clear toli reference")
		}
	}
	if _, err := s.toliRepo.Delete(ctx, toliID); err != nil {
		s.logger.Error().Err(err).Str("toliID", toliID).Msg("Rollback: failed to delete toli")
	}
}

// GetToli returns a toli by id.
func (s *toliServiceImpl) GetToli(ctx context.Context, id string) (*models.Toli, error) {
	toli, err := s.toliRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving toli: %w", err)
	}
	if toli == nil {
		return nil, apperrors.ErrToliNotFound
	}
	return toli, nil
}

// ListTolis returns tolis, optionally filtered by status.
func (s *toliServiceImpl) ListTolis(ctx context.Context, status models.ToliStatus) ([]*models.Toli, error) {
	return s.toliRepo.List(ctx, status)
}

// UpdateStatus moves a toli along its state machine. Rejection notifies the
// leader.
func (s *toliServiceImpl) UpdateStatus(ctx context.Context, id string, to models.ToliStatus) (*models.Toli, error) {
	toli, err := s.GetToli(ctx, id)
	if err != nil {
		return nil, err
	}
	if !toli.Status.CanTransition(to) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidToliTransition,
			fmt.Sprintf("cannot move toli from %s to %s", toli.Status, to))
	}

	partial := bson.M{"status": string(to)}
	if to == models.ToliStatusApproved {
		now := time.Now().UTC()
		partial["approved_at"] = now
		toli.ApprovedAt = &now
	}
	if _, err := s.toliRepo.Update(ctx, id, partial); err != nil {
		return nil, fmt.Errorf("error updating toli status: %w", err)
	}
	toli.Status = to

	s.notifyLeader(ctx, toli, to)
	return toli, nil
}

func (s *toliServiceImpl) notifyLeader(ctx context.Context, toli *models.Toli, status models.ToliStatus) {
	if toli.LeaderID == "" {
		return
	}
	var title string
	switch status {
	case models.ToliStatusApproved:
		title = fmt.Sprintf("Toli %s approved", toli.ToliNo)
	case models.ToliStatusRejected:
		title = fmt.Sprintf("Toli %s rejected", toli.ToliNo)
	default:
		return
	}
	_, err := s.msgRepo.CreateNotification(ctx, &models.Notification{
		UserID:    toli.LeaderID,
		Title:     title,
		Content:   fmt.Sprintf("Your toli is now %s.", status),
		Category:  "toli",
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("toliID", toli.ID).Msg("Failed to create status notification")
	}
}

// AssignLocation sets the service location and coordinator on an approved
// toli and activates it.
func (s *toliServiceImpl) AssignLocation(ctx context.Context, id string, input AssignLocationInput) (*models.Toli, error) {
	toli, err := s.GetToli(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.City) == "" {
		return nil, apperrors.NewValidationError("city is required")
	}
	if !toli.Status.CanTransition(models.ToliStatusActive) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidToliTransition,
			fmt.Sprintf("cannot activate a toli in status %s", toli.Status))
	}

	partial := bson.M{
		"location":            bson.M{"city": input.City, "state": input.State},
		"coordinator_name":    input.CoordinatorName,
		"coordinator_contact": input.CoordinatorContact,
		"status":              string(models.ToliStatusActive),
	}
	if _, err := s.toliRepo.Update(ctx, id, partial); err != nil {
		return nil, fmt.Errorf("error assigning location: %w", err)
	}

	toli.Location = models.ToliLocation{City: input.City, State: input.State}
	toli.CoordinatorName = input.CoordinatorName
	toli.CoordinatorContact = input.CoordinatorContact
	toli.Status = models.ToliStatusActive
	return toli, nil
}

// AssignLeader clears the leader flag on all members and sets it on the
// member with the given scholar number. Calling it twice with the same
// scholar number is a no-op the second time.
func (s *toliServiceImpl) AssignLeader(ctx context.Context, id, scholarNo string) (*models.Toli, error) {
	toli, err := s.GetToli(ctx, id)
	if err != nil {
		return nil, err
	}

	member, ok := toli.MemberByScholarNo(scholarNo)
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrNotToliMember,
			fmt.Sprintf("scholar number %s is not a member of this toli", scholarNo))
	}

	user, err := s.userRepo.GetByScholarNo(ctx, scholarNo)
	if err != nil {
		return nil, fmt.Errorf("error looking up leader: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	for i := range toli.Members {
		toli.Members[i].IsLeader = toli.Members[i].ScholarNo == member.ScholarNo
	}
	toli.LeaderID = user.ID

	partial := bson.M{
		"members":   membersDoc(toli.Members),
		"leader_id": toli.LeaderID,
	}
	if _, err := s.toliRepo.Update(ctx, id, partial); err != nil {
		return nil, fmt.Errorf("error assigning leader: %w", err)
	}
	return toli, nil
}

// AddMember embeds a new member snapshot and sets the student's
// back-reference. The two writes are rolled back together on failure.
func (s *toliServiceImpl) AddMember(ctx context.Context, id, scholarNo string) (*models.Toli, error) {
	toli, err := s.GetToli(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(toli.Members) >= models.MaxToliMembers {
		return nil, apperrors.ErrToliFull
	}
	if _, exists := toli.MemberByScholarNo(scholarNo); exists {
		return nil, apperrors.NewValidationError(fmt.Sprintf("student %s is already in this toli", scholarNo))
	}

	user, err := s.userRepo.GetByScholarNo(ctx, scholarNo)
	if err != nil {
		return nil, fmt.Errorf("error looking up student: %w", err)
	}
	if user == nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("student with scholar number %s not found", scholarNo))
	}
	if user.ToliID != "" {
		return nil, apperrors.NewCustomError(apperrors.ErrStudentAlreadyInToli,
			fmt.Sprintf("student %s is already in another toli", scholarNo))
	}

	toli.Members = append(toli.Members, memberSnapshot(len(toli.Members)+1, user, false))
	if _, err := s.toliRepo.Update(ctx, id, bson.M{"members": membersDoc(toli.Members)}); err != nil {
		return nil, fmt.Errorf("error adding member: %w", err)
	}
	if _, err := s.userRepo.SetToliID(ctx, user.ID, id); err != nil {
		// Roll back the embedded snapshot so both halves stay consistent.
		toli.Members = toli.Members[:len(toli.Members)-1]
		if _, rbErr := s.toliRepo.Update(ctx, id, bson.M{"members": membersDoc(toli.Members)}); rbErr != nil {
			s.logger.Error().Err(rbErr).Str("toliID", id).Msg("Rollback: failed to remove member snapshot")
		}
		return nil, fmt.Errorf("error assigning student to toli: %w", err)
	}
	return toli, nil
}

// RemoveMember drops a member snapshot and clears the student's
// back-reference. Removing the leader hands the flag to the first remaining
// member.
func (s *toliServiceImpl) RemoveMember(ctx context.Context, id, scholarNo string) (*models.Toli, error) {
	toli, err := s.GetToli(ctx, id)
	if err != nil {
		return nil, err
	}
	removed, ok := toli.MemberByScholarNo(scholarNo)
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrNotToliMember,
			fmt.Sprintf("scholar number %s is not a member of this toli", scholarNo))
	}

	remaining := make([]models.ToliMember, 0, len(toli.Members)-1)
	for _, m := range toli.Members {
		if m.ScholarNo != scholarNo {
			remaining = append(remaining, m)
		}
	}
	partial := bson.M{"members": membersDoc(remaining)}

	if removed.IsLeader && len(remaining) > 0 {
		remaining[0].IsLeader = true
		if user, err := s.userRepo.GetByScholarNo(ctx, remaining[0].ScholarNo); err == nil && user != nil {
			partial["leader_id"] = user.ID
			toli.LeaderID = user.ID
		}
		partial["members"] = membersDoc(remaining)
	}

	previous := toli.Members
	toli.Members = remaining
	if _, err := s.toliRepo.Update(ctx, id, partial); err != nil {
		toli.Members = previous
		return nil, fmt.Errorf("error removing member: %w", err)
	}

	restoreSnapshot := func() {
		toli.Members = previous
		if _, rbErr := s.toliRepo.Update(ctx, id, bson.M{"members": membersDoc(previous)}); rbErr != nil {
			s.logger.Error().Err(rbErr).Str("toliID", id).Msg("Rollback: failed to restore member snapshot")
		}
	}

	// A lookup error leaves the back-reference set, so the snapshot removal
	// must be undone. A genuinely missing user has no reference to clear.
	user, err := s.userRepo.GetByScholarNo(ctx, scholarNo)
	if err != nil {
		restoreSnapshot()
		return nil, fmt.Errorf("error loading removed student: %w", err)
	}
	if user != nil {
		if _, err := s.userRepo.SetToliID(ctx, user.ID, ""); err != nil {
			restoreSnapshot()
			return nil, fmt.Errorf("error clearing student toli reference: %w", err)
		}
	}
	return toli, nil
}

// DeleteToli clears every member's back-reference, then deletes the toli.
func (s *toliServiceImpl) DeleteToli(ctx context.Context, id string) error {
	toli, err := s.GetToli(ctx, id)
	if err != nil {
		return err
	}
	for _, m := range toli.Members {
		user, err := s.userRepo.GetByScholarNo(ctx, m.ScholarNo)
		if err != nil || user == nil {
			continue
		}
		if _, err := s.userRepo.SetToliID(ctx, user.ID, ""); err != nil {
			s.logger.Warn().Err(err).Str("scholarNo", m.ScholarNo).Msg("Failed to clear toli reference during delete")
		}
	}
	if _, err := s.toliRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting toli: %w", err)
	}
	return nil
}

func membersDoc(members []models.ToliMember) []bson.M {
	docs := make([]bson.M, 0, len(members))
	for _, m := range members {
		docs = append(docs, m.Doc())
	}
	return docs
}
