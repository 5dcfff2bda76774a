package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserDocRoundTrip(t *testing.T) {
	created := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)
	user := &User{
		ScholarNo:    "21BCS101",
		Name:         "Asha Verma",
		Email:        "asha@example.edu",
		DOB:          "2003-06-14",
		Course:       "B.Sc.",
		Contact:      "9876543210",
		Role:         RoleStudent,
		ToliID:       "toli-1",
		PasswordHash: "$2a$12$hash",
		CreatedAt:    created,
	}

	restored := NewUserFromDoc(user.Doc())
	restored.ID = user.ID
	assert.Equal(t, user, restored)
}

func TestNewUserFromDocDefaults(t *testing.T) {
	user := NewUserFromDoc(bson.M{"name": "Asha"})
	assert.Equal(t, RoleStudent, user.Role, "missing role defaults to student")
	assert.Empty(t, user.ID)
	assert.WithinDuration(t, time.Now().UTC(), user.CreatedAt, time.Minute)
}

func TestDocIDCoercion(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), NewUserFromDoc(bson.M{"_id": oid}).ID)
	assert.Equal(t, "user-1", NewUserFromDoc(bson.M{"_id": "user-1"}).ID)
	assert.Empty(t, NewUserFromDoc(bson.M{"_id": 42}).ID)
}

func TestToliDocRoundTrip(t *testing.T) {
	approved := time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)
	toli := &Toli{
		Name:   "Toli T-01",
		ToliNo: "T-01",
		Location: ToliLocation{
			City:  "Indore",
			State: "MP",
		},
		Members: []ToliMember{
			{MemberNumber: 1, ScholarNo: "S1", Name: "Asha", IsLeader: true},
			{MemberNumber: 2, ScholarNo: "S2", Name: "Ravi"},
			{MemberNumber: 3, ScholarNo: "S3", Name: "Meena"},
		},
		LeaderID:    "user-1",
		Status:      ToliStatusApproved,
		SessionYear: "2026-27",
		CreatedBy:   "user-1",
		CreatedAt:   time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
		ApprovedAt:  &approved,
	}

	restored := NewToliFromDoc(toli.Doc())
	assert.Equal(t, toli, restored)
}

func TestNewToliFromDocLooseShapes(t *testing.T) {
	// Documents read back from the store may carry bson.A arrays, bson.D
	// subdocuments and int32 counters instead of the native Go shapes.
	doc := bson.M{
		"_id":      "toli-1",
		"toli_no":  "T-01",
		"location": bson.D{{Key: "city", Value: "Indore"}, {Key: "state", Value: "MP"}},
		"members": bson.A{
			bson.M{"member_number": int32(1), "scholar_no": "S1", "is_leader": true},
			bson.M{"member_number": int32(2), "scholar_no": "S2"},
		},
	}

	toli := NewToliFromDoc(doc)
	assert.Equal(t, "Indore", toli.Location.City)
	assert.Equal(t, ToliStatusDraft, toli.Status, "missing status defaults to draft")
	require.Len(t, toli.Members, 2)
	assert.Equal(t, 1, toli.Members[0].MemberNumber)
	assert.True(t, toli.Members[0].IsLeader)
	assert.Nil(t, toli.ApprovedAt)
}

func TestProgramDocLooseShapes(t *testing.T) {
	doc := bson.M{
		"_id":           primitive.NewObjectID(),
		"title":         "Plantation drive",
		"program_no":    int64(3),
		"total_persons": float64(120),
		"start_date":    primitive.NewDateTimeFromTime(time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)),
		"images":        bson.A{"programs/p1/a.jpg", "programs/p1/b.jpg"},
	}

	program := NewProgramFromDoc(doc)
	assert.Equal(t, 3, program.ProgramNo)
	assert.Equal(t, 120, program.TotalPersons)
	assert.Equal(t, time.August, program.StartDate.Month())
	assert.Equal(t, []string{"programs/p1/a.jpg", "programs/p1/b.jpg"}, program.Images)
	assert.Equal(t, ProgramStatusPending, program.Status, "missing status defaults to pending")
}

func TestToliStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to ToliStatus
		allowed  bool
	}{
		{ToliStatusPending, ToliStatusApproved, true},
		{ToliStatusPending, ToliStatusRejected, true},
		{ToliStatusApproved, ToliStatusActive, true},
		{ToliStatusPending, ToliStatusActive, false},
		{ToliStatusActive, ToliStatusPending, false},
		{ToliStatusRejected, ToliStatusApproved, false},
		{ToliStatusDraft, ToliStatusApproved, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestMessageIsBroadcast(t *testing.T) {
	assert.True(t, (&Message{ReceiverID: BroadcastReceiver}).IsBroadcast())
	assert.True(t, (&Message{}).IsBroadcast())
	assert.False(t, (&Message{ReceiverID: "user-1"}).IsBroadcast())
}
