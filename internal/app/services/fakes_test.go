package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/dishaportal/disha-backend/internal/app/models"
	"github.com/dishaportal/disha-backend/internal/pkg/filestorage"
)

// In-memory fakes for the repository interfaces. Error fields inject
// failures for the rollback paths.

type fakeUserRepo struct {
	users          map[string]*models.User
	nextID         int
	createErr      error
	failSetToliFor map[string]error // SetToliID fails for these user ids
	failLookupFor  map[string]error // GetByScholarNo fails for these scholar numbers
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:          map[string]*models.User{},
		failSetToliFor: map[string]error{},
		failLookupFor:  map[string]error{},
	}
}

func (f *fakeUserRepo) add(user *models.User) *models.User {
	if user.ID == "" {
		f.nextID++
		user.ID = fmt.Sprintf("user-%d", f.nextID)
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.add(user).ID, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByScholarNo(ctx context.Context, scholarNo string) (*models.User, error) {
	if err, ok := f.failLookupFor[scholarNo]; ok {
		return nil, err
	}
	for _, u := range f.users {
		if u.ScholarNo == scholarNo {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context, role models.Role) ([]*models.User, error) {
	out := []*models.User{}
	for _, u := range f.users {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) StudentsWithoutToli(ctx context.Context) ([]*models.User, error) {
	out := []*models.User{}
	for _, u := range f.users {
		if u.Role == models.RoleStudent && u.ToliID == "" {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role models.Role) int64 {
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n
}

func (f *fakeUserRepo) Update(ctx context.Context, id string, partial bson.M) (bool, error) {
	u, ok := f.users[id]
	if !ok {
		return false, nil
	}
	if v, ok := partial["name"].(string); ok {
		u.Name = v
	}
	if v, ok := partial["course"].(string); ok {
		u.Course = v
	}
	if v, ok := partial["contact"].(string); ok {
		u.Contact = v
	}
	if v, ok := partial["dob"].(string); ok {
		u.DOB = v
	}
	return true, nil
}

func (f *fakeUserRepo) SetToliID(ctx context.Context, id, toliID string) (bool, error) {
	if err, ok := f.failSetToliFor[id]; ok && toliID != "" {
		return false, err
	}
	u, ok := f.users[id]
	if !ok {
		return false, nil
	}
	u.ToliID = toliID
	return true, nil
}

type fakeToliRepo struct {
	tolis     map[string]*models.Toli
	nextID    int
	createErr error
	updateErr error
}

func newFakeToliRepo() *fakeToliRepo {
	return &fakeToliRepo{tolis: map[string]*models.Toli{}}
}

func (f *fakeToliRepo) add(toli *models.Toli) *models.Toli {
	if toli.ID == "" {
		f.nextID++
		toli.ID = fmt.Sprintf("toli-%d", f.nextID)
	}
	f.tolis[toli.ID] = toli
	return toli
}

func (f *fakeToliRepo) Create(ctx context.Context, toli *models.Toli) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.add(toli).ID, nil
}

func (f *fakeToliRepo) GetByID(ctx context.Context, id string) (*models.Toli, error) {
	return f.tolis[id], nil
}

func (f *fakeToliRepo) List(ctx context.Context, status models.ToliStatus) ([]*models.Toli, error) {
	out := []*models.Toli{}
	for _, t := range f.tolis {
		if status == "" || t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeToliRepo) Count(ctx context.Context) int64 {
	return int64(len(f.tolis))
}

func (f *fakeToliRepo) CountByStatus(ctx context.Context, status models.ToliStatus) int64 {
	var n int64
	for _, t := range f.tolis {
		if t.Status == status {
			n++
		}
	}
	return n
}

func (f *fakeToliRepo) Update(ctx context.Context, id string, partial bson.M) (bool, error) {
	if f.updateErr != nil {
		return false, f.updateErr
	}
	t, ok := f.tolis[id]
	if !ok {
		return false, nil
	}
	if v, ok := partial["status"].(string); ok {
		t.Status = models.ToliStatus(v)
	}
	if v, ok := partial["leader_id"].(string); ok {
		t.LeaderID = v
	}
	if v, ok := partial["members"].([]bson.M); ok {
		members := make([]models.ToliMember, 0, len(v))
		for _, doc := range v {
			members = append(members, models.NewToliMemberFromDoc(doc))
		}
		t.Members = members
	}
	if v, ok := partial["location"].(bson.M); ok {
		city, _ := v["city"].(string)
		state, _ := v["state"].(string)
		t.Location = models.ToliLocation{City: city, State: state}
	}
	if v, ok := partial["coordinator_name"].(string); ok {
		t.CoordinatorName = v
	}
	if v, ok := partial["coordinator_contact"].(string); ok {
		t.CoordinatorContact = v
	}
	return true, nil
}

func (f *fakeToliRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.tolis[id]; !ok {
		return false, nil
	}
	delete(f.tolis, id)
	return true, nil
}

type fakeProgramRepo struct {
	programs  map[string]*models.Program
	nextID    int
	createErr error
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{programs: map[string]*models.Program{}}
}

func (f *fakeProgramRepo) add(p *models.Program) *models.Program {
	if p.ID == "" {
		f.nextID++
		p.ID = fmt.Sprintf("program-%d", f.nextID)
	}
	f.programs[p.ID] = p
	return p
}

func (f *fakeProgramRepo) Create(ctx context.Context, program *models.Program) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.add(program).ID, nil
}

func (f *fakeProgramRepo) GetByID(ctx context.Context, id string) (*models.Program, error) {
	return f.programs[id], nil
}

func (f *fakeProgramRepo) List(ctx context.Context) ([]*models.Program, error) {
	out := []*models.Program{}
	for _, p := range f.programs {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProgramRepo) ListByStudent(ctx context.Context, studentID string) ([]*models.Program, error) {
	out := []*models.Program{}
	for _, p := range f.programs {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProgramRepo) ListByToli(ctx context.Context, toliID string) ([]*models.Program, error) {
	out := []*models.Program{}
	for _, p := range f.programs {
		if p.ToliID == toliID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProgramRepo) CountByStudent(ctx context.Context, studentID string) int64 {
	var n int64
	for _, p := range f.programs {
		if p.StudentID == studentID {
			n++
		}
	}
	return n
}

func (f *fakeProgramRepo) Count(ctx context.Context) int64 {
	return int64(len(f.programs))
}

func (f *fakeProgramRepo) CountByStatus(ctx context.Context, status models.ProgramStatus) int64 {
	var n int64
	for _, p := range f.programs {
		if p.Status == status {
			n++
		}
	}
	return n
}

func (f *fakeProgramRepo) Update(ctx context.Context, id string, partial bson.M) (bool, error) {
	p, ok := f.programs[id]
	if !ok {
		return false, nil
	}
	if v, ok := partial["images"].([]string); ok {
		p.Images = v
	}
	if v, ok := partial["status"].(string); ok {
		p.Status = models.ProgramStatus(v)
	}
	return true, nil
}

func (f *fakeProgramRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.programs[id]; !ok {
		return false, nil
	}
	delete(f.programs, id)
	return true, nil
}

type fakeDocumentRepo struct {
	docs      []*models.GeneratedDocument
	nextID    int
	createErr error
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{}
}

func (f *fakeDocumentRepo) Create(ctx context.Context, doc *models.GeneratedDocument) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	doc.ID = fmt.Sprintf("doc-%d", f.nextID)
	f.docs = append(f.docs, doc)
	return doc.ID, nil
}

func (f *fakeDocumentRepo) GetByProgram(ctx context.Context, kind models.DocumentKind, programID string) (*models.GeneratedDocument, error) {
	for _, d := range f.docs {
		if d.Kind == kind && d.ProgramID == programID {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDocumentRepo) List(ctx context.Context, kind models.DocumentKind) ([]*models.GeneratedDocument, error) {
	out := []*models.GeneratedDocument{}
	for _, d := range f.docs {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeMessageRepo struct {
	messages      []*models.Message
	notifications []*models.Notification
	nextID        int
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *models.Message) (string, error) {
	f.nextID++
	message.ID = fmt.Sprintf("msg-%d", f.nextID)
	f.messages = append(f.messages, message)
	return message.ID, nil
}

func (f *fakeMessageRepo) ListForUser(ctx context.Context, userID string) ([]*models.Message, error) {
	out := []*models.Message{}
	for _, m := range f.messages {
		if m.ReceiverID == userID || m.IsBroadcast() {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) MarkRead(ctx context.Context, id string) (bool, error) {
	for _, m := range f.messages {
		if m.ID == id {
			m.IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMessageRepo) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	f.nextID++
	notification.ID = fmt.Sprintf("ntf-%d", f.nextID)
	f.notifications = append(f.notifications, notification)
	return notification.ID, nil
}

func (f *fakeMessageRepo) ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error) {
	out := []*models.Notification{}
	for _, n := range f.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) MarkNotificationRead(ctx context.Context, id string) (bool, error) {
	for _, n := range f.notifications {
		if n.ID == id {
			n.IsRead = true
			return true, nil
		}
	}
	return false, nil
}

type fakeResourceRepo struct {
	resources map[string]*models.Resource
	nextID    int
}

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{resources: map[string]*models.Resource{}}
}

func (f *fakeResourceRepo) Create(ctx context.Context, resource *models.Resource) (string, error) {
	f.nextID++
	resource.ID = fmt.Sprintf("res-%d", f.nextID)
	f.resources[resource.ID] = resource
	return resource.ID, nil
}

func (f *fakeResourceRepo) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	return f.resources[id], nil
}

func (f *fakeResourceRepo) List(ctx context.Context) ([]*models.Resource, error) {
	out := []*models.Resource{}
	for _, r := range f.resources {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeResourceRepo) Count(ctx context.Context) int64 {
	return int64(len(f.resources))
}

func (f *fakeResourceRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.resources[id]; !ok {
		return false, nil
	}
	delete(f.resources, id)
	return true, nil
}

type fakeInstructionRepo struct {
	instructions []*models.Instruction
	nextID       int
}

func newFakeInstructionRepo() *fakeInstructionRepo {
	return &fakeInstructionRepo{}
}

func (f *fakeInstructionRepo) Create(ctx context.Context, instruction *models.Instruction) (string, error) {
	f.nextID++
	instruction.ID = fmt.Sprintf("ins-%d", f.nextID)
	f.instructions = append(f.instructions, instruction)
	return instruction.ID, nil
}

func (f *fakeInstructionRepo) List(ctx context.Context) ([]*models.Instruction, error) {
	return f.instructions, nil
}

func (f *fakeInstructionRepo) Active(ctx context.Context) (*models.Instruction, error) {
	for _, i := range f.instructions {
		if i.IsActive {
			return i, nil
		}
	}
	return nil, nil
}

func (f *fakeInstructionRepo) DeactivateAll(ctx context.Context) error {
	for _, i := range f.instructions {
		i.IsActive = false
	}
	return nil
}

type fakeMediaRepo struct {
	gallery []*models.Gallery
	news    []*models.News
	nextID  int
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{}
}

func (f *fakeMediaRepo) CreateGallery(ctx context.Context, entry *models.Gallery) (string, error) {
	f.nextID++
	entry.ID = fmt.Sprintf("gal-%d", f.nextID)
	f.gallery = append(f.gallery, entry)
	return entry.ID, nil
}

func (f *fakeMediaRepo) ListGallery(ctx context.Context) ([]*models.Gallery, error) {
	return f.gallery, nil
}

func (f *fakeMediaRepo) DeleteGallery(ctx context.Context, id string) (bool, error) {
	for i, g := range f.gallery {
		if g.ID == id {
			f.gallery = append(f.gallery[:i], f.gallery[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMediaRepo) CreateNews(ctx context.Context, item *models.News) (string, error) {
	f.nextID++
	item.ID = fmt.Sprintf("news-%d", f.nextID)
	f.news = append(f.news, item)
	return item.ID, nil
}

func (f *fakeMediaRepo) ListNews(ctx context.Context) ([]*models.News, error) {
	return f.news, nil
}

func (f *fakeMediaRepo) DeleteNews(ctx context.Context, id string) (bool, error) {
	for i, n := range f.news {
		if n.ID == id {
			f.news = append(f.news[:i], f.news[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeFileStore struct {
	saved   []string
	saveErr error
}

func (f *fakeFileStore) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	path := subPath + "/" + fileHeader.Filename
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeFileStore) SaveImage(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader.Size > filestorage.MaxImageSize {
		return "", filestorage.ErrFileTooLarge
	}
	return f.SaveFile(fileHeader, subPath)
}

func (f *fakeFileStore) DeleteFile(relPath string) error {
	for i, p := range f.saved {
		if p == relPath {
			f.saved = append(f.saved[:i], f.saved[i+1:]...)
			return nil
		}
	}
	return nil
}
