package repositories

import (
	"github.com/dishaportal/disha-backend/internal/db"
)

// Repositories bundles all collection repositories behind one shared store.
type Repositories struct {
	Users        *UserRepository
	Tolis        *ToliRepository
	Programs     *ProgramRepository
	Documents    *DocumentRepository
	Resources    *ResourceRepository
	Messages     *MessageRepository
	Instructions *InstructionRepository
	Media        *MediaRepository
}

// NewRepositories creates the repository container over a Mongo handle.
func NewRepositories(m *db.Mongo) *Repositories {
	store := NewStore(m)
	return &Repositories{
		Users:        NewUserRepository(store),
		Tolis:        NewToliRepository(store),
		Programs:     NewProgramRepository(store),
		Documents:    NewDocumentRepository(store),
		Resources:    NewResourceRepository(store),
		Messages:     NewMessageRepository(store),
		Instructions: NewInstructionRepository(store),
		Media:        NewMediaRepository(store),
	}
}
