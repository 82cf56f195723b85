package postgres

import (
	"database/sql"

	"notes-saas-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.TenantRepository
	repository.NoteRepository
	repository.UpgradeRequestRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                       db,
		UserRepository:           NewUserRepository(db),
		TenantRepository:         NewTenantRepository(db),
		NoteRepository:           NewNoteRepository(db),
		UpgradeRequestRepository: NewUpgradeRequestRepository(db),
	}
}
