package postgres

import (
	"database/sql"

	"volunmatch-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.VolunteerRepository
	repository.AssociationRepository
	repository.OpportunityRepository
	repository.MatchRepository
	repository.SettingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		VolunteerRepository:   NewVolunteerRepository(db),
		AssociationRepository: NewAssociationRepository(db),
		OpportunityRepository: NewOpportunityRepository(db),
		MatchRepository:       NewMatchRepository(db),
		SettingRepository:     NewSettingRepository(db),
	}
}
