package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"volunmatch-backend/internal/domain"
	"volunmatch-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (role, email, password_hash, first_name, last_name, languages, country, city, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.Role, u.Email, u.PasswordHash, u.FirstName, u.LastName, pq.Array(u.Languages), u.Country, u.City, time.Now()).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, role, email, password_hash, first_name, last_name, languages, country, city, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Role, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, pq.Array(&u.Languages), &u.Country, &u.City, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, role, email, password_hash, first_name, last_name, languages, country, city, created_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Role, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, pq.Array(&u.Languages), &u.Country, &u.City, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}
