package postgres

import (
	"context"
	"database/sql"
	"time"

	"volunmatch-backend/internal/domain"
	"volunmatch-backend/internal/repository"
)

type associationRepository struct {
	db *sql.DB
}

func NewAssociationRepository(db *sql.DB) repository.AssociationRepository {
	return &associationRepository{db: db}
}

func (r *associationRepository) Create(ctx context.Context, a *domain.Association) error {
	query := `INSERT INTO associations (user_id, org_name, website, social, legal_status, share_email, approved, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.UserID, a.OrgName, a.Website, a.Social, a.LegalStatus, a.ShareEmail, a.Approved, time.Now()).Scan(&a.ID)
}

func (r *associationRepository) GetByID(ctx context.Context, id int32) (*domain.Association, error) {
	a := &domain.Association{}
	query := `SELECT id, user_id, org_name, website, social, legal_status, share_email, approved, created_on FROM associations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.UserID, &a.OrgName, &a.Website, &a.Social, &a.LegalStatus, &a.ShareEmail, &a.Approved, &a.CreatedOn)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *associationRepository) SetApproved(ctx context.Context, id int32, approved bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE associations SET approved = $1 WHERE id = $2`, approved, id)
	return err
}

func (r *associationRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM associations`).Scan(&count)
	return count, err
}
