package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"volunmatch-backend/internal/domain"
	"volunmatch-backend/internal/repository"
)

type opportunityRepository struct {
	db *sql.DB
}

func NewOpportunityRepository(db *sql.DB) repository.OpportunityRepository {
	return &opportunityRepository{db: db}
}

func (r *opportunityRepository) Create(ctx context.Context, o *domain.Opportunity) error {
	query := `INSERT INTO opportunities (association_id, title, description, required_skills, causes, start_date, end_date, modality, country, city, urgency, active, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		o.AssociationID, o.Title, o.Description, pq.Array(o.RequiredSkills), pq.Array(o.Causes),
		o.StartDate, o.EndDate, o.Modality, o.Country, o.City, o.Urgency, o.Active, time.Now()).Scan(&o.ID)
}

func (r *opportunityRepository) GetByID(ctx context.Context, id int32) (*domain.Opportunity, error) {
	o := &domain.Opportunity{}
	query := `SELECT id, association_id, title, description, required_skills, causes, start_date, end_date, modality, country, city, urgency, active, created_on
	          FROM opportunities WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.AssociationID, &o.Title, &o.Description, pq.Array(&o.RequiredSkills), pq.Array(&o.Causes),
		&o.StartDate, &o.EndDate, &o.Modality, &o.Country, &o.City, &o.Urgency, &o.Active, &o.CreatedOn)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *opportunityRepository) ListActive(ctx context.Context) ([]domain.Opportunity, error) {
	query := `SELECT o.id, o.association_id, o.title, o.description, o.required_skills, o.causes, o.start_date, o.end_date, o.modality, o.country, o.city, o.urgency, o.active, o.created_on,
	                 a.id, a.user_id, a.org_name, a.approved,
	                 u.id, u.email, u.languages
	          FROM opportunities o
	          JOIN associations a ON a.id = o.association_id
	          JOIN users u ON u.id = a.user_id
	          WHERE o.active = true AND a.approved = true
	          ORDER BY o.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opportunities []domain.Opportunity
	for rows.Next() {
		var o domain.Opportunity
		var a domain.Association
		var u domain.User
		if err := rows.Scan(
			&o.ID, &o.AssociationID, &o.Title, &o.Description, pq.Array(&o.RequiredSkills), pq.Array(&o.Causes),
			&o.StartDate, &o.EndDate, &o.Modality, &o.Country, &o.City, &o.Urgency, &o.Active, &o.CreatedOn,
			&a.ID, &a.UserID, &a.OrgName, &a.Approved,
			&u.ID, &u.Email, pq.Array(&u.Languages)); err != nil {
			return nil, err
		}
		a.User = &u
		o.Association = &a
		opportunities = append(opportunities, o)
	}
	return opportunities, rows.Err()
}

func (r *opportunityRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM opportunities`).Scan(&count)
	return count, err
}
