package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"volunmatch-backend/internal/domain"
	"volunmatch-backend/internal/repository"
)

type volunteerRepository struct {
	db *sql.DB
}

func NewVolunteerRepository(db *sql.DB) repository.VolunteerRepository {
	return &volunteerRepository{db: db}
}

func (r *volunteerRepository) Create(ctx context.Context, v *domain.Volunteer) error {
	query := `INSERT INTO volunteers (user_id, skills, causes, availability, available_from, available_to, modality, preferred_countries, remote_ok, share_email, approved, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		v.UserID, pq.Array(v.Skills), pq.Array(v.Causes), v.Availability,
		v.AvailableFrom, v.AvailableTo, v.Modality, pq.Array(v.PreferredCountries),
		v.RemoteOk, v.ShareEmail, v.Approved, time.Now()).Scan(&v.ID)
}

func (r *volunteerRepository) GetByID(ctx context.Context, id int32) (*domain.Volunteer, error) {
	v := &domain.Volunteer{}
	query := `SELECT id, user_id, skills, causes, availability, available_from, available_to, modality, preferred_countries, remote_ok, share_email, approved, last_proposal_at, created_on
	          FROM volunteers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.UserID, pq.Array(&v.Skills), pq.Array(&v.Causes), &v.Availability,
		&v.AvailableFrom, &v.AvailableTo, &v.Modality, pq.Array(&v.PreferredCountries),
		&v.RemoteOk, &v.ShareEmail, &v.Approved, &v.LastProposalAt, &v.CreatedOn)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *volunteerRepository) ListApproved(ctx context.Context, ids []int32) ([]domain.Volunteer, error) {
	query := `SELECT v.id, v.user_id, v.skills, v.causes, v.availability, v.available_from, v.available_to, v.modality, v.preferred_countries, v.remote_ok, v.share_email, v.approved, v.last_proposal_at, v.created_on,
	                 u.id, u.role, u.email, u.first_name, u.last_name, u.languages, u.country, u.city
	          FROM volunteers v JOIN users u ON u.id = v.user_id
	          WHERE v.approved = true`
	args := []interface{}{}
	if ids != nil {
		query += ` AND v.id = ANY($1)`
		args = append(args, pq.Array(ids))
	}
	query += ` ORDER BY v.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var volunteers []domain.Volunteer
	for rows.Next() {
		var v domain.Volunteer
		var u domain.User
		if err := rows.Scan(
			&v.ID, &v.UserID, pq.Array(&v.Skills), pq.Array(&v.Causes), &v.Availability,
			&v.AvailableFrom, &v.AvailableTo, &v.Modality, pq.Array(&v.PreferredCountries),
			&v.RemoteOk, &v.ShareEmail, &v.Approved, &v.LastProposalAt, &v.CreatedOn,
			&u.ID, &u.Role, &u.Email, &u.FirstName, &u.LastName, pq.Array(&u.Languages), &u.Country, &u.City); err != nil {
			return nil, err
		}
		v.User = &u
		volunteers = append(volunteers, v)
	}
	return volunteers, rows.Err()
}

func (r *volunteerRepository) ListStaleIDs(ctx context.Context, cutoff time.Time) ([]int32, error) {
	query := `SELECT id FROM volunteers
	          WHERE approved = true AND (last_proposal_at IS NULL OR last_proposal_at < $1)
	          ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *volunteerRepository) SetApproved(ctx context.Context, id int32, approved bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE volunteers SET approved = $1 WHERE id = $2`, approved, id)
	return err
}

func (r *volunteerRepository) UpdateLastProposal(ctx context.Context, id int32, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE volunteers SET last_proposal_at = $1 WHERE id = $2`, at, id)
	return err
}

func (r *volunteerRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM volunteers`).Scan(&count)
	return count, err
}
