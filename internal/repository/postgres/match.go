package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"volunmatch-backend/internal/domain"
	"volunmatch-backend/internal/repository"
)

type matchRepository struct {
	db *sql.DB
}

func NewMatchRepository(db *sql.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

const matchColumns = `id, volunteer_id, opportunity_id, score, status, volunteer_accepted, association_accepted, volunteer_token, association_token, notified_at, created_on, updated_on`

func (r *matchRepository) scanMatch(row interface{ Scan(...interface{}) error }) (*domain.Match, error) {
	m := &domain.Match{}
	err := row.Scan(&m.ID, &m.VolunteerID, &m.OpportunityID, &m.Score, &m.Status,
		&m.VolunteerAccepted, &m.AssociationAccepted, &m.VolunteerToken, &m.AssociationToken,
		&m.NotifiedAt, &m.CreatedOn, &m.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *matchRepository) Create(ctx context.Context, m *domain.Match) error {
	query := `INSERT INTO matches (volunteer_id, opportunity_id, score, status, volunteer_accepted, association_accepted, volunteer_token, association_token, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		m.VolunteerID, m.OpportunityID, m.Score, m.Status,
		m.VolunteerAccepted, m.AssociationAccepted, m.VolunteerToken, m.AssociationToken,
		time.Now(), time.Now()).Scan(&m.ID)
}

func (r *matchRepository) GetByID(ctx context.Context, id int32) (*domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	return r.scanMatch(r.db.QueryRowContext(ctx, query, id))
}

func (r *matchRepository) Exists(ctx context.Context, volunteerID, opportunityID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM matches WHERE volunteer_id = $1 AND opportunity_id = $2)`
	err := r.db.QueryRowContext(ctx, query, volunteerID, opportunityID).Scan(&exists)
	return exists, err
}

func (r *matchRepository) GetByToken(ctx context.Context, token string) (*domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE volunteer_token = $1 OR association_token = $1`
	m, err := r.scanMatch(r.db.QueryRowContext(ctx, query, token))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return m, err
}

func (r *matchRepository) ListUnnotified(ctx context.Context, ids []int32) ([]domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE status = $1 AND notified_at IS NULL`
	args := []interface{}{domain.MatchStatusProposed}
	if ids != nil {
		query += ` AND id = ANY($2)`
		args = append(args, pq.Array(ids))
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		m, err := r.scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

func (r *matchRepository) GetContacts(ctx context.Context, matchID int32) (*domain.MatchContacts, error) {
	c := &domain.MatchContacts{}
	query := `SELECT vu.email, au.email
	          FROM matches m
	          JOIN volunteers v ON v.id = m.volunteer_id
	          JOIN users vu ON vu.id = v.user_id
	          JOIN opportunities o ON o.id = m.opportunity_id
	          JOIN associations a ON a.id = o.association_id
	          JOIN users au ON au.id = a.user_id
	          WHERE m.id = $1`
	err := r.db.QueryRowContext(ctx, query, matchID).Scan(&c.VolunteerEmail, &c.AssociationEmail)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *matchRepository) UpdateStatus(ctx context.Context, id int32, status domain.MatchStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE matches SET status = $1, updated_on = $2 WHERE id = $3`, status, time.Now(), id)
	return err
}

func (r *matchRepository) SetVolunteerAccepted(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE matches SET volunteer_accepted = true, updated_on = $1 WHERE id = $2`, time.Now(), id)
	return err
}

func (r *matchRepository) SetAssociationAccepted(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE matches SET association_accepted = true, updated_on = $1 WHERE id = $2`, time.Now(), id)
	return err
}

func (r *matchRepository) MarkNotified(ctx context.Context, id int32, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE matches SET notified_at = $1, updated_on = $2 WHERE id = $3`, at, time.Now(), id)
	return err
}

func (r *matchRepository) CountByStatus(ctx context.Context, status domain.MatchStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM matches WHERE status = $1`, status).Scan(&count)
	return count, err
}
