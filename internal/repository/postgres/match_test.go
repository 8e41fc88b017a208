package postgres_test

import (
	"context"
	"testing"
	"time"

	"volunmatch-backend/internal/domain"
	"volunmatch-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMatchRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMatchRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		match := &domain.Match{
			VolunteerID:      1,
			OpportunityID:    2,
			Score:            79,
			Status:           domain.MatchStatusProposed,
			VolunteerToken:   "vt-1",
			AssociationToken: "at-1",
		}

		mock.ExpectQuery("INSERT INTO matches").
			WithArgs(match.VolunteerID, match.OpportunityID, match.Score, match.Status,
				match.VolunteerAccepted, match.AssociationAccepted,
				match.VolunteerToken, match.AssociationToken,
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, match)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), match.ID)
	})
}

func TestMatchRepository_Exists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMatchRepository(db)
	ctx := context.Background()

	t.Run("Pair exists", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int32(1), int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := repo.Exists(ctx, 1, 2)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Pair does not exist", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int32(1), int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		exists, err := repo.Exists(ctx, 1, 3)
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestMatchRepository_GetByToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMatchRepository(db)
	ctx := context.Background()

	columns := []string{"id", "volunteer_id", "opportunity_id", "score", "status",
		"volunteer_accepted", "association_accepted", "volunteer_token", "association_token",
		"notified_at", "created_on", "updated_on"}

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow(5, 1, 2, 79, "PROPOSED", false, false, "vt-5", "at-5", nil, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM matches WHERE volunteer_token = \\$1 OR association_token = \\$1").
			WithArgs("vt-5").
			WillReturnRows(rows)

		match, err := repo.GetByToken(ctx, "vt-5")
		assert.NoError(t, err)
		assert.NotNil(t, match)
		assert.Equal(t, int32(5), match.ID)
		assert.Equal(t, domain.MatchStatusProposed, match.Status)
		assert.Nil(t, match.NotifiedAt)
	})

	t.Run("Missing token yields nil match", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM matches WHERE volunteer_token = \\$1 OR association_token = \\$1").
			WithArgs("no-such-token").
			WillReturnRows(sqlmock.NewRows(columns))

		match, err := repo.GetByToken(ctx, "no-such-token")
		assert.NoError(t, err)
		assert.Nil(t, match)
	})
}

func TestMatchRepository_ListUnnotified(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMatchRepository(db)
	ctx := context.Background()

	columns := []string{"id", "volunteer_id", "opportunity_id", "score", "status",
		"volunteer_accepted", "association_accepted", "volunteer_token", "association_token",
		"notified_at", "created_on", "updated_on"}

	t.Run("All pending", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow(1, 1, 2, 79, "PROPOSED", false, false, "vt-1", "at-1", nil, time.Now(), time.Now()).
			AddRow(2, 3, 4, 65, "PROPOSED", false, false, "vt-2", "at-2", nil, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM matches WHERE status = \\$1 AND notified_at IS NULL ORDER BY id").
			WithArgs(domain.MatchStatusProposed).
			WillReturnRows(rows)

		matches, err := repo.ListUnnotified(ctx, nil)
		assert.NoError(t, err)
		assert.Len(t, matches, 2)
		assert.Equal(t, int32(1), matches[0].ID)
	})

	t.Run("Restricted to ids", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow(2, 3, 4, 65, "PROPOSED", false, false, "vt-2", "at-2", nil, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM matches WHERE status = \\$1 AND notified_at IS NULL AND id = ANY\\(\\$2\\) ORDER BY id").
			WithArgs(domain.MatchStatusProposed, sqlmock.AnyArg()).
			WillReturnRows(rows)

		matches, err := repo.ListUnnotified(ctx, []int32{2})
		assert.NoError(t, err)
		assert.Len(t, matches, 1)
		assert.Equal(t, int32(2), matches[0].ID)
	})
}

func TestMatchRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMatchRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE matches SET status = \\$1").
		WithArgs(domain.MatchStatusDeclined, sqlmock.AnyArg(), int32(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdateStatus(ctx, 7, domain.MatchStatusDeclined)
	assert.NoError(t, err)
}

func TestMatchRepository_MarkNotified(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMatchRepository(db)
	ctx := context.Background()

	at := time.Now()
	mock.ExpectExec("UPDATE matches SET notified_at = \\$1").
		WithArgs(at, sqlmock.AnyArg(), int32(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.MarkNotified(ctx, 9, at)
	assert.NoError(t, err)
}
