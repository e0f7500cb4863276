package postgres

import (
	"context"
	"database/sql"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/repository"
)

type applicationFormRepository struct {
	db *sql.DB
}

func NewApplicationFormRepository(db *sql.DB) repository.ApplicationFormRepository {
	return &applicationFormRepository{db: db}
}

func (r *applicationFormRepository) Create(ctx context.Context, f *domain.ApplicationForm) error {
	query := `INSERT INTO application_forms (club_id, content) VALUES ($1, $2) RETURNING id`
	return translateErr(r.db.QueryRowContext(ctx, query, f.ClubID, f.Content).Scan(&f.ID))
}

func (r *applicationFormRepository) GetByClub(ctx context.Context, clubID int32) (*domain.ApplicationForm, error) {
	f := &domain.ApplicationForm{}
	query := `SELECT id, club_id, content FROM application_forms WHERE club_id = $1`
	if err := r.db.QueryRowContext(ctx, query, clubID).Scan(&f.ID, &f.ClubID, &f.Content); err != nil {
		return nil, err
	}
	return f, nil
}

// DeleteByClub removes the club's form. Deleting a missing form is not an error.
func (r *applicationFormRepository) DeleteByClub(ctx context.Context, clubID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM application_forms WHERE club_id = $1`, clubID)
	return err
}
