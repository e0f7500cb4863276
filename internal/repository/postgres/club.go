package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/logger"
	"skkuri-backend/internal/repository"
)

const clubColumns = `id, name, description, location, logo_img_path, main_category, sub_category, is_recruiting`

type clubRepository struct {
	db *sql.DB
}

func NewClubRepository(db *sql.DB) repository.ClubRepository {
	return &clubRepository{db: db}
}

const insertClub = `INSERT INTO clubs (name, description, location, logo_img_path, main_category, sub_category, is_recruiting)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

func (r *clubRepository) Create(ctx context.Context, c *domain.Club) error {
	return r.db.QueryRowContext(ctx, insertClub, c.Name, c.Description, c.Location, c.LogoImgPath, c.MainCategory, c.SubCategory, c.IsRecruiting).Scan(&c.ID)
}

// CreateMany inserts all clubs in one transaction. On failure nothing is
// written and the ids are left zero.
func (r *clubRepository) CreateMany(ctx context.Context, clubs []domain.Club) error {
	logger.EnterMethod("clubRepository.CreateMany", "count", len(clubs))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.ExitMethodWithError("clubRepository.CreateMany", err)
		return err
	}
	defer tx.Rollback()

	for i := range clubs {
		c := &clubs[i]
		if err := tx.QueryRowContext(ctx, insertClub, c.Name, c.Description, c.Location, c.LogoImgPath, c.MainCategory, c.SubCategory, c.IsRecruiting).Scan(&c.ID); err != nil {
			resetClubIDs(clubs)
			logger.ExitMethodWithError("clubRepository.CreateMany", err, "name", c.Name)
			return fmt.Errorf("failed to insert club %q: %w", c.Name, translateErr(err))
		}
	}

	if err := tx.Commit(); err != nil {
		resetClubIDs(clubs)
		logger.ExitMethodWithError("clubRepository.CreateMany", err)
		return err
	}
	logger.ExitMethod("clubRepository.CreateMany", "count", len(clubs))
	return nil
}

func resetClubIDs(clubs []domain.Club) {
	for i := range clubs {
		clubs[i].ID = 0
	}
}

func (r *clubRepository) GetByID(ctx context.Context, id int32) (*domain.Club, error) {
	c := &domain.Club{}
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.Location, &c.LogoImgPath, &c.MainCategory, &c.SubCategory, &c.IsRecruiting)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clubRepository) List(ctx context.Context) ([]domain.Club, error) {
	return r.query(ctx, `SELECT `+clubColumns+` FROM clubs ORDER BY id`)
}

func (r *clubRepository) ListRecruiting(ctx context.Context) ([]domain.Club, error) {
	return r.query(ctx, `SELECT `+clubColumns+` FROM clubs WHERE is_recruiting = TRUE ORDER BY id`)
}

// SearchByName matches case-insensitively anywhere in the club name.
func (r *clubRepository) SearchByName(ctx context.Context, name string) ([]domain.Club, error) {
	return r.query(ctx, `SELECT `+clubColumns+` FROM clubs WHERE name ILIKE $1 ORDER BY id`, containsPattern(name))
}

func (r *clubRepository) ListByMainCategory(ctx context.Context, main string) ([]domain.Club, error) {
	return r.query(ctx, `SELECT `+clubColumns+` FROM clubs WHERE main_category = $1 ORDER BY id`, main)
}

func (r *clubRepository) ListByCategory(ctx context.Context, main, sub string) ([]domain.Club, error) {
	return r.query(ctx, `SELECT `+clubColumns+` FROM clubs WHERE main_category = $1 AND sub_category = $2 ORDER BY id`, main, sub)
}

func (r *clubRepository) ListMainCategories(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx, `SELECT DISTINCT main_category FROM clubs WHERE main_category <> '' ORDER BY main_category`)
}

// ListSubCategories returns every distinct sub category, restricted to one
// main category when main is not empty.
func (r *clubRepository) ListSubCategories(ctx context.Context, main string) ([]string, error) {
	if main == "" {
		return r.queryStrings(ctx, `SELECT DISTINCT sub_category FROM clubs WHERE sub_category <> '' ORDER BY sub_category`)
	}
	return r.queryStrings(ctx, `SELECT DISTINCT sub_category FROM clubs WHERE sub_category <> '' AND main_category = $1 ORDER BY sub_category`, main)
}

func (r *clubRepository) UpdateDescription(ctx context.Context, id int32, description string) error {
	logger.DatabaseCall("UPDATE", "clubs.description", "clubID", id)
	res, err := r.db.ExecContext(ctx, `UPDATE clubs SET description = $1 WHERE id = $2`, description, id)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "clubID", id)
		return err
	}
	return requireRow(res)
}

func (r *clubRepository) ToggleRecruiting(ctx context.Context, id int32) (bool, error) {
	var recruiting bool
	logger.DatabaseCall("UPDATE", "clubs.is_recruiting", "clubID", id)
	err := r.db.QueryRowContext(ctx, `UPDATE clubs SET is_recruiting = NOT is_recruiting WHERE id = $1 RETURNING is_recruiting`, id).Scan(&recruiting)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "clubID", id)
		return false, err
	}
	logger.DatabaseResult("UPDATE", 1, nil, "clubID", id, "isRecruiting", recruiting)
	return recruiting, nil
}

func (r *clubRepository) query(ctx context.Context, query string, args ...any) ([]domain.Club, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clubs := []domain.Club{}
	for rows.Next() {
		var c domain.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Location, &c.LogoImgPath, &c.MainCategory, &c.SubCategory, &c.IsRecruiting); err != nil {
			return nil, err
		}
		clubs = append(clubs, c)
	}
	return clubs, rows.Err()
}

func (r *clubRepository) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
