package postgres

import (
	"context"
	"database/sql"
	"time"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/repository"
)

type scheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, s *domain.Schedule) error {
	query := `INSERT INTO schedules (club_id, content, schedule_date) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, s.ClubID, s.Content, s.ScheduleDate).Scan(&s.ID)
}

func (r *scheduleRepository) GetByID(ctx context.Context, id int32) (*domain.Schedule, error) {
	s := &domain.Schedule{}
	query := `SELECT id, club_id, content, schedule_date FROM schedules WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.ClubID, &s.Content, &s.ScheduleDate); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *scheduleRepository) ListByClub(ctx context.Context, clubID int32) ([]domain.Schedule, error) {
	query := `SELECT id, club_id, content, schedule_date FROM schedules WHERE club_id = $1 ORDER BY schedule_date`
	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := []domain.Schedule{}
	for rows.Next() {
		var s domain.Schedule
		if err := rows.Scan(&s.ID, &s.ClubID, &s.Content, &s.ScheduleDate); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func (r *scheduleRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type noticeRepository struct {
	db *sql.DB
}

func NewNoticeRepository(db *sql.DB) repository.NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(ctx context.Context, n *domain.Notice) error {
	query := `INSERT INTO notices (club_id, title, content, created_on) VALUES ($1, $2, $3, $4) RETURNING id`
	now := time.Now()
	if err := r.db.QueryRowContext(ctx, query, n.ClubID, n.Title, n.Content, now).Scan(&n.ID); err != nil {
		return err
	}
	n.CreatedOn = now.Format("2006-01-02")
	return nil
}

func (r *noticeRepository) GetByID(ctx context.Context, id int32) (*domain.Notice, error) {
	n := &domain.Notice{}
	var createdOn time.Time
	query := `SELECT id, club_id, title, content, created_on FROM notices WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&n.ID, &n.ClubID, &n.Title, &n.Content, &createdOn); err != nil {
		return nil, err
	}
	n.CreatedOn = createdOn.Format("2006-01-02")
	return n, nil
}

func (r *noticeRepository) ListByClub(ctx context.Context, clubID int32) ([]domain.Notice, error) {
	query := `SELECT id, club_id, title, content, created_on FROM notices WHERE club_id = $1 ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notices := []domain.Notice{}
	for rows.Next() {
		var n domain.Notice
		var createdOn time.Time
		if err := rows.Scan(&n.ID, &n.ClubID, &n.Title, &n.Content, &createdOn); err != nil {
			return nil, err
		}
		n.CreatedOn = createdOn.Format("2006-01-02")
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

func (r *noticeRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type artworkRepository struct {
	db *sql.DB
}

func NewArtworkRepository(db *sql.DB) repository.ArtworkRepository {
	return &artworkRepository{db: db}
}

func (r *artworkRepository) Create(ctx context.Context, a *domain.Artwork) error {
	query := `INSERT INTO artworks (club_id, title, content, img_path, storage_key, created_on) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	if err := r.db.QueryRowContext(ctx, query, a.ClubID, a.Title, a.Content, a.ImgPath, a.StorageKey, now).Scan(&a.ID); err != nil {
		return err
	}
	a.CreatedOn = now.Format("2006-01-02")
	return nil
}

func (r *artworkRepository) GetByID(ctx context.Context, id int32) (*domain.Artwork, error) {
	a := &domain.Artwork{}
	var createdOn time.Time
	query := `SELECT id, club_id, title, content, img_path, storage_key, created_on FROM artworks WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.ClubID, &a.Title, &a.Content, &a.ImgPath, &a.StorageKey, &createdOn); err != nil {
		return nil, err
	}
	a.CreatedOn = createdOn.Format("2006-01-02")
	return a, nil
}

func (r *artworkRepository) ListByClub(ctx context.Context, clubID int32) ([]domain.Artwork, error) {
	query := `SELECT id, club_id, title, content, img_path, storage_key, created_on FROM artworks WHERE club_id = $1 ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artworks := []domain.Artwork{}
	for rows.Next() {
		var a domain.Artwork
		var createdOn time.Time
		if err := rows.Scan(&a.ID, &a.ClubID, &a.Title, &a.Content, &a.ImgPath, &a.StorageKey, &createdOn); err != nil {
			return nil, err
		}
		a.CreatedOn = createdOn.Format("2006-01-02")
		artworks = append(artworks, a)
	}
	return artworks, rows.Err()
}

func (r *artworkRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM artworks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *artworkRepository) ListStorageKeys(ctx context.Context) (map[string]struct{}, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT storage_key FROM artworks`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make(map[string]struct{})
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys[k] = struct{}{}
	}
	return keys, rows.Err()
}
