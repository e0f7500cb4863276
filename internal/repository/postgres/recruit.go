package postgres

import (
	"context"
	"database/sql"
	"time"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/logger"
	"skkuri-backend/internal/repository"
)

type recruitRepository struct {
	db *sql.DB
}

func NewRecruitRepository(db *sql.DB) repository.RecruitRepository {
	return &recruitRepository{db: db}
}

func (r *recruitRepository) Create(ctx context.Context, rec *domain.Recruit) error {
	query := `INSERT INTO recruits (user_id, club_id, content, status, created_on) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	if rec.Status == "" {
		rec.Status = domain.ApprovalStatusPending
	}
	logger.DatabaseCall("INSERT", "recruits", "userID", rec.UserID, "clubID", rec.ClubID)
	if err := r.db.QueryRowContext(ctx, query, rec.UserID, rec.ClubID, rec.Content, rec.Status, now).Scan(&rec.ID); err != nil {
		logger.DatabaseResult("INSERT", 0, err, "userID", rec.UserID, "clubID", rec.ClubID)
		return translateErr(err)
	}
	rec.CreatedOn = now.Format("2006-01-02")
	return nil
}

func (r *recruitRepository) GetByID(ctx context.Context, id int32) (*domain.Recruit, error) {
	rec := &domain.Recruit{}
	query := `SELECT id, user_id, club_id, content, status, created_on, decided_on, decided_by FROM recruits WHERE id = $1`

	var createdOn time.Time
	var decidedOn sql.NullTime
	var decidedBy sql.NullInt32
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.UserID, &rec.ClubID, &rec.Content, &rec.Status, &createdOn, &decidedOn, &decidedBy)
	if err != nil {
		return nil, err
	}
	rec.CreatedOn = createdOn.Format("2006-01-02")
	setDecision(rec, decidedOn, decidedBy)
	return rec, nil
}

// ListByClub returns the club's applications with applicant details,
// optionally restricted to a single status.
func (r *recruitRepository) ListByClub(ctx context.Context, clubID int32, status *domain.ApprovalStatus) ([]domain.Recruit, error) {
	logger.EnterMethod("recruitRepository.ListByClub", "clubID", clubID)

	query := `SELECT rc.id, rc.user_id, rc.club_id, rc.content, rc.status, rc.created_on, rc.decided_on, rc.decided_by,
	                 u.nickname, u.email, u.department, u.student_number, u.phone_number
	          FROM recruits rc
	          JOIN users u ON u.id = rc.user_id
	          WHERE rc.club_id = $1`
	args := []any{clubID}
	if status != nil {
		query += ` AND rc.status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY rc.id`

	logger.DatabaseCall("SELECT", "recruits JOIN users", "clubID", clubID)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.ExitMethodWithError("recruitRepository.ListByClub", err, "clubID", clubID)
		return nil, err
	}
	defer rows.Close()

	recruits := []domain.Recruit{}
	for rows.Next() {
		var rec domain.Recruit
		var createdOn time.Time
		var decidedOn sql.NullTime
		var decidedBy sql.NullInt32
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.ClubID, &rec.Content, &rec.Status, &createdOn, &decidedOn, &decidedBy,
			&rec.Nickname, &rec.Email, &rec.Department, &rec.StudentNumber, &rec.PhoneNumber,
		); err != nil {
			logger.ExitMethodWithError("recruitRepository.ListByClub", err, "clubID", clubID)
			return nil, err
		}
		rec.CreatedOn = createdOn.Format("2006-01-02")
		setDecision(&rec, decidedOn, decidedBy)
		recruits = append(recruits, rec)
	}

	logger.DatabaseResult("SELECT", int64(len(recruits)), nil, "clubID", clubID)
	logger.ExitMethod("recruitRepository.ListByClub", "clubID", clubID, "count", len(recruits))
	return recruits, rows.Err()
}

func (r *recruitRepository) HasPending(ctx context.Context, userID, clubID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM recruits WHERE user_id = $1 AND club_id = $2 AND status = 'PENDING')`
	err := r.db.QueryRowContext(ctx, query, userID, clubID).Scan(&exists)
	return exists, err
}

func (r *recruitRepository) ListPendingCounts(ctx context.Context) (map[int32]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT club_id, COUNT(*) FROM recruits WHERE status = 'PENDING' GROUP BY club_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int32]int)
	for rows.Next() {
		var clubID int32
		var n int
		if err := rows.Scan(&clubID, &n); err != nil {
			return nil, err
		}
		counts[clubID] = n
	}
	return counts, rows.Err()
}

func (r *recruitRepository) Deny(ctx context.Context, recruitID, deciderID int32) error {
	query := `UPDATE recruits SET status = 'DENIED', decided_on = $1, decided_by = $2 WHERE id = $3 AND status = 'PENDING'`
	logger.DatabaseCall("UPDATE", "recruits", "recruitID", recruitID, "status", "DENIED")
	res, err := r.db.ExecContext(ctx, query, time.Now(), deciderID, recruitID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "recruitID", recruitID)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotPending
	}
	logger.DatabaseResult("UPDATE", n, nil, "recruitID", recruitID)
	return nil
}

func (r *recruitRepository) Approve(ctx context.Context, recruitID, deciderID int32, m *domain.Member) error {
	logger.EnterMethod("recruitRepository.Approve", "recruitID", recruitID, "userID", m.UserID, "clubID", m.ClubID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.ExitMethodWithError("recruitRepository.Approve", err, "recruitID", recruitID)
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	res, err := tx.ExecContext(ctx,
		`UPDATE recruits SET status = 'APPROVED', decided_on = $1, decided_by = $2 WHERE id = $3 AND status = 'PENDING'`,
		now, deciderID, recruitID)
	if err != nil {
		logger.ExitMethodWithError("recruitRepository.Approve", err, "recruitID", recruitID)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotPending
	}

	if m.Role == "" {
		m.Role = domain.MemberRoleMember
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO members (user_id, club_id, role, joined_on) VALUES ($1, $2, $3, $4) RETURNING id`,
		m.UserID, m.ClubID, m.Role, now).Scan(&m.ID)
	if err != nil {
		logger.ExitMethodWithError("recruitRepository.Approve", err, "recruitID", recruitID)
		return translateErr(err)
	}
	m.JoinedOn = now.Format("2006-01-02")

	if err := tx.Commit(); err != nil {
		logger.ExitMethodWithError("recruitRepository.Approve", err, "recruitID", recruitID)
		return err
	}
	logger.ExitMethod("recruitRepository.Approve", "recruitID", recruitID, "memberID", m.ID)
	return nil
}

func setDecision(rec *domain.Recruit, decidedOn sql.NullTime, decidedBy sql.NullInt32) {
	if decidedOn.Valid {
		dateStr := decidedOn.Time.Format("2006-01-02")
		rec.DecidedOn = &dateStr
	}
	if decidedBy.Valid {
		id := decidedBy.Int32
		rec.DecidedBy = &id
	}
}
