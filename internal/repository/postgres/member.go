package postgres

import (
	"context"
	"database/sql"
	"time"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/logger"
	"skkuri-backend/internal/repository"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (user_id, club_id, role, joined_on) VALUES ($1, $2, $3, $4) RETURNING id`
	now := time.Now()
	if err := r.db.QueryRowContext(ctx, query, m.UserID, m.ClubID, m.Role, now).Scan(&m.ID); err != nil {
		return translateErr(err)
	}
	m.JoinedOn = now.Format("2006-01-02")
	return nil
}

// Get returns the membership of a user in a club, or sql.ErrNoRows.
func (r *memberRepository) Get(ctx context.Context, userID, clubID int32) (*domain.Member, error) {
	m := &domain.Member{}
	query := `SELECT id, user_id, club_id, role, joined_on FROM members WHERE user_id = $1 AND club_id = $2`
	var joinedOn time.Time
	logger.DatabaseCall("SELECT", "members", "userID", userID, "clubID", clubID)
	if err := r.db.QueryRowContext(ctx, query, userID, clubID).Scan(&m.ID, &m.UserID, &m.ClubID, &m.Role, &joinedOn); err != nil {
		return nil, err
	}
	m.JoinedOn = joinedOn.Format("2006-01-02")
	return m, nil
}

func (r *memberRepository) ListByClub(ctx context.Context, clubID int32) ([]domain.Member, error) {
	query := `SELECT m.id, m.user_id, m.club_id, m.role, m.joined_on, u.nickname, u.email, u.department, u.student_number
	          FROM members m
	          JOIN users u ON u.id = m.user_id
	          WHERE m.club_id = $1
	          ORDER BY m.id`
	return r.list(ctx, query, clubID)
}

func (r *memberRepository) ListByClubAndRole(ctx context.Context, clubID int32, role domain.MemberRole) ([]domain.Member, error) {
	query := `SELECT m.id, m.user_id, m.club_id, m.role, m.joined_on, u.nickname, u.email, u.department, u.student_number
	          FROM members m
	          JOIN users u ON u.id = m.user_id
	          WHERE m.club_id = $1 AND m.role = $2
	          ORDER BY m.id`
	return r.list(ctx, query, clubID, role)
}

func (r *memberRepository) ListByUser(ctx context.Context, userID int32) ([]domain.ClubMembership, error) {
	query := `SELECT c.id, c.name, c.description, c.location, c.logo_img_path, c.main_category, c.sub_category, c.is_recruiting, m.role
	          FROM members m
	          JOIN clubs c ON c.id = m.club_id
	          WHERE m.user_id = $1
	          ORDER BY c.id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memberships := []domain.ClubMembership{}
	for rows.Next() {
		var cm domain.ClubMembership
		c := &cm.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Location, &c.LogoImgPath, &c.MainCategory, &c.SubCategory, &c.IsRecruiting, &cm.Role); err != nil {
			return nil, err
		}
		memberships = append(memberships, cm)
	}
	return memberships, rows.Err()
}

func (r *memberRepository) list(ctx context.Context, query string, args ...any) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		var m domain.Member
		var joinedOn time.Time
		if err := rows.Scan(&m.ID, &m.UserID, &m.ClubID, &m.Role, &joinedOn, &m.Nickname, &m.Email, &m.Department, &m.StudentNumber); err != nil {
			return nil, err
		}
		m.JoinedOn = joinedOn.Format("2006-01-02")
		members = append(members, m)
	}
	return members, rows.Err()
}
