package postgres

import (
	"context"
	"database/sql"
	"time"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/logger"
	"skkuri-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password_hash, nickname, department, student_number, phone_number, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	logger.DatabaseCall("INSERT", "users", "email", u.Email)
	err := r.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.Nickname, u.Department, u.StudentNumber, u.PhoneNumber, now, now).Scan(&u.ID)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "email", u.Email)
		return translateErr(err)
	}
	u.CreatedOn = now.Format("2006-01-02")
	u.UpdatedOn = u.CreatedOn
	logger.DatabaseResult("INSERT", 1, nil, "userID", u.ID)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT id, email, password_hash, nickname, department, student_number, phone_number, created_on, updated_on FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, nickname, department, student_number, phone_number, created_on, updated_on FROM users WHERE LOWER(email) = LOWER($1)`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email=$1, nickname=$2, department=$3, student_number=$4, phone_number=$5, updated_on=$6 WHERE id=$7`
	now := time.Now()
	logger.DatabaseCall("UPDATE", "users", "userID", u.ID)
	res, err := r.db.ExecContext(ctx, query, u.Email, u.Nickname, u.Department, u.StudentNumber, u.PhoneNumber, now, u.ID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "userID", u.ID)
		return translateErr(err)
	}
	u.UpdatedOn = now.Format("2006-01-02")
	return requireRow(res)
}

func (r *userRepository) scanOne(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	var createdOn, updatedOn time.Time
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Nickname, &u.Department, &u.StudentNumber, &u.PhoneNumber, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	u.UpdatedOn = updatedOn.Format("2006-01-02")
	return u, nil
}
