package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/logger"
	"skkuri-backend/internal/repository"
	"skkuri-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 4
	// bcrypt rejects longer inputs.
	maxPasswordBytes = 72
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
	tokenTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager, tokenTTL time.Duration) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		tokenTTL: tokenTTL,
	}
}

// NormalizeEmail is the canonical form emails are stored and compared in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (int32, error) {
	email := NormalizeEmail(input.Email)
	if email == "" {
		return 0, invalid("email is required")
	}
	if len(input.Password) < minPasswordLength {
		return 0, invalid("password must be at least %d characters", minPasswordLength)
	}
	if len(input.Password) > maxPasswordBytes {
		return 0, invalid("password must be at most %d bytes", maxPasswordBytes)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}
	if existing != nil {
		return 0, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:         email,
		PasswordHash:  string(hash),
		Nickname:      strings.TrimSpace(input.Nickname),
		Department:    strings.TrimSpace(input.Department),
		StudentNumber: strings.TrimSpace(input.StudentNumber),
		PhoneNumber:   strings.TrimSpace(input.PhoneNumber),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}

	logger.Info("User registered", "userID", user.ID)
	return user.ID, nil
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// equalizeTiming burns one bcrypt comparison so unknown emails cost the same as wrong passwords.
func equalizeTiming(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("timing-equalizer"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			equalizeTiming(password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) IssueToken(userID int32, email string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.tokenTTL
	}
	return s.tokens.GenerateAccessToken(userID, email, ttl)
}

func (s *authService) VerifyToken(token string) (*Identity, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return &Identity{UserID: claims.UserID, Email: claims.Email()}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	return s.IssueToken(user.ID, user.Email, s.tokenTTL)
}
