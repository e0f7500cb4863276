package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/repository"
)

type userService struct {
	userRepo   repository.UserRepository
	memberRepo repository.MemberRepository
}

func NewUserService(userRepo repository.UserRepository, memberRepo repository.MemberRepository) UserService {
	return &userService{userRepo: userRepo, memberRepo: memberRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int32, input ProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "user")
	}

	if email := NormalizeEmail(input.Email); email != "" && email != user.Email {
		other, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		if other != nil && other.ID != userID {
			return nil, ErrDuplicateEmail
		}
		user.Email = email
	}
	user.Nickname = strings.TrimSpace(input.Nickname)
	user.Department = strings.TrimSpace(input.Department)
	user.StudentNumber = strings.TrimSpace(input.StudentNumber)
	user.PhoneNumber = strings.TrimSpace(input.PhoneNumber)

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrDuplicateEmail
		}
		return nil, notFound(err, "user")
	}
	return user, nil
}

func (s *userService) ListMyClubs(ctx context.Context, userID int32) ([]domain.ClubMembership, error) {
	return s.memberRepo.ListByUser(ctx, userID)
}
