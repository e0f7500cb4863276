package service

import (
	"context"
	"strings"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/repository"
)

type directoryService struct {
	clubRepo repository.ClubRepository
}

func NewDirectoryService(clubRepo repository.ClubRepository) DirectoryService {
	return &directoryService{clubRepo: clubRepo}
}

func (s *directoryService) ListClubs(ctx context.Context) ([]domain.Club, error) {
	return s.clubRepo.List(ctx)
}

func (s *directoryService) ListRecruiting(ctx context.Context) ([]domain.Club, error) {
	return s.clubRepo.ListRecruiting(ctx)
}

func (s *directoryService) GetClub(ctx context.Context, clubID int32) (*domain.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, notFound(err, "club")
	}
	return club, nil
}

// SearchByName matches name as a case-insensitive substring.
func (s *directoryService) SearchByName(ctx context.Context, name string) ([]domain.Club, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("search name is required")
	}
	return s.clubRepo.SearchByName(ctx, name)
}

func (s *directoryService) ListByMainCategory(ctx context.Context, main string) ([]domain.Club, error) {
	return s.clubRepo.ListByMainCategory(ctx, strings.TrimSpace(main))
}

func (s *directoryService) ListByCategory(ctx context.Context, main, sub string) ([]domain.Club, error) {
	return s.clubRepo.ListByCategory(ctx, strings.TrimSpace(main), strings.TrimSpace(sub))
}

func (s *directoryService) ListMainCategories(ctx context.Context) ([]string, error) {
	return s.clubRepo.ListMainCategories(ctx)
}

func (s *directoryService) ListSubCategories(ctx context.Context, main string) ([]string, error) {
	return s.clubRepo.ListSubCategories(ctx, strings.TrimSpace(main))
}
