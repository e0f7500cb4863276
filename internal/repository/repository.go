package repository

import (
	"context"

	"skkuri-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type ClubRepository interface {
	Create(ctx context.Context, club *domain.Club) error
	// CreateMany inserts all clubs or none of them.
	CreateMany(ctx context.Context, clubs []domain.Club) error
	GetByID(ctx context.Context, id int32) (*domain.Club, error)
	List(ctx context.Context) ([]domain.Club, error)
	ListRecruiting(ctx context.Context) ([]domain.Club, error)
	SearchByName(ctx context.Context, name string) ([]domain.Club, error)
	ListByMainCategory(ctx context.Context, main string) ([]domain.Club, error)
	ListByCategory(ctx context.Context, main, sub string) ([]domain.Club, error)
	ListMainCategories(ctx context.Context) ([]string, error)
	ListSubCategories(ctx context.Context, main string) ([]string, error)
	UpdateDescription(ctx context.Context, id int32, description string) error
	// ToggleRecruiting flips the flag and returns the new value.
	ToggleRecruiting(ctx context.Context, id int32) (bool, error)
}

type ApplicationFormRepository interface {
	Create(ctx context.Context, form *domain.ApplicationForm) error
	GetByClub(ctx context.Context, clubID int32) (*domain.ApplicationForm, error)
	DeleteByClub(ctx context.Context, clubID int32) error
}

type RecruitRepository interface {
	Create(ctx context.Context, recruit *domain.Recruit) error
	GetByID(ctx context.Context, id int32) (*domain.Recruit, error)
	ListByClub(ctx context.Context, clubID int32, status *domain.ApprovalStatus) ([]domain.Recruit, error)
	HasPending(ctx context.Context, userID, clubID int32) (bool, error)
	ListPendingCounts(ctx context.Context) (map[int32]int, error)
	// Deny marks a pending recruit as denied.
	Deny(ctx context.Context, recruitID, deciderID int32) error
	// Approve marks a pending recruit as approved and creates the member row
	// in the same transaction.
	Approve(ctx context.Context, recruitID, deciderID int32, member *domain.Member) error
}

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	Get(ctx context.Context, userID, clubID int32) (*domain.Member, error)
	ListByClub(ctx context.Context, clubID int32) ([]domain.Member, error)
	ListByClubAndRole(ctx context.Context, clubID int32, role domain.MemberRole) ([]domain.Member, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.ClubMembership, error)
}

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) error
	GetByID(ctx context.Context, id int32) (*domain.Schedule, error)
	ListByClub(ctx context.Context, clubID int32) ([]domain.Schedule, error)
	Delete(ctx context.Context, id int32) error
}

type NoticeRepository interface {
	Create(ctx context.Context, notice *domain.Notice) error
	GetByID(ctx context.Context, id int32) (*domain.Notice, error)
	ListByClub(ctx context.Context, clubID int32) ([]domain.Notice, error)
	Delete(ctx context.Context, id int32) error
}

type ArtworkRepository interface {
	Create(ctx context.Context, artwork *domain.Artwork) error
	GetByID(ctx context.Context, id int32) (*domain.Artwork, error)
	ListByClub(ctx context.Context, clubID int32) ([]domain.Artwork, error)
	Delete(ctx context.Context, id int32) error
	// ListStorageKeys returns every storage key referenced by an artwork.
	ListStorageKeys(ctx context.Context) (map[string]struct{}, error)
}
