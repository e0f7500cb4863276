package service

import (
	"context"
	"io"
	"time"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/storage"
)

// Identity is the verified subject of a bearer token.
type Identity struct {
	UserID int32
	Email  string
}

type RegisterInput struct {
	Email         string
	Password      string
	Nickname      string
	Department    string
	StudentNumber string
	PhoneNumber   string
}

type ProfileInput struct {
	Email         string
	Nickname      string
	Department    string
	StudentNumber string
	PhoneNumber   string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (int32, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	IssueToken(userID int32, email string, ttl time.Duration) (string, error)
	VerifyToken(token string) (*Identity, error)
	// Login authenticates and issues a token with the configured lifetime.
	Login(ctx context.Context, email, password string) (string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, input ProfileInput) (*domain.User, error)
	ListMyClubs(ctx context.Context, userID int32) ([]domain.ClubMembership, error)
}

// Authorizer answers the manager check that gates every mutating club operation.
type Authorizer interface {
	IsManager(ctx context.Context, userID, clubID int32) bool
}

type MembershipService interface {
	Authorizer
	GetForm(ctx context.Context, clubID int32) (*domain.ApplicationForm, error)
	Submit(ctx context.Context, userID, clubID int32, content string) (int32, error)
	CreateForm(ctx context.Context, actorID, clubID int32, content string) error
	DeleteForm(ctx context.Context, actorID, clubID int32) error
	ListApplicants(ctx context.Context, actorID, clubID int32, status *domain.ApprovalStatus) ([]domain.Recruit, error)
	Decide(ctx context.Context, actorID, clubID, recruitID int32, approve bool) error
	ListMembers(ctx context.Context, actorID, clubID int32) ([]domain.Member, error)
	ToggleRecruiting(ctx context.Context, actorID, clubID int32) (domain.RecruitingStatus, error)
}

type DirectoryService interface {
	ListClubs(ctx context.Context) ([]domain.Club, error)
	ListRecruiting(ctx context.Context) ([]domain.Club, error)
	GetClub(ctx context.Context, clubID int32) (*domain.Club, error)
	SearchByName(ctx context.Context, name string) ([]domain.Club, error)
	ListByMainCategory(ctx context.Context, main string) ([]domain.Club, error)
	ListByCategory(ctx context.Context, main, sub string) ([]domain.Club, error)
	ListMainCategories(ctx context.Context) ([]string, error)
	ListSubCategories(ctx context.Context, main string) ([]string, error)
}

type ArtworkUpload struct {
	Title       string
	Content     string
	FileName    string
	ContentType string
	Body        io.Reader
}

type ActivityService interface {
	ListSchedules(ctx context.Context, clubID int32) ([]domain.Schedule, error)
	CreateSchedule(ctx context.Context, actorID, clubID int32, content string, date time.Time) (*domain.Schedule, error)
	DeleteSchedule(ctx context.Context, actorID, clubID, scheduleID int32) error

	ListNotices(ctx context.Context, clubID int32) ([]domain.Notice, error)
	CreateNotice(ctx context.Context, actorID, clubID int32, title, content string) (*domain.Notice, error)
	DeleteNotice(ctx context.Context, actorID, clubID, noticeID int32) error

	ListArtworks(ctx context.Context, clubID int32) ([]domain.Artwork, error)
	CreateArtwork(ctx context.Context, actorID, clubID int32, upload ArtworkUpload) (*domain.Artwork, error)
	DeleteArtwork(ctx context.Context, actorID, clubID, artworkID int32) error
	OpenArtworkImage(ctx context.Context, name string) (*storage.Object, error)

	GetDescription(ctx context.Context, clubID int32) (string, error)
	UpdateDescription(ctx context.Context, actorID, clubID int32, description string) error
}

type EmailService interface {
	SendApplicationDecision(ctx context.Context, email, nickname, clubName string, approved bool) error
	SendPendingApplicationsDigest(ctx context.Context, email, nickname, clubName string, pending int) error
}
