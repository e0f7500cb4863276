package http

import (
	"context"
	"time"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/service"
	"skkuri-backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Register(ctx context.Context, input service.RegisterInput) (int32, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *MockAuthService) IssueToken(userID int32, email string, ttl time.Duration) (string, error) {
	args := m.Called(userID, email, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) VerifyToken(token string) (*service.Identity, error) {
	args := m.Called(token)
	id, _ := args.Get(0).(*service.Identity)
	return id, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID int32, input service.ProfileInput) (*domain.User, error) {
	args := m.Called(ctx, userID, input)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *MockUserService) ListMyClubs(ctx context.Context, userID int32) ([]domain.ClubMembership, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).([]domain.ClubMembership)
	return c, args.Error(1)
}

type MockMembershipService struct{ mock.Mock }

func (m *MockMembershipService) IsManager(ctx context.Context, userID, clubID int32) bool {
	return m.Called(ctx, userID, clubID).Bool(0)
}

func (m *MockMembershipService) GetForm(ctx context.Context, clubID int32) (*domain.ApplicationForm, error) {
	args := m.Called(ctx, clubID)
	f, _ := args.Get(0).(*domain.ApplicationForm)
	return f, args.Error(1)
}

func (m *MockMembershipService) Submit(ctx context.Context, userID, clubID int32, content string) (int32, error) {
	args := m.Called(ctx, userID, clubID, content)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockMembershipService) CreateForm(ctx context.Context, actorID, clubID int32, content string) error {
	return m.Called(ctx, actorID, clubID, content).Error(0)
}

func (m *MockMembershipService) DeleteForm(ctx context.Context, actorID, clubID int32) error {
	return m.Called(ctx, actorID, clubID).Error(0)
}

func (m *MockMembershipService) ListApplicants(ctx context.Context, actorID, clubID int32, status *domain.ApprovalStatus) ([]domain.Recruit, error) {
	args := m.Called(ctx, actorID, clubID, status)
	r, _ := args.Get(0).([]domain.Recruit)
	return r, args.Error(1)
}

func (m *MockMembershipService) Decide(ctx context.Context, actorID, clubID, recruitID int32, approve bool) error {
	return m.Called(ctx, actorID, clubID, recruitID, approve).Error(0)
}

func (m *MockMembershipService) ListMembers(ctx context.Context, actorID, clubID int32) ([]domain.Member, error) {
	args := m.Called(ctx, actorID, clubID)
	r, _ := args.Get(0).([]domain.Member)
	return r, args.Error(1)
}

func (m *MockMembershipService) ToggleRecruiting(ctx context.Context, actorID, clubID int32) (domain.RecruitingStatus, error) {
	args := m.Called(ctx, actorID, clubID)
	return args.Get(0).(domain.RecruitingStatus), args.Error(1)
}

type MockDirectoryService struct{ mock.Mock }

func (m *MockDirectoryService) clubs(args mock.Arguments) ([]domain.Club, error) {
	c, _ := args.Get(0).([]domain.Club)
	return c, args.Error(1)
}

func (m *MockDirectoryService) ListClubs(ctx context.Context) ([]domain.Club, error) {
	return m.clubs(m.Called(ctx))
}

func (m *MockDirectoryService) ListRecruiting(ctx context.Context) ([]domain.Club, error) {
	return m.clubs(m.Called(ctx))
}

func (m *MockDirectoryService) GetClub(ctx context.Context, clubID int32) (*domain.Club, error) {
	args := m.Called(ctx, clubID)
	c, _ := args.Get(0).(*domain.Club)
	return c, args.Error(1)
}

func (m *MockDirectoryService) SearchByName(ctx context.Context, name string) ([]domain.Club, error) {
	return m.clubs(m.Called(ctx, name))
}

func (m *MockDirectoryService) ListByMainCategory(ctx context.Context, main string) ([]domain.Club, error) {
	return m.clubs(m.Called(ctx, main))
}

func (m *MockDirectoryService) ListByCategory(ctx context.Context, main, sub string) ([]domain.Club, error) {
	return m.clubs(m.Called(ctx, main, sub))
}

func (m *MockDirectoryService) ListMainCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]string)
	return s, args.Error(1)
}

func (m *MockDirectoryService) ListSubCategories(ctx context.Context, main string) ([]string, error) {
	args := m.Called(ctx, main)
	s, _ := args.Get(0).([]string)
	return s, args.Error(1)
}

type MockActivityService struct{ mock.Mock }

func (m *MockActivityService) ListSchedules(ctx context.Context, clubID int32) ([]domain.Schedule, error) {
	args := m.Called(ctx, clubID)
	s, _ := args.Get(0).([]domain.Schedule)
	return s, args.Error(1)
}

func (m *MockActivityService) CreateSchedule(ctx context.Context, actorID, clubID int32, content string, date time.Time) (*domain.Schedule, error) {
	args := m.Called(ctx, actorID, clubID, content, date)
	s, _ := args.Get(0).(*domain.Schedule)
	return s, args.Error(1)
}

func (m *MockActivityService) DeleteSchedule(ctx context.Context, actorID, clubID, scheduleID int32) error {
	return m.Called(ctx, actorID, clubID, scheduleID).Error(0)
}

func (m *MockActivityService) ListNotices(ctx context.Context, clubID int32) ([]domain.Notice, error) {
	args := m.Called(ctx, clubID)
	n, _ := args.Get(0).([]domain.Notice)
	return n, args.Error(1)
}

func (m *MockActivityService) CreateNotice(ctx context.Context, actorID, clubID int32, title, content string) (*domain.Notice, error) {
	args := m.Called(ctx, actorID, clubID, title, content)
	n, _ := args.Get(0).(*domain.Notice)
	return n, args.Error(1)
}

func (m *MockActivityService) DeleteNotice(ctx context.Context, actorID, clubID, noticeID int32) error {
	return m.Called(ctx, actorID, clubID, noticeID).Error(0)
}

func (m *MockActivityService) ListArtworks(ctx context.Context, clubID int32) ([]domain.Artwork, error) {
	args := m.Called(ctx, clubID)
	a, _ := args.Get(0).([]domain.Artwork)
	return a, args.Error(1)
}

func (m *MockActivityService) CreateArtwork(ctx context.Context, actorID, clubID int32, upload service.ArtworkUpload) (*domain.Artwork, error) {
	args := m.Called(ctx, actorID, clubID, upload)
	a, _ := args.Get(0).(*domain.Artwork)
	return a, args.Error(1)
}

func (m *MockActivityService) DeleteArtwork(ctx context.Context, actorID, clubID, artworkID int32) error {
	return m.Called(ctx, actorID, clubID, artworkID).Error(0)
}

func (m *MockActivityService) OpenArtworkImage(ctx context.Context, name string) (*storage.Object, error) {
	args := m.Called(ctx, name)
	o, _ := args.Get(0).(*storage.Object)
	return o, args.Error(1)
}

func (m *MockActivityService) GetDescription(ctx context.Context, clubID int32) (string, error) {
	args := m.Called(ctx, clubID)
	return args.String(0), args.Error(1)
}

func (m *MockActivityService) UpdateDescription(ctx context.Context, actorID, clubID int32, description string) error {
	return m.Called(ctx, actorID, clubID, description).Error(0)
}
