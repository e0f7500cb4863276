package service_test

import (
	"context"
	"io"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

type MockClubRepo struct{ mock.Mock }

func (m *MockClubRepo) Create(ctx context.Context, c *domain.Club) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClubRepo) CreateMany(ctx context.Context, clubs []domain.Club) error {
	return m.Called(ctx, clubs).Error(0)
}

func (m *MockClubRepo) GetByID(ctx context.Context, id int32) (*domain.Club, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Club)
	return c, args.Error(1)
}

func (m *MockClubRepo) List(ctx context.Context) ([]domain.Club, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]domain.Club)
	return c, args.Error(1)
}

func (m *MockClubRepo) ListRecruiting(ctx context.Context) ([]domain.Club, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]domain.Club)
	return c, args.Error(1)
}

func (m *MockClubRepo) SearchByName(ctx context.Context, name string) ([]domain.Club, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).([]domain.Club)
	return c, args.Error(1)
}

func (m *MockClubRepo) ListByMainCategory(ctx context.Context, main string) ([]domain.Club, error) {
	args := m.Called(ctx, main)
	c, _ := args.Get(0).([]domain.Club)
	return c, args.Error(1)
}

func (m *MockClubRepo) ListByCategory(ctx context.Context, main, sub string) ([]domain.Club, error) {
	args := m.Called(ctx, main, sub)
	c, _ := args.Get(0).([]domain.Club)
	return c, args.Error(1)
}

func (m *MockClubRepo) ListMainCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]string)
	return c, args.Error(1)
}

func (m *MockClubRepo) ListSubCategories(ctx context.Context, main string) ([]string, error) {
	args := m.Called(ctx, main)
	c, _ := args.Get(0).([]string)
	return c, args.Error(1)
}

func (m *MockClubRepo) UpdateDescription(ctx context.Context, id int32, description string) error {
	return m.Called(ctx, id, description).Error(0)
}

func (m *MockClubRepo) ToggleRecruiting(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockFormRepo struct{ mock.Mock }

func (m *MockFormRepo) Create(ctx context.Context, f *domain.ApplicationForm) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFormRepo) GetByClub(ctx context.Context, clubID int32) (*domain.ApplicationForm, error) {
	args := m.Called(ctx, clubID)
	f, _ := args.Get(0).(*domain.ApplicationForm)
	return f, args.Error(1)
}

func (m *MockFormRepo) DeleteByClub(ctx context.Context, clubID int32) error {
	return m.Called(ctx, clubID).Error(0)
}

type MockRecruitRepo struct{ mock.Mock }

func (m *MockRecruitRepo) Create(ctx context.Context, r *domain.Recruit) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRecruitRepo) GetByID(ctx context.Context, id int32) (*domain.Recruit, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*domain.Recruit)
	return r, args.Error(1)
}

func (m *MockRecruitRepo) ListByClub(ctx context.Context, clubID int32, status *domain.ApprovalStatus) ([]domain.Recruit, error) {
	args := m.Called(ctx, clubID, status)
	r, _ := args.Get(0).([]domain.Recruit)
	return r, args.Error(1)
}

func (m *MockRecruitRepo) HasPending(ctx context.Context, userID, clubID int32) (bool, error) {
	args := m.Called(ctx, userID, clubID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecruitRepo) ListPendingCounts(ctx context.Context) (map[int32]int, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).(map[int32]int)
	return c, args.Error(1)
}

func (m *MockRecruitRepo) Deny(ctx context.Context, recruitID, deciderID int32) error {
	return m.Called(ctx, recruitID, deciderID).Error(0)
}

func (m *MockRecruitRepo) Approve(ctx context.Context, recruitID, deciderID int32, member *domain.Member) error {
	return m.Called(ctx, recruitID, deciderID, member).Error(0)
}

type MockMemberRepo struct{ mock.Mock }

func (m *MockMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockMemberRepo) Get(ctx context.Context, userID, clubID int32) (*domain.Member, error) {
	args := m.Called(ctx, userID, clubID)
	mem, _ := args.Get(0).(*domain.Member)
	return mem, args.Error(1)
}

func (m *MockMemberRepo) ListByClub(ctx context.Context, clubID int32) ([]domain.Member, error) {
	args := m.Called(ctx, clubID)
	mem, _ := args.Get(0).([]domain.Member)
	return mem, args.Error(1)
}

func (m *MockMemberRepo) ListByClubAndRole(ctx context.Context, clubID int32, role domain.MemberRole) ([]domain.Member, error) {
	args := m.Called(ctx, clubID, role)
	mem, _ := args.Get(0).([]domain.Member)
	return mem, args.Error(1)
}

func (m *MockMemberRepo) ListByUser(ctx context.Context, userID int32) ([]domain.ClubMembership, error) {
	args := m.Called(ctx, userID)
	mem, _ := args.Get(0).([]domain.ClubMembership)
	return mem, args.Error(1)
}

type MockScheduleRepo struct{ mock.Mock }

func (m *MockScheduleRepo) Create(ctx context.Context, s *domain.Schedule) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockScheduleRepo) GetByID(ctx context.Context, id int32) (*domain.Schedule, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*domain.Schedule)
	return s, args.Error(1)
}

func (m *MockScheduleRepo) ListByClub(ctx context.Context, clubID int32) ([]domain.Schedule, error) {
	args := m.Called(ctx, clubID)
	s, _ := args.Get(0).([]domain.Schedule)
	return s, args.Error(1)
}

func (m *MockScheduleRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

type MockNoticeRepo struct{ mock.Mock }

func (m *MockNoticeRepo) Create(ctx context.Context, n *domain.Notice) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNoticeRepo) GetByID(ctx context.Context, id int32) (*domain.Notice, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*domain.Notice)
	return n, args.Error(1)
}

func (m *MockNoticeRepo) ListByClub(ctx context.Context, clubID int32) ([]domain.Notice, error) {
	args := m.Called(ctx, clubID)
	n, _ := args.Get(0).([]domain.Notice)
	return n, args.Error(1)
}

func (m *MockNoticeRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

type MockArtworkRepo struct{ mock.Mock }

func (m *MockArtworkRepo) Create(ctx context.Context, a *domain.Artwork) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockArtworkRepo) GetByID(ctx context.Context, id int32) (*domain.Artwork, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*domain.Artwork)
	return a, args.Error(1)
}

func (m *MockArtworkRepo) ListByClub(ctx context.Context, clubID int32) ([]domain.Artwork, error) {
	args := m.Called(ctx, clubID)
	a, _ := args.Get(0).([]domain.Artwork)
	return a, args.Error(1)
}

func (m *MockArtworkRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockArtworkRepo) ListStorageKeys(ctx context.Context) (map[string]struct{}, error) {
	args := m.Called(ctx)
	k, _ := args.Get(0).(map[string]struct{})
	return k, args.Error(1)
}

type MockEmailService struct{ mock.Mock }

func (m *MockEmailService) SendApplicationDecision(ctx context.Context, email, nickname, clubName string, approved bool) error {
	return m.Called(ctx, email, nickname, clubName, approved).Error(0)
}

func (m *MockEmailService) SendPendingApplicationsDigest(ctx context.Context, email, nickname, clubName string, pending int) error {
	return m.Called(ctx, email, nickname, clubName, pending).Error(0)
}

type MockAuthorizer struct{ mock.Mock }

func (m *MockAuthorizer) IsManager(ctx context.Context, userID, clubID int32) bool {
	return m.Called(ctx, userID, clubID).Bool(0)
}

type MockStorage struct{ mock.Mock }

func (m *MockStorage) Save(ctx context.Context, ext string, r io.Reader, maxBytes int64) (string, int64, error) {
	args := m.Called(ctx, ext, r, maxBytes)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockStorage) Open(ctx context.Context, key string) (*storage.Object, error) {
	args := m.Called(ctx, key)
	o, _ := args.Get(0).(*storage.Object)
	return o, args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockStorage) List(ctx context.Context) ([]storage.FileInfo, error) {
	args := m.Called(ctx)
	f, _ := args.Get(0).([]storage.FileInfo)
	return f, args.Error(1)
}

func (m *MockStorage) URL(key string) string {
	return "http://localhost:8080/activity/artwork/image/" + key
}
