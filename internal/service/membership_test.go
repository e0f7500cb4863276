package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/repository"
	"skkuri-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	clubID    = int32(1)
	managerID = int32(10)
	memberID  = int32(20)
	outsider  = int32(30)
)

type membershipFixture struct {
	clubs    *MockClubRepo
	forms    *MockFormRepo
	recruits *MockRecruitRepo
	members  *MockMemberRepo
	users    *MockUserRepo
	email    *MockEmailService
	svc      service.MembershipService
}

func newMembershipFixture(ctx context.Context) *membershipFixture {
	f := &membershipFixture{
		clubs:    new(MockClubRepo),
		forms:    new(MockFormRepo),
		recruits: new(MockRecruitRepo),
		members:  new(MockMemberRepo),
		users:    new(MockUserRepo),
		email:    new(MockEmailService),
	}
	f.svc = service.NewMembershipService(f.clubs, f.forms, f.recruits, f.members, f.users, f.email)

	f.members.On("Get", ctx, managerID, clubID).Return(&domain.Member{ID: 1, UserID: managerID, ClubID: clubID, Role: domain.MemberRoleManager}, nil).Maybe()
	f.members.On("Get", ctx, memberID, clubID).Return(&domain.Member{ID: 2, UserID: memberID, ClubID: clubID, Role: domain.MemberRoleMember}, nil).Maybe()
	f.members.On("Get", ctx, outsider, clubID).Return(nil, sql.ErrNoRows).Maybe()
	return f
}

func TestMembershipService_IsManager(t *testing.T) {
	ctx := context.Background()
	f := newMembershipFixture(ctx)
	f.members.On("Get", ctx, managerID, int32(99)).Return(nil, sql.ErrNoRows)
	f.members.On("Get", ctx, int32(40), clubID).Return(nil, errors.New("db down"))

	assert.True(t, f.svc.IsManager(ctx, managerID, clubID))
	assert.False(t, f.svc.IsManager(ctx, memberID, clubID), "member but not manager")
	assert.False(t, f.svc.IsManager(ctx, outsider, clubID), "not a member")
	assert.False(t, f.svc.IsManager(ctx, managerID, 99), "manager of another club only")
	assert.False(t, f.svc.IsManager(ctx, 40, clubID), "lookup failure fails closed")
}

func TestMembershipService_FormSubmitDecideFlow(t *testing.T) {
	ctx := context.Background()
	f := newMembershipFixture(ctx)
	club := &domain.Club{ID: clubID, Name: "Chess Club"}

	// manager creates the form
	f.forms.On("GetByClub", ctx, clubID).Return(nil, sql.ErrNoRows).Once()
	f.forms.On("Create", ctx, mock.MatchedBy(func(form *domain.ApplicationForm) bool {
		return form.ClubID == clubID && form.Content == "Q1,Q2"
	})).Return(nil).Once()
	require.NoError(t, f.svc.CreateForm(ctx, managerID, clubID, "Q1, Q2"))

	// applicant submits
	f.clubs.On("GetByID", ctx, clubID).Return(club, nil)
	f.recruits.On("HasPending", ctx, outsider, clubID).Return(false, nil).Once()
	f.recruits.On("Create", ctx, mock.MatchedBy(func(r *domain.Recruit) bool {
		return r.UserID == outsider && r.ClubID == clubID && r.Content == "ans1,ans2" && r.Status == domain.ApprovalStatusPending
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Recruit).ID = 5
	}).Return(nil).Once()

	recruitID, err := f.svc.Submit(ctx, outsider, clubID, "ans1,ans2")
	require.NoError(t, err)
	assert.Equal(t, int32(5), recruitID)

	// manager lists applicants
	pending := domain.Recruit{ID: 5, UserID: outsider, ClubID: clubID, Content: "ans1,ans2", Status: domain.ApprovalStatusPending}
	f.recruits.On("ListByClub", ctx, clubID, (*domain.ApprovalStatus)(nil)).Return([]domain.Recruit{pending}, nil).Once()
	applicants, err := f.svc.ListApplicants(ctx, managerID, clubID, nil)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, domain.ApprovalStatusPending, applicants[0].Status)

	// manager approves
	var created *domain.Member
	f.recruits.On("GetByID", ctx, int32(5)).Return(&pending, nil).Once()
	f.recruits.On("Approve", ctx, int32(5), managerID, mock.MatchedBy(func(m *domain.Member) bool {
		return m.UserID == outsider && m.ClubID == clubID && m.Role == domain.MemberRoleMember
	})).Run(func(args mock.Arguments) {
		created = args.Get(3).(*domain.Member)
		created.ID = 3
	}).Return(nil).Once()
	f.users.On("GetByID", ctx, outsider).Return(&domain.User{ID: outsider, Email: "u@x.edu", Nickname: "U"}, nil).Once()
	f.email.On("SendApplicationDecision", ctx, "u@x.edu", "U", "Chess Club", true).Return(nil).Once()

	require.NoError(t, f.svc.Decide(ctx, managerID, clubID, 5, true))
	require.NotNil(t, created)

	f.members.On("ListByClub", ctx, clubID).Return([]domain.Member{
		{ID: 1, UserID: managerID, ClubID: clubID, Role: domain.MemberRoleManager},
		*created,
	}, nil).Once()
	members, err := f.svc.ListMembers(ctx, managerID, clubID)
	require.NoError(t, err)
	assert.Contains(t, members, domain.Member{ID: 3, UserID: outsider, ClubID: clubID, Role: domain.MemberRoleMember})

	f.forms.AssertExpectations(t)
	f.recruits.AssertExpectations(t)
	f.email.AssertExpectations(t)
}

func TestMembershipService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("AlreadyMember", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		f.clubs.On("GetByID", ctx, clubID).Return(&domain.Club{ID: clubID}, nil)

		_, err := f.svc.Submit(ctx, memberID, clubID, "ans")
		assert.ErrorIs(t, err, service.ErrAlreadyMember)
		f.recruits.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("AlreadyApplied", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		f.clubs.On("GetByID", ctx, clubID).Return(&domain.Club{ID: clubID}, nil)
		f.recruits.On("HasPending", ctx, outsider, clubID).Return(true, nil)

		_, err := f.svc.Submit(ctx, outsider, clubID, "ans")
		assert.ErrorIs(t, err, service.ErrAlreadyApplied)
	})

	t.Run("PendingRaceOnInsert", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		f.clubs.On("GetByID", ctx, clubID).Return(&domain.Club{ID: clubID}, nil)
		f.recruits.On("HasPending", ctx, outsider, clubID).Return(false, nil)
		f.recruits.On("Create", ctx, mock.Anything).Return(repository.ErrConflict)

		_, err := f.svc.Submit(ctx, outsider, clubID, "ans")
		assert.ErrorIs(t, err, service.ErrAlreadyApplied)
	})

	t.Run("UnknownClub", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		f.clubs.On("GetByID", ctx, int32(99)).Return(nil, sql.ErrNoRows)

		_, err := f.svc.Submit(ctx, outsider, 99, "ans")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestMembershipService_Forms(t *testing.T) {
	ctx := context.Background()

	t.Run("AlreadyExists", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		f.forms.On("GetByClub", ctx, clubID).Return(&domain.ApplicationForm{ID: 1, ClubID: clubID, Content: "Q1"}, nil)

		err := f.svc.CreateForm(ctx, managerID, clubID, "Q1,Q2")
		assert.ErrorIs(t, err, service.ErrAlreadyExists)
		f.forms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("NonManagerForbidden", func(t *testing.T) {
		f := newMembershipFixture(ctx)

		assert.ErrorIs(t, f.svc.CreateForm(ctx, memberID, clubID, "Q1"), service.ErrForbidden)
		assert.ErrorIs(t, f.svc.DeleteForm(ctx, outsider, clubID), service.ErrForbidden)
		f.forms.AssertNotCalled(t, "GetByClub", mock.Anything, mock.Anything)
		f.forms.AssertNotCalled(t, "DeleteByClub", mock.Anything, mock.Anything)
	})

	t.Run("DeleteMissingFormSucceeds", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		f.forms.On("DeleteByClub", ctx, clubID).Return(nil)

		assert.NoError(t, f.svc.DeleteForm(ctx, managerID, clubID))
	})

	t.Run("GetFormMissing", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		f.forms.On("GetByClub", ctx, clubID).Return(nil, sql.ErrNoRows)

		_, err := f.svc.GetForm(ctx, clubID)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("EmptyQuestions", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		assert.ErrorIs(t, f.svc.CreateForm(ctx, managerID, clubID, " , "), service.ErrInvalidInput)
	})
}

func TestMembershipService_Decide(t *testing.T) {
	ctx := context.Background()
	pending := func() *domain.Recruit {
		return &domain.Recruit{ID: 5, UserID: outsider, ClubID: clubID, Status: domain.ApprovalStatusPending}
	}

	t.Run("DenyCreatesNoMember", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		f.recruits.On("GetByID", ctx, int32(5)).Return(pending(), nil)
		f.recruits.On("Deny", ctx, int32(5), managerID).Return(nil)
		f.users.On("GetByID", ctx, outsider).Return(&domain.User{ID: outsider, Email: "u@x.edu", Nickname: "U"}, nil)
		f.clubs.On("GetByID", ctx, clubID).Return(&domain.Club{ID: clubID, Name: "Chess Club"}, nil)
		f.email.On("SendApplicationDecision", ctx, "u@x.edu", "U", "Chess Club", false).Return(nil)

		require.NoError(t, f.svc.Decide(ctx, managerID, clubID, 5, false))
		f.recruits.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.members.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("NonManagerForbidden", func(t *testing.T) {
		f := newMembershipFixture(ctx)

		err := f.svc.Decide(ctx, memberID, clubID, 5, true)
		assert.ErrorIs(t, err, service.ErrForbidden)
		f.recruits.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("RecruitOfOtherClub", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		other := pending()
		other.ClubID = 2
		f.recruits.On("GetByID", ctx, int32(5)).Return(other, nil)

		assert.ErrorIs(t, f.svc.Decide(ctx, managerID, clubID, 5, true), service.ErrNotFound)
	})

	t.Run("UnknownRecruit", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		f.recruits.On("GetByID", ctx, int32(404)).Return(nil, sql.ErrNoRows)

		assert.ErrorIs(t, f.svc.Decide(ctx, managerID, clubID, 404, true), service.ErrNotFound)
	})

	t.Run("AlreadyDecided", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		denied := pending()
		denied.Status = domain.ApprovalStatusDenied
		f.recruits.On("GetByID", ctx, int32(5)).Return(denied, nil)

		assert.ErrorIs(t, f.svc.Decide(ctx, managerID, clubID, 5, true), service.ErrAlreadyDecided)
	})

	t.Run("LostRaceIsAlreadyDecided", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		f.recruits.On("GetByID", ctx, int32(5)).Return(pending(), nil)
		f.recruits.On("Approve", ctx, int32(5), managerID, mock.Anything).Return(repository.ErrNotPending)

		assert.ErrorIs(t, f.svc.Decide(ctx, managerID, clubID, 5, true), service.ErrAlreadyDecided)
		f.email.AssertNotCalled(t, "SendApplicationDecision", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ApproveFailureSendsNothing", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		f.recruits.On("GetByID", ctx, int32(5)).Return(pending(), nil)
		f.recruits.On("Approve", ctx, int32(5), managerID, mock.Anything).Return(errors.New("insert failed"))

		err := f.svc.Decide(ctx, managerID, clubID, 5, true)
		assert.EqualError(t, err, "insert failed")
		f.email.AssertNotCalled(t, "SendApplicationDecision", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("EmailFailureDoesNotFailDecision", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		f.recruits.On("GetByID", ctx, int32(5)).Return(pending(), nil)
		f.recruits.On("Approve", ctx, int32(5), managerID, mock.Anything).Return(nil)
		f.users.On("GetByID", ctx, outsider).Return(&domain.User{ID: outsider, Email: "u@x.edu"}, nil)
		f.clubs.On("GetByID", ctx, clubID).Return(&domain.Club{ID: clubID, Name: "Chess Club"}, nil)
		f.email.On("SendApplicationDecision", ctx, "u@x.edu", "", "Chess Club", true).Return(errors.New("smtp down"))

		assert.NoError(t, f.svc.Decide(ctx, managerID, clubID, 5, true))
	})
}

func TestMembershipService_ToggleRecruiting(t *testing.T) {
	ctx := context.Background()

	t.Run("NonManagerLeavesFlagUnchanged", func(t *testing.T) {
		f := newMembershipFixture(ctx)

		_, err := f.svc.ToggleRecruiting(ctx, memberID, clubID)
		assert.ErrorIs(t, err, service.ErrForbidden)
		f.clubs.AssertNotCalled(t, "ToggleRecruiting", mock.Anything, mock.Anything)
	})

	t.Run("Manager", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		f.clubs.On("ToggleRecruiting", ctx, clubID).Return(true, nil)

		status, err := f.svc.ToggleRecruiting(ctx, managerID, clubID)
		require.NoError(t, err)
		assert.True(t, status.IsRecruiting)
		assert.Equal(t, "club recruiting has started", status.Message)
	})

	t.Run("ClubVanished", func(t *testing.T) {
		f := newMembershipFixture(ctx)
		f.clubs.On("ToggleRecruiting", ctx, clubID).Return(false, sql.ErrNoRows)

		_, err := f.svc.ToggleRecruiting(ctx, managerID, clubID)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestMembershipService_ManagerOnlyListings(t *testing.T) {
	ctx := context.Background()
	f := newMembershipFixture(ctx)

	_, err := f.svc.ListApplicants(ctx, outsider, clubID, nil)
	assert.ErrorIs(t, err, service.ErrForbidden)

	_, err = f.svc.ListMembers(ctx, memberID, clubID)
	assert.ErrorIs(t, err, service.ErrForbidden)

	approved := domain.ApprovalStatusApproved
	f.recruits.On("ListByClub", ctx, clubID, &approved).Return([]domain.Recruit{}, nil)
	recruits, err := f.svc.ListApplicants(ctx, managerID, clubID, &approved)
	require.NoError(t, err)
	assert.Empty(t, recruits)
}
