package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/logger"
	"skkuri-backend/internal/metrics"
	"skkuri-backend/internal/repository"
	"skkuri-backend/internal/utils"
)

type membershipService struct {
	clubRepo    repository.ClubRepository
	formRepo    repository.ApplicationFormRepository
	recruitRepo repository.RecruitRepository
	memberRepo  repository.MemberRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
}

func NewMembershipService(
	clubRepo repository.ClubRepository,
	formRepo repository.ApplicationFormRepository,
	recruitRepo repository.RecruitRepository,
	memberRepo repository.MemberRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) MembershipService {
	return &membershipService{
		clubRepo:    clubRepo,
		formRepo:    formRepo,
		recruitRepo: recruitRepo,
		memberRepo:  memberRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
	}
}

// IsManager reports whether userID holds the MANAGER role in clubID. It is
// evaluated against the store on every call and fails closed: lookup errors
// are logged and treated as "not a manager".
func (s *membershipService) IsManager(ctx context.Context, userID, clubID int32) bool {
	m, err := s.memberRepo.Get(ctx, userID, clubID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.ErrorContext(ctx, "Membership lookup failed, denying manager access", "userID", userID, "clubID", clubID, "error", err)
		}
		return false
	}
	return domain.HasRole(m, domain.MemberRoleManager)
}

func (s *membershipService) requireManager(ctx context.Context, actorID, clubID int32, op string) error {
	if !s.IsManager(ctx, actorID, clubID) {
		logger.WarnContext(ctx, "Manager check failed", "operation", op, "userID", actorID, "clubID", clubID)
		return ErrForbidden
	}
	return nil
}

func (s *membershipService) GetForm(ctx context.Context, clubID int32) (*domain.ApplicationForm, error) {
	form, err := s.formRepo.GetByClub(ctx, clubID)
	if err != nil {
		return nil, notFound(err, "application form")
	}
	if strings.TrimSpace(form.Content) == "" {
		return nil, ErrNotFound
	}
	return form, nil
}

func (s *membershipService) Submit(ctx context.Context, userID, clubID int32, content string) (int32, error) {
	logger.EnterMethod("membershipService.Submit", "userID", userID, "clubID", clubID)

	if _, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		logger.ExitMethodWithError("membershipService.Submit", err, "clubID", clubID)
		return 0, notFound(err, "club")
	}

	member, err := s.memberRepo.Get(ctx, userID, clubID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.ExitMethodWithError("membershipService.Submit", err, "userID", userID, "clubID", clubID)
		return 0, err
	}
	if member != nil {
		return 0, ErrAlreadyMember
	}

	pending, err := s.recruitRepo.HasPending(ctx, userID, clubID)
	if err != nil {
		logger.ExitMethodWithError("membershipService.Submit", err, "userID", userID, "clubID", clubID)
		return 0, err
	}
	if pending {
		return 0, ErrAlreadyApplied
	}

	recruit := &domain.Recruit{
		UserID:  userID,
		ClubID:  clubID,
		Content: strings.TrimSpace(content),
		Status:  domain.ApprovalStatusPending,
	}
	if err := s.recruitRepo.Create(ctx, recruit); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return 0, ErrAlreadyApplied
		}
		logger.ExitMethodWithError("membershipService.Submit", err, "userID", userID, "clubID", clubID)
		return 0, err
	}

	logger.ExitMethod("membershipService.Submit", "recruitID", recruit.ID)
	return recruit.ID, nil
}

func (s *membershipService) CreateForm(ctx context.Context, actorID, clubID int32, content string) error {
	if err := s.requireManager(ctx, actorID, clubID, "CreateForm"); err != nil {
		return err
	}

	questions := utils.NormalizeContent(content)
	if questions == "" {
		return invalid("form needs at least one question")
	}

	_, err := s.formRepo.GetByClub(ctx, clubID)
	if err == nil {
		return ErrAlreadyExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if err := s.formRepo.Create(ctx, &domain.ApplicationForm{ClubID: clubID, Content: questions}); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return ErrAlreadyExists
		}
		return err
	}
	logger.InfoContext(ctx, "Application form created", "clubID", clubID, "actorID", actorID)
	return nil
}

func (s *membershipService) DeleteForm(ctx context.Context, actorID, clubID int32) error {
	if err := s.requireManager(ctx, actorID, clubID, "DeleteForm"); err != nil {
		return err
	}
	return s.formRepo.DeleteByClub(ctx, clubID)
}

func (s *membershipService) ListApplicants(ctx context.Context, actorID, clubID int32, status *domain.ApprovalStatus) ([]domain.Recruit, error) {
	if err := s.requireManager(ctx, actorID, clubID, "ListApplicants"); err != nil {
		return nil, err
	}
	return s.recruitRepo.ListByClub(ctx, clubID, status)
}

// Decide approves or denies a pending application. Approval updates the
// recruit and creates the MEMBER row in one transaction.
func (s *membershipService) Decide(ctx context.Context, actorID, clubID, recruitID int32, approve bool) error {
	logger.EnterMethod("membershipService.Decide", "actorID", actorID, "clubID", clubID, "recruitID", recruitID, "approve", approve)

	if err := s.requireManager(ctx, actorID, clubID, "Decide"); err != nil {
		return err
	}

	recruit, err := s.recruitRepo.GetByID(ctx, recruitID)
	if err != nil {
		logger.ExitMethodWithError("membershipService.Decide", err, "recruitID", recruitID)
		return notFound(err, "application")
	}
	if recruit.ClubID != clubID {
		return ErrNotFound
	}
	if recruit.Status.Terminal() {
		return ErrAlreadyDecided
	}

	if approve {
		member := &domain.Member{UserID: recruit.UserID, ClubID: clubID, Role: domain.MemberRoleMember}
		err = s.recruitRepo.Approve(ctx, recruitID, actorID, member)
	} else {
		err = s.recruitRepo.Deny(ctx, recruitID, actorID)
	}
	if err != nil {
		logger.ExitMethodWithError("membershipService.Decide", err, "recruitID", recruitID)
		switch {
		case errors.Is(err, repository.ErrNotPending):
			return ErrAlreadyDecided
		case errors.Is(err, repository.ErrConflict):
			return ErrAlreadyMember
		}
		return err
	}

	logger.InfoContext(ctx, "Application decided", "recruitID", recruitID, "clubID", clubID, "approved", approve, "actorID", actorID)
	metrics.RecordDecision(approve)
	s.notifyDecision(ctx, recruit.UserID, clubID, approve)

	logger.ExitMethod("membershipService.Decide", "recruitID", recruitID)
	return nil
}

// notifyDecision mails the applicant. Failures never fail the decision.
func (s *membershipService) notifyDecision(ctx context.Context, userID, clubID int32, approved bool) {
	if s.emailSvc == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.WarnContext(ctx, "Skipping decision email, applicant lookup failed", "userID", userID, "error", err)
		return
	}
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		logger.WarnContext(ctx, "Skipping decision email, club lookup failed", "clubID", clubID, "error", err)
		return
	}
	if err := s.emailSvc.SendApplicationDecision(ctx, user.Email, user.Nickname, club.Name, approved); err != nil {
		logger.WarnContext(ctx, "Decision email failed", "userID", userID, "clubID", clubID, "error", err)
	}
}

func (s *membershipService) ListMembers(ctx context.Context, actorID, clubID int32) ([]domain.Member, error) {
	if err := s.requireManager(ctx, actorID, clubID, "ListMembers"); err != nil {
		return nil, err
	}
	return s.memberRepo.ListByClub(ctx, clubID)
}

func (s *membershipService) ToggleRecruiting(ctx context.Context, actorID, clubID int32) (domain.RecruitingStatus, error) {
	if err := s.requireManager(ctx, actorID, clubID, "ToggleRecruiting"); err != nil {
		return domain.RecruitingStatus{}, err
	}
	recruiting, err := s.clubRepo.ToggleRecruiting(ctx, clubID)
	if err != nil {
		return domain.RecruitingStatus{}, notFound(err, "club")
	}
	logger.InfoContext(ctx, "Recruiting toggled", "clubID", clubID, "isRecruiting", recruiting, "actorID", actorID)
	return domain.NewRecruitingStatus(recruiting), nil
}
