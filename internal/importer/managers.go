package importer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/logger"
	"skkuri-backend/internal/repository"
	"skkuri-backend/internal/service"
)

var (
	ErrUnknownUser   = errors.New("no user registered with that email")
	ErrUnknownClub   = errors.New("club does not exist")
	ErrAlreadyMember = errors.New("user is already a member of the club")
)

// ManagerSeed groups the repositories GrantManager writes through.
type ManagerSeed struct {
	Users   repository.UserRepository
	Clubs   repository.ClubRepository
	Members repository.MemberRepository
}

// GrantManager seeds a MANAGER membership for a registered user. It is the
// only way a club gets its first manager.
func (s ManagerSeed) GrantManager(ctx context.Context, email string, clubID int32) (*domain.Member, error) {
	email = service.NormalizeEmail(email)
	user, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUser, email)
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.Clubs.GetByID(ctx, clubID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownClub, clubID)
		}
		return nil, err
	}

	m := &domain.Member{UserID: user.ID, ClubID: clubID, Role: domain.MemberRoleManager}
	if err := s.Members.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%w: %s in club %d", ErrAlreadyMember, email, clubID)
		}
		return nil, err
	}
	logger.Info("Manager granted", "userID", user.ID, "clubID", clubID, "memberID", m.ID)
	return m, nil
}
