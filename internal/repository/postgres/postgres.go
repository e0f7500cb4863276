package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"skkuri-backend/internal/repository"

	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

// Store bundles every repository over a single connection pool. Each call
// borrows a connection for its own duration only.
type Store struct {
	repository.UserRepository
	repository.ClubRepository
	repository.ApplicationFormRepository
	repository.RecruitRepository
	repository.MemberRepository
	repository.ScheduleRepository
	repository.NoticeRepository
	repository.ArtworkRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		UserRepository:            NewUserRepository(db),
		ClubRepository:            NewClubRepository(db),
		ApplicationFormRepository: NewApplicationFormRepository(db),
		RecruitRepository:         NewRecruitRepository(db),
		MemberRepository:          NewMemberRepository(db),
		ScheduleRepository:        NewScheduleRepository(db),
		NoticeRepository:          NewNoticeRepository(db),
		ArtworkRepository:         NewArtworkRepository(db),
	}
}

// requireRow turns a zero-row update or delete into sql.ErrNoRows.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern that matches s literally anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// translateErr maps unique violations to repository.ErrConflict and leaves
// every other error untouched.
func translateErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", repository.ErrConflict, pqErr.Constraint)
	}
	return err
}
