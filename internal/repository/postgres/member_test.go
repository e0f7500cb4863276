package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"skkuri-backend/internal/domain"
	"skkuri-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewMemberRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, club_id, role, joined_on FROM members WHERE user_id = \\$1 AND club_id = \\$2").
			WithArgs(int32(1), int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "club_id", "role", "joined_on"}).
				AddRow(4, 1, 2, "MANAGER", time.Now()))

		m, err := repo.Get(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, domain.MemberRoleManager, m.Role)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("FROM members WHERE user_id").
			WithArgs(int32(1), int32(3)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(ctx, 1, 3)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepository_ListByClub(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewMemberRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "club_id", "role", "joined_on", "nickname", "email", "department", "student_number"}).
		AddRow(1, 10, 2, "MANAGER", time.Now(), "Lee", "lee@x.edu", "CS", "2020001").
		AddRow(2, 11, 2, "MEMBER", time.Now(), "Park", "park@x.edu", "EE", "2023002")
	mock.ExpectQuery("FROM members m JOIN users u").WithArgs(int32(2)).WillReturnRows(rows)

	members, err := repo.ListByClub(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Park", members[1].Nickname)
	assert.Equal(t, domain.MemberRoleMember, members[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}
