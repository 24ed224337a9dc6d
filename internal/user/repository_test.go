// AngelaMos | 2026
// repository_test.go

package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(sqlx.NewDb(db, "pgx")), mock
}

func TestCreateMapsUniqueViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &User{
		ID:    store.NewID(),
		Email: "ada@example.com",
		Role:  RoleStudent,
	})
	require.ErrorIs(t, err, core.ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFillsTimestamps(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	u := &User{ID: store.NewID(), Email: "ada@example.com", Role: RoleStudent, IsActive: true}

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(u.ID, u.Email, "", "", "", "", "", RoleStudent, true, false).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, now, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmailIsCaseInsensitive(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM users\s+WHERE LOWER\(email\) = LOWER\(\$1\)`).
		WithArgs("Ada@Example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByEmail(context.Background(), "Ada@Example.com")
	require.ErrorIs(t, err, core.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordLoginMissingUser(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := store.NewID()
	at := time.Now().UTC()

	mock.ExpectExec(`UPDATE users\s+SET login_count = login_count \+ 1`).
		WithArgs(id, at).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RecordLogin(context.Background(), id, at)
	require.ErrorIs(t, err, core.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPaginatesAfterFilters(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE \(email ILIKE \$1 OR first_name ILIKE \$1 OR last_name ILIKE \$1\) AND role = \$2`).
		WithArgs("%ada%", RoleMentor).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(41))

	mock.ExpectQuery(`ORDER BY created_at DESC, id DESC\s+LIMIT \$3 OFFSET \$4`).
		WithArgs("%ada%", RoleMentor, 20, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).
			AddRow(store.NewID(), "ada@example.com", RoleMentor))

	users, total, err := repo.List(context.Background(), ListUsersParams{
		Page:   2,
		Search: "ada",
		Role:   RoleMentor,
	})
	require.NoError(t, err)
	assert.Equal(t, 41, total)
	require.Len(t, users, 1)
	assert.Equal(t, "ada@example.com", users[0].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
