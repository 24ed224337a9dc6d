// AngelaMos | 2026
// repository_test.go

package application

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

func TestCreateConflictIsDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(sqlx.NewDb(db, "pgx"))
	now := time.Now().UTC()
	a := &Application{
		ID:        store.NewID(),
		UserID:    store.NewID(),
		Type:      TypeMentor,
		TargetID:  store.NewID(),
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec(`INSERT INTO applications .* ON CONFLICT \(user_id, type, target_id\) DO NOTHING`).
		WithArgs(a.ID, a.UserID, a.Type, a.TargetID, "{}", a.Status, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO applications`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Create(context.Background(), a))

	err = repo.Create(context.Background(), a)
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListScopesByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(sqlx.NewDb(db, "pgx"))
	user := store.NewID()

	mock.ExpectQuery(`FROM applications\s+WHERE user_id = \$1 AND status = \$2\s+ORDER BY`).
		WithArgs(user, StatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	out, err := repo.List(context.Background(), user, store.ListParams{Status: StatusPending})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}
