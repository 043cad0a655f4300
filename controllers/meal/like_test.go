package mealControllers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nahidn228/HostelMate-Server/apperrors"
	"github.com/nahidn228/HostelMate-Server/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestRegisterLikeFirstVote(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "meals" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := RegisterLike(db, &models.Meal{}, "7", "a@x.com")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterLikeDuplicateVote(t *testing.T) {
	db, mock := newMockDB(t)

	// The conditional UPDATE touches nothing, and the row exists, so the
	// only explanation is a repeat vote.
	mock.ExpectExec(`UPDATE "meals" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "meals"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := RegisterLike(db, &models.Meal{}, "7", "a@x.com")
	require.Error(t, err)
	assert.Equal(t, apperrors.AlreadyVoted, apperrors.KindOf(err))
	assert.EqualError(t, err, "You have already liked this meal.")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterLikeMissingMeal(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "meals" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "meals"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := RegisterLike(db, &models.Meal{}, "404", "a@x.com")
	require.Error(t, err)
	assert.Equal(t, apperrors.NotFound, apperrors.KindOf(err))
}

func TestRegisterLikeUpcomingMealUsesOwnTable(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "upcoming_meals" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := RegisterLike(db, &models.UpcomingMeal{}, "3", "a@x.com")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
