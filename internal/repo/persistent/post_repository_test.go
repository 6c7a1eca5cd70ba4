package persistent

import (
	"testing"

	"snapfeed/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockRepository backs the repository with a sqlmock connection so the
// failure branches driven by SQLSTATE codes can be exercised without a
// database.
func newMockRepository(t *testing.T) (PostRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return NewPostRepository(db), mock
}

func TestToggleLike_RemovesExistingLike(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "likes"`).
		WithArgs(2, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	liked, err := repo.ToggleLike(7, 2)

	assert.NoError(t, err)
	assert.False(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLike_InsertsWhenNothingDeleted(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "likes"`).
		WithArgs(2, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "likes"`).
		WithArgs(2, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	liked, err := repo.ToggleLike(7, 2)

	assert.NoError(t, err)
	assert.True(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLike_DuplicateInsertMeansAlreadyLiked(t *testing.T) {
	repo, mock := newMockRepository(t)

	// A racing toggle won the insert; the composite primary key rejects ours
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "likes"`).
		WithArgs(2, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "likes"`).
		WithArgs(2, 7).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "likes_pkey"})
	mock.ExpectCommit()

	liked, err := repo.ToggleLike(7, 2)

	assert.NoError(t, err)
	assert.True(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLike_UnknownPostRollsBack(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "likes"`).
		WithArgs(2, 404).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "likes"`).
		WithArgs(2, 404).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_likes_post"})
	mock.ExpectRollback()

	_, err := repo.ToggleLike(404, 2)

	assert.ErrorIs(t, err, entity.ErrPostNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertPost_ReturnsPersistedRow(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	post, err := repo.InsertPost("https://img.example/1.jpg", "Hello", "World", 1)

	assert.NoError(t, err)
	assert.Equal(t, uint(42), post.ID)
	assert.Equal(t, "https://img.example/1.jpg", post.ImageURL)
	assert.Equal(t, uint(1), post.UserID)
	assert.False(t, post.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertPost_UnknownOwner(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "posts"`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_posts_user"})
	mock.ExpectRollback()

	post, err := repo.InsertPost("https://img.example/1.jpg", "Hello", "World", 99)

	assert.Nil(t, post)
	assert.ErrorIs(t, err, entity.ErrConstraintViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostExists(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts"`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	exists, err := repo.PostExists(7)
	assert.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts"`).
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	exists, err = repo.PostExists(404)
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}
