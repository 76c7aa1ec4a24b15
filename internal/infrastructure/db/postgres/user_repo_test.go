package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/feedbackloop/feedback-service/internal/domain"
)

func userColumns() []string {
	return []string{"id", "username", "email", "password_hash", "role", "created_at"}
}

func TestUserRepo_GetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	t.Run("success_mapping", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns()).
			AddRow("u1", "alice", "alice@example.com", "$2hash", 0, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("alice").
			WillReturnRows(rows)

		u, err := repo.GetByUsername(context.Background(), "alice")
		assert.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
		assert.Equal(t, domain.RoleEmployee, u.Role)
	})

	t.Run("not_found_mapping", func(t *testing.T) {
		mock.ExpectQuery("SELECT").WithArgs("nobody").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByUsername(context.Background(), "nobody")
		assert.True(t, domain.Is(err, "user_not_found"), "got %v", err)
	})

	t.Run("empty_username", func(t *testing.T) {
		_, err := repo.GetByUsername(context.Background(), "  ")
		assert.True(t, domain.Is(err, "missing_field"), "got %v", err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	rows := sqlmock.NewRows(userColumns()).
		AddRow("u1", "alice", "alice@example.com", "$2hash", 1, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("u1").
		WillReturnRows(rows)

	u, err := repo.GetByID(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, domain.RoleAdmin, u.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Exists(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("alice", "alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := repo.Exists(context.Background(), "alice", " alice@example.com ")
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("ghost", "ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err = repo.Exists(context.Background(), "ghost", "ghost@example.com")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	in := domain.User{
		ID:           "u1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2hash",
		Role:         domain.RoleEmployee,
	}

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns()).
			AddRow("u1", "alice", "alice@example.com", "$2hash", 0, time.Now())

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("u1", "alice", "alice@example.com", "$2hash", 0).
			WillReturnRows(rows)

		u, err := repo.Create(context.Background(), in)
		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.False(t, u.CreatedAt.IsZero())
	})

	t.Run("unique_violation_maps_to_conflict", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("u1", "alice", "alice@example.com", "$2hash", 0).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.Create(context.Background(), in)
		assert.True(t, domain.Is(err, "user_already_exists"), "got %v", err)
	})

	t.Run("invalid_role_rejected", func(t *testing.T) {
		bad := in
		bad.Role = domain.Role(9)
		_, err := repo.Create(context.Background(), bad)
		assert.True(t, domain.Is(err, "invalid_role"), "got %v", err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
