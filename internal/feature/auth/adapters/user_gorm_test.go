package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobassist_backend/internal/feature/auth/domain/entity"
	"jobassist_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// TranslateError must be on, as in production, so unique violations
	// surface as gorm.ErrDuplicatedKey.
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	// Create User table
	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func newTestUser(username, email string) *entity.User {
	return &entity.User{
		Username: username,
		Password: "hashed_password",
		Email:    email,
	}
}

func TestNewUserGorm(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserGorm(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		user := newTestUser("alice", "alice@example.com")
		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate username leaves exactly one record", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		err := repo.Create(context.Background(), newTestUser("alice", "first@example.com"))
		require.NoError(t, err, "failed to create first user")

		// Same username, different email
		err = repo.Create(context.Background(), newTestUser("alice", "second@example.com"))
		assert.ErrorIs(t, err, usecase.ErrUserAlreadyExists)

		var count int64
		require.NoError(t, db.Model(&entity.User{}).Where("username = ?", "alice").Count(&count).Error)
		assert.Equal(t, int64(1), count, "exactly one record must be stored")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		err := repo.Create(context.Background(), newTestUser("alice", "duplicate@example.com"))
		require.NoError(t, err, "failed to create first user")

		err = repo.Create(context.Background(), newTestUser("bob", "duplicate@example.com"))
		assert.ErrorIs(t, err, usecase.ErrUserAlreadyExists)
	})
}

func TestUserGorm_FindByUsername(t *testing.T) {
	t.Run("find user by username successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		expected := newTestUser("alice", "alice@example.com")
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByUsername(context.Background(), "alice")

		assert.NoError(t, err)
		assert.Equal(t, expected.ID, found.ID)
		assert.Equal(t, "alice@example.com", found.Email)
	})

	t.Run("user not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		_, err := repo.FindByUsername(context.Background(), "nobody")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserGorm_FindByID(t *testing.T) {
	t.Run("find user by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		expected := newTestUser("alice", "alice@example.com")
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err)
		assert.Equal(t, "alice", found.Username)
	})

	t.Run("user not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		_, err := repo.FindByID(context.Background(), 9999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserGorm_Update(t *testing.T) {
	t.Run("persists changed fields", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		user := newTestUser("alice", "alice@example.com")
		require.NoError(t, repo.Create(context.Background(), user))

		user.Email = "new@example.com"
		user.UserData = "Go, SQL, five years of experience"
		require.NoError(t, repo.Update(context.Background(), user))

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", found.Email)
		assert.Equal(t, "Go, SQL, five years of experience", found.UserData)
	})

	t.Run("email collision with another user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		require.NoError(t, repo.Create(context.Background(), newTestUser("alice", "alice@example.com")))
		bob := newTestUser("bob", "bob@example.com")
		require.NoError(t, repo.Create(context.Background(), bob))

		bob.Email = "alice@example.com"
		err := repo.Update(context.Background(), bob)

		assert.ErrorIs(t, err, usecase.ErrUserAlreadyExists)
	})
}

