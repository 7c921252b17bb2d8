package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogvote-api/internal/models"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)

	user := &models.User{Email: "hello123@gmail.com", Password: "digest"}
	require.NoError(t, repo.CreateUser(user))
	require.NotZero(t, user.ID)

	byID, err := repo.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello123@gmail.com", byID.Email)

	byEmail, err := repo.GetUserByEmail("hello123@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)

	require.NoError(t, repo.CreateUser(&models.User{Email: "hello123@gmail.com", Password: "digest"}))

	err := repo.CreateUser(&models.User{Email: "hello123@gmail.com", Password: "other"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)

	_, err := repo.GetUserByID(404)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)

	user := createTestUser(t, db, "hello123@gmail.com")
	require.NoError(t, repo.DeleteUser(user.ID))

	_, err := repo.GetUserByID(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, repo.DeleteUser(user.ID), ErrUserNotFound)
}

func TestUserRepository_DeleteCascadesPostsAndVotes(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)

	owner := createTestUser(t, db, "owner@gmail.com")
	voter := createTestUser(t, db, "voter@gmail.com")
	post := createTestPost(t, db, owner.ID, "First Post")
	require.NoError(t, db.Create(&models.Vote{UserID: voter.ID, PostID: post.ID}).Error)

	require.NoError(t, repo.DeleteUser(owner.ID))

	var postCount, voteCount int64
	require.NoError(t, db.Model(&models.Post{}).Where("owner_id = ?", owner.ID).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.Vote{}).Where("post_id = ?", post.ID).Count(&voteCount).Error)
	assert.Zero(t, postCount)
	assert.Zero(t, voteCount)
}
