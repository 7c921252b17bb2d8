package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"blogvote-api/internal/models"
)

func countVotes(t *testing.T, db *gorm.DB, userID, postID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Vote{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error)
	return count
}

func TestVoteRepository_ToggleTransitions(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresVoteRepository(db)
	owner := createTestUser(t, db, "owner@gmail.com")
	voter := createTestUser(t, db, "voter@gmail.com")
	post := createTestPost(t, db, owner.ID, "First Post")

	// NOT_VOTED + dir=0 -> vote not found, no row
	err := repo.Toggle(voter.ID, post.ID, models.VoteDirDown)
	assert.ErrorIs(t, err, ErrVoteNotFound)
	assert.Equal(t, int64(0), countVotes(t, db, voter.ID, post.ID))

	// NOT_VOTED + dir=1 -> row inserted
	require.NoError(t, repo.Toggle(voter.ID, post.ID, models.VoteDirUp))
	assert.Equal(t, int64(1), countVotes(t, db, voter.ID, post.ID))

	// VOTED + dir=1 -> duplicate, still exactly one row
	err = repo.Toggle(voter.ID, post.ID, models.VoteDirUp)
	assert.ErrorIs(t, err, ErrDuplicateVote)
	assert.Equal(t, int64(1), countVotes(t, db, voter.ID, post.ID))

	// VOTED + dir=0 -> row deleted
	require.NoError(t, repo.Toggle(voter.ID, post.ID, models.VoteDirDown))
	assert.Equal(t, int64(0), countVotes(t, db, voter.ID, post.ID))

	// and removing again fails once more
	err = repo.Toggle(voter.ID, post.ID, models.VoteDirDown)
	assert.ErrorIs(t, err, ErrVoteNotFound)
}

func TestVoteRepository_TogglePostMustExist(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresVoteRepository(db)
	voter := createTestUser(t, db, "voter@gmail.com")

	// Post existence is checked before any state transition
	assert.ErrorIs(t, repo.Toggle(voter.ID, 404, models.VoteDirUp), ErrPostNotFound)
	assert.ErrorIs(t, repo.Toggle(voter.ID, 404, models.VoteDirDown), ErrPostNotFound)
}

func TestVoteRepository_OwnPostAllowed(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresVoteRepository(db)
	owner := createTestUser(t, db, "owner@gmail.com")
	post := createTestPost(t, db, owner.ID, "First Post")

	// Voting on one's own post is permitted by policy
	require.NoError(t, repo.Toggle(owner.ID, post.ID, models.VoteDirUp))
	assert.Equal(t, int64(1), countVotes(t, db, owner.ID, post.ID))
}

func TestVoteRepository_UniquePairConstraint(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@gmail.com")
	voter := createTestUser(t, db, "voter@gmail.com")
	post := createTestPost(t, db, owner.ID, "First Post")

	// The unique index is the backstop even when rows are inserted
	// outside the toggle path
	require.NoError(t, db.Create(&models.Vote{UserID: voter.ID, PostID: post.ID}).Error)
	err := db.Create(&models.Vote{UserID: voter.ID, PostID: post.ID}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestVoteRepository_Counters(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresVoteRepository(db)
	owner := createTestUser(t, db, "owner@gmail.com")
	voter := createTestUser(t, db, "voter@gmail.com")
	post := createTestPost(t, db, owner.ID, "First Post")

	voted, err := repo.HasUserVotedPost(voter.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, voted)

	require.NoError(t, repo.Toggle(voter.ID, post.ID, models.VoteDirUp))
	require.NoError(t, repo.Toggle(owner.ID, post.ID, models.VoteDirUp))

	voted, err = repo.HasUserVotedPost(voter.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, voted)

	count, err := repo.CountVotesByPostID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
