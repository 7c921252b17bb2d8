package repositories

import (
	"errors"

	"gorm.io/gorm"

	"blogvote-api/internal/models"
)

// VoteRepository defines the interface for vote data operations
type VoteRepository interface {
	Toggle(userID, postID uint, dir int) error
	HasUserVotedPost(userID, postID uint) (bool, error)
	CountVotesByPostID(postID uint) (int64, error)
}

// PostgresVoteRepository implements VoteRepository for PostgreSQL
type PostgresVoteRepository struct {
	db *gorm.DB
}

// NewPostgresVoteRepository creates a new PostgresVoteRepository
func NewPostgresVoteRepository(db *gorm.DB) *PostgresVoteRepository {
	return &PostgresVoteRepository{db: db}
}

// Toggle applies one vote transition for a (user, post) pair inside a
// single transaction:
//
//	dir=1, no vote yet   -> insert row
//	dir=1, already voted -> ErrDuplicateVote
//	dir=0, already voted -> delete row
//	dir=0, no vote yet   -> ErrVoteNotFound
//
// The post must exist; who owns it is deliberately not checked, so
// users may vote on their own posts. Under concurrent double-submission
// the unique index on (user_id, post_id) is the final arbiter: the
// losing insert surfaces as ErrDuplicateVote.
func (r *PostgresVoteRepository) Toggle(userID, postID uint, dir int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Post{}, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		var existing models.Vote
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
		found := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if dir == models.VoteDirUp {
			if found {
				return ErrDuplicateVote
			}
			vote := &models.Vote{UserID: userID, PostID: postID}
			if err := tx.Create(vote).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrDuplicateVote
				}
				return err
			}
			return nil
		}

		if !found {
			return ErrVoteNotFound
		}
		return tx.Delete(&existing).Error
	})
}

// HasUserVotedPost checks whether a vote row exists for the pair
func (r *PostgresVoteRepository) HasUserVotedPost(userID, postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountVotesByPostID counts the votes on a post
func (r *PostgresVoteRepository) CountVotesByPostID(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
