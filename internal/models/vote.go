package models

// Vote marks that a user has upvoted a post. Its absence is the
// neutral state; at most one row exists per (user, post) pair.
type Vote struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;uniqueIndex:idx_votes_user_post"`
	PostID uint `json:"post_id" gorm:"not null;uniqueIndex:idx_votes_user_post"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post *Post `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// VoteDirection values accepted by the vote endpoint
const (
	VoteDirDown = 0 // remove an existing vote
	VoteDirUp   = 1 // cast a vote
)

// CreateVoteRequest defines the request body for toggling a vote
type CreateVoteRequest struct {
	PostID uint `json:"post_id" validate:"required"`
	Dir    *int `json:"dir" validate:"required,min=0,max=1"`
}
