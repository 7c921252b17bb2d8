package models

import "time"

// Post represents a blog post owned by a single user
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	Published bool      `json:"published" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   uint      `json:"owner_id" gorm:"not null;index"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1"`
	Content string `json:"content" validate:"required,min=1"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1"`
	Content string `json:"content" validate:"required,min=1"`
}

// PostResponse is the API view of a post
type PostResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   uint      `json:"owner_id"`
}

// ToResponse converts a post into its API view
func (p *Post) ToResponse() PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Published: p.Published,
		CreatedAt: p.CreatedAt,
		OwnerID:   p.OwnerID,
	}
}

// PostWithVotes combines a post with its vote count and owner
type PostWithVotes struct {
	Post  PostResponse `json:"post"`
	Votes int64        `json:"votes"`
	Owner UserResponse `json:"owner"`
}
