package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"blogvote-api/internal/models"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPostWithVotes(id uint) (*models.PostWithVotes, error)
	ListPostsWithVotes(limit, skip int, search string) ([]models.PostWithVotes, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// postVoteRow is the flat tuple produced by the list/get join query.
// Owner fields are materialized here instead of lazy-loaded relations.
type postVoteRow struct {
	ID             uint
	Title          string
	Content        string
	Published      bool
	CreatedAt      time.Time
	OwnerID        uint
	Votes          int64
	OwnerEmail     string
	OwnerCreatedAt time.Time
}

func (row *postVoteRow) toPostWithVotes() models.PostWithVotes {
	return models.PostWithVotes{
		Post: models.PostResponse{
			ID:        row.ID,
			Title:     row.Title,
			Content:   row.Content,
			Published: row.Published,
			CreatedAt: row.CreatedAt,
			OwnerID:   row.OwnerID,
		},
		Votes: row.Votes,
		Owner: models.UserResponse{
			ID:        row.OwnerID,
			Email:     row.OwnerEmail,
			CreatedAt: row.OwnerCreatedAt,
		},
	}
}

func (r *PostgresPostRepository) joinedPosts() *gorm.DB {
	return r.db.Model(&models.Post{}).
		Select("posts.id, posts.title, posts.content, posts.published, posts.created_at, posts.owner_id, " +
			"count(votes.id) as votes, users.email as owner_email, users.created_at as owner_created_at").
		Joins("left join votes on votes.post_id = posts.id").
		Joins("join users on users.id = posts.owner_id").
		Group("posts.id, users.email, users.created_at")
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a bare post by ID
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetPostWithVotes retrieves a single post joined with its vote count
// and owner
func (r *PostgresPostRepository) GetPostWithVotes(id uint) (*models.PostWithVotes, error) {
	var row postVoteRow
	err := r.joinedPosts().Where("posts.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	result := row.toPostWithVotes()
	return &result, nil
}

// ListPostsWithVotes retrieves posts joined with vote counts and
// owners, filtered by a title substring search
func (r *PostgresPostRepository) ListPostsWithVotes(limit, skip int, search string) ([]models.PostWithVotes, error) {
	var rows []postVoteRow
	err := r.joinedPosts().
		Where("posts.title LIKE ?", "%"+search+"%").
		Limit(limit).
		Offset(skip).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]models.PostWithVotes, 0, len(rows))
	for i := range rows {
		results = append(results, rows[i].toPostWithVotes())
	}
	return results, nil
}

// UpdatePost saves changes to an existing post. Ownership never
// changes after creation.
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// DeletePost deletes a post by ID. Votes on the post cascade.
func (r *PostgresPostRepository) DeletePost(id uint) error {
	res := r.db.Delete(&models.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
