package storage

import (
	"blog-backend/internal/models"

	"gorm.io/gorm"
)

// CommentRepository handles database operations for Comment
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a new Comment
func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by primary key; returns nil if absent.
func (r *CommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	result := r.db.First(&comment, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &comment, nil
}

// ListByPost returns a post's comments in creation order, oldest first.
func (r *CommentRepository) ListByPost(postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	result := r.db.Where("post_id = ?", postID).Order("created_date ASC").Find(&comments)
	return comments, result.Error
}

// Save persists all fields of an existing comment.
func (r *CommentRepository) Save(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// Delete removes a comment row.
func (r *CommentRepository) Delete(commentID uint) error {
	return r.db.Delete(&models.Comment{}, commentID).Error
}
