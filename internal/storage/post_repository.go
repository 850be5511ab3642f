package storage

import (
	"time"

	"blog-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sort orders accepted by the visible-post listings.
const (
	SortCreated    = "created"
	SortViews      = "views"
	SortPopularity = "popularity"
)

// PostRepository handles database operations for Post
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *PostRepository) WithTx(tx *gorm.DB) *PostRepository {
	return &PostRepository{db: tx}
}

// Create inserts a new Post
func (r *PostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a post with its author preloaded; returns nil if
// absent. Hidden posts are returned too: only listings consult the gate.
func (r *PostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	result := r.db.Preload("User").Preload("Attachments").First(&post, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &post, nil
}

// Save persists all fields of an existing post. Associations are left
// alone; attachments and comments have their own repositories.
func (r *PostRepository) Save(post *models.Post) error {
	return r.db.Omit(clause.Associations).Save(post).Error
}

// Delete removes a post together with its comments, reactions and
// attachment rows in one transaction.
func (r *PostRepository) Delete(postID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Attachment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, postID).Error
	})
}

// ListAll returns every post, hidden ones included, newest first. Used by
// administrative listings which bypass the visibility gate.
func (r *PostRepository) ListAll() ([]*models.Post, error) {
	var posts []*models.Post
	result := r.db.Preload("User").Order("created_date DESC").Find(&posts)
	return posts, result.Error
}

// ListVisible returns non-hidden posts, optionally restricted to a
// category, in the requested order. Popularity is like minus dislike
// count, ties broken by newest first.
func (r *PostRepository) ListVisible(category, sortBy string) ([]*models.Post, error) {
	query := r.db.Preload("User").Where("is_hidden = ?", false)
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	switch sortBy {
	case SortViews:
		query = query.Order("view_count DESC")
	case SortPopularity:
		query = query.Order("(like_count - dislike_count) DESC, created_date DESC")
	default:
		query = query.Order("created_date DESC")
	}
	var posts []*models.Post
	result := query.Find(&posts)
	return posts, result.Error
}

// Search returns non-hidden posts matching the keyword in the requested
// field, newest first. searchType is one of title, content, author, or
// anything else for all three.
func (r *PostRepository) Search(keyword, searchType string) ([]*models.Post, error) {
	pattern := "%" + keyword + "%"
	query := r.db.Preload("User").Where("posts.is_hidden = ?", false)
	switch searchType {
	case "title":
		query = query.Where("posts.title LIKE ?", pattern)
	case "content":
		query = query.Where("posts.content LIKE ?", pattern)
	case "author":
		query = query.Joins("JOIN users ON users.id = posts.user_id").
			Where("users.username LIKE ?", pattern)
	default:
		query = query.Joins("JOIN users ON users.id = posts.user_id").
			Where("posts.title LIKE ? OR posts.content LIKE ? OR users.username LIKE ?", pattern, pattern, pattern)
	}
	var posts []*models.Post
	result := query.Order("posts.created_date DESC").Find(&posts)
	return posts, result.Error
}

// IncrementViewCount bumps the view counter without touching other
// fields.
func (r *PostRepository) IncrementViewCount(postID uint) error {
	return r.db.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// AdjustCounters applies like/dislike deltas to a post's denormalized
// counters. Decrements are clamped at zero so a concurrent
// double-decrement can never drive a counter negative.
func (r *PostRepository) AdjustCounters(postID uint, likeDelta, dislikeDelta int64, now time.Time) error {
	updates := map[string]interface{}{"modified_date": now}
	switch {
	case likeDelta > 0:
		updates["like_count"] = gorm.Expr("like_count + ?", likeDelta)
	case likeDelta < 0:
		updates["like_count"] = gorm.Expr("CASE WHEN like_count >= ? THEN like_count - ? ELSE 0 END", -likeDelta, -likeDelta)
	}
	switch {
	case dislikeDelta > 0:
		updates["dislike_count"] = gorm.Expr("dislike_count + ?", dislikeDelta)
	case dislikeDelta < 0:
		updates["dislike_count"] = gorm.Expr("CASE WHEN dislike_count >= ? THEN dislike_count - ? ELSE 0 END", -dislikeDelta, -dislikeDelta)
	}
	return r.db.Model(&models.Post{}).Where("id = ?", postID).Updates(updates).Error
}
