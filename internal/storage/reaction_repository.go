package storage

import (
	"time"

	"blog-backend/internal/models"

	"gorm.io/gorm"
)

// ReactionRepository handles database operations for Reaction
type ReactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new ReactionRepository
func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *ReactionRepository) WithTx(tx *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: tx}
}

// Create inserts a new Reaction. A duplicate (user, post) insert fails on
// the composite unique index.
func (r *ReactionRepository) Create(reaction *models.Reaction) error {
	return r.db.Create(reaction).Error
}

// GetByUserAndPost returns the user's reaction on a post; nil if none.
func (r *ReactionRepository) GetByUserAndPost(userID, postID uint) (*models.Reaction, error) {
	var reaction models.Reaction
	result := r.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&reaction)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &reaction, nil
}

// UpdateKind flips a reaction to the other kind, but only if it still
// holds the kind the caller read. Returns the number of rows matched so
// callers can detect that a concurrent toggle got there first.
func (r *ReactionRepository) UpdateKind(reactionID uint, from, to models.ReactionKind, now time.Time) (int64, error) {
	result := r.db.Model(&models.Reaction{}).
		Where("id = ? AND kind = ?", reactionID, from).
		Updates(map[string]interface{}{"kind": to, "modified_date": now})
	return result.RowsAffected, result.Error
}

// Delete removes a reaction row, but only if it still holds the kind the
// caller read. Returns the number of rows matched.
func (r *ReactionRepository) Delete(reactionID uint, kind models.ReactionKind) (int64, error) {
	result := r.db.Where("id = ? AND kind = ?", reactionID, kind).Delete(&models.Reaction{})
	return result.RowsAffected, result.Error
}

// CountByPostAndKind returns how many reactions of a kind a post has.
func (r *ReactionRepository) CountByPostAndKind(postID uint, kind models.ReactionKind) (int64, error) {
	var n int64
	err := r.db.Model(&models.Reaction{}).
		Where("post_id = ? AND kind = ?", postID, kind).
		Count(&n).Error
	return n, err
}
