package storage

import (
	"blog-backend/internal/models"

	"gorm.io/gorm"
)

// AttachmentRepository handles database operations for Attachment
type AttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new AttachmentRepository
func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// Create inserts a new Attachment
func (r *AttachmentRepository) Create(a *models.Attachment) error {
	return r.db.Create(a).Error
}

// GetByID retrieves an attachment by primary key; returns nil if absent.
func (r *AttachmentRepository) GetByID(id uint) (*models.Attachment, error) {
	var a models.Attachment
	result := r.db.First(&a, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &a, nil
}

// ListByPost returns a post's attachments.
func (r *AttachmentRepository) ListByPost(postID uint) ([]*models.Attachment, error) {
	var attachments []*models.Attachment
	result := r.db.Where("post_id = ?", postID).Find(&attachments)
	return attachments, result.Error
}

// Delete removes an attachment row.
func (r *AttachmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Attachment{}, id).Error
}
