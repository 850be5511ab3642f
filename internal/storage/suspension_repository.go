package storage

import (
	"time"

	"blog-backend/internal/models"

	"gorm.io/gorm"
)

// SuspensionRepository handles database operations for Suspension
type SuspensionRepository struct {
	db *gorm.DB
}

// NewSuspensionRepository creates a new SuspensionRepository
func NewSuspensionRepository(db *gorm.DB) *SuspensionRepository {
	return &SuspensionRepository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *SuspensionRepository) WithTx(tx *gorm.DB) *SuspensionRepository {
	return &SuspensionRepository{db: tx}
}

// Create inserts a new Suspension
func (r *SuspensionRepository) Create(s *models.Suspension) error {
	return r.db.Create(s).Error
}

// GetActiveByUser returns the user's suspension with the active flag set,
// regardless of expiry; returns nil if none. Used by supersession and
// unsuspend, which care about the flag and not the dates.
func (r *SuspensionRepository) GetActiveByUser(userID uint) (*models.Suspension, error) {
	var s models.Suspension
	result := r.db.Where("user_id = ? AND is_active = ?", userID, true).First(&s)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &s, nil
}

// GetEffectiveByUser returns the suspension currently blocking the user
// at the given instant: active flag set, already started, and not yet
// expired. Expiry is evaluated here on read, never persisted by a sweep.
func (r *SuspensionRepository) GetEffectiveByUser(userID uint, now time.Time) (*models.Suspension, error) {
	var s models.Suspension
	result := r.db.
		Where("user_id = ? AND is_active = ? AND start_date <= ?", userID, true, now).
		Where("end_date IS NULL OR end_date > ?", now).
		First(&s)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &s, nil
}

// DeactivateAllForUser flips every active suspension for the user to
// inactive. Rows are superseded, never deleted, so history is retained.
func (r *SuspensionRepository) DeactivateAllForUser(userID uint) error {
	return r.db.Model(&models.Suspension{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false).Error
}

// CountActiveByUser returns how many rows for the user carry the active
// flag. The ledger invariant keeps this at zero or one.
func (r *SuspensionRepository) CountActiveByUser(userID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Suspension{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&n).Error
	return n, err
}
