package service

import (
	"fmt"
	"time"

	"blog-backend/internal/models"
	"blog-backend/internal/storage"

	"gorm.io/gorm"
)

// SuspensionLedger owns the lifecycle of suspension records. It keeps the
// invariant that a user has at most one row with the active flag set;
// older rows are superseded in place so the punishment history survives.
type SuspensionLedger struct {
	db          *gorm.DB
	users       *storage.UserRepository
	suspensions *storage.SuspensionRepository
}

// NewSuspensionLedger creates a suspension ledger.
func NewSuspensionLedger(db *gorm.DB, users *storage.UserRepository, suspensions *storage.SuspensionRepository) *SuspensionLedger {
	return &SuspensionLedger{db: db, users: users, suspensions: suspensions}
}

// IsBlocked reports whether the user is suspended at the given instant.
// A dated suspension stops blocking the moment its end date passes; no
// row is updated to make that happen.
func (l *SuspensionLedger) IsBlocked(userID uint, now time.Time) (bool, error) {
	s, err := l.suspensions.GetEffectiveByUser(userID, now)
	if err != nil {
		return false, err
	}
	return s != nil, nil
}

// GetActive returns the suspension blocking the user at the given
// instant, or nil if there is none.
func (l *SuspensionLedger) GetActive(userID uint, now time.Time) (*models.Suspension, error) {
	return l.suspensions.GetEffectiveByUser(userID, now)
}

// Suspend creates a new suspension for the user, superseding any prior
// active one inside the same transaction so two concurrent suspends
// cannot leave two active rows. A durationDays of zero or less makes the
// suspension permanent.
func (l *SuspensionLedger) Suspend(userID uint, adminUsername string, durationDays int, reason string) (*models.Suspension, error) {
	var created *models.Suspension
	err := l.db.Transaction(func(tx *gorm.DB) error {
		user, err := l.users.WithTx(tx).GetByID(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("suspend user %d: %w", userID, ErrNotFound)
		}

		repo := l.suspensions.WithTx(tx)
		if err := repo.DeactivateAllForUser(userID); err != nil {
			return err
		}

		created = models.NewSuspension(userID, adminUsername, reason, durationDays, time.Now())
		return repo.Create(created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Unsuspend lifts the user's active suspension. Lifting a user who is not
// suspended is a no-op, not an error.
func (l *SuspensionLedger) Unsuspend(userID uint) error {
	return l.suspensions.DeactivateAllForUser(userID)
}
