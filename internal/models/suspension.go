package models

import "time"

// Suspension records one punitive period for a user. Past suspensions are
// kept for history; at most one row per user may have IsActive set, and
// that is enforced by the ledger's supersession logic, not by a database
// constraint.
type Suspension struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"`
	UserID      uint       `gorm:"index;not null"`
	SuspendedBy string     `gorm:"size:50;not null"`
	Reason      string     `gorm:"size:500"`
	StartDate   time.Time  `gorm:"not null"`
	EndDate     *time.Time
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedDate time.Time
}

// NewSuspension creates an active suspension starting at now. A
// durationDays of zero or less means permanent (no end date).
func NewSuspension(userID uint, adminUsername, reason string, durationDays int, now time.Time) *Suspension {
	s := &Suspension{
		UserID:      userID,
		SuspendedBy: adminUsername,
		Reason:      reason,
		StartDate:   now,
		IsActive:    true,
		CreatedDate: now,
	}
	if durationDays > 0 {
		end := now.AddDate(0, 0, durationDays)
		s.EndDate = &end
	}
	return s
}

// Permanent reports whether the suspension has no end date.
func (s *Suspension) Permanent() bool {
	return s.EndDate == nil
}

// Expired reports whether a dated suspension has already run out. Expiry
// is computed on read; the row is never flipped by a background job.
func (s *Suspension) Expired(now time.Time) bool {
	return s.EndDate != nil && !s.EndDate.After(now)
}

// InEffect reports whether the suspension blocks the user at the given
// instant.
func (s *Suspension) InEffect(now time.Time) bool {
	return s.IsActive && !s.StartDate.After(now) && !s.Expired(now)
}
