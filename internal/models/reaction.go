package models

import "time"

// ReactionKind is the vote a user put on a post.
type ReactionKind string

const (
	ReactionLike    ReactionKind = "LIKE"
	ReactionDislike ReactionKind = "DISLIKE"
)

// Reaction stores one user's current vote on one post. The composite
// unique index enforces at most one row per (user, post) pair; a
// concurrent double insert fails on it instead of producing two votes.
type Reaction struct {
	ID           uint         `gorm:"primaryKey;autoIncrement"`
	UserID       uint         `gorm:"not null;uniqueIndex:idx_reaction_user_post"`
	PostID       uint         `gorm:"not null;uniqueIndex:idx_reaction_user_post"`
	Kind         ReactionKind `gorm:"size:10;not null"`
	CreatedDate  time.Time
	ModifiedDate time.Time
}

// NewReaction creates a reaction with stamped timestamps.
func NewReaction(userID, postID uint, kind ReactionKind, now time.Time) *Reaction {
	return &Reaction{
		UserID:       userID,
		PostID:       postID,
		Kind:         kind,
		CreatedDate:  now,
		ModifiedDate: now,
	}
}
