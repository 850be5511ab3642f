package service

import (
	"errors"
	"fmt"
	"time"

	"blog-backend/internal/auth"
	"blog-backend/internal/models"
	"blog-backend/internal/storage"

	"gorm.io/gorm"
)

// EngagementService implements the like/dislike toggle. Per (user, post)
// the state machine is NONE -> LIKED/DISLIKED on first vote, back to NONE
// when the same vote repeats, and a flip when the other vote arrives. The
// reaction row and the post's denormalized counters move in one
// transaction; they are never updated separately.
type EngagementService struct {
	db        *gorm.DB
	authz     *Authorizer
	posts     *storage.PostRepository
	reactions *storage.ReactionRepository
}

// NewEngagementService creates an engagement service.
func NewEngagementService(db *gorm.DB, authz *Authorizer, posts *storage.PostRepository, reactions *storage.ReactionRepository) *EngagementService {
	return &EngagementService{db: db, authz: authz, posts: posts, reactions: reactions}
}

// Toggle applies one vote from the caller to a post and returns the
// updated post. Repeating a vote cancels it; voting the other way flips
// the existing reaction.
func (s *EngagementService) Toggle(identity auth.Identity, postID uint, kind models.ReactionKind) (*models.Post, error) {
	if kind != models.ReactionLike && kind != models.ReactionDislike {
		return nil, fmt.Errorf("unknown reaction kind %q: %w", kind, ErrValidation)
	}

	now := time.Now()
	actor, err := s.authz.ResolveActor(identity, now)
	if err != nil {
		return nil, err
	}

	var updated *models.Post
	err = s.db.Transaction(func(tx *gorm.DB) error {
		posts := s.posts.WithTx(tx)
		reactions := s.reactions.WithTx(tx)

		post, err := posts.GetByID(postID)
		if err != nil {
			return err
		}
		if post == nil {
			return fmt.Errorf("post %d: %w", postID, ErrNotFound)
		}

		existing, err := reactions.GetByUserAndPost(actor.ID, postID)
		if err != nil {
			return err
		}

		var likeDelta, dislikeDelta int64
		switch {
		case existing == nil:
			// First vote: insert the reaction. A concurrent first vote
			// from the same user trips the (user, post) unique index.
			if err := reactions.Create(models.NewReaction(actor.ID, postID, kind, now)); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return fmt.Errorf("concurrent vote on post %d: %w", postID, ErrConflict)
				}
				return err
			}
			if kind == models.ReactionLike {
				likeDelta = 1
			} else {
				dislikeDelta = 1
			}
		case existing.Kind == kind:
			// Same vote again: cancel. The delete is conditional on the
			// kind read above; zero rows means a concurrent toggle
			// changed the reaction after our snapshot.
			n, err := reactions.Delete(existing.ID, existing.Kind)
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("concurrent vote on post %d: %w", postID, ErrConflict)
			}
			if kind == models.ReactionLike {
				likeDelta = -1
			} else {
				dislikeDelta = -1
			}
		default:
			// Opposite vote: flip the reaction in place, conditional on
			// the kind read above for the same reason.
			n, err := reactions.UpdateKind(existing.ID, existing.Kind, kind, now)
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("concurrent vote on post %d: %w", postID, ErrConflict)
			}
			if kind == models.ReactionLike {
				likeDelta, dislikeDelta = 1, -1
			} else {
				likeDelta, dislikeDelta = -1, 1
			}
		}

		if err := posts.AdjustCounters(postID, likeDelta, dislikeDelta, now); err != nil {
			return err
		}

		updated, err = posts.GetByID(postID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
