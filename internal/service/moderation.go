package service

import (
	"fmt"
	"time"

	"blog-backend/internal/auth"
	"blog-backend/internal/models"
	"blog-backend/internal/storage"
)

// ModerationService is the admin-only surface: user suspension, post
// hiding, and the listings that bypass the visibility gate. Every
// operation gates on RequireAdmin first and otherwise delegates to the
// suspension ledger and the post repository.
type ModerationService struct {
	authz  *Authorizer
	ledger *SuspensionLedger
	users  *storage.UserRepository
	posts  *storage.PostRepository
}

// NewModerationService creates a moderation service.
func NewModerationService(authz *Authorizer, ledger *SuspensionLedger, users *storage.UserRepository, posts *storage.PostRepository) *ModerationService {
	return &ModerationService{authz: authz, ledger: ledger, users: users, posts: posts}
}

// ListAllUsers returns every registered user.
func (s *ModerationService) ListAllUsers(identity auth.Identity) ([]*models.User, error) {
	if _, err := s.authz.RequireAdmin(identity); err != nil {
		return nil, err
	}
	return s.users.ListAll()
}

// ListAllPosts returns every post, hidden ones included.
func (s *ModerationService) ListAllPosts(identity auth.Identity) ([]*models.Post, error) {
	if _, err := s.authz.RequireAdmin(identity); err != nil {
		return nil, err
	}
	return s.posts.ListAll()
}

// SuspendUser suspends a user for durationDays days, or permanently when
// durationDays is zero or less.
func (s *ModerationService) SuspendUser(identity auth.Identity, userID uint, durationDays int, reason string) (*models.Suspension, error) {
	admin, err := s.authz.RequireAdmin(identity)
	if err != nil {
		return nil, err
	}
	return s.ledger.Suspend(userID, admin.Username, durationDays, reason)
}

// UnsuspendUser lifts a user's active suspension, if any.
func (s *ModerationService) UnsuspendUser(identity auth.Identity, userID uint) error {
	if _, err := s.authz.RequireAdmin(identity); err != nil {
		return err
	}
	return s.ledger.Unsuspend(userID)
}

// GetUserSuspension returns the suspension currently blocking a user, or
// nil if the user is not blocked.
func (s *ModerationService) GetUserSuspension(identity auth.Identity, userID uint) (*models.Suspension, error) {
	if _, err := s.authz.RequireAdmin(identity); err != nil {
		return nil, err
	}
	return s.ledger.GetActive(userID, time.Now())
}

// HidePost makes a post invisible to ordinary listings, recording the
// acting admin, the time and the reason.
func (s *ModerationService) HidePost(identity auth.Identity, postID uint, reason string) (*models.Post, error) {
	admin, err := s.authz.RequireAdmin(identity)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}

	post.Hide(admin.Username, reason, time.Now())
	if err := s.posts.Save(post); err != nil {
		return nil, err
	}
	return post, nil
}

// UnhidePost restores a hidden post, clearing the attribution fields
// together with the flag.
func (s *ModerationService) UnhidePost(identity auth.Identity, postID uint) (*models.Post, error) {
	if _, err := s.authz.RequireAdmin(identity); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}

	post.Unhide()
	if err := s.posts.Save(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post outright.
func (s *ModerationService) DeletePost(identity auth.Identity, postID uint) error {
	if _, err := s.authz.RequireAdmin(identity); err != nil {
		return err
	}

	post, err := s.posts.GetByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}
	return s.posts.Delete(postID)
}
