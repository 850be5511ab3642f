package service

import (
	"fmt"
	"strings"
	"time"

	"blog-backend/internal/auth"
	"blog-backend/internal/models"
	"blog-backend/internal/storage"
)

// PostService owns the post lifecycle and the listings ordinary callers
// see. All of its listings pass through the visibility gate; only the
// moderation service bypasses it.
type PostService struct {
	authz *Authorizer
	posts *storage.PostRepository
}

// NewPostService creates a post service.
func NewPostService(authz *Authorizer, posts *storage.PostRepository) *PostService {
	return &PostService{authz: authz, posts: posts}
}

// Create makes a new post owned by the caller.
func (s *PostService) Create(identity auth.Identity, title, content, category string) (*models.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" || strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("title, content and category are required: %w", ErrValidation)
	}

	now := time.Now()
	actor, err := s.authz.ResolveActor(identity, now)
	if err != nil {
		return nil, err
	}

	post := models.NewPost(title, content, category, actor.ID, now)
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return s.posts.GetByID(post.ID)
}

// Get returns a post by id. Hidden posts are still fetchable by direct
// id; the gate applies to listings only.
func (s *PostService) Get(postID uint) (*models.Post, error) {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}
	return post, nil
}

// RecordView bumps the view counter unless the viewer is the post's
// author. Anonymous viewers count.
func (s *PostService) RecordView(identity auth.Identity, postID uint) error {
	post, err := s.Get(postID)
	if err != nil {
		return err
	}
	if !identity.IsAnonymous() && post.User != nil && post.User.Username == identity.Username {
		return nil
	}
	return s.posts.IncrementViewCount(postID)
}

// Update edits a post's title, content and category. Only the owner or
// an administrator may.
func (s *PostService) Update(identity auth.Identity, postID uint, title, content, category string) (*models.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" || strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("title, content and category are required: %w", ErrValidation)
	}

	now := time.Now()
	actor, err := s.authz.ResolveActor(identity, now)
	if err != nil {
		return nil, err
	}

	post, err := s.Get(postID)
	if err != nil {
		return nil, err
	}
	if !s.authz.CanModify(actor, post.UserID) {
		return nil, fmt.Errorf("post %d belongs to another user: %w", postID, ErrForbidden)
	}

	post.Title = title
	post.Content = content
	post.Category = category
	post.ModifiedDate = now
	if err := s.posts.Save(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post. Only the owner or an administrator may.
func (s *PostService) Delete(identity auth.Identity, postID uint) error {
	now := time.Now()
	actor, err := s.authz.ResolveActor(identity, now)
	if err != nil {
		return err
	}

	post, err := s.Get(postID)
	if err != nil {
		return err
	}
	if !s.authz.CanModify(actor, post.UserID) {
		return fmt.Errorf("post %d belongs to another user: %w", postID, ErrForbidden)
	}
	return s.posts.Delete(postID)
}

// List returns visible posts, optionally filtered by category and sorted
// by created, views or popularity.
func (s *PostService) List(category, sortBy string) ([]*models.Post, error) {
	return s.posts.ListVisible(category, sortBy)
}

// Search returns visible posts matching the keyword in title, content,
// author, or all three.
func (s *PostService) Search(keyword, searchType string) ([]*models.Post, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, fmt.Errorf("search keyword is required: %w", ErrValidation)
	}
	return s.posts.Search(keyword, searchType)
}
