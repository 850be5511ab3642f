package service

import (
	"fmt"
	"strings"
	"time"

	"blog-backend/internal/auth"
	"blog-backend/internal/models"
	"blog-backend/internal/storage"
)

// CommentService handles comments on posts.
type CommentService struct {
	authz    *Authorizer
	posts    *storage.PostRepository
	comments *storage.CommentRepository
}

// NewCommentService creates a comment service.
func NewCommentService(authz *Authorizer, posts *storage.PostRepository, comments *storage.CommentRepository) *CommentService {
	return &CommentService{authz: authz, posts: posts, comments: comments}
}

// List returns a post's comments, oldest first.
func (s *CommentService) List(postID uint) ([]*models.Comment, error) {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %d: %w", postID, ErrNotFound)
	}
	return s.comments.ListByPost(postID)
}

// Create adds a comment to a post. The author name is taken from the
// caller's display name at creation time.
func (s *CommentService) Create(identity auth.Identity, postID uint, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("comment content is required: %w", ErrValidation)
	}

	now := time.Now()
	actor, err := s.authz.ResolveActor(identity, now)
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

	author := actor.DisplayName
	if author == "" {
		author = actor.Username
	}
	comment := models.NewComment(content, author, postID, actor.ID, now)
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Update edits a comment. Only the owner or an administrator may.
func (s *CommentService) Update(identity auth.Identity, commentID uint, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("comment content is required: %w", ErrValidation)
	}

	now := time.Now()
	actor, err := s.authz.ResolveActor(identity, now)
	if err != nil {
		return nil, err
	}

	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, fmt.Errorf("comment %d: %w", commentID, ErrNotFound)
	}
	if !s.authz.CanModify(actor, comment.UserID) {
		return nil, fmt.Errorf("comment %d belongs to another user: %w", commentID, ErrForbidden)
	}

	comment.Content = content
	comment.ModifiedDate = now
	if err := s.comments.Save(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment. Only the owner or an administrator may.
func (s *CommentService) Delete(identity auth.Identity, commentID uint) error {
	now := time.Now()
	actor, err := s.authz.ResolveActor(identity, now)
	if err != nil {
		return err
	}

	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return fmt.Errorf("comment %d: %w", commentID, ErrNotFound)
	}
	if !s.authz.CanModify(actor, comment.UserID) {
		return fmt.Errorf("comment %d belongs to another user: %w", commentID, ErrForbidden)
	}
	return s.comments.Delete(commentID)
}
