package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"blog-backend/internal/auth"
	"blog-backend/internal/logger"
	"blog-backend/internal/models"
	"blog-backend/internal/storage"

	"github.com/google/uuid"
)

// FileService stores post attachments on local disk. Files are written
// under a randomized name so uploads cannot collide or traverse paths;
// the original name survives only as metadata.
type FileService struct {
	authz       *Authorizer
	posts       *storage.PostRepository
	attachments *storage.AttachmentRepository
	directory   string
	maxSize     int64
}

// NewFileService creates a file service writing into directory with the
// given per-file size limit in bytes.
func NewFileService(authz *Authorizer, posts *storage.PostRepository, attachments *storage.AttachmentRepository, directory string, maxSize int64) *FileService {
	return &FileService{
		authz:       authz,
		posts:       posts,
		attachments: attachments,
		directory:   directory,
		maxSize:     maxSize,
	}
}

// Upload attaches a file to a post. Only the post's owner or an
// administrator may.
func (s *FileService) Upload(identity auth.Identity, postID uint, filename, contentType string, size int64, r io.Reader) (*models.Attachment, error) {
	if size <= 0 || size > s.maxSize {
		return nil, fmt.Errorf("file size %d outside allowed range (max %d bytes): %w", size, s.maxSize, ErrValidation)
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
	if !s.authz.CanModify(actor, post.UserID) {
		return nil, fmt.Errorf("post %d belongs to another user: %w", postID, ErrForbidden)
	}

	if err := os.MkdirAll(s.directory, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	storedName := uuid.NewString() + filepath.Ext(filename)
	path := filepath.Join(s.directory, storedName)
	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	written, err := io.Copy(dst, io.LimitReader(r, s.maxSize))
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	attachment := models.NewAttachment(postID, filepath.Base(filename), storedName, contentType, written, now)
	if err := s.attachments.Create(attachment); err != nil {
		os.Remove(path)
		return nil, err
	}
	return attachment, nil
}

// Open returns an attachment's metadata and an open handle to its
// content. The caller closes the handle.
func (s *FileService) Open(attachmentID uint) (*models.Attachment, *os.File, error) {
	attachment, err := s.attachments.GetByID(attachmentID)
	if err != nil {
		return nil, nil, err
	}
	if attachment == nil {
		return nil, nil, fmt.Errorf("attachment %d: %w", attachmentID, ErrNotFound)
	}

	f, err := os.Open(filepath.Join(s.directory, attachment.StoredName))
	if err != nil {
		return nil, nil, fmt.Errorf("attachment %d content missing: %w", attachmentID, ErrNotFound)
	}
	return attachment, f, nil
}

// Delete removes an attachment. Only the post's owner or an
// administrator may. The row is removed first; a leftover file on disk
// only wastes space, an orphaned row would serve a broken download.
func (s *FileService) Delete(identity auth.Identity, attachmentID uint) error {
	now := time.Now()
	actor, err := s.authz.ResolveActor(identity, now)
	if err != nil {
		return err
	}

	attachment, err := s.attachments.GetByID(attachmentID)
	if err != nil {
		return err
	}
	if attachment == nil {
		return fmt.Errorf("attachment %d: %w", attachmentID, ErrNotFound)
	}

	post, err := s.posts.GetByID(attachment.PostID)
	if err != nil {
		return err
	}
	if post != nil && !s.authz.CanModify(actor, post.UserID) {
		return fmt.Errorf("attachment %d belongs to another user's post: %w", attachmentID, ErrForbidden)
	}

	if err := s.attachments.Delete(attachmentID); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.directory, attachment.StoredName)); err != nil && !os.IsNotExist(err) {
		logger.Warningf("Failed to remove attachment file %s: %v", attachment.StoredName, err)
	}
	return nil
}
