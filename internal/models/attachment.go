package models

import "time"

// Attachment is a file uploaded alongside a post. StoredName is the
// randomized on-disk name; OriginalName is what the uploader called it.
type Attachment struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	PostID       uint   `gorm:"index;not null"`
	OriginalName string `gorm:"size:255;not null"`
	StoredName   string `gorm:"size:255;not null;uniqueIndex"`
	ContentType  string `gorm:"size:100"`
	Size         int64  `gorm:"not null"`
	CreatedDate  time.Time
}

// NewAttachment creates an attachment row with a stamped timestamp.
func NewAttachment(postID uint, originalName, storedName, contentType string, size int64, now time.Time) *Attachment {
	return &Attachment{
		PostID:       postID,
		OriginalName: originalName,
		StoredName:   storedName,
		ContentType:  contentType,
		Size:         size,
		CreatedDate:  now,
	}
}
