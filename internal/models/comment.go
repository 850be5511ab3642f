package models

import "time"

// Comment is a user reply attached to a post.
type Comment struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Content      string `gorm:"type:text;not null"`
	Author       string `gorm:"size:50;not null"`
	PostID       uint   `gorm:"index;not null"`
	UserID       uint   `gorm:"index;not null"`
	User         *User  `gorm:"foreignKey:UserID"`
	CreatedDate  time.Time
	ModifiedDate time.Time
}

// NewComment creates a comment with stamped timestamps. The author name
// is denormalized from the user's display name at creation time.
func NewComment(content, author string, postID, userID uint, now time.Time) *Comment {
	return &Comment{
		Content:      content,
		Author:       author,
		PostID:       postID,
		UserID:       userID,
		CreatedDate:  now,
		ModifiedDate: now,
	}
}
