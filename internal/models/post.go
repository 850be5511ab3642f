package models

import "time"

// Post is a user-authored article. LikeCount and DislikeCount are
// denormalized from the reactions table and must always equal the number
// of active reactions of each kind; they are only mutated inside the
// engagement transaction.
type Post struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Title        string `gorm:"size:200;not null"`
	Content      string `gorm:"type:text;not null"`
	Category     string `gorm:"size:50;not null;index"`
	ViewCount    int64  `gorm:"not null;default:0"`
	LikeCount    int64  `gorm:"not null;default:0"`
	DislikeCount int64  `gorm:"not null;default:0"`
	IsHidden     bool   `gorm:"not null;default:false"`
	HiddenBy     string `gorm:"size:50"`
	HiddenDate   *time.Time
	HiddenReason string `gorm:"size:500"`
	UserID       uint   `gorm:"index;not null"`
	User         *User  `gorm:"foreignKey:UserID"`
	CreatedDate  time.Time
	ModifiedDate time.Time

	Attachments []Attachment `gorm:"foreignKey:PostID"`
	Comments    []Comment    `gorm:"foreignKey:PostID"`
}

// NewPost creates a post owned by userID with stamped timestamps.
func NewPost(title, content, category string, userID uint, now time.Time) *Post {
	return &Post{
		Title:        title,
		Content:      content,
		Category:     category,
		UserID:       userID,
		CreatedDate:  now,
		ModifiedDate: now,
	}
}

// Hide marks the post invisible to ordinary listings and records who did
// it, when, and why.
func (p *Post) Hide(adminUsername, reason string, now time.Time) {
	p.IsHidden = true
	p.HiddenBy = adminUsername
	p.HiddenDate = &now
	p.HiddenReason = reason
}

// Unhide clears the hidden flag together with all attribution fields.
func (p *Post) Unhide() {
	p.IsHidden = false
	p.HiddenBy = ""
	p.HiddenDate = nil
	p.HiddenReason = ""
}

// Visible reports whether the post passes the visibility gate.
func (p *Post) Visible() bool {
	return !p.IsHidden
}

// Popularity is the secondary sort key for popular listings.
func (p *Post) Popularity() int64 {
	return p.LikeCount - p.DislikeCount
}
