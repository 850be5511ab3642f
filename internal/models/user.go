package models

import "time"

// User roles. There are exactly two trust levels.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is a registered account. The password field holds a bcrypt hash,
// never a plain credential.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;size:50;not null"`
	Email        string `gorm:"uniqueIndex;size:100;not null"`
	Password     string `gorm:"size:100;not null"`
	DisplayName  string `gorm:"size:50"`
	Role         string `gorm:"size:20;not null;default:USER"`
	Points       int    `gorm:"not null;default:0"`
	CreatedDate  time.Time
	ModifiedDate time.Time
}

// NewUser creates a user with the USER role and stamped timestamps.
func NewUser(username, email, hashedPassword, displayName string, now time.Time) *User {
	if displayName == "" {
		displayName = username
	}
	return &User{
		Username:     username,
		Email:        email,
		Password:     hashedPassword,
		DisplayName:  displayName,
		Role:         RoleUser,
		CreatedDate:  now,
		ModifiedDate: now,
	}
}

// IsAdmin reports whether the stored role grants administrator rights.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
