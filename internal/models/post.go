package models

import (
	"strings"
	"time"
)

// Platform is the closed set of social platforms a post can target.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
)

// Platforms lists every platform a post may target.
func Platforms() []Platform {
	return []Platform{PlatformFacebook, PlatformInstagram, PlatformYouTube, PlatformTikTok}
}

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformFacebook, PlatformInstagram, PlatformYouTube, PlatformTikTok:
		return true
	}
	return false
}

// PlatformList returns the allowed platform names joined for error messages.
func PlatformList() string {
	names := make([]string, 0, len(Platforms()))
	for _, p := range Platforms() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

// Post represents a scheduled social-media post.
// IsPublished defaults to false and nothing in this service flips it;
// publication dispatch is an external concern. UserID is the owning
// user and is immutable after creation. Deletion is a hard delete.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Platform    Platform  `gorm:"type:varchar(16);not null;index" json:"platform"`
	ScheduledAt time.Time `gorm:"not null" json:"scheduled_at"`
	IsPublished bool      `gorm:"not null;default:false" json:"is_published"`
	MediaURL    string    `json:"media_url,omitempty"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
