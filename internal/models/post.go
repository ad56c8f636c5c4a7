package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a blog entry owned by the user that created it.
type Post struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Image     string    `json:"image"`
	UserID    string    `gorm:"not null;index;size:36" json:"user"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// BeforeCreate assigns a random ID when the caller did not supply one.
func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// OwnedBy reports whether userID may mutate the post.
func (p *Post) OwnedBy(userID string) bool {
	return userID != "" && p.UserID == userID
}

// Owner is the display form of a post's owner.
type Owner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PostWithOwner is a post with its owner reference resolved for listing.
type PostWithOwner struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Image     string    `json:"image"`
	User      *Owner    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// WithOwner pairs the post with owner, which may be nil when the user record is gone.
func (p *Post) WithOwner(owner *Owner) PostWithOwner {
	return PostWithOwner{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		Image:     p.Image,
		User:      owner,
		CreatedAt: p.CreatedAt,
	}
}
