package models

import (
	"time"

	"gorm.io/gorm"
)

// Article is a public blog post. Unpublished articles are visible to staff
// only.
type Article struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Body        string     `json:"body" gorm:"not null"`
	Published   bool       `json:"published" gorm:"default:false"`
	PublishedAt *time.Time `json:"published_at"`
	AuthorID    *uint      `json:"author_id"`
	Author      *User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Publish marks the article published and stamps the publish time.
func (a *Article) Publish(db *gorm.DB) error {
	now := time.Now()
	a.Published = true
	a.PublishedAt = &now
	return db.Model(a).Updates(map[string]interface{}{
		"published":    true,
		"published_at": now,
	}).Error
}

// JournalEntry is a private note owned by one user.
type JournalEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Message   string    `json:"message" gorm:"not null"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
}
