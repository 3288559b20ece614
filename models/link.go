package models

import (
	"time"
)

// Link is one external link on the public page (site, social network,
// scheduling page). Ordered per user like the other collections.
type Link struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string    `json:"userId" gorm:"type:uuid;index;not null"`
	Position  int       `json:"position" gorm:"not null"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Link) TableName() string {
	return "links"
}

func (l Link) GetID() string {
	return l.ID
}

func (l Link) GetOwnerID() string {
	return l.UserID
}

func (l Link) GetPosition() int {
	return l.Position
}

func (l *Link) SetPosition(position int) {
	l.Position = position
}

// LinkCreate payload for creating a link
type LinkCreate struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required,url"`
}

// LinkUpdate payload for updating a link
type LinkUpdate struct {
	Title *string `json:"title"`
	URL   *string `json:"url" binding:"omitempty,url"`
}
