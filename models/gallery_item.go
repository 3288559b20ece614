package models

import (
	"time"
)

// GalleryItem is one photo of the public gallery. The image lives on
// Cloudinary, only its URL is stored here.
type GalleryItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string    `json:"userId" gorm:"type:uuid;index;not null"`
	Position  int       `json:"position" gorm:"not null"`
	Caption   string    `json:"caption"`
	ImageURL  string    `json:"imageUrl" gorm:"column:image_url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (GalleryItem) TableName() string {
	return "gallery_items"
}

func (g GalleryItem) GetID() string {
	return g.ID
}

func (g GalleryItem) GetOwnerID() string {
	return g.UserID
}

func (g GalleryItem) GetPosition() int {
	return g.Position
}

func (g *GalleryItem) SetPosition(position int) {
	g.Position = position
}
