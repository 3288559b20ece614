package models

import (
	"time"
)

// ActivityArea is one practice area shown on the public page. Positions are
// dense and 1-based inside each user's collection.
type ActivityArea struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID      string    `json:"userId" gorm:"type:uuid;index;not null"`
	Position    int       `json:"position" gorm:"not null"`
	Title       string    `json:"title"`
	Description string    `json:"description" gorm:"type:text"`
	CoverURL    string    `json:"coverUrl" gorm:"column:cover_url"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (ActivityArea) TableName() string {
	return "activity_areas"
}

func (a ActivityArea) GetID() string {
	return a.ID
}

func (a ActivityArea) GetOwnerID() string {
	return a.UserID
}

func (a ActivityArea) GetPosition() int {
	return a.Position
}

func (a *ActivityArea) SetPosition(position int) {
	a.Position = position
}
