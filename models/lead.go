package models

import (
	"time"
)

// Lead is a contact request submitted through the public page form.
type Lead struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProfileID string    `json:"profileId" gorm:"type:uuid;index;not null"`
	Name      string    `json:"name" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message" gorm:"type:text" binding:"required"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Lead) TableName() string {
	return "leads"
}

// LeadCreate payload for the public contact form
type LeadCreate struct {
	Name    string `json:"name" binding:"required" example:"Maria Souza"`
	Email   string `json:"email" binding:"required,email" example:"maria.souza@example.com"`
	Phone   string `json:"phone" example:"+55 11 98888-7777"`
	Message string `json:"message" binding:"required" example:"I need help with a labor dispute."`
}
