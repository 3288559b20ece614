package models

import (
	"time"
)

// CancellationFeedback stores the reason a professional gave when asking to
// cancel the subscription. Side channel only, never read by the billing flow.
type CancellationFeedback struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string    `json:"userId" gorm:"type:uuid;index;not null"`
	Reason    string    `json:"reason"`
	Details   string    `json:"details" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (CancellationFeedback) TableName() string {
	return "cancellation_feedbacks"
}

// CancellationInput payload for the cancel endpoint
type CancellationInput struct {
	Reason  string `json:"reason" binding:"required"`
	Details string `json:"details"`
}
