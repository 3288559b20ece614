package models

import (
	"database/sql"
	"time"
)

type Role string

const (
	AdminRole Role = "ADMIN"
	UserRole  Role = "USER"
)

// User is a professional account. SubscriptionActive mirrors the Stripe
// subscription status and gates the publication of the public page.
type User struct {
	ID                 string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email              string       `json:"email" gorm:"uniqueIndex" binding:"required,email"`
	Password           string       `json:"password" binding:"required,min=6"`
	Name               string       `json:"name"`
	Role               Role         `json:"role" gorm:"type:varchar(20);default:'USER'"`
	StripeCustomerId   string       `json:"stripeCustomerId"`
	SubscriptionActive bool         `json:"subscriptionActive" gorm:"default:false"`
	Cnpj               string       `json:"cnpj"`
	ConfirmationCode   string       `json:"-"`
	EmailVerifiedAt    sql.NullTime `json:"emailVerifiedAt"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// UserCreate payload for register and login
type UserCreate struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserUpdate payload for account updates
type UserUpdate struct {
	Name string `json:"name"`
}

// RegistryCheckInput payload for the company registration check
type RegistryCheckInput struct {
	Cnpj string `json:"cnpj" binding:"required"`
}

// PasswordUpdate payload for password change
type PasswordUpdate struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}
