package models

import (
	"time"
)

// Profile is the public page of one professional (1:1 with User).
// The page is reachable at /p/:slug only when Published is true AND the
// owner's subscription is active.
type Profile struct {
	ID                   string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID               string    `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	Slug                 string    `json:"slug" gorm:"uniqueIndex"`
	PublicName           string    `json:"publicName"`
	Headline             string    `json:"headline"`
	Bio                  string    `json:"bio" gorm:"type:text"`
	PhotoURL             string    `json:"photoUrl" gorm:"column:photo_url"`
	Phone                string    `json:"phone"`
	Whatsapp             string    `json:"whatsapp"`
	City                 string    `json:"city"`
	Uf                   string    `json:"uf" gorm:"type:varchar(2)"`
	ThemePrimaryColor    string    `json:"themePrimaryColor" gorm:"default:'#1A3C5A'"`
	ThemeBackgroundColor string    `json:"themeBackgroundColor" gorm:"default:'#FFFFFF'"`
	ThemeTextColor       string    `json:"themeTextColor" gorm:"default:'#1F2937'"`
	SeoTitle             string    `json:"seoTitle"`
	SeoDescription       string    `json:"seoDescription"`
	Published            bool      `json:"published" gorm:"default:false"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func (Profile) TableName() string {
	return "profiles"
}

// ProfileUpdate payload for profile edits. Pointer fields so an absent key
// leaves the stored value untouched.
type ProfileUpdate struct {
	Slug                 *string `json:"slug"`
	PublicName           *string `json:"publicName"`
	Headline             *string `json:"headline"`
	Bio                  *string `json:"bio"`
	Phone                *string `json:"phone"`
	Whatsapp             *string `json:"whatsapp"`
	City                 *string `json:"city"`
	Uf                   *string `json:"uf"`
	ThemePrimaryColor    *string `json:"themePrimaryColor"`
	ThemeBackgroundColor *string `json:"themeBackgroundColor"`
	ThemeTextColor       *string `json:"themeTextColor"`
	SeoTitle             *string `json:"seoTitle"`
	SeoDescription       *string `json:"seoDescription"`
}
