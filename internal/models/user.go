package models

import "gorm.io/gorm"

// UnratedRating marks a user with no recorded wins.
const UnratedRating = -1

// User represents a registered player.
type User struct {
	gorm.Model
	Name         string `gorm:"size:255;unique;not null"`
	Email        string `gorm:"size:255"`
	PasswordHash string `gorm:"size:255;not null"`
	Rating       int    `gorm:"not null;default:-1"`
}
