package models

import (
	"time"

	"gorm.io/gorm"
)

// Score records the outcome of a naturally finished game. Cancelled games
// never produce a Score.
type Score struct {
	gorm.Model
	UserID  uint      `gorm:"not null;index"`
	Date    time.Time `gorm:"not null"`
	Won     bool      `gorm:"not null"`
	Guesses int       `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID"`
}
