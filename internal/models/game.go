package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// GuessList stores the ordered guesses of a game as a JSON text column.
type GuessList []string

// Value implements driver.Valuer.
func (l GuessList) Value() (driver.Value, error) {
	if l == nil {
		l = GuessList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *GuessList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = GuessList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for GuessList column")
	}
}

// Game represents a single hangman round.
//
// GuessField is the reveal pattern shown to the player: same length as the
// answer, '*' for letters not yet revealed. Once GameOver is set the round is
// terminal and no field is mutated again.
type Game struct {
	gorm.Model
	Key               string    `gorm:"size:36;unique;not null"`
	Answer            string    `gorm:"size:255;not null"`
	GuessField        string    `gorm:"size:255;not null"`
	AttemptsAllowed   int       `gorm:"not null"`
	AttemptsRemaining int       `gorm:"not null"`
	GameOver          bool      `gorm:"not null;default:false;index"`
	Cancelled         bool      `gorm:"not null;default:false"`
	UserID            uint      `gorm:"not null;index"`
	PrevGuesses       GuessList `gorm:"type:text;not null"`

	User User `gorm:"foreignKey:UserID"`
}
