package game

import (
	"errors"
	"strings"
	"time"

	"hangman/backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DefaultAttempts is used when a new game does not specify a limit.
const DefaultAttempts = 9

// ErrAnswerTooShort rejects answers of fewer than two letters.
var ErrAnswerTooShort = errors.New("answer must be more than one letter")

// Create validates the answer, builds the initial game state and persists it.
// The reveal pattern starts fully hidden and attempts start at the allowed
// limit.
func Create(db *gorm.DB, owner *models.User, answer string, attempts int) (*models.Game, error) {
	if len(answer) < 2 {
		return nil, ErrAnswerTooShort
	}
	if attempts <= 0 {
		attempts = DefaultAttempts
	}

	g := models.Game{
		Key:               uuid.NewString(),
		Answer:            answer,
		GuessField:        strings.Repeat(Placeholder, len(answer)),
		AttemptsAllowed:   attempts,
		AttemptsRemaining: attempts,
		GameOver:          false,
		Cancelled:         false,
		UserID:            owner.ID,
		PrevGuesses:       models.GuessList{},
	}
	if err := db.Create(&g).Error; err != nil {
		return nil, err
	}

	log.Info().Str("game", g.Key).Str("user", owner.Name).Int("attempts", attempts).Msg("game created")
	return &g, nil
}

// FindByKey loads a game by its opaque key, with its owner preloaded.
// Returns gorm.ErrRecordNotFound when no such game exists.
func FindByKey(db *gorm.DB, key string) (*models.Game, error) {
	var g models.Game
	if err := db.Preload("User").Where("key = ?", key).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// ActiveGames returns all games of the owner that are not over yet.
func ActiveGames(db *gorm.DB, ownerID uint) ([]models.Game, error) {
	var games []models.Game
	err := db.Preload("User").
		Where("user_id = ? AND game_over = ?", ownerID, false).
		Find(&games).Error
	return games, err
}

// FinishedGames returns all games of the owner with game_over set, including
// cancelled ones. This is the rating input.
func FinishedGames(db *gorm.DB, ownerID uint) ([]models.Game, error) {
	var games []models.Game
	err := db.Where("user_id = ? AND game_over = ?", ownerID, true).Find(&games).Error
	return games, err
}

// MakeMove applies a guess to the game and persists the result. The returned
// message describes the outcome to the player. A finished game is reported as
// already over without further evaluation; a terminal outcome ends the game
// and records a Score.
func MakeMove(db *gorm.DB, g *models.Game, guess string) (string, error) {
	if g.GameOver {
		return "Game already over!", nil
	}

	ev, err := Evaluate(g.Answer, g.GuessField, g.AttemptsRemaining, g.PrevGuesses, guess)
	if err != nil {
		return "", err
	}

	if ev.Outcome == OutcomeRepeat {
		return ev.Message, nil
	}

	g.GuessField = ev.GuessField
	g.AttemptsRemaining = ev.AttemptsRemaining
	g.PrevGuesses = models.GuessList(ev.History)

	switch ev.Outcome {
	case OutcomeWin:
		if err := End(db, g, true); err != nil {
			return "", err
		}
	case OutcomeLoss:
		if err := End(db, g, false); err != nil {
			return "", err
		}
	default:
		if err := db.Save(g).Error; err != nil {
			return "", err
		}
	}
	return ev.Message, nil
}

// End marks the game over and records its Score. Guesses used is the number
// of attempts consumed when the game ended. MakeMove's GameOver check keeps
// this from ever running twice for one game.
func End(db *gorm.DB, g *models.Game, won bool) error {
	g.GameOver = true
	if err := db.Save(g).Error; err != nil {
		return err
	}

	score := models.Score{
		UserID:  g.UserID,
		Date:    time.Now(),
		Won:     won,
		Guesses: g.AttemptsAllowed - g.AttemptsRemaining,
	}
	if err := db.Create(&score).Error; err != nil {
		return err
	}

	log.Info().Str("game", g.Key).Bool("won", won).Int("guesses", score.Guesses).Msg("game finished")
	return nil
}

// Cancel terminates an in-progress game without recording a Score. A game
// that is already over is left untouched.
func Cancel(db *gorm.DB, g *models.Game) (string, error) {
	if g.GameOver {
		return "This game is already over.", nil
	}

	g.GameOver = true
	g.Cancelled = true
	if err := db.Save(g).Error; err != nil {
		return "", err
	}

	log.Info().Str("game", g.Key).Msg("game cancelled")
	return "GAME CANCELLED!", nil
}
