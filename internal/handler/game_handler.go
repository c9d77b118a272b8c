package handler

import (
	"context"
	"errors"
	"net/http"

	"hangman/backend/internal/database"
	"hangman/backend/internal/game"
	"hangman/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// region --- DTOs ---

// NewGameInput defines the structure for creating a game.
type NewGameInput struct {
	AnswerWord string `json:"answer_word" binding:"required" example:"cat"`
	// Attempts defaults to 9 when omitted; in hangman the limit is usually
	// fixed by the drawing, but the caller may pick their own.
	Attempts int `json:"attempts" example:"5"`
}

// MoveInput defines the structure for submitting a guess.
type MoveInput struct {
	Guess string `json:"guess" example:"a"`
}

// GameResponse is the outbound game state.
type GameResponse struct {
	UrlsafeKey        string `json:"urlsafe_key"`
	UserName          string `json:"user_name"`
	AttemptsRemaining int    `json:"attempts_remaining"`
	GameOver          bool   `json:"game_over"`
	Cancelled         bool   `json:"cancelled"`
	GuessField        string `json:"guess_field"`
	Message           string `json:"message"`
}

// HistoryResponse lists the ordered guesses of a game.
type HistoryResponse struct {
	UrlsafeKey string   `json:"urlsafe_key"`
	UserName   string   `json:"user_name"`
	Guesses    []string `json:"guesses"`
}

func newGameResponse(g *models.Game, message string) GameResponse {
	return GameResponse{
		UrlsafeKey:        g.Key,
		UserName:          g.User.Name,
		AttemptsRemaining: g.AttemptsRemaining,
		GameOver:          g.GameOver,
		Cancelled:         g.Cancelled,
		GuessField:        g.GuessField,
		Message:           message,
	}
}

// endregion

// region --- Handlers ---

// CreateGame godoc
// @Summary      Create a new game
// @Description  Starts a hangman game owned by the caller. The answer must be at least two letters.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body NewGameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse "Answer too short"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /games [post]
func CreateGame(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input NewGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID.(uint)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	g, err := game.Create(database.DB, &user, input.AnswerWord, input.Attempts)
	if err != nil {
		if errors.Is(err, game.ErrAnswerTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Answer must be more than one letter!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}
	g.User = user

	// The average-attempts cache does not need to be current for game
	// creation to succeed, so refresh it out of band. Failures are logged
	// and absorbed.
	if stats := Stats; stats != nil {
		go func() {
			if err := stats.Refresh(context.Background()); err != nil {
				log.Warn().Err(err).Msg("average attempts refresh failed")
			}
		}()
	}

	c.JSON(http.StatusCreated, newGameResponse(g, "Good luck playing Hangman!"))
}

// GetGame godoc
// @Summary      Get a game by key
// @Description  Returns the current state of the game.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        key path string true "Game key"
// @Success      200  {object}  GameResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{key} [get]
func GetGame(c *gin.Context) {
	g, ok := findGame(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newGameResponse(g, "Time to make a move!"))
}

// MakeMove godoc
// @Summary      Make a move
// @Description  Submits a single-letter or whole-word guess and returns the updated game state.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key   path string    true "Game key"
// @Param        input body MoveInput true "Guess"
// @Success      200  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse "Blank guess"
// @Failure      403  {object}  ErrorResponse "Not the owner"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{key}/move [put]
func MakeMove(c *gin.Context) {
	g, ok := findOwnedGame(c)
	if !ok {
		return
	}

	var input MoveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := game.MakeMove(database.DB, g, input.Guess)
	if err != nil {
		if errors.Is(err, game.ErrEmptyGuess) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Guess cannot be blank!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply move"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(g, msg))
}

// CancelGame godoc
// @Summary      Cancel a game
// @Description  Cancels an in-progress game. Cancelled games produce no score.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        key path string true "Game key"
// @Success      200  {object}  GameResponse
// @Failure      403  {object}  ErrorResponse "Not the owner"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{key}/cancel [put]
func CancelGame(c *gin.Context) {
	g, ok := findOwnedGame(c)
	if !ok {
		return
	}

	msg, err := game.Cancel(database.DB, g)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel game"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(g, msg))
}

// GetUserGames godoc
// @Summary      Get the caller's active games
// @Description  Lists all games of the authenticated user that are not over yet.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   GameResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func GetUserGames(c *gin.Context) {
	userID, _ := c.Get("userID")

	games, err := game.ActiveGames(database.DB, userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	response := make([]GameResponse, 0, len(games))
	for i := range games {
		response = append(response, newGameResponse(&games[i], "Time to make a move!"))
	}

	c.JSON(http.StatusOK, response)
}

// GetGameHistory godoc
// @Summary      Get a game's guess history
// @Description  Returns the ordered list of guesses made in the game.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        key path string true "Game key"
// @Success      200  {object}  HistoryResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{key}/history [get]
func GetGameHistory(c *gin.Context) {
	g, ok := findGame(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{
		UrlsafeKey: g.Key,
		UserName:   g.User.Name,
		Guesses:    g.PrevGuesses,
	})
}

// endregion

// region --- Helpers ---

func findGame(c *gin.Context) (*models.Game, bool) {
	g, err := game.FindByKey(database.DB, c.Param("key"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found!"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		}
		return nil, false
	}
	return g, true
}

// findOwnedGame additionally requires the caller to own the game before
// allowing mutation.
func findOwnedGame(c *gin.Context) (*models.Game, bool) {
	g, ok := findGame(c)
	if !ok {
		return nil, false
	}

	userID, _ := c.Get("userID")
	if g.UserID != userID.(uint) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your game"})
		return nil, false
	}
	return g, true
}

// endregion
