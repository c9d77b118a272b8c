package handler

import (
	"net/http"

	"hangman/backend/internal/database"
	"hangman/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ScoreResponse is the outbound representation of a finished game's score.
type ScoreResponse struct {
	UserName string `json:"user_name" example:"alice"`
	Date     string `json:"date" example:"2026-08-30"`
	Won      bool   `json:"won"`
	Guesses  int    `json:"guesses" example:"1"`
}

func newScoreResponse(s models.Score) ScoreResponse {
	return ScoreResponse{
		UserName: s.User.Name,
		Date:     s.Date.Format("2006-01-02"),
		Won:      s.Won,
		Guesses:  s.Guesses,
	}
}

// PaginatedScoreResponse defines the structure for a paginated list of scores.
type PaginatedScoreResponse struct {
	Data []ScoreResponse `json:"data"`
	Meta PaginationMeta  `json:"meta"`
}

// endregion

// GetScores godoc
// @Summary      Get all scores
// @Description  Returns a paginated list of all recorded scores, newest first.
// @Tags         scores
// @Produce      json
// @Security     BearerAuth
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200  {object}  PaginatedScoreResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /scores [get]
func GetScores(c *gin.Context) {
	page, limit, offset := pageParams(c.DefaultQuery("page", "1"), c.DefaultQuery("limit", "10"))

	var totalItems int64
	if err := database.DB.Model(&models.Score{}).Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count scores"})
		return
	}

	var scores []models.Score
	err := database.DB.Preload("User").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&scores).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve scores"})
		return
	}

	response := make([]ScoreResponse, 0, len(scores))
	for _, score := range scores {
		response = append(response, newScoreResponse(score))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, totalItems, page, limit))
}

// GetHighScores godoc
// @Summary      Get the leaderboard
// @Description  Returns scores ordered by fewest guesses, optionally limited to the top N.
// @Tags         scores
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum number of results"
// @Success      200  {array}   ScoreResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /scores/leaderboard [get]
func GetHighScores(c *gin.Context) {
	limit := atoiDefault(c.Query("limit"), 0)

	query := database.DB.Preload("User").Order("guesses ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var scores []models.Score
	if err := query.Find(&scores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve scores"})
		return
	}

	response := make([]ScoreResponse, 0, len(scores))
	for _, score := range scores {
		response = append(response, newScoreResponse(score))
	}

	c.JSON(http.StatusOK, response)
}
