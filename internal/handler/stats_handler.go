package handler

import (
	"net/http"

	"hangman/backend/internal/cache"

	"github.com/gin-gonic/gin"
)

// Stats is the shared average-attempts cache, wired up in main.
var Stats *cache.Stats

// GetAverageAttempts godoc
// @Summary      Get the cached average moves remaining
// @Description  Returns the last computed average-attempts message, or an empty message if never computed.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  map[string]string "{"message": "..."}"
// @Failure      500  {object}  ErrorResponse
// @Router       /stats/average-attempts [get]
func GetAverageAttempts(c *gin.Context) {
	message, err := Stats.Read(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cache"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
