package handler

import (
	"net/http"

	"hangman/backend/internal/notify"

	"github.com/gin-gonic/gin"
)

// Reminder is the shared reminder sweep, wired up in main.
var Reminder *notify.Reminder

// CacheAverageAttempts godoc
// @Summary      Recompute the average moves remaining
// @Description  Task trigger: scans active games and refreshes the cached average.
// @Tags         tasks
// @Success      204  "cache refreshed"
// @Failure      500  {object}  ErrorResponse
// @Router       /tasks/cache-average-attempts [post]
func CacheAverageAttempts(c *gin.Context) {
	if err := Stats.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh cache"})
		return
	}

	c.Status(http.StatusNoContent)
}

// SendReminder godoc
// @Summary      Send game reminders
// @Description  Cron trigger: mails one reminder to each user with an email and at least one active game.
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  map[string]int "{"reminded": 2}"
// @Failure      500  {object}  ErrorResponse
// @Router       /crons/send-reminder [get]
func SendReminder(c *gin.Context) {
	reminded, err := Reminder.Sweep(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run reminder sweep"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminded": reminded})
}
