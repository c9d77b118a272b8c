// Package rating computes a player's skill rating from their finished games.
package rating

import "hangman/backend/internal/models"

// Unrated is the rating of a player with no recorded wins.
const Unrated = models.UnratedRating

// Compute derives a golf-style rating from a snapshot of finished games:
// the lower the better, with a 3 point penalty per game lost.
//
// A game counts as won when it finished naturally with attempts to spare.
// A game counts as lost only when the player made zero progress before it
// ended (attempts remaining still equal to attempts allowed); a narrower rule
// than "not won", kept because changing it would silently shift every rating.
//
// Compute is pure: it always recomputes from the full history it is given.
func Compute(games []models.Game) int {
	guesses := 0
	won := 0
	lost := 0
	for _, g := range games {
		guesses += g.AttemptsAllowed - g.AttemptsRemaining
		if g.GameOver && !g.Cancelled && g.AttemptsRemaining > 0 {
			won++
		}
		if g.AttemptsRemaining == g.AttemptsAllowed {
			lost++
		}
	}

	if won == 0 {
		return Unrated
	}
	return guesses/won + 3*lost
}
