package rating

import (
	"testing"

	"hangman/backend/internal/models"
)

func won(allowed, remaining int) models.Game {
	return models.Game{
		AttemptsAllowed:   allowed,
		AttemptsRemaining: remaining,
		GameOver:          true,
	}
}

func TestComputeNoWinsIsUnrated(t *testing.T) {
	if r := Compute(nil); r != Unrated {
		t.Errorf("expected %d for no games, got %d", Unrated, r)
	}

	// A finished game with zero attempts left is not a win.
	games := []models.Game{won(5, 0)}
	if r := Compute(games); r != Unrated {
		t.Errorf("expected %d with no wins, got %d", Unrated, r)
	}
}

func TestComputeGolfScoring(t *testing.T) {
	// Two wins using 10 guesses total, one zero-progress loss:
	// 10/2 + 3*1 = 8.
	games := []models.Game{
		won(9, 4), // 5 guesses used
		won(9, 4), // 5 guesses used
		{AttemptsAllowed: 9, AttemptsRemaining: 9, GameOver: true, Cancelled: true},
	}

	if r := Compute(games); r != 8 {
		t.Errorf("expected rating 8, got %d", r)
	}
}

func TestComputeIntegerDivisionTruncates(t *testing.T) {
	// 7 guesses over 2 wins: 7/2 truncates to 3.
	games := []models.Game{
		won(9, 5), // 4 guesses used
		won(9, 6), // 3 guesses used
	}

	if r := Compute(games); r != 3 {
		t.Errorf("expected rating 3, got %d", r)
	}
}

func TestComputeCancelledGameIsNotAWin(t *testing.T) {
	games := []models.Game{
		{AttemptsAllowed: 9, AttemptsRemaining: 5, GameOver: true, Cancelled: true},
	}
	if r := Compute(games); r != Unrated {
		t.Errorf("cancelled game must not count as a win, got %d", r)
	}
}

func TestComputeLossIsZeroProgressOnly(t *testing.T) {
	// A game lost after making progress is neither a win nor a loss under
	// the zero-progress rule; it only contributes its guesses.
	games := []models.Game{
		won(9, 8), // 1 guess used
		{AttemptsAllowed: 5, AttemptsRemaining: 0, GameOver: true}, // 5 guesses, no loss penalty
	}

	// 6 guesses / 1 win + 3*0 = 6.
	if r := Compute(games); r != 6 {
		t.Errorf("expected rating 6, got %d", r)
	}
}
