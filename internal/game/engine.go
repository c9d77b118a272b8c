// Package game implements the hangman rules: evaluating guesses against a
// secret answer and driving a game through its lifecycle
// (in progress → won / lost / cancelled).
package game

import (
	"errors"
	"strings"
)

// Placeholder marks an unrevealed letter in the guess field.
const Placeholder = "*"

// Outcome is the result of evaluating a single guess.
type Outcome int

const (
	// OutcomeContinue: the game goes on, whether or not the guess matched.
	OutcomeContinue Outcome = iota
	// OutcomeRepeat: the guess was already made; nothing changed.
	OutcomeRepeat
	// OutcomeWin: the guess completed the answer.
	OutcomeWin
	// OutcomeLoss: the guess exhausted the remaining attempts.
	OutcomeLoss
)

// ErrEmptyGuess is returned for a blank guess. The game is left unchanged.
var ErrEmptyGuess = errors.New("guess cannot be blank")

// Evaluation captures the effect of one guess on a game.
type Evaluation struct {
	GuessField        string
	AttemptsRemaining int
	History           []string
	Outcome           Outcome
	Message           string
}

// Evaluate applies a guess to the given game state and returns the next
// state. It never mutates its inputs.
//
// Rules, in order:
//   - A repeated guess costs nothing and changes nothing.
//   - A single letter present in the answer reveals every matching position;
//     matching letters never cost an attempt, even the winning one.
//   - A single letter absent from the answer, or a wrong whole-word guess,
//     costs one attempt and is appended to the history.
//   - A whole-word guess equal to the answer wins immediately.
//   - Running out of attempts after a non-winning guess loses the game.
//
// Winning guesses are not recorded in the history, matching how guesses were
// always tallied for scoring (guesses used = attempts allowed - remaining).
func Evaluate(answer, guessField string, attemptsRemaining int, history []string, guess string) (Evaluation, error) {
	ev := Evaluation{
		GuessField:        guessField,
		AttemptsRemaining: attemptsRemaining,
		History:           history,
	}

	if len(guess) == 0 {
		return ev, ErrEmptyGuess
	}

	for _, prev := range history {
		if prev == guess {
			ev.Outcome = OutcomeRepeat
			ev.Message = "You already guessed " + guess
			return ev, nil
		}
	}

	if len(guess) == 1 {
		if strings.Contains(answer, guess) {
			ev.GuessField = reveal(answer, guessField, guess)
			if strings.Contains(ev.GuessField, Placeholder) {
				ev.History = appendGuess(history, guess)
				ev.Outcome = OutcomeContinue
				ev.Message = "You got one! Keep guessing: " + ev.GuessField
			} else {
				ev.Outcome = OutcomeWin
				ev.Message = "You win! The answer is: " + ev.GuessField
			}
			return ev, nil
		}
		ev.History = appendGuess(history, guess)
		ev.AttemptsRemaining--
		ev.Message = "Nope! " + guess + " is not in the answer. Keep guessing: " + ev.GuessField
	} else {
		if guess == answer {
			ev.Outcome = OutcomeWin
			ev.Message = "Hooray! You win! The answer is: " + answer
			return ev, nil
		}
		ev.History = appendGuess(history, guess)
		ev.AttemptsRemaining--
		ev.Message = "Nope! " + guess + " is not the answer. Keep guessing: " + ev.GuessField
	}

	if ev.AttemptsRemaining < 1 {
		ev.Outcome = OutcomeLoss
		ev.Message = "Game over!"
	}
	return ev, nil
}

// reveal recomputes the guess field position by position: a position shows
// the guessed letter where the answer matches, keeps an earlier reveal, or
// stays a placeholder.
func reveal(answer, guessField, guess string) string {
	var b strings.Builder
	b.Grow(len(answer))
	for i := 0; i < len(answer); i++ {
		switch {
		case string(answer[i]) == guess:
			b.WriteString(guess)
		case string(guessField[i]) == Placeholder:
			b.WriteString(Placeholder)
		default:
			b.WriteByte(guessField[i])
		}
	}
	return b.String()
}

// appendGuess copies before appending so callers holding the old history
// never see it change.
func appendGuess(history []string, guess string) []string {
	next := make([]string, 0, len(history)+1)
	next = append(next, history...)
	return append(next, guess)
}
