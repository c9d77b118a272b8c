package game

import (
	"errors"
	"fmt"
	"testing"

	"hangman/backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Game{}, &models.Score{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func testUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := models.User{Name: name, PasswordHash: "x", Rating: models.UnratedRating}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func scoreCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&models.Score{}).Count(&n).Error; err != nil {
		t.Fatalf("count scores: %v", err)
	}
	return n
}

func TestCreateInitialState(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")

	g, err := Create(db, user, "cat", 5)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if g.GuessField != "***" {
		t.Errorf("expected guess field '***', got %q", g.GuessField)
	}
	if g.AttemptsRemaining != 5 || g.AttemptsAllowed != 5 {
		t.Errorf("expected 5/5 attempts, got %d/%d", g.AttemptsRemaining, g.AttemptsAllowed)
	}
	if g.GameOver || g.Cancelled {
		t.Errorf("new game must be in progress: %+v", g)
	}
	if g.Key == "" {
		t.Error("expected an opaque key")
	}
	if len(g.PrevGuesses) != 0 {
		t.Errorf("expected empty history, got %v", g.PrevGuesses)
	}
}

func TestCreateRejectsShortAnswer(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")

	_, err := Create(db, user, "x", 5)
	if !errors.Is(err, ErrAnswerTooShort) {
		t.Fatalf("expected ErrAnswerTooShort, got %v", err)
	}

	var n int64
	db.Model(&models.Game{}).Count(&n)
	if n != 0 {
		t.Errorf("no game must be persisted on validation failure, found %d", n)
	}
}

func TestCreateDefaultsAttempts(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")

	g, err := Create(db, user, "cat", 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if g.AttemptsAllowed != DefaultAttempts {
		t.Errorf("expected default of %d attempts, got %d", DefaultAttempts, g.AttemptsAllowed)
	}
}

func TestMakeMoveFullGame(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")
	g, err := Create(db, user, "cat", 5)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	msg, err := MakeMove(db, g, "a")
	if err != nil {
		t.Fatalf("move a: %v", err)
	}
	if g.GuessField != "*a*" || g.AttemptsRemaining != 5 {
		t.Errorf("after 'a': field %q remaining %d", g.GuessField, g.AttemptsRemaining)
	}
	if msg != "You got one! Keep guessing: *a*" {
		t.Errorf("unexpected message %q", msg)
	}

	if _, err := MakeMove(db, g, "z"); err != nil {
		t.Fatalf("move z: %v", err)
	}
	if g.AttemptsRemaining != 4 {
		t.Errorf("after 'z': remaining %d", g.AttemptsRemaining)
	}

	msg, err = MakeMove(db, g, "cat")
	if err != nil {
		t.Fatalf("move cat: %v", err)
	}
	if !g.GameOver {
		t.Error("expected game over after winning word")
	}
	if msg != "Hooray! You win! The answer is: cat" {
		t.Errorf("unexpected message %q", msg)
	}

	var score models.Score
	if err := db.First(&score).Error; err != nil {
		t.Fatalf("expected a score: %v", err)
	}
	if !score.Won || score.Guesses != 1 {
		t.Errorf("expected won score with 1 guess, got %+v", score)
	}

	// Moves after the end report the game as over and create no more scores.
	msg, err = MakeMove(db, g, "t")
	if err != nil {
		t.Fatalf("move after end: %v", err)
	}
	if msg != "Game already over!" {
		t.Errorf("unexpected message %q", msg)
	}
	if n := scoreCount(t, db); n != 1 {
		t.Errorf("expected exactly one score, got %d", n)
	}
}

func TestMakeMoveLossCreatesLosingScore(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")
	g, err := Create(db, user, "cat", 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	msg, err := MakeMove(db, g, "z")
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if msg != "Game over!" {
		t.Errorf("unexpected message %q", msg)
	}
	if !g.GameOver || g.Cancelled {
		t.Errorf("expected a natural loss, got %+v", g)
	}

	var score models.Score
	if err := db.First(&score).Error; err != nil {
		t.Fatalf("expected a score: %v", err)
	}
	if score.Won || score.Guesses != 1 {
		t.Errorf("expected lost score with 1 guess, got %+v", score)
	}
}

func TestMakeMoveRepeatedGuessDoesNotPersist(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")
	g, err := Create(db, user, "cat", 5)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := MakeMove(db, g, "z"); err != nil {
		t.Fatalf("move: %v", err)
	}
	msg, err := MakeMove(db, g, "z")
	if err != nil {
		t.Fatalf("repeat move: %v", err)
	}
	if msg != "You already guessed z" {
		t.Errorf("unexpected message %q", msg)
	}

	var stored models.Game
	if err := db.First(&stored, g.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.AttemptsRemaining != 4 {
		t.Errorf("repeat guess must not cost an attempt, got %d", stored.AttemptsRemaining)
	}
	if len(stored.PrevGuesses) != 1 {
		t.Errorf("repeat guess must not re-append, history %v", stored.PrevGuesses)
	}
}

func TestCancelGame(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")
	g, err := Create(db, user, "cat", 5)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	msg, err := Cancel(db, g)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if msg != "GAME CANCELLED!" {
		t.Errorf("unexpected message %q", msg)
	}
	if !g.GameOver || !g.Cancelled {
		t.Errorf("expected cancelled terminal state, got %+v", g)
	}
	if n := scoreCount(t, db); n != 0 {
		t.Errorf("cancellation must not create a score, got %d", n)
	}

	// Cancelling again is a no-op notice.
	msg, err = Cancel(db, g)
	if err != nil {
		t.Fatalf("second cancel: %v", err)
	}
	if msg != "This game is already over." {
		t.Errorf("unexpected message %q", msg)
	}
	if n := scoreCount(t, db); n != 0 {
		t.Errorf("second cancel must not create a score, got %d", n)
	}
}

func TestActiveGames(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice")
	bob := testUser(t, db, "bob")

	g1, _ := Create(db, alice, "cat", 5)
	if _, err := Create(db, alice, "dog", 5); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := Create(db, bob, "fish", 5); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := Cancel(db, g1); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	games, err := ActiveGames(db, alice.ID)
	if err != nil {
		t.Fatalf("active games: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 active game for alice, got %d", len(games))
	}
	if games[0].Answer != "dog" {
		t.Errorf("expected the dog game, got %q", games[0].Answer)
	}
}

func TestFindByKey(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "alice")
	g, err := Create(db, user, "cat", 5)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := FindByKey(db, g.Key)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID != g.ID {
		t.Errorf("expected game %d, got %d", g.ID, found.ID)
	}
	if found.User.Name != "alice" {
		t.Errorf("expected owner preloaded, got %+v", found.User)
	}

	if _, err := FindByKey(db, "no-such-key"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}
