package notify

import (
	"context"
	"fmt"
	"testing"

	"hangman/backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type captureMailer struct {
	sent []string
}

func (m *captureMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, to)
	return nil
}

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

func addUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	user := models.User{Name: name, Email: email, PasswordHash: "x", Rating: models.UnratedRating}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

var gameSeq int

func addGame(t *testing.T, db *gorm.DB, userID uint, over bool) {
	t.Helper()

	gameSeq++
	g := models.Game{
		Key:               fmt.Sprintf("key-%d-%v-%d", userID, over, gameSeq),
		Answer:            "cat",
		GuessField:        "***",
		AttemptsAllowed:   9,
		AttemptsRemaining: 9,
		GameOver:          over,
		UserID:            userID,
		PrevGuesses:       models.GuessList{},
	}
	if err := db.Create(&g).Error; err != nil {
		t.Fatalf("create game: %v", err)
	}
}

func TestSweepRemindsUsersWithActiveGames(t *testing.T) {
	db := testDB(t)
	mailer := &captureMailer{}
	reminder := New(db, mailer)

	alice := addUser(t, db, "alice", "alice@example.com")
	bob := addUser(t, db, "bob", "bob@example.com")
	carol := addUser(t, db, "carol", "") // no email
	dave := addUser(t, db, "dave", "dave@example.com")

	addGame(t, db, alice.ID, false)
	addGame(t, db, alice.ID, false) // second active game, still one mail
	addGame(t, db, bob.ID, true)    // only a finished game
	addGame(t, db, carol.ID, false)
	_ = dave // no games at all

	reminded, err := reminder.Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}

	if reminded != 1 {
		t.Fatalf("expected 1 user reminded, got %d", reminded)
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "alice@example.com" {
		t.Errorf("expected one mail to alice, got %v", mailer.sent)
	}
}

func TestSweepWithNoCandidatesSendsNothing(t *testing.T) {
	db := testDB(t)
	mailer := &captureMailer{}
	reminder := New(db, mailer)

	reminded, err := reminder.Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if reminded != 0 || len(mailer.sent) != 0 {
		t.Errorf("expected no reminders, got %d sent %v", reminded, mailer.sent)
	}
}
