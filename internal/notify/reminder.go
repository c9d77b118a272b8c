// Package notify implements the daily reminder sweep: one email per user
// with an email address and at least one active game. The sweep only reads
// game and user state.
package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"hangman/backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Mailer delivers a single message.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through a plain SMTP endpoint.
type SMTPMailer struct {
	Addr string
	From string
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.From, to, subject, body)
	return smtp.SendMail(m.Addr, nil, m.From, []string{to}, []byte(msg))
}

// LogMailer logs reminders instead of sending them, for environments without
// an SMTP endpoint.
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	log.Info().Str("to", to).Str("subject", subject).Msg("reminder mail (not sent, no SMTP configured)")
	return nil
}

// NewMailer picks the SMTP mailer when both the address and sender are
// configured, the log-only mailer otherwise.
func NewMailer(smtpAddr, from string) Mailer {
	if smtpAddr != "" && from != "" {
		return &SMTPMailer{Addr: smtpAddr, From: from}
	}
	return LogMailer{}
}

// Reminder runs the sweep over users and their active games.
type Reminder struct {
	db     *gorm.DB
	mailer Mailer
}

func New(db *gorm.DB, mailer Mailer) *Reminder {
	return &Reminder{db: db, mailer: mailer}
}

// Sweep sends one reminder to each user with an email address and at least
// one active game, regardless of how many active games they have. Returns
// the number of users reminded.
func (r *Reminder) Sweep(ctx context.Context) (int, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Where("email <> ''").Find(&users).Error
	if err != nil {
		return 0, err
	}

	reminded := 0
	for _, user := range users {
		var active int64
		err := r.db.WithContext(ctx).Model(&models.Game{}).
			Where("user_id = ? AND game_over = ?", user.ID, false).
			Count(&active).Error
		if err != nil {
			return reminded, err
		}
		if active == 0 {
			continue
		}

		subject := "This is a reminder!"
		body := fmt.Sprintf("Hello %s, you have at least one active hangman game!", user.Name)
		if err := r.mailer.Send(user.Email, subject, body); err != nil {
			// One bad address should not stop the sweep.
			log.Warn().Err(err).Str("user", user.Name).Msg("reminder mail failed")
			continue
		}
		reminded++
	}

	log.Info().Int("reminded", reminded).Msg("reminder sweep finished")
	return reminded, nil
}
