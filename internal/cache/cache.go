// Package cache maintains the cached "average moves remaining" statistic.
// The value is recomputed only when Refresh is triggered (task endpoint or
// the fire-and-forget hook after game creation), never on every mutation.
package cache

import (
	"context"
	"fmt"
	"sync"

	"hangman/backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const messageFormat = "The average moves remaining is %.2f"

// Store holds the single cached message.
type Store interface {
	Set(ctx context.Context, message string) error
	// Get returns the stored message, or "" if nothing was stored yet.
	Get(ctx context.Context) (string, error)
}

// Memory is a process-local Store, used when no Redis address is configured
// and by tests.
type Memory struct {
	mu      sync.RWMutex
	message string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Set(_ context.Context, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.message = message
	return nil
}

func (m *Memory) Get(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.message, nil
}

// Stats computes the average attempts remaining across active games and
// caches it in a Store.
type Stats struct {
	db    *gorm.DB
	store Store
}

func New(db *gorm.DB, store Store) *Stats {
	return &Stats{db: db, store: store}
}

// Refresh scans all active games and stores the formatted average of their
// remaining attempts. With zero active games the previous value is kept:
// stale is better than undefined.
func (s *Stats) Refresh(ctx context.Context) error {
	var remaining []int
	err := s.db.WithContext(ctx).Model(&models.Game{}).
		Where("game_over = ?", false).
		Pluck("attempts_remaining", &remaining).Error
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		return nil
	}

	total := 0
	for _, r := range remaining {
		total += r
	}
	average := float64(total) / float64(len(remaining))

	message := fmt.Sprintf(messageFormat, average)
	if err := s.store.Set(ctx, message); err != nil {
		return err
	}

	log.Debug().Int("active_games", len(remaining)).Float64("average", average).Msg("average attempts cache refreshed")
	return nil
}

// Read returns the last computed message, or "" if Refresh never ran.
func (s *Stats) Read(ctx context.Context) (string, error) {
	return s.store.Get(ctx)
}
