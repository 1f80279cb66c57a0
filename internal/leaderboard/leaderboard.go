// Package leaderboard keeps the capped, score-ordered high-score list.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/verte-zerg/wordrush/internal/clock"
	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/store"
)

const (
	// StorageKey is the fixed key the list is persisted under.
	StorageKey = "typingHighScores"
	// MaxEntries caps the persisted list.
	MaxEntries = 10
	// DateLayout formats entry timestamps.
	DateLayout = "2006-01-02 15:04:05"
)

// Backend persists raw documents by key.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Board records and lists high scores.
type Board struct {
	backend Backend
	clock   clock.Clock
	logger  *zap.Logger
}

// New returns a Board over backend. A nil logger disables logging.
func New(backend Backend, clk clock.Clock, logger *zap.Logger) *Board {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Board{backend: backend, clock: clk, logger: logger}
}

// List returns the persisted entries, best first. Missing or unreadable data
// yields an empty list.
func (b *Board) List(ctx context.Context) ([]model.LeaderboardEntry, error) {
	data, err := b.backend.Get(ctx, StorageKey)
	if errors.Is(err, store.ErrNotFound) {
		return []model.LeaderboardEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	var entries []model.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		b.logger.Warn("discarding corrupt leaderboard", zap.Error(err))
		return []model.LeaderboardEntry{}, nil
	}
	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}
	return entries, nil
}

// Record appends an entry stamped with the current time, re-ranks, truncates
// to MaxEntries and persists the list. The new entry is returned even when it
// did not make the cut.
func (b *Board) Record(ctx context.Context, name string, score int) (model.LeaderboardEntry, error) {
	entry := model.LeaderboardEntry{
		ID:    uuid.New().String(),
		Name:  name,
		Score: score,
		Date:  b.clock.Now().Format(DateLayout),
	}
	entries, err := b.List(ctx)
	if err != nil {
		return entry, err
	}
	entries = Rank(append(entries, entry))
	if err := b.save(ctx, entries); err != nil {
		return entry, err
	}
	b.logger.Info("high score recorded", zap.String("name", name), zap.Int("score", score))
	return entry, nil
}

// Merge adds imported entries to the persisted list, keeping the top MaxEntries.
func (b *Board) Merge(ctx context.Context, imported []model.LeaderboardEntry) ([]model.LeaderboardEntry, error) {
	entries, err := b.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range imported {
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		entries = append(entries, e)
	}
	entries = Rank(entries)
	if err := b.save(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Clear removes every entry.
func (b *Board) Clear(ctx context.Context) error {
	if err := b.backend.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("failed to clear leaderboard: %w", err)
	}
	return nil
}

func (b *Board) save(ctx context.Context, entries []model.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode leaderboard: %w", err)
	}
	if err := b.backend.Put(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("failed to write leaderboard: %w", err)
	}
	return nil
}

// Rank sorts entries by score descending, keeping earlier entries ahead of
// later ones on ties, and truncates to MaxEntries.
func Rank(entries []model.LeaderboardEntry) []model.LeaderboardEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}
