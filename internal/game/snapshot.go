package game

import (
	"time"

	"github.com/verte-zerg/wordrush/internal/model"
)

// Snapshot is a read-only view of a Session for rendering.
type Snapshot struct {
	State           State
	Mode            model.Mode
	Player          string
	Score           int
	ElapsedSeconds  int
	Level           int
	LevelLabel      string
	Stage           int
	StageLabel      string
	Deadline        time.Duration
	Word            string
	WordShownAt     time.Time
	InputEnabled    bool
	SpeedAdjustable bool
	Matched         int
	Missed          int
	WordTimes       []time.Duration
	Entry           *model.LeaderboardEntry
	SaveErr         error
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:          s.state,
		Player:         s.player,
		Score:          s.score,
		ElapsedSeconds: s.elapsed,
		Level:          s.level,
		Word:           s.word,
		WordShownAt:    s.shownAt,
		InputEnabled:   s.state == StateRunning,
		Matched:        s.matched,
		Missed:         s.missed,
		WordTimes:      append([]time.Duration(nil), s.wordTimes...),
		SaveErr:        s.saveErr,
	}
	if s.entry != nil {
		entry := *s.entry
		snap.Entry = &entry
	}
	if s.policy != nil {
		snap.Mode = s.policy.mode()
		snap.SpeedAdjustable = s.policy.adjustableSpeed()
	}
	if s.state != StateIdle {
		snap.LevelLabel = s.policy.levelLabel(s.level)
		snap.Stage = s.stage
		snap.StageLabel = s.scheme.Label(s.stage)
		snap.Deadline = s.scheme.Deadline(s.stage)
	}
	return snap
}

// Remaining reports how long the current word has left at time now.
func (snap Snapshot) Remaining(now time.Time) time.Duration {
	if snap.State != StateRunning {
		return 0
	}
	left := snap.Deadline - now.Sub(snap.WordShownAt)
	if left < 0 {
		return 0
	}
	return left
}
