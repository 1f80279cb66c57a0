// Package game implements the typing game state machine: word presentation,
// per-word deadlines, scoring, and level and speed progression.
package game

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/verte-zerg/wordrush/internal/clock"
	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/wordbank"
)

// DefaultPlayer names players who leave the name blank.
const DefaultPlayer = "anonymous"

// AnonymousName returns the blank-name default for a word bank: Chinese
// banks use 匿名玩家, every other bank DefaultPlayer.
func AnonymousName(bankName string) string {
	if strings.HasPrefix(strings.ToLower(bankName), "zh") {
		return "匿名玩家"
	}
	return DefaultPlayer
}

const maxPlayerName = 32

// State is the lifecycle phase of a Session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Recorder persists a finished game's score.
type Recorder interface {
	Record(ctx context.Context, name string, score int) (model.LeaderboardEntry, error)
}

// Options configures a Session. Zero values pick defaults: the Classic
// scheme, no recorder, a no-op logger, the scheme's default practice stage
// and DefaultPlayer for blank names.
type Options struct {
	Scheme        Scheme
	Recorder      Recorder
	Logger        *zap.Logger
	PracticeStage int
	Anonymous     string
	OnEvent       func(Event)
}

// Session owns all mutable game state. It is not safe for concurrent use;
// the scheduler must fire callbacks on the goroutine that calls the methods.
type Session struct {
	sched    clock.Scheduler
	bank     *wordbank.Bank
	scheme   Scheme
	recorder Recorder
	logger   *zap.Logger
	onEvent  func(Event)

	state         State
	policy        policy
	player        string
	anonymous     string
	practiceStage int

	score     int
	elapsed   int
	level     int
	stage     int
	word      string
	shownAt   time.Time
	matched   int
	missed    int
	wordTimes []time.Duration

	ticker   clock.Timer
	deadline clock.Timer

	entry   *model.LeaderboardEntry
	saveErr error
}

// New returns an idle Session drawing words from bank.
func New(sched clock.Scheduler, bank *wordbank.Bank, opts Options) *Session {
	s := &Session{
		sched:         sched,
		bank:          bank,
		scheme:        opts.Scheme,
		recorder:      opts.Recorder,
		logger:        opts.Logger,
		onEvent:       opts.OnEvent,
		anonymous:     opts.Anonymous,
		practiceStage: opts.PracticeStage,
	}
	if s.anonymous == "" {
		s.anonymous = DefaultPlayer
	}
	if s.scheme == nil {
		s.scheme = Classic
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.practiceStage == 0 {
		s.practiceStage = s.scheme.DefaultStage()
	}
	s.practiceStage = clampStage(s.practiceStage, s.scheme.Stages())
	return s
}

// Start begins a new game. It may be called from any state; a running game
// is abandoned without recording a score.
func (s *Session) Start(player string, mode model.Mode) error {
	pol, err := policyFor(mode)
	if err != nil {
		return err
	}
	s.stopTimers()
	s.clear()
	s.policy = pol
	s.player = normalizePlayer(player, s.anonymous)
	s.level = 1
	s.stage = pol.initialStage(s.scheme, s.practiceStage)
	s.state = StateRunning
	s.logger.Info("game started",
		zap.String("player", s.player),
		zap.String("mode", string(mode)),
		zap.String("scheme", s.scheme.Name()),
		zap.Int("stage", s.stage),
	)
	s.ticker = s.sched.Repeat(time.Second, s.tick)
	s.showWord()
	return nil
}

// Restart starts a new game with the previous player and mode.
func (s *Session) Restart() error {
	if s.policy == nil {
		return ErrNotRunning
	}
	return s.Start(s.player, s.policy.mode())
}

// Submit checks typed text against the current word. Only an exact match
// counts; it returns true when text matched.
func (s *Session) Submit(text string) bool {
	if s.state != StateRunning || text != s.word {
		return false
	}
	taken := s.sched.Now().Sub(s.shownAt)
	reward := MatchReward(taken)
	s.score += reward
	s.matched++
	s.wordTimes = append(s.wordTimes, taken)
	s.emit(Event{Kind: EventMatched, Word: s.word, Delta: reward})

	s.level++
	if s.policy.finished(s.level) {
		s.end()
		return true
	}
	if next := s.policy.nextStage(s.scheme, s.stage); next != s.stage {
		s.stage = next
		s.emit(Event{Kind: EventStageChanged})
	}
	s.showWord()
	return true
}

// SetStage changes the speed stage of a running Practice game and restarts
// the current word's deadline at the new speed.
func (s *Session) SetStage(stage int) error {
	if s.state != StateRunning {
		return ErrNotRunning
	}
	if !s.policy.adjustableSpeed() {
		return ErrSpeedLocked
	}
	if stage < 1 || stage > s.scheme.Stages() {
		return ErrStageOutOfRange
	}
	s.stage = stage
	s.practiceStage = stage
	s.armDeadline()
	s.emit(Event{Kind: EventStageChanged})
	return nil
}

// Reset stops the game and clears it back to Idle without recording a score.
func (s *Session) Reset() {
	s.stopTimers()
	if s.state == StateRunning {
		s.logger.Info("game abandoned", zap.Int("score", s.score), zap.Int("level", s.level))
	}
	s.clear()
	s.state = StateIdle
}

// State returns the lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// Scheme returns the active speed scheme.
func (s *Session) Scheme() Scheme {
	return s.scheme
}

func (s *Session) tick() {
	if s.state != StateRunning {
		return
	}
	s.elapsed++
	s.emit(Event{Kind: EventTick})
}

func (s *Session) expire() {
	if s.state != StateRunning {
		return
	}
	missedWord := s.word
	s.score -= TimeoutPenalty
	s.missed++
	s.emit(Event{Kind: EventTimedOut, Word: missedWord, Delta: -TimeoutPenalty})
	s.showWord()
}

func (s *Session) showWord() {
	s.word = s.bank.WordFor(s.level)
	s.armDeadline()
	s.emit(Event{Kind: EventWordShown, Word: s.word})
}

func (s *Session) armDeadline() {
	if s.deadline != nil {
		s.deadline.Stop()
	}
	s.shownAt = s.sched.Now()
	s.deadline = s.sched.Repeat(s.scheme.Deadline(s.stage), s.expire)
}

func (s *Session) end() {
	s.stopTimers()
	s.state = StateEnded
	s.logger.Info("game ended",
		zap.String("player", s.player),
		zap.String("mode", string(s.policy.mode())),
		zap.Int("score", s.score),
		zap.Int("elapsed_s", s.elapsed),
	)
	if s.policy.recordsScore() && s.recorder != nil {
		entry, err := s.recorder.Record(context.Background(), s.player, s.score)
		if err != nil {
			s.saveErr = err
			s.logger.Warn("leaderboard not saved", zap.Error(err))
		} else {
			s.entry = &entry
		}
	}
	s.emit(Event{Kind: EventEnded})
}

func (s *Session) stopTimers() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	if s.deadline != nil {
		s.deadline.Stop()
		s.deadline = nil
	}
}

func (s *Session) clear() {
	s.score = 0
	s.elapsed = 0
	s.level = 0
	s.stage = 0
	s.word = ""
	s.shownAt = time.Time{}
	s.matched = 0
	s.missed = 0
	s.wordTimes = nil
	s.entry = nil
	s.saveErr = nil
}

func (s *Session) emit(ev Event) {
	ev.Score = s.score
	ev.Level = s.level
	ev.Stage = s.stage
	if ev.Kind != EventTick {
		s.logger.Debug("game event",
			zap.Stringer("kind", ev.Kind),
			zap.String("word", ev.Word),
			zap.Int("delta", ev.Delta),
			zap.Int("score", ev.Score),
			zap.Int("level", ev.Level),
		)
	}
	if s.onEvent != nil {
		s.onEvent(ev)
	}
}

func normalizePlayer(name, anonymous string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return anonymous
	}
	if utf8.RuneCountInString(name) > maxPlayerName {
		name = string([]rune(name)[:maxPlayerName])
	}
	return name
}
