package game

import (
	"fmt"

	"github.com/verte-zerg/wordrush/internal/model"
)

// MaxLevel is the last level of the bounded modes.
const MaxLevel = 10

// policy carries the rules that differ between modes.
type policy interface {
	mode() model.Mode
	// initialStage picks the stage at game start; chosen is the player's
	// remembered practice stage.
	initialStage(s Scheme, chosen int) int
	// nextStage returns the stage after a level advance.
	nextStage(s Scheme, stage int) int
	// finished reports whether reaching level ends the game.
	finished(level int) bool
	adjustableSpeed() bool
	recordsScore() bool
	levelLabel(level int) string
}

func policyFor(m model.Mode) (policy, error) {
	switch m {
	case model.ModeSpeed:
		return speedPolicy{}, nil
	case model.ModeBreakthrough:
		return breakthroughPolicy{}, nil
	case model.ModePractice:
		return practicePolicy{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, m)
}

type speedPolicy struct{}

func (speedPolicy) mode() model.Mode { return model.ModeSpeed }
func (speedPolicy) initialStage(s Scheme, _ int) int { return s.DefaultStage() }
func (speedPolicy) nextStage(_ Scheme, stage int) int { return stage }
func (speedPolicy) finished(level int) bool { return level > MaxLevel }
func (speedPolicy) adjustableSpeed() bool { return false }
func (speedPolicy) recordsScore() bool { return true }
func (speedPolicy) levelLabel(level int) string { return boundedLabel(level) }

type breakthroughPolicy struct{}

func (breakthroughPolicy) mode() model.Mode { return model.ModeBreakthrough }
func (breakthroughPolicy) initialStage(Scheme, int) int { return 1 }
func (breakthroughPolicy) finished(level int) bool { return level > MaxLevel }
func (breakthroughPolicy) adjustableSpeed() bool { return false }
func (breakthroughPolicy) recordsScore() bool { return false }
func (breakthroughPolicy) levelLabel(level int) string { return boundedLabel(level) }

func (breakthroughPolicy) nextStage(s Scheme, stage int) int {
	if stage < s.Stages() {
		return stage + 1
	}
	return stage
}

type practicePolicy struct{}

func (practicePolicy) mode() model.Mode { return model.ModePractice }
func (practicePolicy) nextStage(_ Scheme, stage int) int { return stage }
func (practicePolicy) finished(int) bool { return false }
func (practicePolicy) adjustableSpeed() bool { return true }
func (practicePolicy) recordsScore() bool { return false }

func (practicePolicy) initialStage(s Scheme, chosen int) int {
	return clampStage(chosen, s.Stages())
}

func (practicePolicy) levelLabel(level int) string {
	return fmt.Sprintf("∞ (level %d)", level)
}

func boundedLabel(level int) string {
	if level > MaxLevel {
		level = MaxLevel
	}
	return fmt.Sprintf("%d/%d", level, MaxLevel)
}
