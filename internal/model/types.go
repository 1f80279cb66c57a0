// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
)

// Mode selects the progression and termination rules of a game.
type Mode string

const (
	// ModeSpeed plays ten levels at a fixed speed and records high scores.
	ModeSpeed Mode = "speed"
	// ModeBreakthrough plays ten levels and speeds up with every level.
	ModeBreakthrough Mode = "breakthrough"
	// ModePractice never ends on its own; the player controls the speed.
	ModePractice Mode = "practice"
)

// Modes lists the selectable modes in menu order.
var Modes = []Mode{ModeSpeed, ModeBreakthrough, ModePractice}

// ParseMode converts a user-supplied name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeSpeed:
		return ModeSpeed, nil
	case ModeBreakthrough:
		return ModeBreakthrough, nil
	case ModePractice:
		return ModePractice, nil
	}
	return "", fmt.Errorf("unknown mode %q (available: speed, breakthrough, practice)", s)
}

// Title returns a display label for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeSpeed:
		return "Speed"
	case ModeBreakthrough:
		return "Breakthrough"
	case ModePractice:
		return "Practice"
	default:
		return string(m)
	}
}

// Settings defines the resolved game settings after config and flag merge.
type Settings struct {
	Player        string `validate:"max=32"`
	Mode          Mode   `validate:"required,oneof=speed breakthrough practice"`
	Scheme        string `validate:"required,oneof=classic brisk tiered"`
	PracticeStage int    `validate:"omitempty,gte=1,lte=10"`
	Bank          string `validate:"required"`
	Backend       string `validate:"required,oneof=sqlite file"`
	StorePath     string `validate:"required"`
	LogLevel      string `validate:"omitempty,oneof=debug info warn warning error"`
	LogFile       string `validate:"required"`
}

// LeaderboardEntry is one ranked high-score record.
type LeaderboardEntry struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}
