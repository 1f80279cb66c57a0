package game

import (
	"fmt"
	"time"
)

// Scheme maps speed stages to per-word deadlines.
type Scheme interface {
	Name() string
	// Stages is the fastest stage; stages run from 1 (slowest) to Stages.
	Stages() int
	// DefaultStage is the fixed stage used by Speed mode.
	DefaultStage() int
	Deadline(stage int) time.Duration
	Label(stage int) string
}

// Linear shortens the deadline by Step for every stage above 1.
type Linear struct {
	ID   string
	Base time.Duration
	Step time.Duration
}

// Name implements Scheme.
func (l Linear) Name() string { return l.ID }

// Stages implements Scheme.
func (Linear) Stages() int { return 10 }

// DefaultStage implements Scheme.
func (Linear) DefaultStage() int { return 5 }

// Deadline implements Scheme.
func (l Linear) Deadline(stage int) time.Duration {
	stage = clampStage(stage, l.Stages())
	return l.Base - time.Duration(stage-1)*l.Step
}

// Label implements Scheme.
func (l Linear) Label(stage int) string {
	stage = clampStage(stage, l.Stages())
	var speed string
	switch {
	case stage <= 3:
		speed = "slow"
	case stage <= 7:
		speed = "medium"
	default:
		speed = "fast"
	}
	return fmt.Sprintf("%s (stage %d)", speed, stage)
}

// Tiered offers named speeds instead of numbered stages.
type Tiered struct {
	ID    string
	Tiers []Tier
}

// Tier is one named deadline.
type Tier struct {
	Name     string
	Deadline time.Duration
}

// Name implements Scheme.
func (t Tiered) Name() string { return t.ID }

// Stages implements Scheme.
func (t Tiered) Stages() int { return len(t.Tiers) }

// DefaultStage implements Scheme.
func (t Tiered) DefaultStage() int { return (len(t.Tiers) + 1) / 2 }

// Deadline implements Scheme.
func (t Tiered) Deadline(stage int) time.Duration {
	return t.Tiers[clampStage(stage, t.Stages())-1].Deadline
}

// Label implements Scheme.
func (t Tiered) Label(stage int) string {
	return t.Tiers[clampStage(stage, t.Stages())-1].Name
}

var (
	// Classic decays slowly: 5.0s at stage 1 down to 2.3s at stage 10.
	Classic = Linear{ID: "classic", Base: 5000 * time.Millisecond, Step: 300 * time.Millisecond}
	// Brisk decays faster: 2.5s at stage 1 down to 0.7s at stage 10.
	Brisk = Linear{ID: "brisk", Base: 2500 * time.Millisecond, Step: 200 * time.Millisecond}
	// ThreeTier picks between three fixed deadlines.
	ThreeTier = Tiered{ID: "tiered", Tiers: []Tier{
		{Name: "slow", Deadline: 2000 * time.Millisecond},
		{Name: "medium", Deadline: 1500 * time.Millisecond},
		{Name: "fast", Deadline: 1000 * time.Millisecond},
	}}
)

// SchemeByName returns one of the bundled schemes.
func SchemeByName(name string) (Scheme, error) {
	switch name {
	case Classic.ID:
		return Classic, nil
	case Brisk.ID:
		return Brisk, nil
	case ThreeTier.ID:
		return ThreeTier, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

func clampStage(stage, maxStage int) int {
	if stage < 1 {
		return 1
	}
	if stage > maxStage {
		return maxStage
	}
	return stage
}
