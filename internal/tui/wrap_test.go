package tui

import (
	"strings"
	"testing"
)

func TestBuildStyledRunesCursor(t *testing.T) {
	target := []rune("ab")
	input := []rune("a")
	cursorIndex := len(input)

	runes := buildStyledRunes(target, input, cursorIndex)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != cursorStyle.Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	target := []rune("ab")
	input := []rune("ax")

	runes := buildStyledRunes(target, input, -1)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style for second rune")
	}
}

func TestBuildStyledRunesShowsOvertypedRunes(t *testing.T) {
	target := []rune("ab")
	input := []rune("abcd")

	runes := buildStyledRunes(target, input, -1)
	if len(runes) != 4 {
		t.Fatalf("expected 4 runes, got %d", len(runes))
	}
	if runes[2].s != incorrectStyle.Render("c") || runes[3].s != incorrectStyle.Render("d") {
		t.Fatalf("expected overtyped runes in incorrect style")
	}
}

func TestBuildStyledRunesPhraseHighlighting(t *testing.T) {
	target := []rune("one two")
	input := []rune("o")
	cursorIndex := len(input)

	runes := buildStyledRunes(target, input, cursorIndex)
	if runes[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style for untyped in current word")
	}
	if runes[4].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	target := []rune("a b")
	input := []rune("ax")

	runes := buildStyledRunes(target, input, len(input))
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
}

func TestBuildStyledRunesMeasuresWideRunes(t *testing.T) {
	runes := buildStyledRunes([]rune("風調雨順"), nil, 0)
	if got := lineWidthOf(runes); got != 8 {
		t.Fatalf("expected width 8 for four CJK runes, got %d", got)
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	runes := buildStyledRunes([]rune("one two three"), nil, -1)
	out := wrapStyledRunes(runes, 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[1], "three") {
		t.Fatalf("expected last word on second line: %q", out)
	}
}

func TestWrapStyledRunesHardWrapsWideRuns(t *testing.T) {
	runes := buildStyledRunes([]rune("一二三四五"), nil, -1)
	out := wrapStyledRunes(runes, 4)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Fatalf("expected 3 lines, got %d: %q", got+1, out)
	}
}
