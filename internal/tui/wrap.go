package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildStyledRunes colors target against what has been typed so far. Runes
// typed past the end of target are appended in the incorrect style so an
// overlong attempt stays visible.
func buildStyledRunes(targetRunes, inputRunes []rune, cursorIndex int) []styledRune {
	segments := findSegments(targetRunes)
	current := segmentForCursor(segments, cursorIndex)

	out := make([]styledRune, 0, len(targetRunes))
	for i, target := range targetRunes {
		displayed := target
		style := pendingStyle
		if i < len(inputRunes) {
			switch {
			case target == ' ' && inputRunes[i] != ' ':
				displayed = '•'
				style = incorrectStyle
			case inputRunes[i] == target:
				style = correctStyle
			default:
				style = incorrectStyle
			}
		} else if target != ' ' && current != nil && i >= current.start && i < current.end {
			style = currentWordStyle
		}
		if i == cursorIndex && i >= len(inputRunes) {
			style = style.Underline(true)
		}
		out = append(out, newStyledRune(style.Render(string(displayed)), displayed, target == ' '))
	}
	for _, extra := range overflow(targetRunes, inputRunes) {
		out = append(out, newStyledRune(incorrectStyle.Render(string(extra)), extra, false))
	}
	return out
}

func newStyledRune(rendered string, r rune, isSpace bool) styledRune {
	return styledRune{s: rendered, width: runewidth.RuneWidth(r), isSpace: isSpace}
}

func overflow(targetRunes, inputRunes []rune) []rune {
	if len(inputRunes) <= len(targetRunes) {
		return nil
	}
	return inputRunes[len(targetRunes):]
}

// segment is a space-delimited run inside a multi-word phrase.
type segment struct {
	start int
	end   int
}

func findSegments(targetRunes []rune) []segment {
	segments := []segment{}
	start := -1
	for i, r := range targetRunes {
		if r == ' ' {
			if start != -1 {
				segments = append(segments, segment{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		segments = append(segments, segment{start: start, end: len(targetRunes)})
	}
	return segments
}

func segmentForCursor(segments []segment, cursorIndex int) *segment {
	if len(segments) == 0 || cursorIndex < 0 {
		return nil
	}
	for i, seg := range segments {
		if cursorIndex < seg.end {
			return &segments[i]
		}
	}
	return &segments[len(segments)-1]
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks long phrases at spaces so no line exceeds width
// terminal cells. Runs without a space are hard-wrapped.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
