package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typequote/internal/theme"
	"github.com/verte-zerg/typequote/internal/typing"
)

const wrongSpace = '•'

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildStyledRunes styles every passage rune from its mark. cursorIndex < 0
// hides the cursor.
func buildStyledRunes(passage []rune, marks []typing.Mark, cursorIndex int, styles theme.Styles) []styledRune {
	current, hasCurrent := wordAt(passage, cursorIndex)

	out := make([]styledRune, 0, len(passage))
	for i, target := range passage {
		displayed := target
		style := styles.Pending
		switch marks[i] {
		case typing.MarkCorrect:
			style = styles.Correct
		case typing.MarkIncorrect:
			style = styles.Incorrect
			if target == ' ' {
				displayed = wrongSpace
			}
		default:
			if hasCurrent && target != ' ' && i >= current.start && i < current.end {
				style = styles.Current
			}
		}
		if i == cursorIndex {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: target == ' ',
		})
	}
	return out
}

type wordRange struct {
	start int
	end   int
}

// wordAt returns the word containing idx, or the next word when idx sits on
// a space. Negative idx selects the first word.
func wordAt(passage []rune, idx int) (wordRange, bool) {
	if idx < 0 {
		idx = 0
	}
	for idx < len(passage) && passage[idx] == ' ' {
		idx++
	}
	if idx >= len(passage) {
		return wordRange{}, false
	}
	start, end := idx, idx
	for start > 0 && passage[start-1] != ' ' {
		start--
	}
	for end < len(passage) && passage[end] != ' ' {
		end++
	}
	return wordRange{start: start, end: end}, true
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines at the last space that fits width, or mid-word
// when a word is longer than the line.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var lines []string
	lineStart, lineWidth, lastSpace := 0, 0, -1
	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && i > lineStart {
			if lastSpace >= lineStart {
				lines = append(lines, renderStyledRunes(runes[lineStart:lastSpace]))
				lineStart = lastSpace + 1
			} else {
				lines = append(lines, renderStyledRunes(runes[lineStart:i]))
				lineStart = i
			}
			lineWidth, lastSpace = 0, -1
			for j := lineStart; j < i; j++ {
				lineWidth += runes[j].width
				if runes[j].isSpace {
					lastSpace = j
				}
			}
			continue
		}
		lineWidth += item.width
		if item.isSpace {
			lastSpace = i
		}
		i++
	}
	lines = append(lines, renderStyledRunes(runes[lineStart:]))
	return strings.Join(lines, "\n")
}
