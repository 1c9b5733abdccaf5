package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/typequote/internal/theme"
	"github.com/verte-zerg/typequote/internal/typing"
)

var testStyles = theme.Default().Styles()

func styled(target, typed string, cursorIndex int) []styledRune {
	passage := []rune(target)
	marks := typing.Classify(passage, []rune(typed))
	return buildStyledRunes(passage, marks, cursorIndex, testStyles)
}

func TestBuildStyledRunesCursor(t *testing.T) {
	runes := styled("ab", "a", 1)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != testStyles.Correct.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != testStyles.Current.Underline(true).Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestBuildStyledRunesNoCursorWhenComplete(t *testing.T) {
	runes := styled("a", "a", -1)
	if len(runes) != 1 {
		t.Fatalf("expected 1 rune, got %d", len(runes))
	}
	if runes[0].s != testStyles.Correct.Render("a") {
		t.Fatalf("expected correct style for completed rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	runes := styled("ab", "ax", 2)
	if runes[1].s != testStyles.Incorrect.Render("b") {
		t.Fatalf("expected incorrect style showing the passage rune")
	}
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	runes := styled("one two", "o", 1)
	if runes[2].s != testStyles.Current.Render("e") {
		t.Fatalf("expected current word style for untyped rune in current word")
	}
	if runes[4].s != testStyles.Pending.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
	if runes[6].s != testStyles.Pending.Render("o") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	runes := styled("a b", "ax", 2)
	if runes[1].s != testStyles.Incorrect.Render(string(wrongSpace)) {
		t.Fatalf("expected marker for wrong space")
	}
}

func plainRunes(text string) []styledRune {
	out := make([]styledRune, 0, len(text))
	for _, r := range text {
		out = append(out, styledRune{s: string(r), width: 1, isSpace: r == ' '})
	}
	return out
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	got := wrapStyledRunes(plainRunes("the quick brown fox"), 10)
	want := "the quick\nbrown fox"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapStyledRunesSplitsLongWords(t *testing.T) {
	got := wrapStyledRunes(plainRunes("abcdefgh ij"), 4)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 4 {
			t.Fatalf("line %q exceeds width in %q", line, got)
		}
	}
	if strings.ReplaceAll(strings.ReplaceAll(got, "\n", ""), " ", "") != "abcdefghij" {
		t.Fatalf("wrap lost runes: %q", got)
	}
}

func TestWrapStyledRunesNoWidth(t *testing.T) {
	if got := wrapStyledRunes(plainRunes("a b c"), 0); got != "a b c" {
		t.Fatalf("expected unwrapped text, got %q", got)
	}
}
