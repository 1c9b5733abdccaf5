package typing

import (
	"math"
	"time"
)

// CharsPerWord is the conventional word length used for WPM.
const CharsPerWord = 5

// WPM returns words per minute for chars keystrokes over elapsed.
// Every keystroke counts, including incorrect ones. A non-positive
// elapsed time yields 0.
func WPM(chars int, elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	minutes := float64(elapsed) / float64(time.Minute)
	if minutes <= 0 {
		return 0
	}
	words := float64(chars) / CharsPerWord
	return int(math.Round(words / minutes))
}

// Accuracy returns the truncated percentage of typed runes matching passage
// at the same position. The denominator is len(typed); an empty input is 100.
func Accuracy(passage, typed []rune) int {
	if len(typed) == 0 {
		return 100
	}
	correct := 0
	for i, r := range typed {
		if i < len(passage) && r == passage[i] {
			correct++
		}
	}
	return correct * 100 / len(typed)
}

// Mark classifies a passage position for display.
type Mark uint8

// Marks for passage positions.
const (
	MarkPending Mark = iota
	MarkCorrect
	MarkIncorrect
)

// Classify returns one Mark per passage rune.
func Classify(passage, typed []rune) []Mark {
	marks := make([]Mark, len(passage))
	for i := range passage {
		switch {
		case i >= len(typed):
			marks[i] = MarkPending
		case typed[i] == passage[i]:
			marks[i] = MarkCorrect
		default:
			marks[i] = MarkIncorrect
		}
	}
	return marks
}
