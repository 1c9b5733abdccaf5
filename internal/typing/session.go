package typing

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidConfiguration is returned when a session cannot get a passage.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// State is the lifecycle state of a Session.
type State int

// Session states. A session only moves forward through them.
const (
	StateIdle State = iota
	StateActive
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Picker draws one passage from a passage set.
type Picker interface {
	Pick() (string, error)
}

// Clock returns the current time.
type Clock func() time.Time

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source.
func WithClock(clock Clock) Option {
	return func(s *Session) {
		if clock != nil {
			s.now = clock
		}
	}
}

// Session is one typing attempt over a fixed passage.
type Session struct {
	id  string
	now Clock

	passage []rune
	typed   []rune
	cursor  int

	startedAt  time.Time
	finishedAt time.Time
	state      State

	liveWPM  int
	finalWPM int
	accuracy int
}

// Snapshot is a read-only view of a Session for rendering.
type Snapshot struct {
	ID         string
	State      State
	Passage    []rune
	Typed      []rune
	Marks      []Mark
	Cursor     int
	LiveWPM    int
	FinalWPM   int
	Accuracy   int
	StartedAt  time.Time
	FinishedAt time.Time
	Elapsed    time.Duration
}

// New returns an idle session for text. When text is empty a passage is drawn
// from picker.
func New(text string, picker Picker, opts ...Option) (*Session, error) {
	if text == "" {
		if picker == nil {
			return nil, fmt.Errorf("%w: no passage set", ErrInvalidConfiguration)
		}
		picked, err := picker.Pick()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		text = picked
	}
	if text == "" {
		return nil, fmt.Errorf("%w: passage is empty", ErrInvalidConfiguration)
	}
	s := &Session{
		id:       uuid.NewString(),
		now:      time.Now,
		passage:  []rune(text),
		state:    StateIdle,
		accuracy: 100,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Passage returns the target text.
func (s *Session) Passage() string {
	return string(s.passage)
}

// ApplyKeystroke applies one key press and reports whether it was accepted.
// An accepted named key starts the session but leaves the input unchanged.
func (s *Session) ApplyKeystroke(key Key) bool {
	if key.Ignored() || s.state == StateFinished {
		return false
	}
	if s.state == StateIdle {
		s.state = StateActive
		s.startedAt = s.now()
	}

	if key.isBackspace() {
		if s.cursor > 0 {
			s.typed = s.typed[:len(s.typed)-1]
			s.cursor--
		}
		return true
	}

	if !key.isRune() {
		return true
	}
	if s.cursor >= len(s.passage) {
		return false
	}

	s.typed = append(s.typed, key.Rune)
	s.cursor++
	s.accuracy = Accuracy(s.passage, s.typed)

	if s.cursor >= len(s.passage) || string(s.typed) == string(s.passage) {
		s.finish()
	}
	return true
}

// SampleLiveWPM recomputes live WPM while active. Outside the active state it
// returns the last sampled value unchanged.
func (s *Session) SampleLiveWPM() int {
	if s.state != StateActive {
		return s.liveWPM
	}
	s.liveWPM = WPM(len(s.typed), s.now().Sub(s.startedAt))
	return s.liveWPM
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:         s.id,
		State:      s.state,
		Passage:    append([]rune(nil), s.passage...),
		Typed:      append([]rune(nil), s.typed...),
		Marks:      Classify(s.passage, s.typed),
		Cursor:     s.cursor,
		LiveWPM:    s.liveWPM,
		FinalWPM:   s.finalWPM,
		Accuracy:   s.accuracy,
		StartedAt:  s.startedAt,
		FinishedAt: s.finishedAt,
	}
	switch s.state {
	case StateActive:
		snap.Elapsed = s.now().Sub(s.startedAt)
	case StateFinished:
		snap.Elapsed = s.finishedAt.Sub(s.startedAt)
	}
	return snap
}

func (s *Session) finish() {
	s.finishedAt = s.now()
	if s.finishedAt.Before(s.startedAt) {
		s.finishedAt = s.startedAt
	}
	s.state = StateFinished
	s.finalWPM = WPM(len(s.typed), s.finishedAt.Sub(s.startedAt))
}
