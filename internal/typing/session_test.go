package typing

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type seqPicker struct {
	passages []string
	next     int
}

func (p *seqPicker) Pick() (string, error) {
	if len(p.passages) == 0 {
		return "", errors.New("empty")
	}
	text := p.passages[p.next%len(p.passages)]
	p.next++
	return text, nil
}

func newSession(t *testing.T, text string, clock *fakeClock) *Session {
	t.Helper()
	s, err := New(text, nil, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func typeString(s *Session, text string) {
	for _, r := range text {
		s.ApplyKeystroke(RuneKey(r))
	}
}

func TestNewSessionIsIdle(t *testing.T) {
	s := newSession(t, "abc", newFakeClock())
	snap := s.Snapshot()
	if snap.State != StateIdle {
		t.Fatalf("expected idle, got %s", snap.State)
	}
	if snap.Cursor != 0 || len(snap.Typed) != 0 {
		t.Fatalf("expected empty input, got cursor=%d typed=%q", snap.Cursor, string(snap.Typed))
	}
	if !snap.StartedAt.IsZero() || !snap.FinishedAt.IsZero() {
		t.Fatalf("expected unset timestamps")
	}
	if snap.Accuracy != 100 || snap.LiveWPM != 0 {
		t.Fatalf("expected accuracy 100 and live wpm 0, got %d %d", snap.Accuracy, snap.LiveWPM)
	}
	if s.ID() == "" {
		t.Fatalf("expected session id")
	}
}

func TestNewSessionDrawsFromPicker(t *testing.T) {
	p := &seqPicker{passages: []string{"first", "second"}}
	s, err := New("", p)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if s.Passage() != "first" {
		t.Fatalf("expected drawn passage, got %q", s.Passage())
	}
}

func TestNewSessionInvalidConfiguration(t *testing.T) {
	if _, err := New("", nil); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for nil picker, got %v", err)
	}
	if _, err := New("", &seqPicker{}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for empty set, got %v", err)
	}
	if _, err := New("", &seqPicker{passages: []string{""}}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for empty passage, got %v", err)
	}
}

func TestApplyKeystrokeAccuracyAndCompletion(t *testing.T) {
	s := newSession(t, "abc", newFakeClock())

	steps := []struct {
		key   rune
		typed string
		acc   int
		state State
	}{
		{'a', "a", 100, StateActive},
		{'x', "ax", 50, StateActive},
		{'c', "axc", 66, StateFinished},
	}
	for _, step := range steps {
		if !s.ApplyKeystroke(RuneKey(step.key)) {
			t.Fatalf("expected %q to be accepted", step.key)
		}
		snap := s.Snapshot()
		if string(snap.Typed) != step.typed {
			t.Fatalf("expected typed %q, got %q", step.typed, string(snap.Typed))
		}
		if snap.Accuracy != step.acc {
			t.Fatalf("after %q expected accuracy %d, got %d", step.typed, step.acc, snap.Accuracy)
		}
		if snap.State != step.state {
			t.Fatalf("after %q expected state %s, got %s", step.typed, step.state, snap.State)
		}
	}
}

func TestFinalWPM(t *testing.T) {
	clock := newFakeClock()
	s := newSession(t, "hi", clock)
	t0 := clock.Now()

	s.ApplyKeystroke(RuneKey('h'))
	clock.Advance(2 * time.Second)
	s.ApplyKeystroke(RuneKey('i'))

	snap := s.Snapshot()
	if snap.State != StateFinished {
		t.Fatalf("expected finished, got %s", snap.State)
	}
	if !snap.StartedAt.Equal(t0) {
		t.Fatalf("expected start at first keystroke")
	}
	if snap.FinishedAt.Sub(snap.StartedAt) != 2*time.Second {
		t.Fatalf("unexpected elapsed: %v", snap.FinishedAt.Sub(snap.StartedAt))
	}
	if snap.FinalWPM != 12 {
		t.Fatalf("expected final wpm 12, got %d", snap.FinalWPM)
	}
}

func TestSampleLiveWPMZeroElapsed(t *testing.T) {
	s := newSession(t, "hello", newFakeClock())
	s.ApplyKeystroke(RuneKey('h'))
	if got := s.SampleLiveWPM(); got != 0 {
		t.Fatalf("expected 0 wpm at zero elapsed, got %d", got)
	}
}

func TestSampleLiveWPMWhileActive(t *testing.T) {
	clock := newFakeClock()
	s := newSession(t, "hello world", clock)
	typeString(s, "hello")
	clock.Advance(6 * time.Second)
	// 1 word over 0.1 minutes.
	if got := s.SampleLiveWPM(); got != 10 {
		t.Fatalf("expected 10 wpm, got %d", got)
	}
	if s.Snapshot().LiveWPM != 10 {
		t.Fatalf("expected cached live wpm")
	}
}

func TestSampleLiveWPMFrozenAfterFinish(t *testing.T) {
	clock := newFakeClock()
	s := newSession(t, "ab", clock)
	s.ApplyKeystroke(RuneKey('a'))
	clock.Advance(time.Second)
	before := s.SampleLiveWPM()
	s.ApplyKeystroke(RuneKey('b'))
	final := s.Snapshot().FinalWPM

	clock.Advance(time.Minute)
	if got := s.SampleLiveWPM(); got != before {
		t.Fatalf("expected live wpm frozen at %d, got %d", before, got)
	}
	s.ApplyKeystroke(RuneKey('c'))
	if s.Snapshot().FinalWPM != final {
		t.Fatalf("final wpm changed after finish")
	}
}

func TestCompletionIsLengthBased(t *testing.T) {
	s := newSession(t, "abcd", newFakeClock())
	typeString(s, "wxyz")
	snap := s.Snapshot()
	if snap.State != StateFinished {
		t.Fatalf("expected finished on length match, got %s", snap.State)
	}
	if snap.Accuracy != 0 {
		t.Fatalf("expected accuracy 0, got %d", snap.Accuracy)
	}
}

func TestFinishedIgnoresKeystrokes(t *testing.T) {
	s := newSession(t, "a", newFakeClock())
	s.ApplyKeystroke(RuneKey('a'))
	if s.ApplyKeystroke(RuneKey('b')) {
		t.Fatalf("expected rune ignored after finish")
	}
	if s.ApplyKeystroke(BackspaceKey()) {
		t.Fatalf("expected backspace ignored after finish")
	}
	snap := s.Snapshot()
	if string(snap.Typed) != "a" || snap.Cursor != 1 {
		t.Fatalf("unexpected mutation after finish: %q cursor=%d", string(snap.Typed), snap.Cursor)
	}
}

func TestBackspace(t *testing.T) {
	clock := newFakeClock()
	s := newSession(t, "abcdef", clock)
	typeString(s, "abx")
	started := s.Snapshot().StartedAt

	clock.Advance(time.Second)
	s.ApplyKeystroke(BackspaceKey())
	snap := s.Snapshot()
	if string(snap.Typed) != "ab" || snap.Cursor != 2 {
		t.Fatalf("expected ab after backspace, got %q cursor=%d", string(snap.Typed), snap.Cursor)
	}
	if snap.State != StateActive || !snap.StartedAt.Equal(started) {
		t.Fatalf("backspace must not change state or timestamps")
	}

	for i := 0; i < 5; i++ {
		s.ApplyKeystroke(BackspaceKey())
	}
	snap = s.Snapshot()
	if snap.Cursor != 0 || len(snap.Typed) != 0 {
		t.Fatalf("expected empty input, got %q cursor=%d", string(snap.Typed), snap.Cursor)
	}
	s.ApplyKeystroke(BackspaceKey())
	if again := s.Snapshot(); again.Cursor != 0 || again.State != StateActive {
		t.Fatalf("backspace at cursor 0 must be a no-op")
	}
}

func TestBackspaceStartsIdleSession(t *testing.T) {
	s := newSession(t, "abc", newFakeClock())
	s.ApplyKeystroke(BackspaceKey())
	snap := s.Snapshot()
	if snap.State != StateActive || snap.StartedAt.IsZero() {
		t.Fatalf("expected backspace to start the session")
	}
	if snap.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", snap.Cursor)
	}
}

func TestIgnoredKeysLeaveSessionIdle(t *testing.T) {
	s := newSession(t, "abc", newFakeClock())
	ignored := []Key{
		{Code: KeyShift},
		{Code: KeyControl},
		{Code: KeyAlt},
		{Code: KeyMeta},
		{Code: KeyTab},
		{Code: KeyCapsLock},
		{Code: KeyEscape},
		{Code: KeyOther, Mods: ModCtrl},
		{Code: KeyRune, Rune: 'a', Mods: ModCtrl},
		{Code: KeyRune, Rune: 'a', Mods: ModAlt},
		{Code: KeyRune, Rune: 'a', Mods: ModMeta},
		{Code: KeyBackspace, Mods: ModCtrl},
		{Code: KeyRune, Rune: '\n'},
	}
	for _, key := range ignored {
		if s.ApplyKeystroke(key) {
			t.Fatalf("expected %+v to be ignored", key)
		}
	}
	if snap := s.Snapshot(); snap.State != StateIdle || !snap.StartedAt.IsZero() {
		t.Fatalf("ignored keys must not start the session")
	}
}

func TestNamedKeyStartsSessionWithoutInput(t *testing.T) {
	clock := newFakeClock()
	s := newSession(t, "abc", clock)
	if !s.ApplyKeystroke(Key{Code: KeyOther}) {
		t.Fatalf("expected named key to be accepted")
	}
	snap := s.Snapshot()
	if snap.State != StateActive || !snap.StartedAt.Equal(clock.Now()) {
		t.Fatalf("expected active session started now, got %s at %v", snap.State, snap.StartedAt)
	}
	if len(snap.Typed) != 0 || snap.Cursor != 0 || snap.Accuracy != 100 {
		t.Fatalf("named key must not edit input, got %+v", snap)
	}
	s.ApplyKeystroke(RuneKey('a'))
	s.ApplyKeystroke(Key{Code: KeyOther})
	if snap := s.Snapshot(); string(snap.Typed) != "a" || snap.Cursor != 1 {
		t.Fatalf("expected typed %q cursor 1, got %q cursor %d", "a", string(snap.Typed), snap.Cursor)
	}
}

func TestShiftedRunesAreAccepted(t *testing.T) {
	s := newSession(t, "Hi there", newFakeClock())
	if !s.ApplyKeystroke(RuneKey('H')) {
		t.Fatalf("expected upper case rune to be accepted")
	}
	if !s.ApplyKeystroke(RuneKey('i')) || !s.ApplyKeystroke(RuneKey(' ')) {
		t.Fatalf("expected runes and space to be accepted")
	}
	if s.Snapshot().Accuracy != 100 {
		t.Fatalf("expected accuracy 100")
	}
}

func TestCursorTracksTypedLength(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		s := newSession(t, "the quick brown fox", newFakeClock())
		for i := 0; i < 40; i++ {
			if rnd.Intn(4) == 0 {
				s.ApplyKeystroke(BackspaceKey())
			} else {
				s.ApplyKeystroke(RuneKey(rune('a' + rnd.Intn(26))))
			}
			snap := s.Snapshot()
			if snap.Cursor != len(snap.Typed) {
				t.Fatalf("cursor %d != len(typed) %d", snap.Cursor, len(snap.Typed))
			}
			if snap.Cursor > len(snap.Passage) {
				t.Fatalf("cursor %d past passage", snap.Cursor)
			}
			if snap.Accuracy < 0 || snap.Accuracy > 100 {
				t.Fatalf("accuracy out of range: %d", snap.Accuracy)
			}
			if snap.State == StateFinished && snap.FinishedAt.Before(snap.StartedAt) {
				t.Fatalf("finished before start")
			}
		}
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := newSession(t, "abc", newFakeClock())
	s.ApplyKeystroke(RuneKey('a'))
	snap := s.Snapshot()
	snap.Typed[0] = 'z'
	snap.Passage[0] = 'z'
	if again := s.Snapshot(); string(again.Typed) != "a" || string(again.Passage) != "abc" {
		t.Fatalf("snapshot must not alias session state")
	}
}

func TestSnapshotMarks(t *testing.T) {
	s := newSession(t, "abc", newFakeClock())
	typeString(s, "ax")
	marks := s.Snapshot().Marks
	want := []Mark{MarkCorrect, MarkIncorrect, MarkPending}
	for i := range want {
		if marks[i] != want[i] {
			t.Fatalf("mark %d: expected %d, got %d", i, want[i], marks[i])
		}
	}
}
