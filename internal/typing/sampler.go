package typing

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultSamplePeriod is how often live WPM is refreshed.
const DefaultSamplePeriod = time.Second

var lastSamplerID int64

func nextSamplerID() int {
	return int(atomic.AddInt64(&lastSamplerID, 1))
}

// TickMsg is delivered to the Bubble Tea loop once per sampler period.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Sampler is a periodic tick handle. Ticks are routed by ID and tag, so a
// stopped sampler never accepts a tick scheduled before Stop.
type Sampler struct {
	id      int
	tag     int
	period  time.Duration
	running bool
}

// NewSampler returns a stopped sampler with the given period.
func NewSampler(period time.Duration) *Sampler {
	if period <= 0 {
		period = DefaultSamplePeriod
	}
	return &Sampler{id: nextSamplerID(), period: period}
}

// ID returns the sampler identifier carried by its ticks.
func (s *Sampler) ID() int {
	return s.id
}

// Running reports whether the sampler accepts ticks.
func (s *Sampler) Running() bool {
	return s.running
}

// Start marks the sampler running and schedules the first tick.
func (s *Sampler) Start() tea.Cmd {
	if s.running {
		return nil
	}
	s.running = true
	s.tag++
	return s.tick()
}

// Stop disposes the handle. Ticks already in flight are dropped on arrival.
func (s *Sampler) Stop() {
	s.running = false
	s.tag++
}

// Accept reports whether msg is a live tick of this sampler.
func (s *Sampler) Accept(msg TickMsg) bool {
	return s.running && msg.ID == s.id && msg.tag == s.tag
}

// Next schedules the tick following an accepted one.
func (s *Sampler) Next() tea.Cmd {
	if !s.running {
		return nil
	}
	return s.tick()
}

func (s *Sampler) tick() tea.Cmd {
	id, tag := s.id, s.tag
	return tea.Tick(s.period, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t, tag: tag}
	})
}
