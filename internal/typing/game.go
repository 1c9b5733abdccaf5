package typing

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Sample is one live WPM reading taken by the sampler.
type Sample struct {
	Elapsed time.Duration
	WPM     int
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithLogger sets the logger used for session lifecycle events.
func WithLogger(log *zap.Logger) GameOption {
	return func(g *Game) {
		if log != nil {
			g.log = log
		}
	}
}

// WithGameClock sets the clock handed to every session.
func WithGameClock(clock Clock) GameOption {
	return func(g *Game) {
		if clock != nil {
			g.now = clock
		}
	}
}

// WithSamplePeriod overrides DefaultSamplePeriod.
func WithSamplePeriod(period time.Duration) GameOption {
	return func(g *Game) {
		if period > 0 {
			g.period = period
		}
	}
}

// Game owns the current Session and the single Sampler tied to it.
type Game struct {
	picker Picker
	now    Clock
	period time.Duration
	log    *zap.Logger

	session *Session
	sampler *Sampler
	samples []Sample
}

// NewGame creates a game with a freshly drawn idle session.
func NewGame(picker Picker, opts ...GameOption) (*Game, error) {
	g := &Game{
		picker: picker,
		now:    time.Now,
		period: DefaultSamplePeriod,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Session returns the current session.
func (g *Game) Session() *Session {
	return g.session
}

// Samples returns the live WPM readings of the current session.
func (g *Game) Samples() []Sample {
	return append([]Sample(nil), g.samples...)
}

// SamplerRunning reports whether a sampler is live for the current session.
func (g *Game) SamplerRunning() bool {
	return g.sampler != nil && g.sampler.Running()
}

// Reset stops the sampler and replaces the session with a new idle one.
// On error the current session and its sampler are kept.
func (g *Game) Reset() error {
	s, err := New("", g.picker, WithClock(g.now))
	if err != nil {
		return err
	}
	g.stopSampler()
	if g.session != nil {
		g.log.Debug("session discarded",
			zap.String("session", g.session.ID()),
			zap.Stringer("state", g.session.State()),
		)
	}
	g.session = s
	g.samples = nil
	g.log.Debug("session created",
		zap.String("session", s.ID()),
		zap.Int("passage_len", len(s.passage)),
	)
	return nil
}

// Apply forwards a key press to the session and starts or stops the sampler
// on state transitions.
func (g *Game) Apply(key Key) tea.Cmd {
	before := g.session.State()
	if !g.session.ApplyKeystroke(key) {
		return nil
	}
	after := g.session.State()

	var cmd tea.Cmd
	if before == StateIdle && after != StateIdle {
		g.log.Info("session started", zap.String("session", g.session.ID()))
		cmd = g.startSampler()
	}
	if after == StateFinished && before != StateFinished {
		g.stopSampler()
		snap := g.session.Snapshot()
		g.log.Info("session finished",
			zap.String("session", snap.ID),
			zap.Int("wpm", snap.FinalWPM),
			zap.Int("accuracy", snap.Accuracy),
			zap.Duration("elapsed", snap.Elapsed),
		)
		return nil
	}
	return cmd
}

// Tick handles a sampler tick. Ticks from a stopped or replaced sampler are
// dropped and report false.
func (g *Game) Tick(msg TickMsg) (Sample, bool, tea.Cmd) {
	if g.sampler == nil || !g.sampler.Accept(msg) {
		return Sample{}, false, nil
	}
	if g.session.State() != StateActive {
		g.stopSampler()
		return Sample{}, false, nil
	}
	sample := g.sample()
	return sample, true, g.sampler.Next()
}

func (g *Game) startSampler() tea.Cmd {
	g.stopSampler()
	g.sampler = NewSampler(g.period)
	g.sample()
	return g.sampler.Start()
}

func (g *Game) stopSampler() {
	if g.sampler == nil {
		return
	}
	g.sampler.Stop()
	g.sampler = nil
}

func (g *Game) sample() Sample {
	wpm := g.session.SampleLiveWPM()
	sample := Sample{Elapsed: g.now().Sub(g.session.startedAt), WPM: wpm}
	g.samples = append(g.samples, sample)
	return sample
}
