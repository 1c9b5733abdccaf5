// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/typequote/internal/stats"
	"github.com/verte-zerg/typequote/internal/theme"
	"github.com/verte-zerg/typequote/internal/typing"
)

const (
	contentRatio    = 0.70
	sparklineWidth  = 24
	resultPlotRows  = 6
	minResultPoints = 2
	smoothWindow    = 3
)

// ThemeStore persists the chosen theme.
type ThemeStore interface {
	SetTheme(ctx context.Context, name string) error
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	game  *typing.Game
	store ThemeStore
	log   *zap.Logger

	keys keyMap
	help help.Model

	theme  theme.Theme
	styles theme.Styles

	picker  list.Model
	picking bool

	width  int
	height int

	errMsg string
}

// NewModel constructs a typing TUI model around game. store may be nil, in
// which case theme changes last for the process only.
func NewModel(game *typing.Game, th theme.Theme, store ThemeStore, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Model{
		game:  game,
		store: store,
		log:   log,
		keys:  newKeyMap(),
		help:  help.New(),
	}
	m.setTheme(th)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.picking {
			m.picker.SetSize(m.pickerSize())
		}
		return m, nil
	case typing.TickMsg:
		_, _, cmd := m.game.Tick(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.picking {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.picking {
		return m.updatePicker(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Themes):
		m.openPicker()
		return m, nil
	case key.Matches(msg, m.keys.Cycle):
		m.chooseTheme(theme.Next(m.theme.Name))
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, nil
	}

	if m.game.Session().State() == typing.StateFinished {
		switch {
		case key.Matches(msg, m.keys.Again):
			m.restart()
		case key.Matches(msg, m.keys.Leave):
			return m, tea.Quit
		}
		return m, nil
	}

	var cmds []tea.Cmd
	for _, k := range keysFromTea(msg) {
		cmds = append(cmds, m.game.Apply(k))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) restart() {
	if err := m.game.Reset(); err != nil {
		m.errMsg = fmt.Sprintf("failed to start a new passage: %v", err)
		m.log.Error("reset failed", zap.Error(err))
		return
	}
	m.errMsg = ""
}

func (m *Model) openPicker() {
	w, h := m.pickerSize()
	m.picker = newThemePicker(m.theme.Name, w, h)
	m.picking = true
}

func (m *Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.picking = false
		return m, nil
	case key.Matches(msg, m.keys.Choose):
		if th, ok := selectedTheme(m.picker); ok {
			m.chooseTheme(th)
		}
		m.picking = false
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *Model) chooseTheme(th theme.Theme) {
	if th.Name == m.theme.Name {
		return
	}
	m.setTheme(th)
	m.log.Info("theme changed", zap.String("theme", th.Name))
	if m.store == nil {
		return
	}
	if err := m.store.SetTheme(context.Background(), th.Name); err != nil {
		m.log.Warn("failed to persist theme", zap.String("theme", th.Name), zap.Error(err))
	}
}

func (m *Model) setTheme(th theme.Theme) {
	m.theme = th
	m.styles = th.Styles()
	m.help.Styles.ShortKey = m.styles.Muted.Bold(true)
	m.help.Styles.ShortDesc = m.styles.Muted
	m.help.Styles.ShortSeparator = m.styles.Muted
}

func (m *Model) pickerSize() (int, int) {
	w, h := m.width/2, m.height-4
	if w < 20 {
		w = 20
	}
	if h < 8 {
		h = 8
	}
	return w, h
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.picking {
		return m.place(m.picker.View(), m.help.ShortHelpView(m.keys.pickerHelp()))
	}
	snap := m.game.Session().Snapshot()
	if snap.State == typing.StateFinished {
		return m.place(m.renderResult(snap), m.help.ShortHelpView(m.keys.resultHelp()))
	}
	return m.place(m.renderTyping(snap), m.renderFooter(snap))
}

func (m *Model) place(content, footer string) string {
	if m.errMsg != "" {
		footer = m.styles.Incorrect.Render(m.errMsg) + "\n" + footer
	}
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	footerHeight := lipgloss.Height(footer)
	if m.height <= footerHeight+1 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-footerHeight, lipgloss.Center, lipgloss.Center, content)
	foot := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer)
	return body + "\n" + foot
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	w := int(float64(m.width) * contentRatio)
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) renderTyping(snap typing.Snapshot) string {
	cursorIndex := -1
	if snap.Cursor < len(snap.Passage) {
		cursorIndex = snap.Cursor
	}
	runes := buildStyledRunes(snap.Passage, snap.Marks, cursorIndex, m.styles)
	width := m.contentWidth()
	text := wrapStyledRunes(runes, width)
	if width > 0 {
		text = lipgloss.NewStyle().Width(width).Render(text)
	}
	return m.renderStatus(snap) + "\n\n" + text
}

func (m *Model) renderStatus(snap typing.Snapshot) string {
	if snap.State == typing.StateIdle {
		return m.styles.Muted.Render("start typing to begin")
	}
	status := fmt.Sprintf("%d wpm  %d%%", snap.LiveWPM, snap.Accuracy)
	spark := stats.Sparkline(stats.WPMSeries(m.game.Samples()), sparklineWidth)
	if spark != "" {
		status += "  " + m.styles.Muted.Render(spark)
	}
	return m.styles.Accent.Render(status)
}

func (m *Model) renderFooter(snap typing.Snapshot) string {
	progress := 0
	if len(snap.Passage) > 0 {
		progress = snap.Cursor * 100 / len(snap.Passage)
	}
	segments := []string{
		fmt.Sprintf("Progress %d%%", progress),
		fmt.Sprintf("Theme %s", m.theme.Name),
	}
	line := m.styles.Muted.Render(strings.Join(segments, "  "))
	return line + "\n" + m.help.ShortHelpView(m.keys.typingHelp())
}

func (m *Model) renderResult(snap typing.Snapshot) string {
	correct, incorrect := 0, 0
	for _, mark := range snap.Marks {
		switch mark {
		case typing.MarkCorrect:
			correct++
		case typing.MarkIncorrect:
			incorrect++
		}
	}
	lines := []string{
		m.styles.Accent.Render(fmt.Sprintf("%d wpm", snap.FinalWPM)),
		m.styles.Correct.Render(fmt.Sprintf("%d%% accuracy", snap.Accuracy)),
		m.styles.Muted.Render(fmt.Sprintf("%s  %d chars (%d correct, %d incorrect)",
			stats.FormatDuration(snap.Elapsed), len(snap.Typed), correct, incorrect)),
	}

	samples := stats.WPMSeries(m.game.Samples())
	if len(samples) >= minResultPoints {
		var plot strings.Builder
		width := 0
		if cw := m.contentWidth(); cw > 0 {
			width = stats.PlotWidthFor(cw, 4)
		}
		smoothed := stats.MovingAverage(samples, smoothWindow)
		if err := stats.PlotWPM(&plot, smoothed, width, resultPlotRows, false); err != nil {
			m.log.Warn("failed to render wpm plot", zap.Error(err))
		} else {
			lines = append(lines, "", m.styles.Muted.Render(strings.TrimRight(plot.String(), "\n")))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
