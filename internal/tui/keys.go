package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typequote/internal/typing"
)

type keyMap struct {
	Quit    key.Binding
	Restart key.Binding
	Themes  key.Binding
	Cycle   key.Binding
	Again   key.Binding
	Leave   key.Binding
	Choose  key.Binding
	Close   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Restart: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restart")),
		Themes:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "themes")),
		Cycle:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next theme")),
		Again:   key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter/r", "next passage")),
		Leave:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		Choose:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Close:   key.NewBinding(key.WithKeys("esc", "ctrl+t"), key.WithHelp("esc", "close")),
	}
}

func (k keyMap) typingHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Themes, k.Cycle, k.Quit}
}

func (k keyMap) resultHelp() []key.Binding {
	return []key.Binding{k.Again, k.Themes, k.Cycle, k.Leave}
}

func (k keyMap) pickerHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Close}
}

// keysFromTea translates a terminal key event into session key presses.
// Pasted or batched input yields one key per rune.
func keysFromTea(msg tea.KeyMsg) []typing.Key {
	var mods typing.Modifier
	if msg.Alt {
		mods |= typing.ModAlt
	}
	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]typing.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, typing.Key{Code: typing.KeyRune, Rune: r, Mods: mods})
		}
		return keys
	case tea.KeySpace:
		return []typing.Key{{Code: typing.KeyRune, Rune: ' ', Mods: mods}}
	case tea.KeyBackspace:
		return []typing.Key{{Code: typing.KeyBackspace, Mods: mods}}
	case tea.KeyEnter:
		return []typing.Key{{Code: typing.KeyOther, Mods: mods}}
	case tea.KeyTab, tea.KeyShiftTab:
		return []typing.Key{{Code: typing.KeyTab, Mods: mods}}
	case tea.KeyEsc:
		return []typing.Key{{Code: typing.KeyEscape, Mods: mods}}
	}
	if msg.Type >= tea.KeyCtrlAt && msg.Type <= tea.KeyCtrlUnderscore {
		return []typing.Key{{Code: typing.KeyControl, Mods: mods | typing.ModCtrl}}
	}
	return []typing.Key{{Code: typing.KeyOther, Mods: mods}}
}
