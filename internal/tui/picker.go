package tui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/verte-zerg/typequote/internal/theme"
)

type themeItem struct {
	theme   theme.Theme
	current bool
}

func (i themeItem) Title() string {
	return i.theme.Name
}

func (i themeItem) Description() string {
	if i.current {
		return "current"
	}
	return ""
}

func (i themeItem) FilterValue() string {
	return i.theme.Name
}

func newThemePicker(current string, width, height int) list.Model {
	themes := theme.All()
	items := make([]list.Item, len(themes))
	selected := 0
	for i, t := range themes {
		items[i] = themeItem{theme: t, current: t.Name == current}
		if t.Name == current {
			selected = i
		}
	}
	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, width, height)
	l.Title = "Themes"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Select(selected)
	return l
}

func selectedTheme(l list.Model) (theme.Theme, bool) {
	item, ok := l.SelectedItem().(themeItem)
	if !ok {
		return theme.Theme{}, false
	}
	return item.theme, true
}
