// Package model holds the Bubble Tea models behind interactive CLI commands.
package model

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bmb/internal/cli/styles"
	"github.com/bnema/bmb/internal/domain/profile"
)

const (
	chooserWidth  = 48
	chooserHeight = 12
)

// ProfileChoice is one row of the terminal chooser.
type ProfileChoice struct {
	Name      string
	Ephemeral bool
	Locked    bool
}

// FilterValue implements list.Item.
func (c ProfileChoice) FilterValue() string { return c.Name }

// ChooserKeyMap defines keybindings for the profile chooser.
type ChooserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Cancel key.Binding
}

// DefaultChooserKeyMap returns the default keybindings.
func DefaultChooserKeyMap() ChooserKeyMap {
	return ChooserKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc/q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k ChooserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k ChooserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type choiceDelegate struct {
	theme *styles.Theme
}

func (d choiceDelegate) Height() int                             { return 1 }
func (d choiceDelegate) Spacing() int                            { return 0 }
func (d choiceDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d choiceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	c, ok := item.(ProfileChoice)
	if !ok {
		return
	}
	t := d.theme

	name := c.Name
	switch {
	case c.Ephemeral:
		name += " " + t.Subtle.Render("("+styles.IconIncog+" incognito)")
	case c.Locked:
		name += " " + t.WarningStyle.Render("("+styles.IconLock+" in use)")
	}

	if index == m.Index() {
		_, _ = fmt.Fprint(w, t.ListItemSelected.Render(styles.IconCursor+" "+name))
		return
	}
	_, _ = fmt.Fprint(w, t.ListItem.Render(name))
}

// ChooserModel is the terminal profile chooser. It ends with one name or none.
type ChooserModel struct {
	list   list.Model
	help   help.Model
	keys   ChooserKeyMap
	theme  *styles.Theme
	title  string
	status string

	chosen string
	done   bool
}

// NewChooserModel creates a chooser over choices, in order.
func NewChooserModel(theme *styles.Theme, appTitle string, choices []ProfileChoice) ChooserModel {
	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = c
	}

	l := list.New(items, choiceDelegate{theme: theme}, chooserWidth, chooserHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(len(choices) > chooserHeight)

	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc

	return ChooserModel{
		list:  l,
		help:  h,
		keys:  DefaultChooserKeyMap(),
		theme: theme,
		title: profile.ChooserTitle(appTitle),
	}
}

// Init implements tea.Model.
func (m ChooserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ChooserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Choose):
			c, ok := m.list.SelectedItem().(ProfileChoice)
			if !ok {
				return m, nil
			}
			if c.Locked {
				m.status = c.Name + " is open in another window"
				return m, nil
			}
			m.chosen = c.Name
			m.done = true
			return m, tea.Quit
		}
		m.status = ""
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ChooserModel) View() string {
	if m.done {
		return ""
	}
	t := m.theme

	parts := []string{t.Title.Render(m.title), "", m.list.View()}
	if m.status != "" {
		parts = append(parts, "", t.WarningStyle.Render(m.status))
	}
	parts = append(parts, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Chosen returns the chosen name, or false when the chooser was dismissed.
func (m ChooserModel) Chosen() (string, bool) {
	return m.chosen, m.chosen != ""
}

// RunChooser runs the chooser until the user picks a profile or quits.
func RunChooser(ctx context.Context, theme *styles.Theme, appTitle string, choices []ProfileChoice, opts ...tea.ProgramOption) (string, bool, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(NewChooserModel(theme, appTitle, choices), opts...).Run()
	if err != nil {
		return "", false, fmt.Errorf("profile chooser: %w", err)
	}
	name, ok := final.(ChooserModel).Chosen()
	return name, ok, nil
}

// Ensure interface compliance.
var _ tea.Model = ChooserModel{}
