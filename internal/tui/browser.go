// ABOUTME: Interactive bubbletea browser for saved favorites with remove, clear, and undo.
// ABOUTME: A bulk clear shows a short-lived undo toast; copying puts recipe text on the clipboard.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/cocktail/internal/favorites"
	"github.com/2389-research/cocktail/internal/models"
	"github.com/2389-research/cocktail/internal/render"
)

// toastExpiredMsg hides the toast shown at generation gen.
type toastExpiredMsg struct {
	gen int
}

type browserKeys struct {
	Up     key.Binding
	Down   key.Binding
	Detail key.Binding
	Remove key.Binding
	Clear  key.Binding
	Undo   key.Binding
	Copy   key.Binding
	Quit   key.Binding
}

func (k browserKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Detail, k.Remove, k.Clear, k.Copy, k.Quit}
}

func (k browserKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Undo}}
}

func defaultBrowserKeys() browserKeys {
	return browserKeys{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Detail: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear all")),
		Undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo clear")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy recipe")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

var (
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1)
	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
)

// BrowserModel is the bubbletea model for browsing saved favorites.
type BrowserModel struct {
	store   *favorites.Store
	entries []models.FavoriteEntry
	cursor  int
	detail  bool

	toast    string
	toastGen int
	undoable bool
	status   string

	window   time.Duration
	copyFn   func(string) error
	keys     browserKeys
	help     help.Model
	quitting bool
}

// NewBrowserModel creates a browser over store.
func NewBrowserModel(store *favorites.Store) BrowserModel {
	return BrowserModel{
		store:   store,
		entries: store.Entries(),
		window:  store.UndoWindow(),
		copyFn:  clipboard.WriteAll,
		keys:    defaultBrowserKeys(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case toastExpiredMsg:
		if msg.gen == m.toastGen {
			m.toast = ""
			m.undoable = false
		}
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Detail):
			m.detail = !m.detail
		case key.Matches(msg, m.keys.Remove):
			if e, ok := m.selected(); ok {
				m.store.Remove(e.ID)
				m.status = fmt.Sprintf("Removed %s.", e.Name)
				m.refresh()
			}
		case key.Matches(msg, m.keys.Clear):
			return m.clearAll()
		case key.Matches(msg, m.keys.Undo):
			return m.undo()
		case key.Matches(msg, m.keys.Copy):
			if e, ok := m.selected(); ok {
				if err := m.copyFn(render.RecipeText(e.Drink())); err != nil {
					m.status = "Clipboard unavailable: " + err.Error()
				} else {
					m.status = fmt.Sprintf("Copied %s to clipboard.", e.Name)
				}
			}
		}
	}
	return m, nil
}

func (m BrowserModel) clearAll() (tea.Model, tea.Cmd) {
	res := m.store.ClearAll()
	if res.Count == 0 {
		m.status = "No saved drinks to clear."
		return m, nil
	}
	m.refresh()
	m.undoable = true
	cmd := m.showToast(fmt.Sprintf("Removed %d saved drink(s). [u]ndo", res.Count))
	return m, cmd
}

func (m BrowserModel) undo() (tea.Model, tea.Cmd) {
	if !m.undoable || !m.store.UndoClear() {
		m.status = "Nothing to undo."
		return m, nil
	}
	m.refresh()
	m.undoable = false
	cmd := m.showToast(fmt.Sprintf("Restored %d saved drink(s).", len(m.entries)))
	return m, cmd
}

// showToast replaces the current toast. Older expiry ticks no longer match toastGen.
func (m *BrowserModel) showToast(text string) tea.Cmd {
	m.toastGen++
	m.toast = text
	gen := m.toastGen
	return tea.Tick(m.window, func(time.Time) tea.Msg {
		return toastExpiredMsg{gen: gen}
	})
}

func (m *BrowserModel) refresh() {
	m.entries = m.store.Entries()
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m BrowserModel) selected() (models.FavoriteEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return models.FavoriteEntry{}, false
	}
	return m.entries[m.cursor], true
}

// View implements tea.Model.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(brandStyle.Render("   COCKTAIL FINDER"))
	b.WriteString(titleStyle.Render(fmt.Sprintf(" - Saved (%d/%d)", len(m.entries), favorites.Capacity)))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(promptStyle.Render("  No saved drinks yet."))
		b.WriteString("\n")
	}
	for i, e := range m.entries {
		line := fmt.Sprintf("%s %s", e.Name, metaStyle.Render(e.Drink().Meta()))
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if e, ok := m.selected(); ok && m.detail {
		b.WriteString("\n")
		b.WriteString(detailStyle.Render(render.RecipeText(e.Drink())))
		b.WriteString("\n")
	}

	if m.toast != "" {
		b.WriteString("\n")
		b.WriteString(toastStyle.Render(m.toast))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(stepStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
