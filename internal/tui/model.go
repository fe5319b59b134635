// Package tui is the terminal front end of the calculator.
package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qcalc/internal/calc"
)

// screen is the view currently shown.
type screen int

const (
	screenCalculator screen = iota
	screenHistory
)

// Model represents the TUI application state. Session state lives in the
// controller; the model only tracks presentation.
type Model struct {
	session *calc.Controller

	screen    screen
	cursorRow int
	cursorCol int
	width     int
	height    int

	keys    keyMap
	help    help.Model
	history viewport.Model
}

// New returns a model driving session.
func New(session *calc.Controller) Model {
	return Model{
		session: session,
		keys:    defaultKeyMap(),
		help:    help.New(),
		history: viewport.New(displayMinW, 10),
	}
}

// Run starts the program and blocks until the user quits.
func Run(session *calc.Controller, logger *slog.Logger) error {
	logger.Info("session started", "mode", session.AngleMode())
	_, err := tea.NewProgram(New(session), tea.WithAltScreen()).Run()
	logger.Info("session ended", "history", len(session.History()))
	return err
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.history.Width = max(msg.Width-6, displayMinW)
		m.history.Height = max(msg.Height-7, 3)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.screen {
		case screenCalculator:
			return m.updateCalculator(msg)
		case screenHistory:
			return m.updateHistory(msg)
		}
	}
	return m, nil
}

func (m Model) updateCalculator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	mode := m.session.AngleMode()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursorRow > 0 {
			m.cursorRow--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursorRow < len(keypadRows(m.session.ExtraPanel()))-1 {
			m.cursorRow++
		}
	case key.Matches(msg, m.keys.Left):
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursorCol < keypadCols-1 {
			m.cursorCol++
		}
	case key.Matches(msg, m.keys.Press):
		rows := keypadRows(m.session.ExtraPanel())
		m.dispatch(buttonAction(rows[m.cursorRow][m.cursorCol], mode))
	case key.Matches(msg, m.keys.Evaluate):
		m.dispatch(calc.Evaluate())
	case key.Matches(msg, m.keys.Backspace):
		m.dispatch(calc.Backspace())
	case key.Matches(msg, m.keys.Clear):
		m.dispatch(calc.Clear())
	case key.Matches(msg, m.keys.ToggleExtra):
		m.dispatch(calc.ToggleExtraPanel())
	case key.Matches(msg, m.keys.ToggleMode):
		m.dispatch(calc.SetAngleMode(mode.Toggle()))
	case key.Matches(msg, m.keys.History):
		m.dispatch(calc.ViewHistory())
		m.screen = screenHistory
		m.history.SetContent(m.historyContent())
		m.history.GotoBottom()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		if fn, ok := functionKeys[keyStr]; ok {
			m.dispatch(calc.InsertFunction(fn))
		} else if len(keyStr) == 1 && strings.Contains(appendKeys, keyStr) {
			m.dispatch(buttonAction(keyStr, mode))
		}
	}
	return m, nil
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.dispatch(calc.Return())
		m.screen = screenCalculator
		return m, nil
	}
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// dispatch forwards a to the session and keeps the keypad cursor on a
// visible button.
func (m *Model) dispatch(a calc.Action) {
	m.session.Dispatch(a)
	rows := keypadRows(m.session.ExtraPanel())
	m.cursorRow = min(m.cursorRow, len(rows)-1)
	m.cursorCol = min(m.cursorCol, len(rows[m.cursorRow])-1)
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.screen == screenHistory {
		return m.renderHistory()
	}

	w := max(min(m.width-6, 60), displayMinW)
	frame := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Your Calculator"),
		m.renderDisplay(w),
		m.renderKeypad(),
		m.renderStatus(),
		m.help.View(m.keys),
	)
	return frame
}
