package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qcalc/internal/calc"
	"qcalc/internal/mathexpr"
)

func newTestModel(t *testing.T) (Model, *calc.Controller) {
	t.Helper()
	session := calc.NewController(mathexpr.New())
	m := New(session)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return next.(Model), session
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = send(t, m, runes(string(r)))
	}
	return m
}

func TestTypingAndEvaluate(t *testing.T) {
	m, session := newTestModel(t)
	m = typeString(t, m, "2+2=")

	assert.Equal(t, "2+2", session.Input())
	assert.Equal(t, "4", session.Output())
	require.Len(t, session.History(), 1)
	assert.Contains(t, m.View(), "4")
}

func TestFunctionShortcuts(t *testing.T) {
	m, session := newTestModel(t)
	m = typeString(t, m, "s90)")
	assert.Equal(t, "sin(90)", session.Input())

	m = send(t, m, runes("m"))
	assert.Equal(t, calc.Degrees, session.AngleMode())

	send(t, m, runes("="))
	assert.Equal(t, "1", session.Output())
}

func TestBackspaceAndClear(t *testing.T) {
	m, session := newTestModel(t)
	m = typeString(t, m, "123")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "12", session.Input())

	m = typeString(t, m, "=")
	send(t, m, runes("C"))
	assert.Empty(t, session.Input())
	assert.Empty(t, session.Output())
	assert.Len(t, session.History(), 1)
}

func TestKeypadPress(t *testing.T) {
	m, session := newTestModel(t)

	// Cursor starts on "C"; move to "7" and press it.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "7", session.Input())

	// Move to "√" (row 0, col 2).
	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	assert.Equal(t, "7sqrt(", session.Input())

	// The cursor cannot leave the keypad.
	for i := 0; i < 10; i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, len(mainRows)-1, m.cursorRow)
	assert.Equal(t, keypadCols-1, m.cursorCol)
}

func TestExtraPanelToggle(t *testing.T) {
	m, session := newTestModel(t)
	assert.NotContains(t, m.View(), " ln ")

	m = send(t, m, runes("x"))
	assert.True(t, session.ExtraPanel())
	assert.Contains(t, m.View(), "ln")

	// Walk to the mode button in the last extra row and press it.
	for i := 0; i < len(mainRows)+len(extraRows); i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	for i := 0; i < keypadCols; i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, calc.Degrees, session.AngleMode())

	// Hiding the panel pulls the cursor back onto the main keypad.
	m = send(t, m, runes("x"))
	assert.False(t, session.ExtraPanel())
	assert.Equal(t, len(mainRows)-1, m.cursorRow)
}

func TestHistoryScreen(t *testing.T) {
	m, session := newTestModel(t)
	m = typeString(t, m, "9=")
	m = send(t, m, runes("C"))
	m = typeString(t, m, "1/4=")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, screenHistory, m.screen)

	view := m.View()
	assert.Contains(t, view, "History")
	assert.Contains(t, view, "9 = 9")
	assert.Contains(t, view, "1/4 = 0.25")

	// Typing on the history screen does not reach the session.
	m = typeString(t, m, "5")
	assert.Equal(t, "1/4", session.Input())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenCalculator, m.screen)
	assert.Len(t, session.History(), 2)
}

func TestEmptyHistoryScreen(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.View(), "No calculations yet.")
}

func TestErrorShown(t *testing.T) {
	m, session := newTestModel(t)
	m = typeString(t, m, "5/0=")
	assert.Equal(t, calc.ErrorMarker, session.Output())
	assert.Contains(t, m.View(), calc.ErrorMarker)
	assert.Empty(t, session.History())
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestLoadingBeforeSize(t *testing.T) {
	m := New(calc.NewController(mathexpr.New()))
	assert.Equal(t, "Loading...", m.View())
}

func TestButtonAction(t *testing.T) {
	tests := []struct {
		label string
		mode  calc.AngleMode
		want  calc.Action
	}{
		{"C", calc.Radians, calc.Clear()},
		{"⌫", calc.Radians, calc.Backspace()},
		{"=", calc.Radians, calc.Evaluate()},
		{"7", calc.Radians, calc.Append("7")},
		{"/", calc.Radians, calc.Append("/")},
		{"√", calc.Radians, calc.InsertFunction("√")},
		{"ln", calc.Radians, calc.InsertFunction("ln")},
		{modeButton, calc.Radians, calc.SetAngleMode(calc.Degrees)},
		{modeButton, calc.Degrees, calc.SetAngleMode(calc.Radians)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, buttonAction(tt.label, tt.mode), tt.label)
	}

	assert.Equal(t, "deg", buttonLabel(modeButton, calc.Radians))
	assert.Equal(t, "rad", buttonLabel(modeButton, calc.Degrees))
}

func TestFitHelpers(t *testing.T) {
	assert.Equal(t, "  ab   ", padCenter("ab", 7))
	assert.Equal(t, "abc", fitTail("abc", 5))
	assert.Equal(t, "abcd…", fitTail("abcdefgh", 5))
	assert.Equal(t, "…efgh", fitHead("abcdefgh", 5))
	assert.True(t, strings.HasSuffix(fitHead("123456789", 4), "789"))
}
