package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"qcalc/internal/calc"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return ansi.Truncate(s, width, "")
	}
	total := width - w
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// fitTail shortens s to width, replacing the end with an ellipsis.
func fitTail(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// fitHead shortens s to width, replacing the start with an ellipsis so the
// most recently typed characters stay visible.
func fitHead(s string, width int) string {
	w := ansi.StringWidth(s)
	if w <= width {
		return s
	}
	return ansi.TruncateLeft(s, w-width+1, "…")
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderDisplay renders the input and output lines, right-aligned.
func (m Model) renderDisplay(width int) string {
	align := lipgloss.NewStyle().Width(width).Align(lipgloss.Right)

	input := m.session.Input()
	inputLine := dimStyle.Render("0")
	if input != "" {
		inputLine = inputStyle.Render(fitHead(input, width))
	}

	output := m.session.Output()
	style := outputStyle
	if output == calc.ErrorMarker {
		style = errorStyle
	}
	outputLine := style.Render(fitTail(output, width))

	return displayStyle.Render(align.Render(inputLine) + "\n" + align.Render(outputLine))
}

// renderKeypad renders the button grid with the cursor highlighted.
func (m Model) renderKeypad() string {
	mode := m.session.AngleMode()
	rows := keypadRows(m.session.ExtraPanel())

	var sb strings.Builder
	for r, row := range rows {
		for c, label := range row {
			if c > 0 {
				sb.WriteString(strings.Repeat(" ", buttonGap))
			}
			text := padCenter(buttonLabel(label, mode), buttonW)
			switch {
			case r == m.cursorRow && c == m.cursorCol:
				sb.WriteString(cursorButtonStyle.Render(text))
			case label == "=":
				sb.WriteString(equalButtonStyle.Render(text))
			case isFunctionButton(label) || label == modeButton:
				sb.WriteString(functionButtonStyle.Render(text))
			default:
				sb.WriteString(buttonStyle.Render(text))
			}
		}
		if r < len(rows)-1 {
			sb.WriteString("\n")
		}
	}
	return keypadStyle.Render(sb.String())
}

// renderStatus renders the angle mode and extra panel state.
func (m Model) renderStatus() string {
	extra := "Show"
	if m.session.ExtraPanel() {
		extra = "Hide"
	}
	return fmt.Sprintf("%s  %s",
		modeStyle.Render(fmt.Sprintf("Mode: %s", m.session.AngleMode())),
		dimStyle.Render(fmt.Sprintf("x: %s Extra Operators  •  history: %d", extra, len(m.session.History()))),
	)
}

// historyContent lists history entries as "expression = result".
func (m Model) historyContent() string {
	entries := m.session.History()
	if len(entries) == 0 {
		return dimStyle.Render("No calculations yet.")
	}
	var sb strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&sb, "%s %s", dimStyle.Render(fmt.Sprintf("%3d", i+1)), e)
		if i < len(entries)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// renderHistory renders the history screen.
func (m Model) renderHistory() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("History"),
		historyStyle.Render(m.history.View()),
		dimStyle.Render(" ↑↓ Scroll  Esc Back to Calculator"),
	)
}
