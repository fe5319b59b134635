package tui

import "qcalc/internal/calc"

// modeButton is the keypad slot that switches angle mode. It is labelled
// with the mode it switches to.
const modeButton = "mode"

// mainRows are always visible.
var mainRows = [][]string{
	{"C", "⌫", "√", "/"},
	{"7", "8", "9", "*"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", ".", "^", "="},
}

// extraRows are shown only while the extra panel is visible.
var extraRows = [][]string{
	{"(", ")", "ln", "sin"},
	{"cos", "tan", "log", modeButton},
}

// keypadRows returns the visible keypad.
func keypadRows(extra bool) [][]string {
	if !extra {
		return mainRows
	}
	rows := make([][]string, 0, len(mainRows)+len(extraRows))
	rows = append(rows, mainRows...)
	return append(rows, extraRows...)
}

// isFunctionButton reports whether label inserts a function opener.
func isFunctionButton(label string) bool {
	switch label {
	case "√", "^", "log", "ln", "sin", "cos", "tan", "(", ")":
		return true
	}
	return false
}

// buttonLabel returns the text shown for a keypad slot.
func buttonLabel(label string, mode calc.AngleMode) string {
	if label == modeButton {
		return mode.Toggle().Short()
	}
	return label
}

// buttonAction returns the session action for pressing label.
func buttonAction(label string, mode calc.AngleMode) calc.Action {
	switch {
	case label == "C":
		return calc.Clear()
	case label == "⌫":
		return calc.Backspace()
	case label == "=":
		return calc.Evaluate()
	case label == modeButton:
		return calc.SetAngleMode(mode.Toggle())
	case isFunctionButton(label):
		return calc.InsertFunction(label)
	default:
		return calc.Append(label)
	}
}
