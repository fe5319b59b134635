package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the calculator screen bindings.
type keyMap struct {
	Up, Down, Left, Right key.Binding
	Press                 key.Binding
	Evaluate              key.Binding
	Backspace             key.Binding
	Clear                 key.Binding
	ToggleExtra           key.Binding
	ToggleMode            key.Binding
	History               key.Binding
	Back                  key.Binding
	Help                  key.Binding
	Quit                  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Press:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("⏎", "press")),
		Evaluate:    key.NewBinding(key.WithKeys("="), key.WithHelp("=", "evaluate")),
		Backspace:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Clear:       key.NewBinding(key.WithKeys("ctrl+l", "delete", "C"), key.WithHelp("C", "clear")),
		ToggleExtra: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "extra")),
		ToggleMode:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "deg/rad")),
		History:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "history")),
		Back:        key.NewBinding(key.WithKeys("esc", "tab", "backspace"), key.WithHelp("esc", "back")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.Clear, k.ToggleExtra, k.ToggleMode, k.History, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Press},
		{k.Evaluate, k.Backspace, k.Clear},
		{k.ToggleExtra, k.ToggleMode, k.History},
		{k.Help, k.Quit},
	}
}

// functionKeys are letter shortcuts for function buttons.
var functionKeys = map[string]string{
	"r": "√",
	"s": "sin",
	"o": "cos",
	"t": "tan",
	"g": "log",
	"n": "ln",
}

// appendKeys are typed straight into the input.
const appendKeys = "0123456789.+-*/%^()"
