package calc

// ActionKind enumerates the inputs a session accepts.
type ActionKind int

const (
	ActionAppend ActionKind = iota
	ActionBackspace
	ActionClear
	ActionInsertFunction
	ActionSetAngleMode
	ActionEvaluate
	ActionToggleExtraPanel
	ActionViewHistory
	ActionReturn
)

var actionNames = [...]string{
	ActionAppend:           "append",
	ActionBackspace:        "backspace",
	ActionClear:            "clear",
	ActionInsertFunction:   "insert_function",
	ActionSetAngleMode:     "set_angle_mode",
	ActionEvaluate:         "evaluate",
	ActionToggleExtraPanel: "toggle_extra_panel",
	ActionViewHistory:      "view_history",
	ActionReturn:           "return",
}

func (k ActionKind) String() string {
	if k >= 0 && int(k) < len(actionNames) {
		return actionNames[k]
	}
	return "unknown"
}

// Action is one user input. Text carries the characters for ActionAppend and
// the function token for ActionInsertFunction; Mode is used by
// ActionSetAngleMode.
type Action struct {
	Kind ActionKind
	Text string
	Mode AngleMode
}

func Append(text string) Action          { return Action{Kind: ActionAppend, Text: text} }
func Backspace() Action                  { return Action{Kind: ActionBackspace} }
func Clear() Action                      { return Action{Kind: ActionClear} }
func InsertFunction(token string) Action { return Action{Kind: ActionInsertFunction, Text: token} }
func SetAngleMode(m AngleMode) Action    { return Action{Kind: ActionSetAngleMode, Mode: m} }
func Evaluate() Action                   { return Action{Kind: ActionEvaluate} }
func ToggleExtraPanel() Action           { return Action{Kind: ActionToggleExtraPanel} }
func ViewHistory() Action                { return Action{Kind: ActionViewHistory} }
func Return() Action                     { return Action{Kind: ActionReturn} }

// functionOpeners maps function buttons to the text they insert.
var functionOpeners = map[string]string{
	"√":   "sqrt(",
	"^":   "^",
	"log": "log10(",
	"ln":  "log(",
	"sin": "sin(",
	"cos": "cos(",
	"tan": "tan(",
	"(":   "(",
	")":   ")",
}

// FunctionOpener returns the text inserted for a function token. Unknown
// tokens insert themselves.
func FunctionOpener(token string) string {
	if s, ok := functionOpeners[token]; ok {
		return s
	}
	return token
}
