// Package calc implements the calculator core: angle-mode preprocessing,
// evaluation, result formatting and the session state machine.
package calc

import (
	"log/slog"
	"slices"
	"unicode/utf8"
)

// ErrorMarker is shown in place of a result when evaluation fails.
const ErrorMarker = "Syntax Error"

// HistoryEntry records one successful evaluation.
type HistoryEntry struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

func (h HistoryEntry) String() string {
	return h.Expression + " = " + h.Result
}

// State is a snapshot of a calculator session. Reduce never modifies a
// State it was given, including the backing array of History.
type State struct {
	Input      string
	Output     string
	Mode       AngleMode
	History    []HistoryEntry
	ExtraPanel bool
}

// Reduce returns the state that follows s after action a.
func Reduce(adapter *Adapter, s State, a Action) State {
	switch a.Kind {
	case ActionAppend:
		s.Input += a.Text
	case ActionBackspace:
		if s.Input != "" {
			_, size := utf8.DecodeLastRuneInString(s.Input)
			s.Input = s.Input[:len(s.Input)-size]
		}
	case ActionClear:
		s.Input = ""
		s.Output = ""
	case ActionInsertFunction:
		s.Input += FunctionOpener(a.Text)
	case ActionSetAngleMode:
		s.Mode = a.Mode
	case ActionEvaluate:
		result, err := adapter.Run(s.Input, s.Mode)
		if err != nil {
			s.Output = ErrorMarker
			break
		}
		s.Output = FormatOutput(result)
		s.History = append(slices.Clip(s.History), HistoryEntry{Expression: s.Input, Result: result})
	case ActionToggleExtraPanel:
		s.ExtraPanel = !s.ExtraPanel
	case ActionViewHistory, ActionReturn:
		// Read-only.
	}
	return s
}

// Controller owns the state of one session and applies actions to it.
// It is not safe for concurrent use.
type Controller struct {
	adapter *Adapter
	state   State
	logger  *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transition events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithAngleMode sets the initial angle mode.
func WithAngleMode(m AngleMode) Option {
	return func(c *Controller) {
		c.state.Mode = m
	}
}

// WithExtraPanel sets whether the extra panel starts visible.
func WithExtraPanel(visible bool) Option {
	return func(c *Controller) {
		c.state.ExtraPanel = visible
	}
}

// NewController starts a session with an empty buffer, empty output,
// radians mode, empty history and the extra panel hidden.
func NewController(ev Evaluator, opts ...Option) *Controller {
	c := &Controller{
		adapter: NewAdapter(ev),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dispatch applies a and returns the new state.
func (c *Controller) Dispatch(a Action) State {
	prev := c.state
	c.state = Reduce(c.adapter, prev, a)

	switch {
	case a.Kind == ActionSetAngleMode && prev.Mode != c.state.Mode:
		c.logger.Info("angle mode changed", "mode", c.state.Mode)
	case a.Kind == ActionEvaluate && len(c.state.History) > len(prev.History):
		last := c.state.History[len(c.state.History)-1]
		c.logger.Debug("evaluated", "expression", last.Expression, "result", last.Result, "mode", c.state.Mode)
	case a.Kind == ActionViewHistory:
		c.logger.Debug("history viewed", "entries", len(c.state.History))
	}
	return c.state
}

// State returns the current state. Its History must not be modified.
func (c *Controller) State() State { return c.state }

func (c *Controller) Input() string        { return c.state.Input }
func (c *Controller) Output() string       { return c.state.Output }
func (c *Controller) AngleMode() AngleMode { return c.state.Mode }
func (c *Controller) ExtraPanel() bool     { return c.state.ExtraPanel }

// History returns a copy of the history log, oldest first.
func (c *Controller) History() []HistoryEntry {
	return slices.Clone(c.state.History)
}
