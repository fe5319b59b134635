package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Evaluator computes the value of an expression string. Implementations
// must support + - * / ^, parentheses and the functions sqrt, log10, log,
// sin, cos and tan.
type Evaluator interface {
	Evaluate(expr string) (float64, error)
}

// EvaluationError is the only error the calculator reports. It covers
// syntax errors, unknown names and results that are not finite numbers
// alike.
type EvaluationError struct {
	Expr string
	Err  error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("cannot evaluate %q: %v", e.Expr, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

var errNotFinite = errors.New("result is not a finite number")

// Adapter wraps an Evaluator and normalizes its outcome.
type Adapter struct {
	ev Evaluator
}

// NewAdapter returns an Adapter over ev.
func NewAdapter(ev Evaluator) *Adapter {
	return &Adapter{ev: ev}
}

// Evaluate runs expr through the evaluator and returns the result as a
// string. Every failure is returned as *EvaluationError.
func (a *Adapter) Evaluate(expr string) (string, error) {
	v, err := a.ev.Evaluate(expr)
	if err != nil {
		return "", &EvaluationError{Expr: expr, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", &EvaluationError{Expr: expr, Err: errNotFinite}
	}
	return formatNumber(v), nil
}

// Run preprocesses input for mode and evaluates it.
func (a *Adapter) Run(input string, mode AngleMode) (string, error) {
	return a.Evaluate(Preprocess(input, mode))
}

// formatNumber renders v the way a JavaScript number prints: plain decimal
// notation for magnitudes in [1e-6, 1e21), exponent notation otherwise
// ("1e-7", "1.5e+21").
func formatNumber(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if abs := math.Abs(v); abs >= 1e21 || abs < 1e-6 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
