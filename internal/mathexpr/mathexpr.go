// Package mathexpr evaluates infix arithmetic expressions over float64 with
// govaluate.
//
// Results follow IEEE 754: 1/0 is +Inf and sqrt(-1) is NaN. Callers that
// need finite answers check the value themselves.
package mathexpr

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
)

// ErrNotNumber is returned when an expression evaluates to something other
// than a number, or to nothing at all.
var ErrNotNumber = errors.New("result is not a number")

var constants = map[string]interface{}{
	"pi": math.Pi,
	"PI": math.Pi,
	"π":  math.Pi,
	"e":  math.E,
	"E":  math.E,
}

var functions = map[string]govaluate.ExpressionFunction{
	"sqrt":  unary("sqrt", math.Sqrt),
	"log10": unary("log10", math.Log10),
	"sin":   unary("sin", math.Sin),
	"cos":   unary("cos", math.Cos),
	"tan":   unary("tan", math.Tan),
	"asin":  unary("asin", math.Asin),
	"acos":  unary("acos", math.Acos),
	"atan":  unary("atan", math.Atan),
	"abs":   unary("abs", math.Abs),
	"exp":   unary("exp", math.Exp),
	// log(x) is the natural logarithm; log(x, base) divides by ln(base).
	"log": func(args ...interface{}) (interface{}, error) {
		vals, err := floats("log", args, 1, 2)
		if err != nil {
			return nil, err
		}
		if len(vals) == 2 {
			return math.Log(vals[0]) / math.Log(vals[1]), nil
		}
		return math.Log(vals[0]), nil
	},
}

func unary(name string, f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		vals, err := floats(name, args, 1, 1)
		if err != nil {
			return nil, err
		}
		return f(vals[0]), nil
	}
}

// floats checks that args holds between lo and hi numbers.
func floats(name string, args []interface{}, lo, hi int) ([]float64, error) {
	if len(args) < lo || len(args) > hi {
		return nil, fmt.Errorf("%s: want %d to %d arguments, got %d", name, lo, hi, len(args))
	}
	vals := make([]float64, len(args))
	for i, a := range args {
		v, ok := a.(float64)
		if !ok {
			return nil, fmt.Errorf("%s: argument %d is not a number", name, i+1)
		}
		vals[i] = v
	}
	return vals, nil
}

// Evaluator evaluates expression strings.
type Evaluator struct{}

// New returns an Evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate parses and evaluates expr. The power operator is written `^`.
func (*Evaluator) Evaluate(expr string) (result float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("evaluate %q: %v", expr, r)
		}
	}()

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(normalize(expr), functions)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", expr, err)
	}
	out, err := parsed.Evaluate(constants)
	if err != nil {
		return 0, fmt.Errorf("evaluate %q: %w", expr, err)
	}
	v, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("evaluate %q: %w", expr, ErrNotNumber)
	}
	return v, nil
}

// tokenRegex matches identifiers and numeric literals with an exponent.
// Identifiers come first so that names such as "log10" are left alone.
var tokenRegex = regexp.MustCompile(`[\p{L}_][\p{L}\p{N}_]*|(?:\d+\.?\d*|\.\d+)[eE][+-]?\d+`)

// normalize rewrites expr into govaluate's dialect: exponent literals are
// expanded to plain decimals, `^` becomes `**`, and operators are spaced so
// that a sign after an operator ("4*-2") lexes as a prefix.
func normalize(expr string) string {
	expr = tokenRegex.ReplaceAllStringFunc(expr, func(tok string) string {
		c := tok[0]
		if c != '.' && (c < '0' || c > '9') {
			return tok
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return tok
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	})

	var b strings.Builder
	for _, r := range expr {
		switch r {
		case '^':
			b.WriteString(" ** ")
		case '+', '-', '*', '/', '%':
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
