package calc

import "strings"

// trigFunctions are rewritten in this order when the angle mode is degrees.
var trigFunctions = []string{"sin", "cos", "tan"}

// Preprocess prepares input for the evaluator. In radians mode the input is
// returned unchanged. In degrees mode the argument of every sin(...),
// cos(...) and tan(...) call is replaced with its value in radians.
//
// An argument runs up to the first ')' after the opening parenthesis, so
// only literal angles convert correctly: sin(30+60) becomes sin(0.52..),
// and a nested call such as sin(cos(0)) loses its inner expression. This
// matches the long-standing behaviour of the calculator and is kept as is.
func Preprocess(input string, mode AngleMode) string {
	if mode != Degrees {
		return input
	}
	out := input
	for _, name := range trigFunctions {
		out = convertTrigArgs(out, name)
	}
	return out
}

// convertTrigArgs rewrites each non-overlapping name(arg) in s, where arg is
// one or more characters other than ')'.
func convertTrigArgs(s, name string) string {
	open := name + "("
	var sb strings.Builder
	i := 0
	for {
		j := strings.Index(s[i:], open)
		if j < 0 {
			break
		}
		argStart := i + j + len(open)
		k := strings.IndexByte(s[argStart:], ')')
		if k <= 0 {
			// Empty argument or no closing parenthesis: resume the search
			// one byte further on.
			sb.WriteString(s[i : i+j+1])
			i += j + 1
			continue
		}
		sb.WriteString(s[i:argStart])
		sb.WriteString(formatNumber(DegreesToRadians(s[argStart : argStart+k])))
		sb.WriteByte(')')
		i = argStart + k + 1
	}
	sb.WriteString(s[i:])
	return sb.String()
}
