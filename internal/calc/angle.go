package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// AngleMode selects how trigonometric arguments are interpreted.
type AngleMode int

const (
	Radians AngleMode = iota
	Degrees
)

func (m AngleMode) String() string {
	if m == Degrees {
		return "degrees"
	}
	return "radians"
}

// Short returns the keypad label for the mode.
func (m AngleMode) Short() string {
	if m == Degrees {
		return "deg"
	}
	return "rad"
}

// Toggle returns the other mode.
func (m AngleMode) Toggle() AngleMode {
	if m == Degrees {
		return Radians
	}
	return Degrees
}

// ParseAngleMode accepts "radians", "rad", "degrees" or "deg" in any case.
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "radians", "rad", "":
		return Radians, nil
	case "degrees", "deg":
		return Degrees, nil
	}
	return Radians, fmt.Errorf("unknown angle mode %q", s)
}

// DegreesToRadians converts a degree literal to radians.
// Text without a leading number converts to 0.
func DegreesToRadians(s string) float64 {
	deg, ok := parseLeadingFloat(s)
	if !ok {
		return 0
	}
	return deg * (math.Pi / 180)
}

// parseLeadingFloat parses the longest decimal literal or "Infinity" at the
// start of s, after leading whitespace. "45abc" yields 45; "abc" fails.
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:i], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
