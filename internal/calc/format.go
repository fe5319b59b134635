package calc

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// outputDecimals is the number of decimal places shown for non-integers.
const outputDecimals = 8

// FormatOutput turns a result string into its display form. Integers lose
// any decimal part; other numbers are rounded to 8 decimal places without
// trailing zeros. Anything that is not a finite number is returned as is.
func FormatOutput(s string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return s
	}

	if v == math.Trunc(v) {
		if v == 0 {
			return "0"
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// Exact binary value, ties away from zero: 0.001953125 → 0.00195313.
	out := new(big.Rat).SetFloat64(v).FloatString(outputDecimals)
	out = strings.TrimRight(out, "0")
	out = strings.TrimSuffix(out, ".")
	if out == "-0" {
		return "0"
	}
	return out
}
