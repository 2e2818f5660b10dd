package algo

import (
	"math"
	"strconv"
	"strings"
)

func itoa(n int) string { return strconv.Itoa(n) }

func joinArrow(vertices []int) string {
	parts := make([]string, len(vertices))
	for i, v := range vertices {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " -> ")
}

func joinSpace(vertices []int) string {
	parts := make([]string, len(vertices))
	for i, v := range vertices {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// formatWeight renders a weight as a bare integer when it has no
// fractional part (the common case: random-mode weights are sampled as
// integers, and explicit-mode weights default to 1) and otherwise with the
// minimal number of decimal digits.
func formatWeight(w float64) string {
	if w == math.Trunc(w) {
		return strconv.FormatFloat(w, 'f', 0, 64)
	}
	return strconv.FormatFloat(w, 'f', -1, 64)
}
