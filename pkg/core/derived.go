package core

import (
	"math"
	"strconv"
	"strings"
)

const maxMinutes = math.MaxInt32

// parseMinutes reads a minute count the way a numeric form field would:
// surrounding blanks are ignored and fractions are truncated.
func parseMinutes(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	f = math.Trunc(f)
	switch {
	case f > maxMinutes:
		return maxMinutes, true
	case f < -maxMinutes:
		return -maxMinutes, true
	}
	return int(f), true
}

// ClampTimeAlloc coerces an edited time allocation to an integer of at least one minute.
// Unparseable input becomes "1".
func ClampTimeAlloc(v string) string {
	n, ok := parseMinutes(v)
	if !ok || n < 1 {
		n = 1
	}
	return strconv.Itoa(n)
}

// TotalAllocatedMinutes sums the agenda's time allocations.
// Missing or invalid values count as zero and negative values are clamped to zero.
func TotalAllocatedMinutes(items []AgendaItem) int {
	total := 0
	for _, it := range items {
		n, ok := parseMinutes(it.TimeAlloc)
		if !ok || n < 0 {
			continue
		}
		total += n
	}
	return total
}
