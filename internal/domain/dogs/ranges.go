package dogs

import (
	"math"
	"strconv"
	"strings"
)

// ParseRange convierte "min - max" en dos números.
// Un segmento ausente o no numérico queda en NaN (solo ese campo).
func ParseRange(s string) (lo, hi float64) {
	parts := strings.Split(s, "-")

	lo = parseSegment(parts, 0)
	hi = parseSegment(parts, 1)
	return lo, hi
}

func parseSegment(parts []string, i int) float64 {
	if i >= len(parts) {
		return math.NaN()
	}
	seg := strings.TrimSpace(parts[i])
	if seg == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(seg, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}
