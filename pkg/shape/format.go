package shape

import (
	"math"
	"strconv"
	"strings"
)

// positive reports whether v is a usable dimension: finite and > 0.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// measurable reports whether s's volume and surface area are both finite
// and > 0, so their ratio is a finite number.
func measurable(s Solid) bool {
	return positive(s.Volume()) && positive(s.SurfaceArea())
}

// extreme returns the dimension farthest from 1 in orders of magnitude.
func extreme(dims []dimension) dimension {
	best, dist := dims[0], -1.0
	for _, d := range dims {
		if m := math.Abs(math.Log(d.value)); m > dist {
			best, dist = d, m
		}
	}
	return best
}

// formatNumber renders v the way the shape descriptions have always
// printed numbers: integral values keep a trailing ".0", very large or
// very small magnitudes switch to "1.5E7" scientific form.
func formatNumber(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-3 || abs >= 1e7) {
		s := strconv.FormatFloat(v, 'E', -1, 64)
		mant, exp, _ := strings.Cut(s, "E")
		if !strings.Contains(mant, ".") {
			mant += ".0"
		}
		exp = strings.TrimPrefix(exp, "+")
		neg := strings.HasPrefix(exp, "-")
		exp = strings.TrimLeft(strings.TrimPrefix(exp, "-"), "0")
		if neg {
			exp = "-" + exp
		}
		return mant + "E" + exp
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// describe builds "Kind {name='n', color='c', k=v, ...}".
func describe(b *base, dims ...dimension) string {
	var sb strings.Builder
	sb.WriteString(b.kind.String())
	sb.WriteString(" {name='")
	sb.WriteString(b.name)
	sb.WriteString("', color='")
	sb.WriteString(b.color)
	sb.WriteString("'")
	for _, d := range dims {
		sb.WriteString(", ")
		sb.WriteString(d.field)
		sb.WriteString("=")
		sb.WriteString(formatNumber(d.value))
	}
	sb.WriteString("}")
	return sb.String()
}
