package downloads

import (
	"math"
	"strconv"
)

var compactUnits = []struct {
	size   float64
	suffix string
}{
	{1e3, "K"},
	{1e6, "M"},
	{1e9, "B"},
	{1e12, "T"},
}

// FormatCount renders n in compact English notation with at most one
// fraction digit: 999, 1.2K, 3.4M, 1B.
func FormatCount(n int64) string {
	sign := ""
	v := float64(n)
	if v < 0 {
		sign = "-"
		v = -v
	}
	if v < 1e3 {
		return sign + strconv.FormatFloat(v, 'f', 0, 64)
	}

	for i, u := range compactUnits {
		r := roundTenth(v / u.size)
		if r >= 1000 && i < len(compactUnits)-1 {
			continue
		}
		return sign + strconv.FormatFloat(r, 'f', -1, 64) + u.suffix
	}
	return sign + strconv.FormatFloat(v, 'f', 0, 64)
}

func roundTenth(f float64) float64 {
	return math.Round(f*10) / 10
}
