package table

import (
	"math"
	"strconv"
)

// Quantize pulls v toward zero to the nearest multiple of step, so -3 with
// step 10 becomes 0, not -10. Assumes step > 0; non-positive steps are
// rejected by input validation before a run starts.
func Quantize(v, step float64) float64 {
	q := math.Trunc(v/step) * step
	if q == 0 {
		return 0 // avoid negative zero leaking into keys and formatting
	}
	return q
}

func (o Options) normalize(x, y float64) (float64, float64) {
	if o.Step == nil {
		return x, y
	}
	return Quantize(x, *o.Step), Quantize(y, *o.Step)
}

// formatCoord renders a coordinate in its shortest decimal text form, without
// an exponent: 10 -> "10", 12.5 -> "12.5".
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
