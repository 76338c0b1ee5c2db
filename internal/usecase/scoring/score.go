package scoring

// Score bounds shared by all four scorers
const (
	LowerBound = 0.0
	UpperBound = 10.0
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
